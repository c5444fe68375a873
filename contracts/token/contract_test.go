package token_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/civicaid/civicaid-contract/common"
	"github.com/stretchr/testify/require"
)

const tokenPath = "."

func deployTokenContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	h := deployTokenContract(t, e)
	return e.CommitteeInvoker(h)
}

func TestTokenInfo(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, "CAID", "symbol")
	c.Invoke(t, int64(8), "decimals")
	c.Invoke(t, int64(0), "totalSupply")
}

func TestMint(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"mint", acc.ScriptHash(), int64(100), []byte{})

	h := c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(100), []byte{1, 2, 3})
	aer := c.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "TransferX", aer.Events[1].Name)

	c.Invoke(t, int64(100), "balanceOf", acc.ScriptHash())
	c.Invoke(t, int64(100), "totalSupply")
}

func TestTransfer(t *testing.T) {
	c := newTokenInvoker(t)

	from := c.NewAccount(t)
	to := c.NewAccount(t)
	cFrom := c.WithSigners(from)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(100), []byte{})

	cFrom.InvokeFail(t, "negative amount", "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(-1), nil)

	// sender witness is required
	c.WithSigners(to).Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(30), nil)

	// insufficient funds
	cFrom.Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(1000), nil)

	cFrom.Invoke(t, true, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(30), []byte("details"))
	c.Invoke(t, int64(70), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(30), "balanceOf", to.ScriptHash())
	c.Invoke(t, int64(100), "totalSupply")

	// emptied accounts are removed from storage
	cFrom.Invoke(t, true, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(70), nil)
	c.Invoke(t, int64(0), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(100), "balanceOf", to.ScriptHash())
}

func TestTransferX(t *testing.T) {
	c := newTokenInvoker(t)

	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(50), []byte{})

	c.WithSigners(from).InvokeFail(t, common.ErrAuthorityWitnessFailed, "transferX",
		from.ScriptHash(), to.ScriptHash(), int64(50), []byte{})

	// the authority moves funds without the owner witness
	c.Invoke(t, true, "transferX",
		from.ScriptHash(), to.ScriptHash(), int64(50), []byte{})
	c.Invoke(t, int64(0), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(50), "balanceOf", to.ScriptHash())
}

func TestBurn(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), int64(100), []byte{})

	c.WithSigners(acc).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"burn", acc.ScriptHash(), int64(10), []byte{})

	c.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), int64(40), []byte{})
	c.Invoke(t, int64(60), "balanceOf", acc.ScriptHash())
	c.Invoke(t, int64(60), "totalSupply")

	c.InvokeFail(t, "can't transfer assets", "burn", acc.ScriptHash(), int64(1000), []byte{})
	c.Invoke(t, int64(60), "totalSupply")
}
