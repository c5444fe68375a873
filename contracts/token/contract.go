package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/civicaid/civicaid-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "CAID"
	decimals    = 8
	circulation = "CirculationValue"
	accPrefix   = 'a'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	common.SaveAuthority(ctx, args[0].(interop.Hash160))

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by the program authority only.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	if !common.HasUpdateAccess(ctx) {
		panic("only authority can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns CivicAid token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of CivicAid
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// CivicAid tokens in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns CivicAid balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers CivicAid tokens from
// one account to another. It can be invoked by the account owner or by a
// contract transferring from its own account, which is how the Civic
// contract pays report rewards from its reward pool.
//
// It produces Transfer and TransferX notifications. If data is a byte
// string, it is carried into the TransferX details field.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	var details []byte
	if data != nil {
		details = data.([]byte)
	}

	return token.transfer(ctx, from, to, amount, false, details)
}

// TransferX is a method for CivicAid tokens to be transferred from one
// account to another with attached transfer details. It can be invoked by
// the program authority only.
//
// It produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) bool {
	ctx := storage.GetContext()

	common.CheckAuthority(ctx)

	return token.transfer(ctx, from, to, amount, true, details)
}

// Mint creates the specified amount of CivicAid tokens on a user account and
// increases total supply. It can be invoked by the program authority only,
// this is how the reward pool on the Civic contract account is funded.
//
// It produces Transfer and TransferX notifications.
func Mint(to interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()

	common.CheckAuthority(ctx)

	details := common.MintTransferDetails(txDetails)

	ok := token.transfer(ctx, nil, to, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
}

// Burn destroys the specified amount of CivicAid tokens on a user account
// and decreases total supply. It can be invoked by the program authority
// only.
//
// It produces Transfer and TransferX notifications.
func Burn(from interop.Hash160, amount int, txDetails []byte) {
	ctx := storage.GetContext()

	common.CheckAuthority(ctx)

	details := common.BurnTransferDetails(txDetails)

	ok := token.transfer(ctx, from, nil, amount, true, details)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("negative supply after burn")
	}

	supply = supply - amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were burned")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, accountKey(holder))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, authorized bool, details []byte) bool {
	if amount < 0 {
		panic("negative amount")
	}

	balanceFrom, ok := t.canTransfer(ctx, from, to, amount, authorized)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		if balanceFrom == amount {
			storage.Delete(ctx, accountKey(from))
		} else {
			storage.Put(ctx, accountKey(from), balanceFrom-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		balanceTo := t.balanceOf(ctx, to)
		storage.Put(ctx, accountKey(to), balanceTo+amount)
	}

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// canTransfer returns the balance it can transfer.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, authorized bool) (int, bool) {
	if !authorized {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return 0, false
		}
	} else if len(from) == 0 {
		return 0, true
	}

	balanceFrom := t.balanceOf(ctx, from)
	if balanceFrom < amount {
		runtime.Log("not enough assets")
		return 0, false
	}

	return balanceFrom, true
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func accountKey(holder interop.Hash160) []byte {
	return append([]byte{accPrefix}, holder...)
}
