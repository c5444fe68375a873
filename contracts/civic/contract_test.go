package civic_test

import (
	"math/rand"
	"path"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/civicaid/civicaid-contract/common"
	cst "github.com/civicaid/civicaid-contract/contracts/civic/civicconst"
	"github.com/stretchr/testify/require"
)

const (
	civicPath = "."
	tokenPath = "../token"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

func deployTokenContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

func deployCivicContract(t *testing.T, e *neotest.Executor, addrToken util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, civicPath, path.Join(civicPath, "config.yml"))

	args := make([]any, 2)
	args[0] = e.CommitteeHash
	args[1] = addrToken

	e.DeployContract(t, c, args)
	return c.Hash
}

// newCivicInvoker deploys Token and Civic contracts with the committee as
// the program authority and returns committee invokers for both.
func newCivicInvoker(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	addrToken := deployTokenContract(t, e)
	h := deployCivicContract(t, e, addrToken)
	return e.CommitteeInvoker(h), e.CommitteeInvoker(addrToken)
}

func dummyMediaHash() string {
	return base58.Encode(randomBytes(32))
}

// submitDummyReport creates a report from the given account and returns its ID.
func submitDummyReport(t *testing.T, c *neotest.ContractInvoker, acc neotest.Signer) int64 {
	s, err := c.TestInvoke(t, "reportCount")
	require.NoError(t, err)
	id := s.Pop().BigInt().Int64() + 1

	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, id, "submitReport", acc.ScriptHash(),
		"pothole on the main street", "Main street, 14",
		dummyMediaHash(), int64(cst.CategoryRoadIssue))
	return id
}

type testReport struct {
	id                int64
	description       string
	location          string
	mediaHash         string
	timestamp         int64
	votes             int64
	category          int64
	status            int64
	escReason         int64
	escDescription    string
	escBy             []byte
	escResolved       bool
	escResolution     string
	rewardDistributed bool
}

func getReport(t *testing.T, c *neotest.ContractInvoker, id int64) testReport {
	s, err := c.TestInvoke(t, "getReport", id)
	require.NoError(t, err)

	items := s.Pop().Value().([]stackitem.Item)
	require.Len(t, items, 11)

	esc := items[9].Value().([]stackitem.Item)
	require.Len(t, esc, 6)

	var r testReport
	r.id = toInt64(t, items[0])
	r.description = toString(t, items[2])
	r.location = toString(t, items[3])
	r.mediaHash = toString(t, items[4])
	r.timestamp = toInt64(t, items[5])
	r.votes = toInt64(t, items[6])
	r.category = toInt64(t, items[7])
	r.status = toInt64(t, items[8])
	r.escReason = toInt64(t, esc[0])
	r.escDescription = toString(t, esc[1])
	r.escBy = toBytes(t, esc[3])
	r.escResolved = toBool(t, esc[4])
	r.escResolution = toString(t, esc[5])
	r.rewardDistributed = toBool(t, items[10])
	return r
}

func reputationOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	s, err := c.TestInvoke(t, "reputationOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func toInt64(t *testing.T, item stackitem.Item) int64 {
	n, err := item.TryInteger()
	require.NoError(t, err)
	return n.Int64()
}

func toString(t *testing.T, item stackitem.Item) string {
	return string(toBytes(t, item))
}

func toBytes(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func toBool(t *testing.T, item stackitem.Item) bool {
	b, err := item.TryBool()
	require.NoError(t, err)
	return b
}

func TestSubmitReport(t *testing.T) {
	c, _ := newCivicInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	mediaHash := dummyMediaHash()
	args := []any{acc.ScriptHash(), "broken street light", "5th avenue", mediaHash, int64(cst.CategoryStreetLight)}

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "submitReport", args...)

	longText := string(make([]byte, 300))
	cAcc.InvokeFail(t, cst.ErrorDescriptionTooLong, "submitReport",
		acc.ScriptHash(), longText, "5th avenue", mediaHash, int64(cst.CategoryStreetLight))
	cAcc.InvokeFail(t, cst.ErrorLocationTooLong, "submitReport",
		acc.ScriptHash(), "broken street light", string(make([]byte, 65)), mediaHash, int64(cst.CategoryStreetLight))
	cAcc.InvokeFail(t, cst.ErrorMediaHashTooLong, "submitReport",
		acc.ScriptHash(), "broken street light", "5th avenue", longText, int64(cst.CategoryStreetLight))
	cAcc.InvokeFail(t, cst.ErrorInvalidCategory, "submitReport",
		acc.ScriptHash(), "broken street light", "5th avenue", mediaHash, int64(42))

	h := cAcc.Invoke(t, int64(1), "submitReport", args...)
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ReportSubmitted", aer.Events[0].Name)

	b := c.TopBlock(t)
	r := getReport(t, c, 1)
	require.Equal(t, int64(1), r.id)
	require.Equal(t, "broken street light", r.description)
	require.Equal(t, "5th avenue", r.location)
	require.Equal(t, mediaHash, r.mediaHash)
	require.Equal(t, int64(b.Timestamp), r.timestamp)
	require.Equal(t, int64(0), r.votes)
	require.Equal(t, int64(cst.CategoryStreetLight), r.category)
	require.Equal(t, int64(cst.StatusSubmitted), r.status)
	require.Empty(t, r.escBy)
	require.False(t, r.rewardDistributed)

	// submission bumps the counter, not the score
	require.Equal(t, int64(0), reputationOf(t, c, acc.ScriptHash()))

	c.Invoke(t, int64(1), "reportCount")
	c.InvokeFail(t, cst.NotFoundError, "getReport", int64(2))

	require.Equal(t, int64(2), submitDummyReport(t, c, acc))
	c.Invoke(t, int64(2), "reportCount")

	s, err := c.TestInvoke(t, "listReports", acc.ScriptHash())
	require.NoError(t, err)
	iter := s.Pop().Value().(*storage.Iterator)
	require.True(t, iter.Next())
	require.Equal(t, stackitem.NewBuffer([]byte{1}), iter.Value())
	require.True(t, iter.Next())
	require.Equal(t, stackitem.NewBuffer([]byte{2}), iter.Value())
	require.False(t, iter.Next())
}

func TestVote(t *testing.T) {
	c, _ := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	voter := c.NewAccount(t)
	cVoter := c.WithSigners(voter)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
	cVoter.InvokeFail(t, cst.ErrorInvalidVoteType, "vote", id, voter.ScriptHash(), int64(42))
	cVoter.InvokeFail(t, cst.NotFoundError, "vote", int64(99), voter.ScriptHash(), int64(cst.Upvote))

	h := cVoter.Invoke(t, stackitem.Null{}, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
	aer := cVoter.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "VoteCast", aer.Events[0].Name)

	r := getReport(t, c, id)
	require.Equal(t, int64(1), r.votes)
	require.Equal(t, int64(cst.StatusSubmitted), r.status)

	// participation point regardless of direction, upvote bonus for submitter
	require.Equal(t, int64(cst.VoteReputationChange), reputationOf(t, c, voter.ScriptHash()))
	require.Equal(t, int64(cst.UpvoteReputationChange), reputationOf(t, c, submitter.ScriptHash()))

	c.Invoke(t, true, "hasVoted", id, voter.ScriptHash())
	c.Invoke(t, false, "hasVoted", id, submitter.ScriptHash())

	cVoter.InvokeFail(t, cst.ErrorAlreadyVoted, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
	cVoter.InvokeFail(t, cst.ErrorAlreadyVoted, "vote", id, voter.ScriptHash(), int64(cst.Downvote))
	require.Equal(t, int64(1), getReport(t, c, id).votes)

	s, err := c.TestInvoke(t, "getVote", id, voter.ScriptHash())
	require.NoError(t, err)
	items := s.Pop().Value().([]stackitem.Item)
	require.Len(t, items, 3)
	require.Equal(t, int64(cst.Upvote), toInt64(t, items[1]))

	c.InvokeFail(t, cst.VoteNotFoundError, "getVote", id, submitter.ScriptHash())
}

func TestVoteApprovalThreshold(t *testing.T) {
	c, _ := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	for i := 0; i < cst.ApprovalThreshold; i++ {
		voter := c.NewAccount(t)
		c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
	}

	r := getReport(t, c, id)
	require.Equal(t, int64(cst.ApprovalThreshold), r.votes)
	require.Equal(t, int64(cst.StatusApproved), r.status)

	// 5 upvotes and the approval bonus
	expected := int64(cst.ApprovalThreshold*cst.UpvoteReputationChange + cst.ReportApprovedReputationChange)
	require.Equal(t, expected, reputationOf(t, c, submitter.ScriptHash()))

	// approved reports accept no more votes
	late := c.NewAccount(t)
	c.WithSigners(late).InvokeFail(t, cst.ErrorVotingClosed, "vote", id, late.ScriptHash(), int64(cst.Upvote))
	require.Equal(t, int64(cst.ApprovalThreshold), getReport(t, c, id).votes)
}

func TestVoteRejectionThreshold(t *testing.T) {
	c, _ := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	for i := 0; i < -cst.RejectionThreshold; i++ {
		voter := c.NewAccount(t)
		c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote", id, voter.ScriptHash(), int64(cst.Downvote))
	}

	r := getReport(t, c, id)
	require.Equal(t, int64(cst.RejectionThreshold), r.votes)
	require.Equal(t, int64(cst.StatusRejected), r.status)

	// 3 downvotes and the rejection penalty
	expected := int64(cst.RejectionThreshold*cst.DownvoteReputationChange - cst.ReportRejectedReputationChange)
	require.Equal(t, expected, reputationOf(t, c, submitter.ScriptHash()))

	late := c.NewAccount(t)
	c.WithSigners(late).InvokeFail(t, cst.ErrorVotingClosed, "vote", id, late.ScriptHash(), int64(cst.Downvote))
}

func TestEscalate(t *testing.T) {
	c, _ := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	actor := c.NewAccount(t)
	cActor := c.WithSigners(actor)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "escalate",
		id, actor.ScriptHash(), int64(cst.ReasonUrgent), "sinkhole is growing")
	cActor.InvokeFail(t, cst.ErrorInvalidReason, "escalate",
		id, actor.ScriptHash(), int64(42), "sinkhole is growing")
	cActor.InvokeFail(t, cst.NotFoundError, "escalate",
		int64(99), actor.ScriptHash(), int64(cst.ReasonUrgent), "sinkhole is growing")

	c.Invoke(t, stackitem.Null{}, "updateReputation", actor.ScriptHash(), int64(50))
	cActor.InvokeFail(t, cst.ErrorInsufficientReputation, "escalate",
		id, actor.ScriptHash(), int64(cst.ReasonUrgent), "sinkhole is growing")

	c.Invoke(t, stackitem.Null{}, "updateReputation", actor.ScriptHash(), int64(100))
	h := cActor.Invoke(t, stackitem.Null{}, "escalate",
		id, actor.ScriptHash(), int64(cst.ReasonUrgent), "sinkhole is growing")
	aer := cActor.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ReportEscalated", aer.Events[0].Name)

	r := getReport(t, c, id)
	require.Equal(t, int64(cst.StatusUnderReview), r.status)
	require.Equal(t, int64(cst.ReasonUrgent), r.escReason)
	require.Equal(t, "sinkhole is growing", r.escDescription)
	require.Len(t, r.escBy, util.Uint160Size)
	require.False(t, r.escResolved)

	// re-escalation of an UnderReview report overwrites the details
	cActor.Invoke(t, stackitem.Null{}, "escalate",
		id, actor.ScriptHash(), int64(cst.ReasonPublicSafety), "school route")
	r = getReport(t, c, id)
	require.Equal(t, int64(cst.StatusUnderReview), r.status)
	require.Equal(t, int64(cst.ReasonPublicSafety), r.escReason)
	require.Equal(t, "school route", r.escDescription)

	// terminal statuses can not be escalated
	rejected := submitDummyReport(t, c, submitter)
	c.Invoke(t, stackitem.Null{}, "updateReportStatus", rejected, int64(cst.StatusRejected))
	cActor.InvokeFail(t, cst.ErrorInvalidTransition, "escalate",
		rejected, actor.ScriptHash(), int64(cst.ReasonUrgent), "wrong call")
}

func TestResolveEscalation(t *testing.T) {
	c, _ := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	// no escalation attached yet
	c.InvokeFail(t, cst.ErrorNoEscalation, "resolveEscalation", id, "fixed by the road service")

	actor := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "updateReputation", actor.ScriptHash(), int64(cst.MinEscalationReputation))
	c.WithSigners(actor).Invoke(t, stackitem.Null{}, "escalate",
		id, actor.ScriptHash(), int64(cst.ReasonHighImpact), "main crossing")

	c.WithSigners(actor).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"resolveEscalation", id, "fixed by the road service")

	h := c.Invoke(t, stackitem.Null{}, "resolveEscalation", id, "fixed by the road service")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "EscalationResolved", aer.Events[0].Name)

	r := getReport(t, c, id)
	require.Equal(t, int64(cst.StatusResolved), r.status)
	require.True(t, r.escResolved)
	require.Equal(t, "fixed by the road service", r.escResolution)

	// resolved reports are terminal for escalation purposes
	c.WithSigners(actor).InvokeFail(t, cst.ErrorInvalidTransition, "escalate",
		id, actor.ScriptHash(), int64(cst.ReasonUrgent), "again")
	c.InvokeFail(t, cst.ErrorInvalidTransition, "resolveEscalation", id, "twice")
}

func TestDistributeReward(t *testing.T) {
	c, cToken := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	anyone := c.NewAccount(t)
	cAnyone := c.WithSigners(anyone)

	cAnyone.InvokeFail(t, cst.NotFoundError, "distributeReward", int64(99), submitter.ScriptHash())
	cAnyone.InvokeFail(t, cst.ErrorSubmitterMismatch, "distributeReward", id, anyone.ScriptHash())
	cAnyone.InvokeFail(t, cst.ErrorNotApproved, "distributeReward", id, submitter.ScriptHash())

	for i := 0; i < cst.ApprovalThreshold; i++ {
		voter := c.NewAccount(t)
		c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
	}
	require.Equal(t, int64(cst.StatusApproved), getReport(t, c, id).status)

	// the pool is not funded yet, the payout fails and stays retryable
	cAnyone.InvokeFail(t, cst.ErrorTransferFailed, "distributeReward", id, submitter.ScriptHash())
	require.False(t, getReport(t, c, id).rewardDistributed)

	const pool = 100 * cst.DefaultRewardAmount
	cToken.Invoke(t, stackitem.Null{}, "mint", c.Hash, int64(pool), []byte{})

	h := cAnyone.Invoke(t, stackitem.Null{}, "distributeReward", id, submitter.ScriptHash())
	aer := cAnyone.CheckHalt(t, h)
	require.Equal(t, 3, len(aer.Events)) // Transfer, TransferX, RewardDistributed
	require.Equal(t, "RewardDistributed", aer.Events[2].Name)

	require.True(t, getReport(t, c, id).rewardDistributed)
	c.Invoke(t, int64(cst.DefaultRewardAmount), "totalRewardsDistributed")
	cToken.Invoke(t, int64(cst.DefaultRewardAmount), "balanceOf", submitter.ScriptHash())
	cToken.Invoke(t, int64(pool-cst.DefaultRewardAmount), "balanceOf", c.Hash)

	// the reward is one-time, repeated distribution changes nothing
	cAnyone.InvokeFail(t, cst.ErrorAlreadyRewarded, "distributeReward", id, submitter.ScriptHash())
	c.Invoke(t, int64(cst.DefaultRewardAmount), "totalRewardsDistributed")
	cToken.Invoke(t, int64(pool-cst.DefaultRewardAmount), "balanceOf", c.Hash)
}

func TestSetRewardAmount(t *testing.T) {
	c, cToken := newCivicInvoker(t)

	c.Invoke(t, int64(cst.DefaultRewardAmount), "rewardAmount")

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrAuthorityWitnessFailed, "setRewardAmount", int64(1))
	c.InvokeFail(t, cst.ErrorInvalidRewardAmount, "setRewardAmount", int64(0))

	c.Invoke(t, stackitem.Null{}, "setRewardAmount", int64(7))
	c.Invoke(t, int64(7), "rewardAmount")

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)
	for i := 0; i < cst.ApprovalThreshold; i++ {
		voter := c.NewAccount(t)
		c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
	}
	cToken.Invoke(t, stackitem.Null{}, "mint", c.Hash, int64(1000), []byte{})

	c.WithSigners(submitter).Invoke(t, stackitem.Null{}, "distributeReward", id, submitter.ScriptHash())
	cToken.Invoke(t, int64(7), "balanceOf", submitter.ScriptHash())
}

func TestInitReputation(t *testing.T) {
	c, _ := newCivicInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	c.InvokeFail(t, cst.ReputationNotFoundError, "getReputation", acc.ScriptHash())
	c.Invoke(t, int64(0), "reputationOf", acc.ScriptHash())

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "initReputation", acc.ScriptHash())
	cAcc.Invoke(t, stackitem.Null{}, "initReputation", acc.ScriptHash())
	cAcc.InvokeFail(t, cst.ErrorReputationExists, "initReputation", acc.ScriptHash())

	s, err := c.TestInvoke(t, "getReputation", acc.ScriptHash())
	require.NoError(t, err)
	items := s.Pop().Value().([]stackitem.Item)
	require.Len(t, items, 5)
	require.Equal(t, int64(0), toInt64(t, items[1])) // score
	require.Equal(t, int64(0), toInt64(t, items[2])) // reports submitted
	require.Equal(t, int64(0), toInt64(t, items[3])) // reports validated
}

func TestUpdateReputation(t *testing.T) {
	c, _ := newCivicInvoker(t)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"updateReputation", acc.ScriptHash(), int64(10))

	h := c.Invoke(t, stackitem.Null{}, "updateReputation", acc.ScriptHash(), int64(10))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ReputationUpdated", aer.Events[0].Name)
	require.Equal(t, int64(10), reputationOf(t, c, acc.ScriptHash()))

	// the score saturates at the bounds instead of overflowing
	c.Invoke(t, stackitem.Null{}, "updateReputation", acc.ScriptHash(), int64(1_000_000))
	require.Equal(t, int64(cst.MaxReputation), reputationOf(t, c, acc.ScriptHash()))

	c.Invoke(t, stackitem.Null{}, "updateReputation", acc.ScriptHash(), int64(50))
	require.Equal(t, int64(cst.MaxReputation), reputationOf(t, c, acc.ScriptHash()))

	c.Invoke(t, stackitem.Null{}, "updateReputation", acc.ScriptHash(), int64(-5_000_000))
	require.Equal(t, int64(cst.MinReputation), reputationOf(t, c, acc.ScriptHash()))

	c.Invoke(t, stackitem.Null{}, "updateReputation", acc.ScriptHash(), int64(-1))
	require.Equal(t, int64(cst.MinReputation), reputationOf(t, c, acc.ScriptHash()))
}

func TestUpdateReportStatus(t *testing.T) {
	c, _ := newCivicInvoker(t)

	submitter := c.NewAccount(t)
	id := submitDummyReport(t, c, submitter)

	c.WithSigners(submitter).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"updateReportStatus", id, int64(cst.StatusApproved))
	c.InvokeFail(t, cst.ErrorInvalidStatus, "updateReportStatus", id, int64(42))
	c.InvokeFail(t, cst.NotFoundError, "updateReportStatus", int64(99), int64(cst.StatusApproved))

	h := c.Invoke(t, stackitem.Null{}, "updateReportStatus", id, int64(cst.StatusApproved))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ReportStatusUpdated", aer.Events[0].Name)
	require.Equal(t, int64(cst.StatusApproved), getReport(t, c, id).status)

	// the override can reopen voting
	c.Invoke(t, stackitem.Null{}, "updateReportStatus", id, int64(cst.StatusSubmitted))
	voter := c.NewAccount(t)
	c.WithSigners(voter).Invoke(t, stackitem.Null{}, "vote", id, voter.ScriptHash(), int64(cst.Upvote))
}
