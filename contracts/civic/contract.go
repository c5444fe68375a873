package civic

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/civicaid/civicaid-contract/common"
	cst "github.com/civicaid/civicaid-contract/contracts/civic/civicconst"
)

type (
	// EscalationDetails is attached to a Report when a reputable actor
	// escalates it for priority handling. A report carries at most one live
	// escalation, re-escalation overwrites it.
	EscalationDetails struct {
		Reason            int
		Description       string
		EscalatedAt       int
		EscalatedBy       interop.Hash160
		Resolved          bool
		ResolutionDetails string
	}

	// Report is a single civic-issue submission and its governance state.
	Report struct {
		ID                int
		Submitter         interop.Hash160
		Description       string
		Location          string
		MediaHash         string
		Timestamp         int
		Votes             int
		Category          int
		Status            int
		Escalation        EscalationDetails
		RewardDistributed bool
	}

	// ReputationRecord stores the bounded reputation score and activity
	// counters of a single actor.
	ReputationRecord struct {
		Actor            interop.Hash160
		Score            int
		ReportsSubmitted int
		ReportsValidated int
		LastUpdated      int
	}

	// VoteRecord is the durable guard against double voting. At most one
	// exists per (voter, report) pair for the lifetime of the report.
	VoteRecord struct {
		Voter     interop.Hash160
		VoteType  int
		Timestamp int
	}
)

const (
	tokenContractKey = "tokenScriptHash"
	reportCountKey   = "reportCount"
	totalRewardsKey  = "totalRewardsDistributed"
	rewardAmountKey  = "rewardAmount"

	reportKeyPrefix     = 'r'
	ownerKeyPrefix      = 'o'
	reputationKeyPrefix = 'u'
	voteKeyPrefix       = 'v'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	authority := args[0].(interop.Hash160)
	addrToken := args[1].(interop.Hash160)
	if len(addrToken) != interop.Hash160Len {
		panic("invalid token contract")
	}

	rewardAmount := cst.DefaultRewardAmount
	if len(args) >= 3 {
		amount := args[2].(int)
		if amount > 0 {
			rewardAmount = amount
		}
	}

	common.SaveAuthority(ctx, authority)
	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, reportCountKey, 0)
	storage.Put(ctx, totalRewardsKey, 0)
	storage.Put(ctx, rewardAmountKey, rewardAmount)

	runtime.Log("civic contract initialized")
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
	runtime.Log("civic contract updated")
}

// SubmitReport creates a new report in the Submitted status with a zero vote
// tally and returns its ID. Submitter's witness is required. Text fields are
// length-bounded, the category must be a known value. Submitter, category and
// timestamp are never mutated afterwards.
//
// It produces ReportSubmitted notification.
func SubmitReport(submitter interop.Hash160, description, location, mediaHash string, category int) int {
	ctx := storage.GetContext()

	if len(submitter) != interop.Hash160Len {
		panic("invalid submitter account")
	}
	common.CheckOwnerWitness(submitter)

	if len(description) > cst.MaxDescriptionLen {
		panic(cst.ErrorDescriptionTooLong)
	}
	if len(location) > cst.MaxLocationLen {
		panic(cst.ErrorLocationTooLong)
	}
	if len(mediaHash) > cst.MaxMediaHashLen {
		panic(cst.ErrorMediaHashTooLong)
	}
	if !isValidCategory(category) {
		panic(cst.ErrorInvalidCategory)
	}

	now := runtime.GetTime()
	id := storage.Get(ctx, reportCountKey).(int) + 1

	rep := Report{
		ID:                id,
		Submitter:         submitter,
		Description:       description,
		Location:          location,
		MediaHash:         mediaHash,
		Timestamp:         now,
		Votes:             0,
		Category:          category,
		Status:            cst.StatusSubmitted,
		Escalation:        EscalationDetails{EscalatedBy: interop.Hash160([]byte{})},
		RewardDistributed: false,
	}

	common.SetSerialized(ctx, reportKey(id), rep)
	storage.Put(ctx, ownerKey(submitter, id), id)
	storage.Put(ctx, reportCountKey, id)

	rec := getOrNewReputation(ctx, submitter)
	rec.ReportsSubmitted += 1
	rec.LastUpdated = now
	common.SetSerialized(ctx, reputationKey(submitter), rec)

	runtime.Notify("ReportSubmitted", id, submitter, category)
	return id
}

// Vote applies a single vote of the given voter to the report. Voter's
// witness is required. The report must still be in the Submitted status and
// the voter must not have voted on it before, the persisted vote record
// guards repeated votes for the lifetime of the report.
//
// The tally changes by exactly one unit. The voter gains a participation
// point regardless of the vote direction, the submitter gains or loses
// reputation depending on it. Thresholds are checked on every accepted vote:
// reaching ApprovalThreshold approves the report, reaching
// RejectionThreshold rejects it, either way closing it for further voting.
//
// It produces VoteCast notification.
func Vote(reportID int, voter interop.Hash160, voteType int) {
	ctx := storage.GetContext()

	if len(voter) != interop.Hash160Len {
		panic("invalid voter account")
	}
	common.CheckOwnerWitness(voter)

	if voteType != cst.Upvote && voteType != cst.Downvote {
		panic(cst.ErrorInvalidVoteType)
	}

	rep := getReport(ctx, reportID)
	if rep.Status != cst.StatusSubmitted {
		panic(cst.ErrorVotingClosed)
	}

	vKey := voteKey(reportID, voter)
	if storage.Get(ctx, vKey) != nil {
		panic(cst.ErrorAlreadyVoted)
	}

	now := runtime.GetTime()

	voterRec := getOrNewReputation(ctx, voter)
	voterRec.Score = clampScore(voterRec.Score + cst.VoteReputationChange)
	voterRec.ReportsValidated += 1
	voterRec.LastUpdated = now
	common.SetSerialized(ctx, reputationKey(voter), voterRec)

	if voteType == cst.Upvote {
		rep.Votes += 1
		applyReputationDelta(ctx, rep.Submitter, cst.UpvoteReputationChange, now)
	} else {
		rep.Votes -= 1
		applyReputationDelta(ctx, rep.Submitter, -cst.DownvoteReputationChange, now)
	}

	// The thresholds sit on opposite sides of zero and the tally moves by
	// one unit per vote, so at most one of these can trigger.
	if rep.Votes >= cst.ApprovalThreshold {
		rep.Status = cst.StatusApproved
		applyReputationDelta(ctx, rep.Submitter, cst.ReportApprovedReputationChange, now)
	} else if rep.Votes <= cst.RejectionThreshold {
		rep.Status = cst.StatusRejected
		applyReputationDelta(ctx, rep.Submitter, -cst.ReportRejectedReputationChange, now)
	}

	common.SetSerialized(ctx, vKey, VoteRecord{
		Voter:     voter,
		VoteType:  voteType,
		Timestamp: now,
	})
	common.SetSerialized(ctx, reportKey(reportID), rep)

	runtime.Notify("VoteCast", reportID, voter, voteType)
}

// Escalate forces the report into the UnderReview status pending authority
// resolution. Actor's witness and a reputation score of at least
// MinEscalationReputation are required. Only Submitted and UnderReview
// reports can be escalated, escalating an UnderReview report again is
// permitted and overwrites the escalation details.
//
// It produces ReportEscalated notification.
func Escalate(reportID int, actor interop.Hash160, reason int, description string) {
	ctx := storage.GetContext()

	if len(actor) != interop.Hash160Len {
		panic("invalid actor account")
	}
	common.CheckOwnerWitness(actor)

	if !isValidReason(reason) {
		panic(cst.ErrorInvalidReason)
	}
	if len(description) > cst.MaxDescriptionLen {
		panic(cst.ErrorDescriptionTooLong)
	}

	rep := getReport(ctx, reportID)
	if rep.Status != cst.StatusSubmitted && rep.Status != cst.StatusUnderReview {
		panic(cst.ErrorInvalidTransition)
	}

	if reputationOf(ctx, actor) < cst.MinEscalationReputation {
		panic(cst.ErrorInsufficientReputation)
	}

	rep.Status = cst.StatusUnderReview
	rep.Escalation = EscalationDetails{
		Reason:            reason,
		Description:       description,
		EscalatedAt:       runtime.GetTime(),
		EscalatedBy:       actor,
		Resolved:          false,
		ResolutionDetails: "",
	}
	common.SetSerialized(ctx, reportKey(reportID), rep)

	runtime.Notify("ReportEscalated", reportID, actor, reason)
}

// ResolveEscalation closes the escalation of an UnderReview report and moves
// the report into the terminal Resolved status. It can be invoked by the
// program authority only and fails if the report has never been escalated.
//
// It produces EscalationResolved notification.
func ResolveEscalation(reportID int, resolutionDetails string) {
	ctx := storage.GetContext()
	common.CheckAuthority(ctx)

	if len(resolutionDetails) > cst.MaxDescriptionLen {
		panic(cst.ErrorDescriptionTooLong)
	}

	rep := getReport(ctx, reportID)
	if len(rep.Escalation.EscalatedBy) == 0 {
		panic(cst.ErrorNoEscalation)
	}
	if rep.Status != cst.StatusUnderReview {
		panic(cst.ErrorInvalidTransition)
	}

	esc := rep.Escalation
	esc.Resolved = true
	esc.ResolutionDetails = resolutionDetails
	rep.Escalation = esc
	rep.Status = cst.StatusResolved
	common.SetSerialized(ctx, reportKey(reportID), rep)

	runtime.Notify("EscalationResolved", reportID)
}

// DistributeReward pays the configured one-time reward for an approved
// report from the contract's own token account to the submitter. The
// submitter argument must match the report. The payout happens at most once
// per report: the reward flag is set only after the token contract confirms
// the transfer and the whole invocation fails if it does not, leaving no
// partial state, so the operation is safe to retry.
//
// It produces RewardDistributed notification.
func DistributeReward(reportID int, submitter interop.Hash160) {
	ctx := storage.GetContext()

	rep := getReport(ctx, reportID)
	if !rep.Submitter.Equals(submitter) {
		panic(cst.ErrorSubmitterMismatch)
	}
	if rep.Status != cst.StatusApproved {
		panic(cst.ErrorNotApproved)
	}
	if rep.RewardDistributed {
		panic(cst.ErrorAlreadyRewarded)
	}

	amount := storage.Get(ctx, rewardAmountKey).(int)
	addrToken := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	details := common.RewardTransferDetails(reportID)

	ok := contract.Call(addrToken, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), submitter, amount, details).(bool)
	if !ok {
		panic(cst.ErrorTransferFailed)
	}

	rep.RewardDistributed = true
	common.SetSerialized(ctx, reportKey(reportID), rep)

	total := storage.Get(ctx, totalRewardsKey).(int)
	storage.Put(ctx, totalRewardsKey, total+amount)

	runtime.Notify("RewardDistributed", reportID, submitter, amount)
}

// InitReputation creates a reputation record for the actor with a zero score
// and zero counters. Actor's witness is required. It fails if the record
// already exists. Reputation records are never deleted.
func InitReputation(actor interop.Hash160) {
	ctx := storage.GetContext()

	if len(actor) != interop.Hash160Len {
		panic("invalid actor account")
	}
	common.CheckOwnerWitness(actor)

	if storage.Get(ctx, reputationKey(actor)) != nil {
		panic(cst.ErrorReputationExists)
	}

	common.SetSerialized(ctx, reputationKey(actor), ReputationRecord{
		Actor:       actor,
		LastUpdated: runtime.GetTime(),
	})
	runtime.Log("reputation record initialized")
}

// UpdateReputation applies an arbitrary delta to the actor's reputation
// score. It can be invoked by the program authority only. The resulting
// score saturates at MinReputation and MaxReputation instead of overflowing.
//
// It produces ReputationUpdated notification.
func UpdateReputation(actor interop.Hash160, delta int) {
	ctx := storage.GetContext()
	common.CheckAuthority(ctx)

	if len(actor) != interop.Hash160Len {
		panic("invalid actor account")
	}

	oldScore, newScore := applyReputationDelta(ctx, actor, delta, runtime.GetTime())
	runtime.Notify("ReputationUpdated", actor, oldScore, newScore, delta)
}

// UpdateReportStatus overrides the report status. It can be invoked by the
// program authority only and accepts any known status value.
//
// It produces ReportStatusUpdated notification.
func UpdateReportStatus(reportID int, newStatus int) {
	ctx := storage.GetContext()
	common.CheckAuthority(ctx)

	if !isValidStatus(newStatus) {
		panic(cst.ErrorInvalidStatus)
	}

	rep := getReport(ctx, reportID)
	oldStatus := rep.Status
	rep.Status = newStatus
	common.SetSerialized(ctx, reportKey(reportID), rep)

	runtime.Notify("ReportStatusUpdated", reportID, oldStatus, newStatus)
}

// SetRewardAmount changes the reward paid per approved report. It can be
// invoked by the program authority only.
func SetRewardAmount(amount int) {
	ctx := storage.GetContext()
	common.CheckAuthority(ctx)

	if amount <= 0 {
		panic(cst.ErrorInvalidRewardAmount)
	}

	storage.Put(ctx, rewardAmountKey, amount)
	runtime.Log("reward amount updated")
}

// GetReport returns the report with the given ID.
//
// If the report doesn't exist, it panics with NotFoundError.
func GetReport(reportID int) Report {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, reportID)
}

// GetReputation returns the reputation record of the actor.
//
// If the record doesn't exist, it panics with ReputationNotFoundError.
func GetReputation(actor interop.Hash160) ReputationRecord {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, reputationKey(actor))
	if data == nil {
		panic(cst.ReputationNotFoundError)
	}
	return std.Deserialize(data.([]byte)).(ReputationRecord)
}

// ReputationOf returns the reputation score of the actor, zero if no record
// exists.
func ReputationOf(actor interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return reputationOf(ctx, actor)
}

// HasVoted returns true if the voter has already voted on the report.
func HasVoted(reportID int, voter interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, voteKey(reportID, voter)) != nil
}

// GetVote returns the vote record of the voter for the report.
//
// If the record doesn't exist, it panics with VoteNotFoundError.
func GetVote(reportID int, voter interop.Hash160) VoteRecord {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, voteKey(reportID, voter))
	if data == nil {
		panic(cst.VoteNotFoundError)
	}
	return std.Deserialize(data.([]byte)).(VoteRecord)
}

// ListReports iterates over IDs of all reports submitted by the specified
// submitter. If submitter is nil, it iterates over all reports.
func ListReports(submitter interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := []byte{ownerKeyPrefix}
	if len(submitter) != 0 {
		key = append(key, submitter...)
	}
	return storage.Find(ctx, key, storage.ValuesOnly)
}

// ReportCount returns the number of reports submitted so far.
func ReportCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, reportCountKey).(int)
}

// TotalRewardsDistributed returns the total amount of reward tokens paid out
// by the contract.
func TotalRewardsDistributed() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, totalRewardsKey).(int)
}

// RewardAmount returns the reward paid per approved report.
func RewardAmount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, rewardAmountKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getReport(ctx storage.Context, reportID int) Report {
	data := storage.Get(ctx, reportKey(reportID))
	if data == nil {
		panic(cst.NotFoundError)
	}
	return std.Deserialize(data.([]byte)).(Report)
}

func getOrNewReputation(ctx storage.Context, actor interop.Hash160) ReputationRecord {
	data := storage.Get(ctx, reputationKey(actor))
	if data != nil {
		return std.Deserialize(data.([]byte)).(ReputationRecord)
	}
	return ReputationRecord{Actor: actor}
}

// applyReputationDelta adds delta to the actor's score saturating at the
// reputation bounds and returns old and new score values. A missing record
// is materialized at zero first, the same way token accounts appear on first
// transfer.
func applyReputationDelta(ctx storage.Context, actor interop.Hash160, delta int, now int) (int, int) {
	rec := getOrNewReputation(ctx, actor)
	oldScore := rec.Score
	rec.Score = clampScore(oldScore + delta)
	rec.LastUpdated = now
	common.SetSerialized(ctx, reputationKey(actor), rec)
	return oldScore, rec.Score
}

func reputationOf(ctx storage.Context, actor interop.Hash160) int {
	data := storage.Get(ctx, reputationKey(actor))
	if data == nil {
		return 0
	}
	return std.Deserialize(data.([]byte)).(ReputationRecord).Score
}

func clampScore(score int) int {
	if score > cst.MaxReputation {
		return cst.MaxReputation
	}
	if score < cst.MinReputation {
		return cst.MinReputation
	}
	return score
}

func reportKey(reportID int) []byte {
	return append([]byte{reportKeyPrefix}, convert.ToBytes(reportID)...)
}

func ownerKey(submitter interop.Hash160, reportID int) []byte {
	key := append([]byte{ownerKeyPrefix}, submitter...)
	return append(key, convert.ToBytes(reportID)...)
}

func reputationKey(actor interop.Hash160) []byte {
	return append([]byte{reputationKeyPrefix}, actor...)
}

func voteKey(reportID int, voter interop.Hash160) []byte {
	key := append([]byte{voteKeyPrefix}, convert.ToBytes(reportID)...)
	return append(key, voter...)
}

func isValidCategory(category int) bool {
	return category >= cst.CategoryRoadIssue && category <= cst.CategoryOther
}

func isValidStatus(status int) bool {
	return status >= cst.StatusSubmitted && status <= cst.StatusRejected
}

func isValidReason(reason int) bool {
	return reason >= cst.ReasonUrgent && reason <= cst.ReasonOther
}
