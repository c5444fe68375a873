package civicconst

// Report status values.
const (
	StatusSubmitted = iota
	StatusUnderReview
	StatusApproved
	StatusResolved
	StatusRejected
)

// Report category values.
const (
	CategoryRoadIssue = iota
	CategoryStreetLight
	CategoryPublicFacility
	CategoryEnvironmentalConcern
	CategoryOther
)

// Vote type values.
const (
	Upvote = iota
	Downvote
)

// Escalation reason values.
const (
	ReasonUrgent = iota
	ReasonHighImpact
	ReasonPublicSafety
	ReasonRecurringIssue
	ReasonOther
)

const (
	// ApprovalThreshold is a net vote tally at which a report becomes approved.
	ApprovalThreshold = 5
	// RejectionThreshold is a net vote tally at which a report becomes rejected.
	RejectionThreshold = -3

	// MinReputation and MaxReputation bound every reputation score, deltas
	// saturate at the bounds instead of overflowing.
	MinReputation = -1000
	MaxReputation = 1000

	// VoteReputationChange is granted to a voter for each accepted vote
	// regardless of its direction.
	VoteReputationChange = 1
	// UpvoteReputationChange is granted to a report submitter per upvote.
	UpvoteReputationChange = 5
	// DownvoteReputationChange is taken from a report submitter per downvote.
	DownvoteReputationChange = 2
	// ReportApprovedReputationChange is granted to a report submitter when
	// the report crosses ApprovalThreshold.
	ReportApprovedReputationChange = 20
	// ReportRejectedReputationChange is taken from a report submitter when
	// the report crosses RejectionThreshold.
	ReportRejectedReputationChange = 10

	// MinEscalationReputation is the minimum reputation score an actor needs
	// to escalate a report.
	MinEscalationReputation = 100

	// DefaultRewardAmount is the baseline one-time reward for an approved
	// report, in the smallest reward token units. Can be overridden at deploy
	// and adjusted later by the authority.
	DefaultRewardAmount = 10_0000_0000

	// MaxDescriptionLen limits report and escalation descriptions as well as
	// resolution details.
	MaxDescriptionLen = 256
	// MaxLocationLen limits the report location field.
	MaxLocationLen = 64
	// MaxMediaHashLen limits the report media hash field.
	MaxMediaHashLen = 256
)

const (
	// NotFoundError is returned if the requested report is missing.
	NotFoundError = "report does not exist"
	// ReputationNotFoundError is returned if the requested reputation record
	// is missing.
	ReputationNotFoundError = "reputation record does not exist"
	// VoteNotFoundError is returned if the requested vote record is missing.
	VoteNotFoundError = "vote record does not exist"

	// ErrorVotingClosed is returned on a vote for a report that already left
	// the Submitted status.
	ErrorVotingClosed = "report is not open for voting"
	// ErrorInvalidTransition is returned on an escalation or resolution
	// attempt in a status that does not permit it.
	ErrorInvalidTransition = "invalid report status transition"
	// ErrorNoEscalation is returned on resolution of a report that has never
	// been escalated.
	ErrorNoEscalation = "no escalation to resolve"

	// ErrorInsufficientReputation is returned on an escalation attempt by an
	// actor below MinEscalationReputation.
	ErrorInsufficientReputation = "insufficient reputation to escalate"

	// ErrorAlreadyVoted is returned on a repeated vote on the same report by
	// the same voter.
	ErrorAlreadyVoted = "already voted on this report"
	// ErrorAlreadyRewarded is returned on a repeated reward distribution for
	// the same report.
	ErrorAlreadyRewarded = "reward already distributed"
	// ErrorReputationExists is returned on a repeated reputation record
	// initialization for the same actor.
	ErrorReputationExists = "reputation record already exists"

	// ErrorNotApproved is returned on a reward distribution for a report that
	// is not approved.
	ErrorNotApproved = "report is not approved"
	// ErrorSubmitterMismatch is returned on a reward distribution with a
	// payout account that is not the report submitter.
	ErrorSubmitterMismatch = "report submitter mismatch"
	// ErrorTransferFailed is returned when the reward token contract refuses
	// the payout transfer.
	ErrorTransferFailed = "reward token transfer failed"

	// ErrorDescriptionTooLong, ErrorLocationTooLong and ErrorMediaHashTooLong
	// are returned when a text field exceeds its bound.
	ErrorDescriptionTooLong = "description too long"
	ErrorLocationTooLong    = "location too long"
	ErrorMediaHashTooLong   = "media hash too long"

	// ErrorInvalidCategory is returned on an unknown report category value.
	ErrorInvalidCategory = "invalid report category"
	// ErrorInvalidVoteType is returned on an unknown vote type value.
	ErrorInvalidVoteType = "invalid vote type"
	// ErrorInvalidStatus is returned on an unknown report status value.
	ErrorInvalidStatus = "invalid report status"
	// ErrorInvalidReason is returned on an unknown escalation reason value.
	ErrorInvalidReason = "invalid escalation reason"
	// ErrorInvalidRewardAmount is returned on a non-positive reward amount.
	ErrorInvalidRewardAmount = "invalid reward amount"
)
