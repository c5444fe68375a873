/*
Package civic contains implementation of Civic contract deployed to the
CivicAid chain.

Civic contract stores citizen reports of civic issues and runs their
governance lifecycle: reputation-weighted community voting, the report status
state machine, escalation of priority reports to the program authority and a
one-time token reward for approved reports. The reward is paid in the Token
contract currency from the Civic contract's own token account.

Every method is applied as a single transaction: it either fully commits
together with its notification or faults with a typed message and leaves no
partial state, so any failed invocation can be retried as is.

# Contract notifications

ReportSubmitted notification. This notification is produced when a citizen
creates a new report.

	ReportSubmitted:
	  - name: reportID
	    type: Integer
	  - name: submitter
	    type: Hash160
	  - name: category
	    type: Integer

VoteCast notification. This notification is produced when a vote on a report
is accepted.

	VoteCast:
	  - name: reportID
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: voteType
	    type: Integer

ReportStatusUpdated notification. This notification is produced when the
program authority overrides a report status.

	ReportStatusUpdated:
	  - name: reportID
	    type: Integer
	  - name: oldStatus
	    type: Integer
	  - name: newStatus
	    type: Integer

ReportEscalated notification. This notification is produced when a reputable
actor escalates a report for priority handling.

	ReportEscalated:
	  - name: reportID
	    type: Integer
	  - name: escalatedBy
	    type: Hash160
	  - name: reason
	    type: Integer

EscalationResolved notification. This notification is produced when the
program authority resolves an escalated report.

	EscalationResolved:
	  - name: reportID
	    type: Integer

RewardDistributed notification. This notification is produced when the
one-time reward for an approved report is paid to its submitter.

	RewardDistributed:
	  - name: reportID
	    type: Integer
	  - name: submitter
	    type: Hash160
	  - name: amount
	    type: Integer

ReputationUpdated notification. This notification is produced when the
program authority changes an actor's reputation score directly.

	ReputationUpdated:
	  - name: actor
	    type: Hash160
	  - name: oldScore
	    type: Integer
	  - name: newScore
	    type: Integer
	  - name: delta
	    type: Integer
*/
package civic

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'authority' -> interop.Hash160
   program authority account
 - 'tokenScriptHash' -> interop.Hash160
   Token contract reference
 - 'reportCount' -> int
   total number of reports submitted, also the last report ID
 - 'totalRewardsDistributed' -> int
   total amount of reward tokens paid out
 - 'rewardAmount' -> int
   reward paid per approved report
 - 'r<id>' -> std.Serialize(Report)
   reports submitted to the contract
 - 'o<submitter><id>' -> int
   report ID index by submitter account
 - 'u<actor>' -> std.Serialize(ReputationRecord)
   per-actor reputation scores and counters, created on initialization or on
   the first reputation change and never deleted
 - 'v<id><voter>' -> std.Serialize(VoteRecord)
   accepted votes, at most one per (voter, report) pair, never mutated

# Reports
Report IDs are sequential integers starting from 1. A report is created in
the Submitted status and never deleted. Voting is possible only in the
Submitted status. The embedded escalation is considered empty while its
EscalatedBy field is empty.

# Reputation
Scores are bounded by [-1000, 1000], every change saturates at the bounds.
*/
