// Package civic contains RPC wrappers for CivicAid Civic contract.
package civic

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CivicEscalationDetails is a contract-specific civic.EscalationDetails type used by its methods.
type CivicEscalationDetails struct {
	Reason *big.Int
	Description string
	EscalatedAt *big.Int
	EscalatedBy []byte
	Resolved bool
	ResolutionDetails string
}

// CivicReport is a contract-specific civic.Report type used by its methods.
type CivicReport struct {
	ID *big.Int
	Submitter util.Uint160
	Description string
	Location string
	MediaHash string
	Timestamp *big.Int
	Votes *big.Int
	Category *big.Int
	Status *big.Int
	Escalation *CivicEscalationDetails
	RewardDistributed bool
}

// CivicReputationRecord is a contract-specific civic.ReputationRecord type used by its methods.
type CivicReputationRecord struct {
	Actor util.Uint160
	Score *big.Int
	ReportsSubmitted *big.Int
	ReportsValidated *big.Int
	LastUpdated *big.Int
}

// CivicVoteRecord is a contract-specific civic.VoteRecord type used by its methods.
type CivicVoteRecord struct {
	Voter util.Uint160
	VoteType *big.Int
	Timestamp *big.Int
}

// ReportSubmittedEvent represents "ReportSubmitted" event emitted by the contract.
type ReportSubmittedEvent struct {
	ReportID *big.Int
	Submitter util.Uint160
	Category *big.Int
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	ReportID *big.Int
	Voter util.Uint160
	VoteType *big.Int
}

// ReportStatusUpdatedEvent represents "ReportStatusUpdated" event emitted by the contract.
type ReportStatusUpdatedEvent struct {
	ReportID *big.Int
	OldStatus *big.Int
	NewStatus *big.Int
}

// ReportEscalatedEvent represents "ReportEscalated" event emitted by the contract.
type ReportEscalatedEvent struct {
	ReportID *big.Int
	EscalatedBy util.Uint160
	Reason *big.Int
}

// EscalationResolvedEvent represents "EscalationResolved" event emitted by the contract.
type EscalationResolvedEvent struct {
	ReportID *big.Int
}

// RewardDistributedEvent represents "RewardDistributed" event emitted by the contract.
type RewardDistributedEvent struct {
	ReportID *big.Int
	Submitter util.Uint160
	Amount *big.Int
}

// ReputationUpdatedEvent represents "ReputationUpdated" event emitted by the contract.
type ReputationUpdatedEvent struct {
	Actor util.Uint160
	OldScore *big.Int
	NewScore *big.Int
	Delta *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetReport invokes `getReport` method of contract.
func (c *ContractReader) GetReport(reportID *big.Int) (*CivicReport, error) {
	return itemToCivicReport(unwrap.Item(c.invoker.Call(c.hash, "getReport", reportID)))
}

// GetReputation invokes `getReputation` method of contract.
func (c *ContractReader) GetReputation(actor util.Uint160) (*CivicReputationRecord, error) {
	return itemToCivicReputationRecord(unwrap.Item(c.invoker.Call(c.hash, "getReputation", actor)))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(reportID *big.Int, voter util.Uint160) (*CivicVoteRecord, error) {
	return itemToCivicVoteRecord(unwrap.Item(c.invoker.Call(c.hash, "getVote", reportID, voter)))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(reportID *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", reportID, voter))
}

// ListReports invokes `listReports` method of contract.
func (c *ContractReader) ListReports(submitter util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listReports", submitter))
}

// ListReportsExpanded is similar to ListReports (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListReportsExpanded(submitter util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listReports", _numOfIteratorItems, submitter))
}

// ReportCount invokes `reportCount` method of contract.
func (c *ContractReader) ReportCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reportCount"))
}

// ReputationOf invokes `reputationOf` method of contract.
func (c *ContractReader) ReputationOf(actor util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reputationOf", actor))
}

// RewardAmount invokes `rewardAmount` method of contract.
func (c *ContractReader) RewardAmount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardAmount"))
}

// TotalRewardsDistributed invokes `totalRewardsDistributed` method of contract.
func (c *ContractReader) TotalRewardsDistributed() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalRewardsDistributed"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// DistributeReward creates a transaction invoking `distributeReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DistributeReward(reportID *big.Int, submitter util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "distributeReward", reportID, submitter)
}

// DistributeRewardTransaction creates a transaction invoking `distributeReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DistributeRewardTransaction(reportID *big.Int, submitter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "distributeReward", reportID, submitter)
}

// DistributeRewardUnsigned creates a transaction invoking `distributeReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DistributeRewardUnsigned(reportID *big.Int, submitter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "distributeReward", nil, reportID, submitter)
}

// Escalate creates a transaction invoking `escalate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Escalate(reportID *big.Int, actor util.Uint160, reason *big.Int, description string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "escalate", reportID, actor, reason, description)
}

// EscalateTransaction creates a transaction invoking `escalate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EscalateTransaction(reportID *big.Int, actor util.Uint160, reason *big.Int, description string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "escalate", reportID, actor, reason, description)
}

// EscalateUnsigned creates a transaction invoking `escalate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EscalateUnsigned(reportID *big.Int, actor util.Uint160, reason *big.Int, description string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "escalate", nil, reportID, actor, reason, description)
}

// InitReputation creates a transaction invoking `initReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitReputation(actor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initReputation", actor)
}

// InitReputationTransaction creates a transaction invoking `initReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitReputationTransaction(actor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initReputation", actor)
}

// InitReputationUnsigned creates a transaction invoking `initReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitReputationUnsigned(actor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initReputation", nil, actor)
}

// ResolveEscalation creates a transaction invoking `resolveEscalation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveEscalation(reportID *big.Int, resolutionDetails string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveEscalation", reportID, resolutionDetails)
}

// ResolveEscalationTransaction creates a transaction invoking `resolveEscalation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveEscalationTransaction(reportID *big.Int, resolutionDetails string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveEscalation", reportID, resolutionDetails)
}

// ResolveEscalationUnsigned creates a transaction invoking `resolveEscalation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveEscalationUnsigned(reportID *big.Int, resolutionDetails string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveEscalation", nil, reportID, resolutionDetails)
}

// SetRewardAmount creates a transaction invoking `setRewardAmount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRewardAmount(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRewardAmount", amount)
}

// SetRewardAmountTransaction creates a transaction invoking `setRewardAmount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRewardAmountTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRewardAmount", amount)
}

// SetRewardAmountUnsigned creates a transaction invoking `setRewardAmount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRewardAmountUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRewardAmount", nil, amount)
}

// SubmitReport creates a transaction invoking `submitReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitReport(submitter util.Uint160, description string, location string, mediaHash string, category *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitReport", submitter, description, location, mediaHash, category)
}

// SubmitReportTransaction creates a transaction invoking `submitReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitReportTransaction(submitter util.Uint160, description string, location string, mediaHash string, category *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitReport", submitter, description, location, mediaHash, category)
}

// SubmitReportUnsigned creates a transaction invoking `submitReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitReportUnsigned(submitter util.Uint160, description string, location string, mediaHash string, category *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitReport", nil, submitter, description, location, mediaHash, category)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateReportStatus creates a transaction invoking `updateReportStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateReportStatus(reportID *big.Int, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateReportStatus", reportID, status)
}

// UpdateReportStatusTransaction creates a transaction invoking `updateReportStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateReportStatusTransaction(reportID *big.Int, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateReportStatus", reportID, status)
}

// UpdateReportStatusUnsigned creates a transaction invoking `updateReportStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateReportStatusUnsigned(reportID *big.Int, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateReportStatus", nil, reportID, status)
}

// UpdateReputation creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateReputation(actor util.Uint160, delta *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateReputation", actor, delta)
}

// UpdateReputationTransaction creates a transaction invoking `updateReputation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateReputationTransaction(actor util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateReputation", actor, delta)
}

// UpdateReputationUnsigned creates a transaction invoking `updateReputation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateReputationUnsigned(actor util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateReputation", nil, actor, delta)
}

// Vote creates a transaction invoking `vote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Vote(reportID *big.Int, voter util.Uint160, voteType *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "vote", reportID, voter, voteType)
}

// VoteTransaction creates a transaction invoking `vote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteTransaction(reportID *big.Int, voter util.Uint160, voteType *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "vote", reportID, voter, voteType)
}

// VoteUnsigned creates a transaction invoking `vote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteUnsigned(reportID *big.Int, voter util.Uint160, voteType *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "vote", nil, reportID, voter, voteType)
}

// itemToCivicEscalationDetails converts stack item into *CivicEscalationDetails.
func itemToCivicEscalationDetails(item stackitem.Item, err error) (*CivicEscalationDetails, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CivicEscalationDetails)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CivicEscalationDetails from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CivicEscalationDetails) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Reason, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.EscalatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EscalatedAt: %w", err)
	}

	index++
	res.EscalatedBy, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field EscalatedBy: %w", err)
	}

	index++
	res.Resolved, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Resolved: %w", err)
	}

	index++
	res.ResolutionDetails, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ResolutionDetails: %w", err)
	}

	return nil
}

// itemToCivicReport converts stack item into *CivicReport.
func itemToCivicReport(item stackitem.Item, err error) (*CivicReport, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CivicReport)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CivicReport from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CivicReport) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.Location, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	res.MediaHash, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MediaHash: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	index++
	res.Votes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Votes: %w", err)
	}

	index++
	res.Category, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.Escalation, err = itemToCivicEscalationDetails(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Escalation: %w", err)
	}

	index++
	res.RewardDistributed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field RewardDistributed: %w", err)
	}

	return nil
}

// itemToCivicReputationRecord converts stack item into *CivicReputationRecord.
func itemToCivicReputationRecord(item stackitem.Item, err error) (*CivicReputationRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CivicReputationRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CivicReputationRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CivicReputationRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Actor, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Actor: %w", err)
	}

	index++
	res.Score, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Score: %w", err)
	}

	index++
	res.ReportsSubmitted, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportsSubmitted: %w", err)
	}

	index++
	res.ReportsValidated, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportsValidated: %w", err)
	}

	index++
	res.LastUpdated, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastUpdated: %w", err)
	}

	return nil
}

// itemToCivicVoteRecord converts stack item into *CivicVoteRecord.
func itemToCivicVoteRecord(item stackitem.Item, err error) (*CivicVoteRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CivicVoteRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CivicVoteRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CivicVoteRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	res.VoteType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VoteType: %w", err)
	}

	index++
	res.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// ReportSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportSubmitted" name from the provided [result.ApplicationLog].
func ReportSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportSubmitted" {
				continue
			}
			event := new(ReportSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	e.Category, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.VoteType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VoteType: %w", err)
	}

	return nil
}

// ReportStatusUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportStatusUpdated" name from the provided [result.ApplicationLog].
func ReportStatusUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportStatusUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportStatusUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportStatusUpdated" {
				continue
			}
			event := new(ReportStatusUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportStatusUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportStatusUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportStatusUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.OldStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldStatus: %w", err)
	}

	index++
	e.NewStatus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewStatus: %w", err)
	}

	return nil
}

// ReportEscalatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportEscalated" name from the provided [result.ApplicationLog].
func ReportEscalatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportEscalatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportEscalatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportEscalated" {
				continue
			}
			event := new(ReportEscalatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportEscalatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportEscalatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportEscalatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.EscalatedBy, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field EscalatedBy: %w", err)
	}

	index++
	e.Reason, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// EscalationResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "EscalationResolved" name from the provided [result.ApplicationLog].
func EscalationResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*EscalationResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EscalationResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EscalationResolved" {
				continue
			}
			event := new(EscalationResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EscalationResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EscalationResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *EscalationResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	return nil
}

// RewardDistributedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardDistributed" name from the provided [result.ApplicationLog].
func RewardDistributedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardDistributedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardDistributedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardDistributed" {
				continue
			}
			event := new(RewardDistributedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardDistributedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardDistributedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardDistributedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportID: %w", err)
	}

	index++
	e.Submitter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// ReputationUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReputationUpdated" name from the provided [result.ApplicationLog].
func ReputationUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReputationUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReputationUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReputationUpdated" {
				continue
			}
			event := new(ReputationUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReputationUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReputationUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ReputationUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Actor, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Actor: %w", err)
	}

	index++
	e.OldScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldScore: %w", err)
	}

	index++
	e.NewScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewScore: %w", err)
	}

	index++
	e.Delta, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Delta: %w", err)
	}

	return nil
}
