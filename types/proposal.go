package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalStatus is the lifecycle state of a governance proposal as reported
// by the governance contract.
type ProposalStatus string

const (
	StatusPending   ProposalStatus = "Pending"
	StatusActive    ProposalStatus = "Active"
	StatusCanceled  ProposalStatus = "Canceled"
	StatusDefeated  ProposalStatus = "Defeated"
	StatusSucceeded ProposalStatus = "Succeeded"
	StatusQueued    ProposalStatus = "Queued"
	StatusExpired   ProposalStatus = "Expired"
	StatusExecuted  ProposalStatus = "Executed"
)

// proposalStatuses is indexed by the governance contract's own state enum. The
// ordinals must match the deployed contract exactly.
var proposalStatuses = []ProposalStatus{
	StatusPending,
	StatusActive,
	StatusCanceled,
	StatusDefeated,
	StatusSucceeded,
	StatusQueued,
	StatusExpired,
	StatusExecuted,
}

// ProposalStatusFromState converts the uint8 state code returned by the
// governance contract's state() call into a ProposalStatus.
func ProposalStatusFromState(state uint8) (ProposalStatus, error) {
	if int(state) >= len(proposalStatuses) {
		return "", fmt.Errorf("unknown proposal state code: %d", state)
	}

	return proposalStatuses[state], nil
}

// Proposal is the read model of an on-chain proposal, reconstructed from a
// ProposalCreated event and a follow-up status lookup. It is never constructed
// locally and never cached.
type Proposal struct {
	ID       *big.Int       `json:"id"`
	Status   ProposalStatus `json:"status"`
	Proposer common.Address `json:"proposer"`

	// Targets, Values, Signatures and Inputs are parallel sequences describing
	// each constituent action, taken verbatim from the event.
	Targets    []common.Address `json:"targets"`
	Values     []*big.Int       `json:"values"`
	Signatures []string         `json:"signatures"`
	Inputs     [][]byte         `json:"inputs"`

	StartBlock  *big.Int `json:"startBlock"`
	EndBlock    *big.Int `json:"endBlock"`
	Description string   `json:"description"`
}
