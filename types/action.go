package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Action is a single on-chain operation proposed for execution by the
// governance contract. Actions are executed in the order they were added to a
// proposal.
type Action struct {
	// To is the address of the contract the governance contract will invoke.
	To common.Address `json:"to"`

	// Data is the ABI-encoded call payload.
	Data []byte `json:"data"`

	// Value is the native currency amount attached to the call. No governance
	// action currently attaches value, so this is always zero.
	Value *big.Int `json:"value"`
}

// NewAction returns an Action with a zero value attached.
func NewAction(to common.Address, data []byte) Action {
	return Action{
		To:    to,
		Data:  data,
		Value: big.NewInt(0),
	}
}
