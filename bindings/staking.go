package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// StakingMetaData contains all meta data concerning the Staking contract.
var StakingMetaData = &bind.MetaData{
	ABI: `[
		{"type":"function","name":"isValidator","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","name":"addValidator","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]},
		{"type":"function","name":"removeValidator","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]},
		{"type":"function","name":"activateValidator","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]},
		{"type":"function","name":"disableValidator","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]}
	]`,
}

// Staking is a Go binding around the deployed validator staking contract.
type Staking struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewStaking creates a new instance of Staking, bound to a specific deployed
// contract.
func NewStaking(address common.Address, backend bind.ContractBackend) (*Staking, error) {
	parsed, err := StakingMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &Staking{
		address:  address,
		abi:      *parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// Address returns the address the binding is bound to.
func (s *Staking) Address() common.Address {
	return s.address
}

// IsValidator reports whether the account is currently registered as a
// validator.
//
// Solidity: function isValidator(address account) view returns(bool)
func (s *Staking) IsValidator(opts *bind.CallOpts, account common.Address) (bool, error) {
	var out []any
	if err := s.contract.Call(opts, &out, "isValidator", account); err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}
