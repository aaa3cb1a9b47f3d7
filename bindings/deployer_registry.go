package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// DeployerRegistryMetaData contains all meta data concerning the
// DeployerRegistry contract.
var DeployerRegistryMetaData = &bind.MetaData{
	ABI: `[
		{"type":"function","name":"isDeployer","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
		{"type":"function","name":"addDeployer","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]},
		{"type":"function","name":"removeDeployer","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"}],"outputs":[]}
	]`,
}

// DeployerRegistry is a Go binding around the deployed contract that controls
// which accounts may deploy smart contracts on the chain.
type DeployerRegistry struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewDeployerRegistry creates a new instance of DeployerRegistry, bound to a
// specific deployed contract.
func NewDeployerRegistry(address common.Address, backend bind.ContractBackend) (*DeployerRegistry, error) {
	parsed, err := DeployerRegistryMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &DeployerRegistry{
		address:  address,
		abi:      *parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// Address returns the address the binding is bound to.
func (d *DeployerRegistry) Address() common.Address {
	return d.address
}

// IsDeployer reports whether the account is currently registered as a
// deployer.
//
// Solidity: function isDeployer(address account) view returns(bool)
func (d *DeployerRegistry) IsDeployer(opts *bind.CallOpts, account common.Address) (bool, error) {
	var out []any
	if err := d.contract.Call(opts, &out, "isDeployer", account); err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}
