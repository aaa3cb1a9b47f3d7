// Package bindings contains hand-maintained Go bindings for the governance
// system contracts. Only the calls the SDK itself performs are wrapped as
// methods; mutators that are executed by the governance contract on behalf of
// a passed proposal (addValidator, addDeployer, ...) are present in the ABIs
// so their calldata can be packed, but get no transact wrappers.
package bindings

import (
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// GovernanceMetaData contains all meta data concerning the Governance contract.
var GovernanceMetaData = &bind.MetaData{
	ABI: `[
		{"type":"function","name":"propose","stateMutability":"nonpayable","inputs":[{"name":"targets","type":"address[]"},{"name":"values","type":"uint256[]"},{"name":"calldatas","type":"bytes[]"},{"name":"description","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"proposeWithCustomVotingPeriod","stateMutability":"nonpayable","inputs":[{"name":"targets","type":"address[]"},{"name":"values","type":"uint256[]"},{"name":"calldatas","type":"bytes[]"},{"name":"description","type":"string"},{"name":"customVotingPeriod","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"castVote","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"execute","stateMutability":"payable","inputs":[{"name":"targets","type":"address[]"},{"name":"values","type":"uint256[]"},{"name":"calldatas","type":"bytes[]"},{"name":"descriptionHash","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"state","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[{"name":"","type":"uint8"}]},
		{"type":"function","name":"getVotingSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"function","name":"getVotingPower","stateMutability":"view","inputs":[{"name":"validator","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"event","name":"ProposalCreated","anonymous":false,"inputs":[{"name":"proposalId","type":"uint256","indexed":false},{"name":"proposer","type":"address","indexed":false},{"name":"targets","type":"address[]","indexed":false},{"name":"values","type":"uint256[]","indexed":false},{"name":"signatures","type":"string[]","indexed":false},{"name":"calldatas","type":"bytes[]","indexed":false},{"name":"startBlock","type":"uint256","indexed":false},{"name":"endBlock","type":"uint256","indexed":false},{"name":"description","type":"string","indexed":false}]}
	]`,
}

// Governance is a Go binding around the deployed governance contract.
type Governance struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

// NewGovernance creates a new instance of Governance, bound to a specific
// deployed contract.
func NewGovernance(address common.Address, backend bind.ContractBackend) (*Governance, error) {
	parsed, err := GovernanceMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &Governance{
		address:  address,
		abi:      *parsed,
		contract: bind.NewBoundContract(address, *parsed, backend, backend, backend),
	}, nil
}

// Address returns the address the binding is bound to.
func (g *Governance) Address() common.Address {
	return g.address
}

// State is a free data retrieval call binding the contract method state.
//
// Solidity: function state(uint256 proposalId) view returns(uint8)
func (g *Governance) State(opts *bind.CallOpts, proposalID *big.Int) (uint8, error) {
	var out []any
	if err := g.contract.Call(opts, &out, "state", proposalID); err != nil {
		return 0, err
	}

	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// GetVotingSupply returns the total voting supply, as an 18-decimal fixed
// point integer.
//
// Solidity: function getVotingSupply() view returns(uint256)
func (g *Governance) GetVotingSupply(opts *bind.CallOpts) (*big.Int, error) {
	var out []any
	if err := g.contract.Call(opts, &out, "getVotingSupply"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// GetVotingPower returns the voting power of a validator, as an 18-decimal
// fixed point integer.
//
// Solidity: function getVotingPower(address validator) view returns(uint256)
func (g *Governance) GetVotingPower(opts *bind.CallOpts, validator common.Address) (*big.Int, error) {
	var out []any
	if err := g.contract.Call(opts, &out, "getVotingPower", validator); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Propose submits a proposal with the contract's default voting period.
//
// Solidity: function propose(address[] targets, uint256[] values, bytes[] calldatas, string description) returns(uint256)
func (g *Governance) Propose(
	opts *bind.TransactOpts,
	targets []common.Address,
	values []*big.Int,
	calldatas [][]byte,
	description string,
) (*types.Transaction, error) {
	return g.contract.Transact(opts, "propose", targets, values, calldatas, description)
}

// ProposeWithCustomVotingPeriod submits a proposal with a caller-chosen voting
// period.
//
// Solidity: function proposeWithCustomVotingPeriod(address[] targets, uint256[] values, bytes[] calldatas, string description, uint256 customVotingPeriod) returns(uint256)
func (g *Governance) ProposeWithCustomVotingPeriod(
	opts *bind.TransactOpts,
	targets []common.Address,
	values []*big.Int,
	calldatas [][]byte,
	description string,
	customVotingPeriod *big.Int,
) (*types.Transaction, error) {
	return g.contract.Transact(opts, "proposeWithCustomVotingPeriod",
		targets, values, calldatas, description, customVotingPeriod)
}

// CastVote casts a vote on a proposal.
//
// Solidity: function castVote(uint256 proposalId, uint8 support) returns(uint256)
func (g *Governance) CastVote(opts *bind.TransactOpts, proposalID *big.Int, support uint8) (*types.Transaction, error) {
	return g.contract.Transact(opts, "castVote", proposalID, support)
}

// Execute executes a succeeded proposal. The description is identified by its
// keccak256 hash, never by its raw text.
//
// Solidity: function execute(address[] targets, uint256[] values, bytes[] calldatas, bytes32 descriptionHash) payable returns(uint256)
func (g *Governance) Execute(
	opts *bind.TransactOpts,
	targets []common.Address,
	values []*big.Int,
	calldatas [][]byte,
	descriptionHash [32]byte,
) (*types.Transaction, error) {
	return g.contract.Transact(opts, "execute", targets, values, calldatas, descriptionHash)
}

// GovernanceProposalCreated represents a ProposalCreated event raised by the
// Governance contract.
type GovernanceProposalCreated struct {
	ProposalId  *big.Int
	Proposer    common.Address
	Targets     []common.Address
	Values      []*big.Int
	Signatures  []string
	Calldatas   [][]byte
	StartBlock  *big.Int
	EndBlock    *big.Int
	Description string
	Raw         types.Log
}

// GovernanceProposalCreatedIterator is returned from FilterProposalCreated and
// is used to iterate over the raw logs and unpacked data for ProposalCreated
// events raised by the Governance contract.
type GovernanceProposalCreatedIterator struct {
	Event *GovernanceProposalCreated

	contract *bind.BoundContract
	event    string

	logs chan types.Log
	sub  ethereum.Subscription
	done bool
	fail error
}

// Next advances the iterator to the subsequent event, returning whether there
// are any more events found.
func (it *GovernanceProposalCreatedIterator) Next() bool {
	if it.fail != nil {
		return false
	}
	if it.done {
		select {
		case log := <-it.logs:
			it.Event = new(GovernanceProposalCreated)
			if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
				it.fail = err
				return false
			}
			it.Event.Raw = log

			return true
		default:
			return false
		}
	}
	select {
	case log := <-it.logs:
		it.Event = new(GovernanceProposalCreated)
		if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
			it.fail = err
			return false
		}
		it.Event.Raw = log

		return true
	case err := <-it.sub.Err():
		it.done = true
		it.fail = err

		return it.Next()
	}
}

// Error returns any retrieval or parsing error occurred during filtering.
func (it *GovernanceProposalCreatedIterator) Error() error {
	return it.fail
}

// Close terminates the iteration process, releasing any pending underlying
// resources.
func (it *GovernanceProposalCreatedIterator) Close() error {
	it.sub.Unsubscribe()
	return nil
}

// FilterProposalCreated retrieves ProposalCreated logs from the chain.
//
// Solidity: event ProposalCreated(uint256 proposalId, address proposer, address[] targets, uint256[] values, string[] signatures, bytes[] calldatas, uint256 startBlock, uint256 endBlock, string description)
func (g *Governance) FilterProposalCreated(opts *bind.FilterOpts) (*GovernanceProposalCreatedIterator, error) {
	logs, sub, err := g.contract.FilterLogs(opts, "ProposalCreated")
	if err != nil {
		return nil, err
	}

	return &GovernanceProposalCreatedIterator{
		contract: g.contract,
		event:    "ProposalCreated",
		logs:     logs,
		sub:      sub,
	}, nil
}

// WatchProposalCreated subscribes to future ProposalCreated events.
func (g *Governance) WatchProposalCreated(opts *bind.WatchOpts, sink chan<- *GovernanceProposalCreated) (event.Subscription, error) {
	logs, sub, err := g.contract.WatchLogs(opts, "ProposalCreated")
	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				ev := new(GovernanceProposalCreated)
				if err := g.contract.UnpackLog(ev, "ProposalCreated", log); err != nil {
					return err
				}
				ev.Raw = log

				select {
				case sink <- ev:
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

// ParseProposalCreated unpacks a raw retrieved log into a ProposalCreated
// event.
func (g *Governance) ParseProposalCreated(log types.Log) (*GovernanceProposalCreated, error) {
	ev := new(GovernanceProposalCreated)
	if err := g.contract.UnpackLog(ev, "ProposalCreated", log); err != nil {
		return nil, err
	}
	ev.Raw = log

	return ev, nil
}
