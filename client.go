package govkit

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/chainspray/govkit/bindings"
	"github.com/chainspray/govkit/pkg/logger"
	"github.com/chainspray/govkit/types"
)

// Vote support values understood by the governance contract. There is no
// abstain path.
const (
	VoteAgainst uint8 = 0
	VoteFor     uint8 = 1
)

// votingDecimals scales 18-decimal fixed point voting quantities down to
// floating point units.
var votingDecimals = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// ContractAddresses holds the addresses of the four deployed system contracts
// the client talks to. All four are required.
type ContractAddresses struct {
	Governance       common.Address `validate:"required"`
	Staking          common.Address `validate:"required"`
	DeployerRegistry common.Address `validate:"required"`
	RuntimeUpgrade   common.Address `validate:"required"`
}

// Validate checks that no address is left at its zero value.
func (a ContractAddresses) Validate() error {
	return validator.New().Struct(a)
}

// ProposalFilter restricts the block range GetProposals replays. The zero
// value replays the whole chain.
type ProposalFilter struct {
	// FromBlock is the first block to include.
	FromBlock uint64

	// ToBlock is the last block to include; nil means the latest block.
	ToBlock *uint64
}

// Client bridges proposal builders and the chain: submission, voting,
// execution and the read-side queries. All contract handles are resolved at
// construction, so a Client can never hold an unbound handle.
//
// The Client performs no retries, no confirmation polling and no caching;
// provider errors surface verbatim.
type Client struct {
	auth      *bind.TransactOpts
	addresses ContractAddresses

	governance *bindings.Governance
	staking    *bindings.Staking
	registry   *bindings.DeployerRegistry

	stakingABI  *abi.ABI
	registryABI *abi.ABI
	runtimeABI  *abi.ABI

	lggr logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used by the Client. Defaults to a no-op logger.
func WithLogger(lggr logger.Logger) Option {
	return func(c *Client) {
		c.lggr = lggr
	}
}

// NewClient creates a governance client talking to the given backend. The
// auth transactor signs every mutating transaction.
func NewClient(
	backend bind.ContractBackend,
	auth *bind.TransactOpts,
	addresses ContractAddresses,
	opts ...Option,
) (*Client, error) {
	if err := addresses.Validate(); err != nil {
		return nil, fmt.Errorf("invalid contract addresses: %w", err)
	}

	governance, err := bindings.NewGovernance(addresses.Governance, backend)
	if err != nil {
		return nil, err
	}
	staking, err := bindings.NewStaking(addresses.Staking, backend)
	if err != nil {
		return nil, err
	}
	registry, err := bindings.NewDeployerRegistry(addresses.DeployerRegistry, backend)
	if err != nil {
		return nil, err
	}

	stakingABI, err := bindings.StakingMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	registryABI, err := bindings.DeployerRegistryMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	runtimeABI, err := bindings.RuntimeUpgradeMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	client := &Client{
		auth:        auth,
		addresses:   addresses,
		governance:  governance,
		staking:     staking,
		registry:    registry,
		stakingABI:  stakingABI,
		registryABI: registryABI,
		runtimeABI:  runtimeABI,
		lggr:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// NewProposal returns an empty ProposalBuilder, with optional metadata
// pre-set. No remote interaction happens here.
func (c *Client) NewProposal(opts ...ProposalOption) *ProposalBuilder {
	builder := &ProposalBuilder{
		client:            c,
		pendingDeployers:  make(map[common.Address]bool),
		pendingValidators: make(map[common.Address]bool),
	}
	for _, opt := range opts {
		opt(builder)
	}

	return builder
}

// GetVotingPowers returns the voting supply and voting power for each given
// validator, scaled down from 18-decimal fixed point. Queries run one
// validator at a time; the supply is re-read on every iteration so each pair
// reflects one consistent round trip.
func (c *Client) GetVotingPowers(ctx context.Context, validators []common.Address) (map[common.Address]types.VotingPower, error) {
	callOpts := &bind.CallOpts{Context: ctx}

	powers := make(map[common.Address]types.VotingPower, len(validators))
	for _, account := range validators {
		supply, err := c.governance.GetVotingSupply(callOpts)
		if err != nil {
			return nil, err
		}
		power, err := c.governance.GetVotingPower(callOpts, account)
		if err != nil {
			return nil, err
		}

		powers[account] = types.VotingPower{
			VotingSupply: scaleVotingUnits(supply),
			VotingPower:  scaleVotingUnits(power),
		}
	}

	return powers, nil
}

// GetProposals replays ProposalCreated events in the filtered block range and
// resolves the current status of each proposal with a follow-up state lookup.
// Results come back in the event log's chronological order. Nothing is
// cached; every call re-fetches from the chain.
func (c *Client) GetProposals(ctx context.Context, filter ProposalFilter) ([]types.Proposal, error) {
	if filter.ToBlock != nil && *filter.ToBlock < filter.FromBlock {
		return nil, fmt.Errorf("invalid filter range: toBlock %d precedes fromBlock %d", *filter.ToBlock, filter.FromBlock)
	}

	iter, err := c.governance.FilterProposalCreated(&bind.FilterOpts{
		Start:   filter.FromBlock,
		End:     filter.ToBlock,
		Context: ctx,
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var proposals []types.Proposal
	for iter.Next() {
		ev := iter.Event

		state, err := c.governance.State(&bind.CallOpts{Context: ctx}, ev.ProposalId)
		if err != nil {
			return nil, err
		}
		status, err := types.ProposalStatusFromState(state)
		if err != nil {
			return nil, err
		}

		proposals = append(proposals, proposalFromEvent(ev, status))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	c.lggr.Debugw("Replayed proposal events", "count", len(proposals))

	return proposals, nil
}

// WatchProposals subscribes to future ProposalCreated events, resolving the
// status of each proposal before delivering it to sink. The subscription ends
// when ctx is done or Unsubscribe is called.
func (c *Client) WatchProposals(ctx context.Context, sink chan<- types.Proposal) (event.Subscription, error) {
	events := make(chan *bindings.GovernanceProposalCreated)
	sub, err := c.governance.WatchProposalCreated(&bind.WatchOpts{Context: ctx}, events)
	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case ev := <-events:
				state, err := c.governance.State(&bind.CallOpts{Context: ctx}, ev.ProposalId)
				if err != nil {
					return err
				}
				status, err := types.ProposalStatusFromState(state)
				if err != nil {
					return err
				}

				select {
				case sink <- proposalFromEvent(ev, status):
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

// SendProposal flattens the builder's action list into a single proposal
// transaction. A builder with a custom voting period goes through the
// proposeWithCustomVotingPeriod entry point, all others through propose.
//
// An empty action list is not rejected here; the governance contract decides
// what to do with it.
func (c *Client) SendProposal(ctx context.Context, builder *ProposalBuilder) (types.TransactionResult, error) {
	targets := lo.Map(builder.actions, func(a types.Action, _ int) common.Address { return a.To })
	values := lo.Map(builder.actions, func(a types.Action, _ int) *big.Int { return a.Value })
	inputs := lo.Map(builder.actions, func(a types.Action, _ int) []byte { return a.Data })

	opts := *c.auth
	opts.Context = ctx

	var (
		tx  *ethtypes.Transaction
		err error
	)
	if builder.votingPeriod != nil {
		tx, err = c.governance.ProposeWithCustomVotingPeriod(&opts, targets, values, inputs, builder.description, builder.votingPeriod)
	} else {
		tx, err = c.governance.Propose(&opts, targets, values, inputs, builder.description)
	}
	if err != nil {
		return types.TransactionResult{}, err
	}

	c.lggr.Debugw("Submitted proposal", "actions", len(builder.actions), "tx", tx.Hash().Hex())

	return types.TransactionResult{Hash: tx.Hash().Hex(), RawTransaction: tx}, nil
}

// VoteForProposal casts a vote in favor of the proposal with the given id.
func (c *Client) VoteForProposal(ctx context.Context, proposalID *big.Int) (types.TransactionResult, error) {
	return c.castVote(ctx, proposalID, VoteFor)
}

// VoteAgainstProposal casts a vote against the proposal with the given id.
func (c *Client) VoteAgainstProposal(ctx context.Context, proposalID *big.Int) (types.TransactionResult, error) {
	return c.castVote(ctx, proposalID, VoteAgainst)
}

func (c *Client) castVote(ctx context.Context, proposalID *big.Int, support uint8) (types.TransactionResult, error) {
	opts := *c.auth
	opts.Context = ctx

	tx, err := c.governance.CastVote(&opts, proposalID, support)
	if err != nil {
		return types.TransactionResult{}, err
	}

	c.lggr.Debugw("Cast vote", "proposal", proposalID, "support", support, "tx", tx.Hash().Hex())

	return types.TransactionResult{Hash: tx.Hash().Hex(), RawTransaction: tx}, nil
}

// ExecuteProposal executes a succeeded proposal. The governance contract
// identifies the description by its keccak256 hash, so the hash is sent, not
// the text.
func (c *Client) ExecuteProposal(ctx context.Context, proposal types.Proposal) (types.TransactionResult, error) {
	opts := *c.auth
	opts.Context = ctx

	descriptionHash := crypto.Keccak256Hash([]byte(proposal.Description))

	tx, err := c.governance.Execute(&opts, proposal.Targets, proposal.Values, proposal.Inputs, descriptionHash)
	if err != nil {
		return types.TransactionResult{}, err
	}

	c.lggr.Debugw("Executed proposal", "proposal", proposal.ID, "tx", tx.Hash().Hex())

	return types.TransactionResult{Hash: tx.Hash().Hex(), RawTransaction: tx}, nil
}

func proposalFromEvent(ev *bindings.GovernanceProposalCreated, status types.ProposalStatus) types.Proposal {
	return types.Proposal{
		ID:          ev.ProposalId,
		Status:      status,
		Proposer:    ev.Proposer,
		Targets:     ev.Targets,
		Values:      ev.Values,
		Signatures:  ev.Signatures,
		Inputs:      ev.Calldatas,
		StartBlock:  ev.StartBlock,
		EndBlock:    ev.EndBlock,
		Description: ev.Description,
	}
}

func scaleVotingUnits(raw *big.Int) float64 {
	scaled, _ := new(big.Float).Quo(new(big.Float).SetInt(raw), votingDecimals).Float64()
	return scaled
}
