package govkit

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainspray/govkit/types"
)

// ProposalBuilder accumulates an ordered list of governance actions plus
// proposal metadata. It performs no submission of its own; hand it to
// Client.SendProposal to flatten the action list into a single transaction.
//
// Every add method checks its precondition against current chain state before
// appending. The check and the append are two separate steps, so a builder
// instance must only be used from a single goroutine. The checks are advisory:
// chain state can still change between validation and eventual proposal
// execution, and the contracts enforce the real rules.
type ProposalBuilder struct {
	client *Client

	actions      []types.Action
	description  string
	votingPeriod *big.Int

	// pendingDeployers and pendingValidators overlay the remote registry
	// state with the membership changes already queued in this builder, so
	// contradictory or duplicate actions fail fast without waiting for the
	// chain to reject the proposal.
	pendingDeployers  map[common.Address]bool
	pendingValidators map[common.Address]bool
}

// ProposalOption pre-sets builder metadata at creation time.
type ProposalOption func(*ProposalBuilder)

// WithDescription pre-sets the proposal description.
func WithDescription(description string) ProposalOption {
	return func(b *ProposalBuilder) {
		b.description = description
	}
}

// WithVotingPeriod pre-sets a custom voting period, overriding the governance
// contract's default voting duration.
func WithVotingPeriod(period *big.Int) ProposalOption {
	return func(b *ProposalBuilder) {
		b.votingPeriod = period
	}
}

// SetDescription sets the free-text description of the proposal.
func (b *ProposalBuilder) SetDescription(description string) *ProposalBuilder {
	b.description = description
	return b
}

// SetVotingPeriod sets a custom voting period, overriding the governance
// contract's default voting duration.
func (b *ProposalBuilder) SetVotingPeriod(period *big.Int) *ProposalBuilder {
	b.votingPeriod = period
	return b
}

// Actions returns a copy of the accumulated actions in execution order.
func (b *ProposalBuilder) Actions() []types.Action {
	return slices.Clone(b.actions)
}

// Description returns the proposal description.
func (b *ProposalBuilder) Description() string {
	return b.description
}

// VotingPeriod returns the custom voting period, or nil when the contract
// default applies.
func (b *ProposalBuilder) VotingPeriod() *big.Int {
	return b.votingPeriod
}

// AddDeployer appends an action registering account as a deployer. Fails with
// AlreadyDeployerError when the account is already registered, on chain or
// earlier in this builder.
func (b *ProposalBuilder) AddDeployer(ctx context.Context, account common.Address) (*ProposalBuilder, error) {
	registered, err := b.isDeployer(ctx, account)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, NewAlreadyDeployerError(account)
	}

	if _, err := b.appendRegistryAction("addDeployer", account); err != nil {
		return nil, err
	}
	b.pendingDeployers[account] = true

	return b, nil
}

// RemoveDeployer appends an action removing account from the deployer
// registry. Fails with NotDeployerError when the account is not registered.
func (b *ProposalBuilder) RemoveDeployer(ctx context.Context, account common.Address) (*ProposalBuilder, error) {
	registered, err := b.isDeployer(ctx, account)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, NewNotDeployerError(account)
	}

	if _, err := b.appendRegistryAction("removeDeployer", account); err != nil {
		return nil, err
	}
	b.pendingDeployers[account] = false

	return b, nil
}

// AddValidator appends an action registering account as a validator. Fails
// with AlreadyValidatorError when the account is already a validator.
func (b *ProposalBuilder) AddValidator(ctx context.Context, account common.Address) (*ProposalBuilder, error) {
	active, err := b.isValidator(ctx, account)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, NewAlreadyValidatorError(account)
	}

	if _, err := b.appendStakingAction("addValidator", account); err != nil {
		return nil, err
	}
	b.pendingValidators[account] = true

	return b, nil
}

// RemoveValidator appends an action removing account from the validator set.
// Fails with NotValidatorError when the account is not a validator.
func (b *ProposalBuilder) RemoveValidator(ctx context.Context, account common.Address) (*ProposalBuilder, error) {
	if _, err := b.appendValidatorAction(ctx, "removeValidator", account); err != nil {
		return nil, err
	}
	b.pendingValidators[account] = false

	return b, nil
}

// ActivateValidator appends an action activating a previously disabled
// validator. Fails with NotValidatorError when the account is not a validator.
func (b *ProposalBuilder) ActivateValidator(ctx context.Context, account common.Address) (*ProposalBuilder, error) {
	return b.appendValidatorAction(ctx, "activateValidator", account)
}

// DisableValidator appends an action disabling a validator. Fails with
// NotValidatorError when the account is not a validator.
func (b *ProposalBuilder) DisableValidator(ctx context.Context, account common.Address) (*ProposalBuilder, error) {
	return b.appendValidatorAction(ctx, "disableValidator", account)
}

// UpgradeRuntime appends an action replacing the byte code of a system
// contract. No precondition is checked, so nothing is read from the chain; the
// runtime upgrade contract performs its own verification at execution time.
func (b *ProposalBuilder) UpgradeRuntime(_ context.Context, systemContract common.Address, byteCode []byte) (*ProposalBuilder, error) {
	data, err := b.client.runtimeABI.Pack("upgradeSystemSmartContract", systemContract, byteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to pack upgradeSystemSmartContract calldata: %w", err)
	}
	b.actions = append(b.actions, types.NewAction(b.client.addresses.RuntimeUpgrade, data))

	return b, nil
}

// appendValidatorAction covers the validator mutators that all share the same
// precondition polarity: the account must currently be a validator.
func (b *ProposalBuilder) appendValidatorAction(ctx context.Context, method string, account common.Address) (*ProposalBuilder, error) {
	active, err := b.isValidator(ctx, account)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, NewNotValidatorError(account)
	}

	return b.appendStakingAction(method, account)
}

// isDeployer resolves the effective deployer state of an account: membership
// changes queued in this builder shadow the remote registry.
func (b *ProposalBuilder) isDeployer(ctx context.Context, account common.Address) (bool, error) {
	if pending, ok := b.pendingDeployers[account]; ok {
		return pending, nil
	}

	return b.client.registry.IsDeployer(&bind.CallOpts{Context: ctx}, account)
}

// isValidator resolves the effective validator state of an account, with the
// same shadowing rule as isDeployer.
func (b *ProposalBuilder) isValidator(ctx context.Context, account common.Address) (bool, error) {
	if pending, ok := b.pendingValidators[account]; ok {
		return pending, nil
	}

	return b.client.staking.IsValidator(&bind.CallOpts{Context: ctx}, account)
}

func (b *ProposalBuilder) appendStakingAction(method string, account common.Address) (*ProposalBuilder, error) {
	data, err := b.client.stakingABI.Pack(method, account)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s calldata: %w", method, err)
	}
	b.actions = append(b.actions, types.NewAction(b.client.addresses.Staking, data))

	return b, nil
}

func (b *ProposalBuilder) appendRegistryAction(method string, account common.Address) (*ProposalBuilder, error) {
	data, err := b.client.registryABI.Pack(method, account)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s calldata: %w", method, err)
	}
	b.actions = append(b.actions, types.NewAction(b.client.addresses.DeployerRegistry, data))

	return b, nil
}
