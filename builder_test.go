package govkit_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainspray/govkit"
)

var (
	deployerAcc  = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	validatorAcc = common.HexToAddress("0x00000000000000000000000000000000000000B1")
)

func TestProposalBuilder_Setters(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newFakeBackend())

	builder := client.NewProposal().
		SetDescription("rotate validator set").
		SetVotingPeriod(big.NewInt(100))

	assert.Equal(t, "rotate validator set", builder.Description())
	assert.Equal(t, big.NewInt(100), builder.VotingPeriod())
	assert.Empty(t, builder.Actions())
}

func TestProposalBuilder_NewProposalOptions(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newFakeBackend())

	builder := client.NewProposal(
		govkit.WithDescription("preset"),
		govkit.WithVotingPeriod(big.NewInt(42)),
	)

	assert.Equal(t, "preset", builder.Description())
	assert.Equal(t, big.NewInt(42), builder.VotingPeriod())
}

func TestProposalBuilder_DeployerActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		registered bool
		add        bool
		wantMethod string
		wantErr    error
	}{
		{
			name:       "add unregistered account",
			registered: false,
			add:        true,
			wantMethod: "addDeployer",
		},
		{
			name:       "add registered account",
			registered: true,
			add:        true,
			wantErr:    govkit.NewAlreadyDeployerError(deployerAcc),
		},
		{
			name:       "remove registered account",
			registered: true,
			add:        false,
			wantMethod: "removeDeployer",
		},
		{
			name:       "remove unregistered account",
			registered: false,
			add:        false,
			wantErr:    govkit.NewNotDeployerError(deployerAcc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend()
			cannedBool(t, backend, registryABI(t), "isDeployer", deployerAcc, tt.registered)
			client := newTestClient(t, backend)
			builder := client.NewProposal()

			var err error
			if tt.add {
				_, err = builder.AddDeployer(t.Context(), deployerAcc)
			} else {
				_, err = builder.RemoveDeployer(t.Context(), deployerAcc)
			}

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, builder.Actions())

				return
			}
			require.NoError(t, err)

			actions := builder.Actions()
			require.Len(t, actions, 1)
			assert.Equal(t, registryAddr, actions[0].To)
			assert.Zero(t, actions[0].Value.Sign())

			wantData := packCall(t, registryABI(t), tt.wantMethod, deployerAcc)
			assert.Equal(t, wantData, actions[0].Data)
		})
	}
}

func TestProposalBuilder_ValidatorActions(t *testing.T) {
	t.Parallel()

	type addFn func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error)

	tests := []struct {
		name       string
		active     bool
		call       addFn
		wantMethod string
		wantErr    error
	}{
		{
			name:   "add new validator",
			active: false,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.AddValidator(t.Context(), validatorAcc)
			},
			wantMethod: "addValidator",
		},
		{
			name:   "add existing validator",
			active: true,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.AddValidator(t.Context(), validatorAcc)
			},
			wantErr: govkit.NewAlreadyValidatorError(validatorAcc),
		},
		{
			name:   "remove existing validator",
			active: true,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.RemoveValidator(t.Context(), validatorAcc)
			},
			wantMethod: "removeValidator",
		},
		{
			name:   "remove unknown validator",
			active: false,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.RemoveValidator(t.Context(), validatorAcc)
			},
			wantErr: govkit.NewNotValidatorError(validatorAcc),
		},
		{
			name:   "activate existing validator",
			active: true,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.ActivateValidator(t.Context(), validatorAcc)
			},
			wantMethod: "activateValidator",
		},
		{
			name:   "activate unknown validator",
			active: false,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.ActivateValidator(t.Context(), validatorAcc)
			},
			wantErr: govkit.NewNotValidatorError(validatorAcc),
		},
		{
			name:   "disable existing validator",
			active: true,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.DisableValidator(t.Context(), validatorAcc)
			},
			wantMethod: "disableValidator",
		},
		{
			name:   "disable unknown validator",
			active: false,
			call: func(b *govkit.ProposalBuilder) (*govkit.ProposalBuilder, error) {
				return b.DisableValidator(t.Context(), validatorAcc)
			},
			wantErr: govkit.NewNotValidatorError(validatorAcc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend()
			cannedBool(t, backend, stakingABI(t), "isValidator", validatorAcc, tt.active)
			client := newTestClient(t, backend)
			builder := client.NewProposal()

			_, err := tt.call(builder)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, builder.Actions())

				return
			}
			require.NoError(t, err)

			actions := builder.Actions()
			require.Len(t, actions, 1)
			assert.Equal(t, stakingAddr, actions[0].To)
			assert.Zero(t, actions[0].Value.Sign())

			wantData := packCall(t, stakingABI(t), tt.wantMethod, validatorAcc)
			assert.Equal(t, wantData, actions[0].Data)
		})
	}
}

func TestProposalBuilder_DuplicateActionFails(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	cannedBool(t, backend, registryABI(t), "isDeployer", deployerAcc, false)
	client := newTestClient(t, backend)
	builder := client.NewProposal()

	_, err := builder.AddDeployer(t.Context(), deployerAcc)
	require.NoError(t, err)
	require.Len(t, builder.Actions(), 1)

	// The chain still reports the account as unregistered, but the builder
	// already queued an addDeployer for it.
	_, err = builder.AddDeployer(t.Context(), deployerAcc)
	var alreadyErr *govkit.AlreadyDeployerError
	require.ErrorAs(t, err, &alreadyErr)
	assert.Equal(t, deployerAcc, alreadyErr.Account)
	assert.Len(t, builder.Actions(), 1)

	// A queued removal flips the effective state back.
	_, err = builder.RemoveDeployer(t.Context(), deployerAcc)
	require.NoError(t, err)
	_, err = builder.AddDeployer(t.Context(), deployerAcc)
	require.NoError(t, err)
	assert.Len(t, builder.Actions(), 3)
}

func TestProposalBuilder_UpgradeRuntime(t *testing.T) {
	t.Parallel()

	systemContract := common.HexToAddress("0x0000000000000000000000000000000000001000")
	byteCode := []byte{0x60, 0x80, 0x60, 0x40}

	// No canned calls: UpgradeRuntime must not touch the chain at all.
	client := newTestClient(t, newFakeBackend())
	builder := client.NewProposal()

	_, err := builder.UpgradeRuntime(t.Context(), systemContract, byteCode)
	require.NoError(t, err)
	_, err = builder.UpgradeRuntime(t.Context(), systemContract, byteCode)
	require.NoError(t, err)

	actions := builder.Actions()
	require.Len(t, actions, 2)
	for _, action := range actions {
		assert.Equal(t, runtimeAddr, action.To)
		assert.Zero(t, action.Value.Sign())
	}
}

func TestProposalBuilder_Chaining(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	cannedBool(t, backend, registryABI(t), "isDeployer", deployerAcc, false)
	cannedBool(t, backend, stakingABI(t), "isValidator", validatorAcc, false)
	client := newTestClient(t, backend)

	builder, err := client.NewProposal().
		SetDescription("onboard deployer and validator").
		AddDeployer(t.Context(), deployerAcc)
	require.NoError(t, err)
	builder, err = builder.AddValidator(t.Context(), validatorAcc)
	require.NoError(t, err)
	builder, err = builder.UpgradeRuntime(t.Context(), stakingAddr, []byte{0x01})
	require.NoError(t, err)

	actions := builder.Actions()
	require.Len(t, actions, 3)

	wantTargets := []common.Address{registryAddr, stakingAddr, runtimeAddr}
	gotTargets := []common.Address{actions[0].To, actions[1].To, actions[2].To}
	if diff := cmp.Diff(wantTargets, gotTargets); diff != "" {
		t.Errorf("unexpected action targets (-want +got):\n%s", diff)
	}

	// Each action's calldata decodes back to the original method and account.
	method, err := registryABI(t).MethodById(actions[0].Data[:4])
	require.NoError(t, err)
	assert.Equal(t, "addDeployer", method.Name)
	args, err := method.Inputs.Unpack(actions[0].Data[4:])
	require.NoError(t, err)
	assert.Equal(t, deployerAcc, args[0])

	method, err = stakingABI(t).MethodById(actions[1].Data[:4])
	require.NoError(t, err)
	assert.Equal(t, "addValidator", method.Name)
	args, err = method.Inputs.Unpack(actions[1].Data[4:])
	require.NoError(t, err)
	assert.Equal(t, validatorAcc, args[0])
}

func TestProposalBuilder_PreconditionReadError(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.callErr = errors.New("connection refused")
	client := newTestClient(t, backend)
	builder := client.NewProposal()

	_, err := builder.AddDeployer(t.Context(), deployerAcc)
	require.ErrorContains(t, err, "connection refused")
	assert.Empty(t, builder.Actions())

	_, err = builder.AddValidator(t.Context(), validatorAcc)
	require.ErrorContains(t, err, "connection refused")
	assert.Empty(t, builder.Actions())
}
