package govkit_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/chainspray/govkit"
	"github.com/chainspray/govkit/bindings"
)

var (
	governanceAddr = common.HexToAddress("0x0000000000000000000000000000000000007001")
	stakingAddr    = common.HexToAddress("0x0000000000000000000000000000000000007002")
	registryAddr   = common.HexToAddress("0x0000000000000000000000000000000000007003")
	runtimeAddr    = common.HexToAddress("0x0000000000000000000000000000000000007004")
)

func testAddresses() govkit.ContractAddresses {
	return govkit.ContractAddresses{
		Governance:       governanceAddr,
		Staking:          stakingAddr,
		DeployerRegistry: registryAddr,
		RuntimeUpgrade:   runtimeAddr,
	}
}

// newTestAuth returns a fully specified transactor so the bound contracts skip
// nonce and gas discovery. The signer passes transactions through unsigned;
// the fake backend records them as-is.
func newTestAuth(t *testing.T) *bind.TransactOpts {
	t.Helper()

	return &bind.TransactOpts{
		From:     common.HexToAddress("0x0000000000000000000000000000000000009001"),
		Nonce:    big.NewInt(1),
		GasPrice: big.NewInt(1_000_000_000),
		GasLimit: 1_000_000,
		Signer: func(_ common.Address, tx *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			return tx, nil
		},
	}
}

func newTestClient(t *testing.T, backend *fakeBackend) *govkit.Client {
	t.Helper()

	client, err := govkit.NewClient(backend, newTestAuth(t), testAddresses())
	require.NoError(t, err)

	return client
}

func governanceABI(t *testing.T) *abi.ABI {
	t.Helper()

	parsed, err := bindings.GovernanceMetaData.GetAbi()
	require.NoError(t, err)

	return parsed
}

func stakingABI(t *testing.T) *abi.ABI {
	t.Helper()

	parsed, err := bindings.StakingMetaData.GetAbi()
	require.NoError(t, err)

	return parsed
}

func registryABI(t *testing.T) *abi.ABI {
	t.Helper()

	parsed, err := bindings.DeployerRegistryMetaData.GetAbi()
	require.NoError(t, err)

	return parsed
}

// packCall packs calldata for a method, for use as a canned return key.
func packCall(t *testing.T, contractABI *abi.ABI, method string, args ...any) []byte {
	t.Helper()

	data, err := contractABI.Pack(method, args...)
	require.NoError(t, err)

	return data
}

// packOutput ABI-encodes the return values of a method.
func packOutput(t *testing.T, contractABI *abi.ABI, method string, values ...any) []byte {
	t.Helper()

	out, err := contractABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)

	return out
}

// cannedBool registers an encoded boolean return for a read-only call.
func cannedBool(t *testing.T, backend *fakeBackend, contractABI *abi.ABI, method string, account common.Address, value bool) {
	t.Helper()

	backend.cannedReturn(
		packCall(t, contractABI, method, account),
		packOutput(t, contractABI, method, value),
	)
}

// decodeSentTx unpacks the method and arguments of a recorded transaction.
func decodeSentTx(t *testing.T, contractABI *abi.ABI, tx *ethtypes.Transaction) (string, []any) {
	t.Helper()

	data := tx.Data()
	require.GreaterOrEqual(t, len(data), 4)

	method, err := contractABI.MethodById(data[:4])
	require.NoError(t, err)

	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)

	return method.Name, args
}

// proposalCreatedLog builds a raw ProposalCreated log the way the governance
// contract would emit it.
func proposalCreatedLog(t *testing.T, blockNumber uint64, ev bindings.GovernanceProposalCreated) ethtypes.Log {
	t.Helper()

	gov := governanceABI(t)
	data, err := gov.Events["ProposalCreated"].Inputs.Pack(
		ev.ProposalId,
		ev.Proposer,
		ev.Targets,
		ev.Values,
		ev.Signatures,
		ev.Calldatas,
		ev.StartBlock,
		ev.EndBlock,
		ev.Description,
	)
	require.NoError(t, err)

	return ethtypes.Log{
		Address:     governanceAddr,
		Topics:      []common.Hash{gov.Events["ProposalCreated"].ID},
		Data:        data,
		BlockNumber: blockNumber,
	}
}
