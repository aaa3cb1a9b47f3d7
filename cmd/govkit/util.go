package govkit

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chainspray/govkit"
	"github.com/chainspray/govkit/pkg/logger"
)

// Configuration keys, resolved from GOVKIT_* environment variables or a local
// .env file.
const (
	cfgRPCURL         = "rpc_url"
	cfgChainID        = "chain_id"
	cfgGovernanceAddr = "governance_address"
	cfgStakingAddr    = "staking_address"
	cfgRegistryAddr   = "deployer_registry_address"
	cfgRuntimeAddr    = "runtime_upgrade_address"
	cfgLogLevel       = "log_level"
)

func newViper() (*viper.Viper, error) {
	// Populate the process environment from .env first, the way the rest of
	// the chain tooling does. A missing file is fine.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("GOVKIT")
	v.AutomaticEnv()

	return v, nil
}

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	pk := os.Getenv("PRIVATE_KEY")
	if pk == "" {
		return nil, errors.New("PRIVATE_KEY not found in environment or .env file")
	}

	return crypto.HexToECDSA(pk)
}

func loadAddresses(v *viper.Viper) (govkit.ContractAddresses, error) {
	addresses := govkit.ContractAddresses{
		Governance:       common.HexToAddress(v.GetString(cfgGovernanceAddr)),
		Staking:          common.HexToAddress(v.GetString(cfgStakingAddr)),
		DeployerRegistry: common.HexToAddress(v.GetString(cfgRegistryAddr)),
		RuntimeUpgrade:   common.HexToAddress(v.GetString(cfgRuntimeAddr)),
	}

	return addresses, addresses.Validate()
}

func newCLILogger(v *viper.Viper) (logger.Logger, error) {
	level := zapcore.InfoLevel
	if raw := v.GetString(cfgLogLevel); raw != "" {
		var err error
		level, err = zapcore.ParseLevel(raw)
		if err != nil {
			return nil, err
		}
	}

	return logger.NewWith(func(cfg *zap.Config) {
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(level)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	})
}

// newGovernanceClient dials the configured RPC endpoint and builds a fully
// wired governance client.
func newGovernanceClient(ctx context.Context) (*govkit.Client, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	rpcURL := v.GetString(cfgRPCURL)
	if rpcURL == "" {
		return nil, errors.New("GOVKIT_RPC_URL not set")
	}
	ethClient, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, err
	}

	pk, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	chainID := cast.ToInt64(v.Get(cfgChainID))
	if chainID == 0 {
		id, err := ethClient.ChainID(ctx)
		if err != nil {
			return nil, err
		}
		chainID = id.Int64()
	}
	auth, err := bind.NewKeyedTransactorWithChainID(pk, big.NewInt(chainID))
	if err != nil {
		return nil, err
	}

	addresses, err := loadAddresses(v)
	if err != nil {
		return nil, err
	}

	lggr, err := newCLILogger(v)
	if err != nil {
		return nil, err
	}

	return govkit.NewClient(ethClient, auth, addresses, govkit.WithLogger(lggr))
}

func parseProposalID(raw string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, errors.New("invalid proposal id: " + raw)
	}

	return id, nil
}
