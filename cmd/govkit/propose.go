package govkit

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newProposeCmd() *cobra.Command {
	var (
		description        string
		votingPeriod       int64
		addDeployers       []string
		removeDeployers    []string
		addValidators      []string
		removeValidators   []string
		activateValidators []string
		disableValidators  []string
		upgradeContract    string
		upgradeBytecode    string
	)

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Compose and submit a multi-action governance proposal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := newGovernanceClient(ctx)
			if err != nil {
				return err
			}

			builder := client.NewProposal().SetDescription(description)
			if votingPeriod > 0 {
				builder.SetVotingPeriod(big.NewInt(votingPeriod))
			}

			for _, raw := range addDeployers {
				if _, err := builder.AddDeployer(ctx, common.HexToAddress(raw)); err != nil {
					return err
				}
			}
			for _, raw := range removeDeployers {
				if _, err := builder.RemoveDeployer(ctx, common.HexToAddress(raw)); err != nil {
					return err
				}
			}
			for _, raw := range addValidators {
				if _, err := builder.AddValidator(ctx, common.HexToAddress(raw)); err != nil {
					return err
				}
			}
			for _, raw := range removeValidators {
				if _, err := builder.RemoveValidator(ctx, common.HexToAddress(raw)); err != nil {
					return err
				}
			}
			for _, raw := range activateValidators {
				if _, err := builder.ActivateValidator(ctx, common.HexToAddress(raw)); err != nil {
					return err
				}
			}
			for _, raw := range disableValidators {
				if _, err := builder.DisableValidator(ctx, common.HexToAddress(raw)); err != nil {
					return err
				}
			}
			if upgradeContract != "" {
				byteCode, err := readByteCode(upgradeBytecode)
				if err != nil {
					return err
				}
				if _, err := builder.UpgradeRuntime(ctx, common.HexToAddress(upgradeContract), byteCode); err != nil {
					return err
				}
			}

			result, err := client.SendProposal(ctx, builder)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Proposal submitted with %d action(s): %s\n",
				len(builder.Actions()), color.GreenString(result.Hash))

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free text description of the proposal")
	cmd.Flags().Int64Var(&votingPeriod, "voting-period", 0, "Custom voting period in blocks (0 uses the contract default)")
	cmd.Flags().StringSliceVar(&addDeployers, "add-deployer", nil, "Account to register as deployer (repeatable)")
	cmd.Flags().StringSliceVar(&removeDeployers, "remove-deployer", nil, "Account to remove from the deployer registry (repeatable)")
	cmd.Flags().StringSliceVar(&addValidators, "add-validator", nil, "Account to register as validator (repeatable)")
	cmd.Flags().StringSliceVar(&removeValidators, "remove-validator", nil, "Account to remove from the validator set (repeatable)")
	cmd.Flags().StringSliceVar(&activateValidators, "activate-validator", nil, "Validator to activate (repeatable)")
	cmd.Flags().StringSliceVar(&disableValidators, "disable-validator", nil, "Validator to disable (repeatable)")
	cmd.Flags().StringVar(&upgradeContract, "upgrade-contract", "", "System contract to upgrade")
	cmd.Flags().StringVar(&upgradeBytecode, "upgrade-bytecode", "", "File with the new byte code, raw or 0x-prefixed hex")
	cmd.MarkFlagsRequiredTogether("upgrade-contract", "upgrade-bytecode")

	return cmd
}

func readByteCode(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "0x") {
		return hexutil.Decode(trimmed)
	}

	return raw, nil
}
