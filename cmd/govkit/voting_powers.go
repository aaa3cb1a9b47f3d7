package govkit

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newVotingPowersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voting-powers <validator>...",
		Short: "Show the voting supply and voting power of validators",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			validators := make([]common.Address, 0, len(args))
			for _, raw := range args {
				if !common.IsHexAddress(raw) {
					return fmt.Errorf("invalid validator address: %s", raw)
				}
				validators = append(validators, common.HexToAddress(raw))
			}

			client, err := newGovernanceClient(ctx)
			if err != nil {
				return err
			}

			powers, err := client.GetVotingPowers(ctx, validators)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Validator", "Voting Power", "Voting Supply"})
			for _, validator := range validators {
				power := powers[validator]
				t.AppendRow(table.Row{validator, power.VotingPower, power.VotingSupply})
			}
			t.Render()

			return nil
		},
	}

	return cmd
}
