package govkit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chainspray/govkit/types"
)

func newVoteCmd() *cobra.Command {
	var against bool

	cmd := &cobra.Command{
		Use:   "vote <proposal-id>",
		Short: "Cast a vote on a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proposalID, err := parseProposalID(args[0])
			if err != nil {
				return err
			}

			client, err := newGovernanceClient(ctx)
			if err != nil {
				return err
			}

			var result types.TransactionResult
			if against {
				result, err = client.VoteAgainstProposal(ctx, proposalID)
			} else {
				result, err = client.VoteForProposal(ctx, proposalID)
			}
			if err != nil {
				return err
			}

			direction := "for"
			if against {
				direction = "against"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Voted %s proposal %s: %s\n",
				direction, proposalID, color.GreenString(result.Hash))

			return nil
		},
	}

	cmd.Flags().BoolVar(&against, "against", false, "Vote against instead of for")

	return cmd
}
