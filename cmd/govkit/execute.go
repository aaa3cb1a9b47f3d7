package govkit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chainspray/govkit"
)

func newExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute <proposal-id>",
		Short: "Execute a succeeded proposal",
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

			// The execute entry point needs the proposal's full action set, so
			// look it up from the event log first.
			proposals, err := client.GetProposals(ctx, govkit.ProposalFilter{})
			if err != nil {
				return err
			}
			for _, proposal := range proposals {
				if proposal.ID.Cmp(proposalID) == 0 {
					result, err := client.ExecuteProposal(ctx, proposal)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Executed proposal %s: %s\n",
						proposalID, color.GreenString(result.Hash))

					return nil
				}
			}

			return fmt.Errorf("proposal %s not found", proposalID)
		},
	}

	return cmd
}
