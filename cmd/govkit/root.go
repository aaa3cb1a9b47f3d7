// Package govkit implements the govkit command line interface for composing,
// submitting and inspecting governance proposals.
package govkit

import (
	"github.com/spf13/cobra"
)

// BuildGovKitCmd assembles the root command with all subcommands attached.
func BuildGovKitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "govkit",
		Short:         "Manage governance proposals against the chain's system contracts",
		Long:          `Compose multi-action governance proposals, submit them, vote on them and execute them. Connection settings come from GOVKIT_* environment variables or a local .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newProposeCmd())
	cmd.AddCommand(newVoteCmd())
	cmd.AddCommand(newExecuteCmd())
	cmd.AddCommand(newProposalsCmd())
	cmd.AddCommand(newVotingPowersCmd())

	return cmd
}
