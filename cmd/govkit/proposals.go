package govkit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/chainspray/govkit"
	"github.com/chainspray/govkit/types"
)

var statusStyles = map[types.ProposalStatus]*color.Color{
	types.StatusPending:   color.New(color.FgYellow),
	types.StatusActive:    color.New(color.FgGreen),
	types.StatusCanceled:  color.New(color.Faint),
	types.StatusDefeated:  color.New(color.FgRed),
	types.StatusSucceeded: color.New(color.FgCyan),
	types.StatusQueued:    color.New(color.FgBlue),
	types.StatusExpired:   color.New(color.Faint),
	types.StatusExecuted:  color.New(color.FgHiGreen),
}

func newProposalsCmd() *cobra.Command {
	var (
		fromBlock uint64
		toBlock   uint64
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "List proposals replayed from the chain's event log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := newGovernanceClient(ctx)
			if err != nil {
				return err
			}

			if watch {
				sink := make(chan types.Proposal)
				sub, err := client.WatchProposals(ctx, sink)
				if err != nil {
					return err
				}
				defer sub.Unsubscribe()

				for {
					select {
					case proposal := <-sink:
						fmt.Fprintf(cmd.OutOrStdout(), "%s  proposal %s by %s: %s\n",
							renderStatus(proposal.Status), proposal.ID, proposal.Proposer, proposal.Description)
					case err := <-sub.Err():
						return err
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}

			filter := govkit.ProposalFilter{FromBlock: fromBlock}
			if cmd.Flags().Changed("to") {
				filter.ToBlock = &toBlock
			}

			proposals, err := client.GetProposals(ctx, filter)
			if err != nil {
				return err
			}
			if len(proposals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No proposals found")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Status", "Proposer", "Actions", "Start", "End", "Description"})
			for _, proposal := range proposals {
				t.AppendRow(table.Row{
					proposal.ID,
					renderStatus(proposal.Status),
					proposal.Proposer,
					len(proposal.Targets),
					proposal.StartBlock,
					proposal.EndBlock,
					proposal.Description,
				})
			}
			t.Render()

			return nil
		},
	}

	cmd.Flags().Uint64Var(&fromBlock, "from", 0, "First block to replay")
	cmd.Flags().Uint64Var(&toBlock, "to", 0, "Last block to replay (defaults to the latest block)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Stream newly created proposals instead of listing")

	return cmd
}

func renderStatus(status types.ProposalStatus) string {
	if style, ok := statusStyles[status]; ok {
		return style.Sprint(string(status))
	}

	return string(status)
}
