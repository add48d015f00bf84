package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNetworkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Summarize the loaded network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := a.svc.Network(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stations: %d\nsections: %d (%d parallel)\nlines: %d\n",
				sum.Stations, sum.Sections, sum.ParallelSections, sum.Lines)
			if sum.Connected() {
				fmt.Fprintln(out, "connected: yes")
				return nil
			}
			fmt.Fprintf(out, "connected: no (%d components)\n", len(sum.Components))
			for i, c := range sum.Components {
				fmt.Fprintf(out, "  %d: %v\n", i+1, c)
			}

			return nil
		},
	}
}
