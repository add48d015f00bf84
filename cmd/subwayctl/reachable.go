package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newReachableCmd(a *app) *cobra.Command {
	var (
		maxStops int
		lines    []int64
	)
	cmd := &cobra.Command{
		Use:   "reachable <station-id>",
		Short: "List stations reachable within a number of stops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("station id %q: %w", args[0], err)
			}
			reach, err := a.svc.Reachable(cmd.Context(), id, maxStops, lines...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(reach) == 0 {
				fmt.Fprintln(out, "no stations reachable")
				return nil
			}
			for _, r := range reach {
				fmt.Fprintf(out, "%2d stops  %s [%d] via %v\n", r.Stops, r.Station.Name, r.Station.ID, r.Via)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxStops, "max-stops", 0, "stop limit, 0 for none")
	cmd.Flags().Int64SliceVar(&lines, "line", nil, "ride only these line ids (repeatable)")

	return cmd
}
