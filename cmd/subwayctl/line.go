package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "line <id>",
		Short: "Show a line's stations in travel order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("line id %q: %w", args[0], err)
			}
			view, err := a.svc.LineStations(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, extra fare %d)\n", view.Name, view.Color, view.ExtraFare)
			for i, st := range view.Stations {
				fmt.Fprintf(out, "%3d. %s [%d]\n", i+1, st.Name, st.ID)
			}

			return nil
		},
	}
}
