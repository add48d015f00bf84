package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	var (
		from, to int64
		age      int
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the shortest route between two stations and its fare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svc.FindRoute(cmd.Context(), from, to, age)
			if err != nil {
				return err
			}
			names := make([]string, len(res.Stations))
			for i, st := range res.Stations {
				names[i] = st.Name
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(names, " -> "))
			fmt.Fprintf(out, "distance: %d km\nfare: %d\n", res.Distance, res.Fare)
			if verbose {
				q := res.Quote
				fmt.Fprintf(out, "passenger: %s\nbase: %d\nsurcharge: %d\nbefore discount: %d\n",
					q.Group, q.Base, q.Surcharge, q.PreDiscount)
			}

			return nil
		},
	}
	cmd.Flags().Int64Var(&from, "from", 0, "source station id")
	cmd.Flags().Int64Var(&to, "to", 0, "target station id")
	cmd.Flags().IntVar(&age, "age", 20, "passenger age in years")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the fare breakdown")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
