package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/schedsim/service/render"
)

func newCompareCmd(a *app) *cobra.Command {
	var quanta []int
	var details bool
	cmd := &cobra.Command{
		Use:   "compare <workload>",
		Short: "Run every policy over a workload and compare averages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			rt := a.service.Runtime()
			processes, err := rt.LoadWorkload(ctx, args[0])
			if err != nil {
				return err
			}
			comparison, err := rt.Compare(ctx, processes, quanta...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if details {
				for _, aReport := range comparison.Reports {
					_, _ = fmt.Fprintf(out, "%s\n\n", aReport.Schedule.Policy.Title())
					render.Gantt(out, aReport.Schedule.Timeline)
				}
			}
			render.ComparisonTable(out, comparison.Rows())
			_, _ = fmt.Fprintf(out, "Best average waiting: %s\nBest average turnaround: %s\n", comparison.BestWaiting, comparison.BestTurnaround)
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&quanta, "quantum", "q", nil, "round robin quanta to compare (defaults to the configured quanta)")
	cmd.Flags().BoolVar(&details, "details", false, "print the Gantt chart of every run")
	return cmd
}
