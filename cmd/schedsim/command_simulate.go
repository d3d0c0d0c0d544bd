package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/render"
)

func newSimulateCmd(a *app) *cobra.Command {
	var policyName string
	var quantum int
	cmd := &cobra.Command{
		Use:   "simulate <workload>",
		Short: "Simulate a workload under one scheduling policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := policy.Parse(policyName)
			if err != nil {
				return err
			}
			ctx := a.context(cmd)
			rt := a.service.Runtime()
			processes, err := rt.LoadWorkload(ctx, args[0])
			if err != nil {
				return err
			}
			aPolicy := rt.Policy(kind, quantum)
			aReport, err := rt.Simulate(ctx, processes, aPolicy)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n\n", aPolicy.Title())
			render.Gantt(out, aReport.Schedule.Timeline)
			render.ProcessTable(out, aReport.Schedule, aReport.Summary)
			return nil
		},
	}
	cmd.Flags().StringVarP(&policyName, "policy", "p", string(policy.FCFS), "scheduling policy: fcfs, sjf, srtf, rr")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "round robin time quantum (defaults to the configured quantum)")
	return cmd
}
