// Package schedsim is a deterministic CPU scheduling simulator and Banker's
// algorithm safety evaluator.
//
// The root package exposes a Service facade wiring the scheduler, metrics,
// banker, workload and report services:
//
//	srv := schedsim.New()
//	rt := srv.Runtime()
//	processes, _ := rt.LoadWorkload(ctx, "fcfs.csv")
//	report, _ := rt.Simulate(ctx, processes, policy.New(policy.FCFS, 0))
//	fmt.Println(report.Summary.AvgWaiting)
//
// Both engines are synchronous and never modify caller supplied data.
package schedsim
