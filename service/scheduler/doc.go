// Package scheduler reconstructs the CPU timeline of a workload under a
// scheduling policy.
//
// All policies share one state machine: a clock, a ready set of arrived and
// unfinished processes, and a policy specific selector deciding which ready
// process runs next and for how long before the decision is revisited. Idle
// intervals are skipped in a single step.
package scheduler
