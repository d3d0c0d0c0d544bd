// Package workload reads process workloads and resource snapshots through
// afs and writes the sample inputs used by the generate command.
//
// Workloads are CSV files with a header row (pid, arrival_time, burst_time
// and common spellings of these) or YAML documents with a processes list.
// Headerless CSV rows are read as pid, arrival, burst.
package workload
