// Package metrics derives averages, throughput and CPU utilization from
// populated process records.
package metrics
