// Package render prints schedules, comparisons and resource snapshots as
// plain text tables and Gantt charts.
package render
