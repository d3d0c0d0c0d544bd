package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/metrics"
)

// ProcessTable writes per-process results in input order with averages in
// the footer, followed by the aggregate line.
func ProcessTable(w io.Writer, schedule *process.Schedule, summary *metrics.Summary) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Completion", "Waiting", "Turnaround", "Response"})
	rows := make([][]string, 0, len(schedule.Processes))
	for _, p := range schedule.Processes {
		rows = append(rows, []string{
			p.PID,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.ResponseTime),
		})
	}
	table.AppendBulk(rows)
	if summary != nil {
		table.SetFooter([]string{"", "", "", "", "Average",
			formatFloat(summary.AvgWaiting),
			formatFloat(summary.AvgTurnaround),
			formatFloat(summary.AvgResponse)})
	}
	table.Render()
	if summary != nil {
		Summary(w, summary)
	}
}

// Summary writes the aggregate metrics on one line.
func Summary(w io.Writer, summary *metrics.Summary) {
	_, _ = fmt.Fprintf(w, "Total time: %d  Throughput: %.3f/t  CPU utilization: %.2f%%\n\n",
		summary.TotalTime, summary.Throughput, summary.CPUUtilization*100)
}

// ComparisonRow is one policy line of a comparison table.
type ComparisonRow struct {
	Label          string
	Summary        *metrics.Summary
	BestWaiting    bool
	BestTurnaround bool
}

// ComparisonTable writes aggregate metrics per policy; the best averages are
// marked with an asterisk.
func ComparisonTable(w io.Writer, rows []*ComparisonRow) {
	_, _ = fmt.Fprintln(w, "Policy comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround", "Avg Response", "Throughput", "CPU Util", "Total Time"})
	for _, row := range rows {
		table.Append([]string{
			row.Label,
			mark(formatFloat(row.Summary.AvgWaiting), row.BestWaiting),
			mark(formatFloat(row.Summary.AvgTurnaround), row.BestTurnaround),
			formatFloat(row.Summary.AvgResponse),
			fmt.Sprintf("%.3f", row.Summary.Throughput),
			fmt.Sprintf("%.2f%%", row.Summary.CPUUtilization*100),
			strconv.Itoa(row.Summary.TotalTime),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w, "* lowest average")
	_, _ = fmt.Fprintln(w)
}

func mark(value string, best bool) string {
	if best {
		return value + " *"
	}
	return value
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
