package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/viant/schedsim/model/resource"
	"github.com/viant/schedsim/service/banker"
)

// ResourceState writes allocation, max and need per process followed by the
// available vector.
func ResourceState(w io.Writer, state *resource.State) {
	_, _ = fmt.Fprintln(w, "Resource state")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Allocation", "Max", "Need"})
	need := state.Need()
	for i := range state.Allocation {
		table.Append([]string{
			resource.Label(i),
			joinVector(state.Allocation[i]),
			joinVector(state.Max[i]),
			joinVector(need[i]),
		})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "Available: %s\n\n", joinVector(state.Available))
}

// Verdict writes the safety verdict.
func Verdict(w io.Writer, verdict *banker.Verdict) {
	if verdict == nil || !verdict.Safe {
		_, _ = fmt.Fprintln(w, "System is in an UNSAFE state: no safe sequence exists.")
		return
	}
	_, _ = fmt.Fprintf(w, "System is in a SAFE state. Safe sequence: %s\n", strings.Join(verdict.Order(), " -> "))
}

// Outcome writes the result of a resource request.
func Outcome(w io.Writer, outcome *banker.Outcome) {
	label := resource.Label(outcome.Process)
	if !outcome.Granted {
		_, _ = fmt.Fprintf(w, "Request %s [%s]: REFUSED (%s)\n", label, joinVector(outcome.Request), outcome.Reason)
		_, _ = fmt.Fprintln(w, "State unchanged.")
		return
	}
	_, _ = fmt.Fprintf(w, "Request %s [%s]: GRANTED\n\n", label, joinVector(outcome.Request))
	ResourceState(w, outcome.State)
	Verdict(w, outcome.Verdict)
}

func joinVector(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
