package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/schedsim/model/process"
)

// Gantt writes the timeline as a bar of labelled blocks with the segment
// boundaries printed underneath.
func Gantt(w io.Writer, timeline process.Timeline) {
	bar, axis := ganttLines(timeline)
	_, _ = fmt.Fprintln(w, "Gantt chart")
	_, _ = fmt.Fprintln(w, bar)
	_, _ = fmt.Fprintln(w, axis)
	_, _ = fmt.Fprintln(w)
}

func ganttLines(timeline process.Timeline) (string, string) {
	if len(timeline) == 0 {
		return "|", "0"
	}
	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, segment := range timeline {
		start := strconv.Itoa(segment.Start)
		width := max(len(segment.Occupant), len(start), 2) + 2
		bar.WriteString(center(segment.Occupant, width))
		bar.WriteString("|")
		axis.WriteString(start)
		axis.WriteString(strings.Repeat(" ", width+1-len(start)))
	}
	axis.WriteString(strconv.Itoa(timeline.End()))
	return bar.String(), axis.String()
}

func center(text string, width int) string {
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
