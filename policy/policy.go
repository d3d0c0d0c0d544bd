package policy

import (
	"fmt"
	"strings"
)

// Kind identifies a scheduling policy.
type Kind string

// Supported policies.
const (
	FCFS Kind = "fcfs" // first come, first served
	SJF  Kind = "sjf"  // shortest job first, non-preemptive
	SRTF Kind = "srtf" // shortest remaining time first (preemptive SJF)
	RR   Kind = "rr"   // round robin
)

// DefaultQuantum is used by round robin when no quantum is configured through
// the CLI or configuration file. The engine itself never defaults it.
const DefaultQuantum = 4

// Kinds returns all supported policies in presentation order.
func Kinds() []Kind {
	return []Kind{FCFS, SJF, SRTF, RR}
}

// Policy represents the scheduling settings for a single simulation run.
//
//   - Kind selects the dispatch rule.
//   - Quantum is the round robin time slice; other policies ignore it.
type Policy struct {
	Kind    Kind `json:"kind" yaml:"kind"`
	Quantum int  `json:"quantum,omitempty" yaml:"quantum,omitempty"`
}

// New creates a policy.
func New(kind Kind, quantum int) Policy {
	return Policy{Kind: kind, Quantum: quantum}
}

// RoundRobin creates a round robin policy with the supplied quantum.
func RoundRobin(quantum int) Policy {
	return Policy{Kind: RR, Quantum: quantum}
}

// Parse converts a policy name into a Kind. Aliases used by the classic
// textbook names are accepted (case-insensitive).
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "fifo":
		return FCFS, nil
	case "sjf", "sjf-np", "sjf_np", "spn":
		return SJF, nil
	case "srtf", "sjf-p", "sjf_p", "srt":
		return SRTF, nil
	case "rr", "round-robin", "roundrobin":
		return RR, nil
	}
	return "", fmt.Errorf("unsupported policy: %q", name)
}

// Preemptive returns true when a running process can lose the CPU before it
// completes.
func (p Policy) Preemptive() bool {
	return p.Kind == SRTF || p.Kind == RR
}

// Validate returns an error describing invalid settings or nil.
func (p Policy) Validate() error {
	switch p.Kind {
	case FCFS, SJF, SRTF:
		return nil
	case RR:
		if p.Quantum <= 0 {
			return fmt.Errorf("round robin quantum must be > 0, got %d", p.Quantum)
		}
		return nil
	case "":
		return fmt.Errorf("policy kind is required")
	}
	return fmt.Errorf("unsupported policy: %q", string(p.Kind))
}

// String returns a short label, for example "RR-Q4".
func (p Policy) String() string {
	label := strings.ToUpper(string(p.Kind))
	if p.Kind == RR {
		return fmt.Sprintf("%s-Q%d", label, p.Quantum)
	}
	return label
}

// Title returns a descriptive policy name.
func (p Policy) Title() string {
	switch p.Kind {
	case FCFS:
		return "First-Come, First-Served"
	case SJF:
		return "Shortest Job First (non-preemptive)"
	case SRTF:
		return "Shortest Remaining Time First"
	case RR:
		return fmt.Sprintf("Round Robin (quantum %d)", p.Quantum)
	}
	return string(p.Kind)
}
