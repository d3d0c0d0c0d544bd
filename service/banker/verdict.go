package banker

import (
	"strings"

	"github.com/viant/schedsim/model/resource"
)

// Verdict is the outcome of a safety check. Sequence is empty when the
// snapshot is unsafe.
type Verdict struct {
	Safe     bool  `json:"safe" yaml:"safe"`
	Sequence []int `json:"sequence" yaml:"sequence"`
}

// Order returns the safe sequence as process labels, for example [P1 P3 P0].
func (v *Verdict) Order() []string {
	if v == nil {
		return nil
	}
	ret := make([]string, len(v.Sequence))
	for i, index := range v.Sequence {
		ret[i] = resource.Label(index)
	}
	return ret
}

// String returns "safe: P1 -> P3 -> ..." or "unsafe".
func (v *Verdict) String() string {
	if v == nil || !v.Safe {
		return "unsafe"
	}
	return "safe: " + strings.Join(v.Order(), " -> ")
}

// Outcome is the result of a resource request simulation.
//
// When the request is granted State holds the new committed snapshot and
// Verdict its safe sequence. When it is refused State is an identical copy of
// the original snapshot and Reason describes the refusal.
type Outcome struct {
	Process int             `json:"process" yaml:"process"`
	Request []int           `json:"request" yaml:"request"`
	Granted bool            `json:"granted" yaml:"granted"`
	State   *resource.State `json:"state" yaml:"state"`
	Verdict *Verdict        `json:"verdict,omitempty" yaml:"verdict,omitempty"`
	Reason  string          `json:"reason,omitempty" yaml:"reason,omitempty"`
}
