package resource

import (
	"fmt"

	"github.com/viant/schedsim/model/types"
)

// State is a resource-allocation snapshot for n processes and m resource
// classes. Allocation and Max are n x m matrices, Available has m entries.
type State struct {
	Available  []int   `json:"available" yaml:"available"`
	Allocation [][]int `json:"allocation" yaml:"allocation"`
	Max        [][]int `json:"max" yaml:"max"`
}

// New creates a state from the supplied vectors; the arguments are copied.
func New(available []int, allocation, max [][]int) *State {
	return &State{
		Available:  cloneVector(available),
		Allocation: cloneMatrix(allocation),
		Max:        cloneMatrix(max),
	}
}

// Processes returns n.
func (s *State) Processes() int {
	return len(s.Allocation)
}

// Resources returns m.
func (s *State) Resources() int {
	return len(s.Available)
}

// Need returns Max - Allocation.
func (s *State) Need() [][]int {
	ret := make([][]int, len(s.Allocation))
	for i := range s.Allocation {
		ret[i] = make([]int, len(s.Allocation[i]))
		for j := range s.Allocation[i] {
			ret[i][j] = s.Max[i][j] - s.Allocation[i][j]
		}
	}
	return ret
}

// NeedOf returns the outstanding need of process i.
func (s *State) NeedOf(i int) []int {
	ret := make([]int, len(s.Allocation[i]))
	for j := range ret {
		ret[j] = s.Max[i][j] - s.Allocation[i][j]
	}
	return ret
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	return New(s.Available, s.Allocation, s.Max)
}

// Equal returns true when both snapshots hold identical values.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return equalVector(s.Available, other.Available) &&
		equalMatrix(s.Allocation, other.Allocation) &&
		equalMatrix(s.Max, other.Max)
}

// Validate checks dimensions, non-negativity and Allocation <= Max.
func (s *State) Validate() error {
	if s == nil {
		return types.NewConfigurationError("resource state is nil")
	}
	m := len(s.Available)
	if m == 0 {
		return types.NewConfigurationError("available vector is empty")
	}
	n := len(s.Allocation)
	if n == 0 {
		return types.NewConfigurationError("allocation matrix is empty")
	}
	if len(s.Max) != n {
		return types.NewConfigurationError("max has %d rows, allocation has %d", len(s.Max), n)
	}
	for j, v := range s.Available {
		if v < 0 {
			return types.NewConfigurationError("available[%d] = %d is negative", j, v)
		}
	}
	for i := 0; i < n; i++ {
		if len(s.Allocation[i]) != m {
			return types.NewConfigurationError("allocation[%d] has %d columns, expected %d", i, len(s.Allocation[i]), m)
		}
		if len(s.Max[i]) != m {
			return types.NewConfigurationError("max[%d] has %d columns, expected %d", i, len(s.Max[i]), m)
		}
		for j := 0; j < m; j++ {
			if s.Allocation[i][j] < 0 {
				return types.NewConfigurationError("allocation[%d][%d] = %d is negative", i, j, s.Allocation[i][j])
			}
			if s.Max[i][j] < 0 {
				return types.NewConfigurationError("max[%d][%d] = %d is negative", i, j, s.Max[i][j])
			}
			if s.Allocation[i][j] > s.Max[i][j] {
				return types.NewConfigurationError("allocation[%d][%d] = %d exceeds max %d", i, j, s.Allocation[i][j], s.Max[i][j])
			}
		}
	}
	return nil
}

// Label returns the display name of process i.
func Label(i int) string {
	return fmt.Sprintf("P%d", i)
}

// LessOrEqual returns true when a[j] <= b[j] for every j.
func LessOrEqual(a, b []int) bool {
	for j := range a {
		if a[j] > b[j] {
			return false
		}
	}
	return true
}

func cloneVector(v []int) []int {
	if v == nil {
		return nil
	}
	return append([]int(nil), v...)
}

func cloneMatrix(m [][]int) [][]int {
	if m == nil {
		return nil
	}
	ret := make([][]int, len(m))
	for i := range m {
		ret[i] = cloneVector(m[i])
	}
	return ret
}

func equalVector(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalMatrix(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalVector(a[i], b[i]) {
			return false
		}
	}
	return true
}
