package report

import (
	"time"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/service/metrics"
)

// Report is a simulation result kept for lookup during the process lifetime.
type Report struct {
	ID        string            `json:"id" yaml:"id"`
	Workload  string            `json:"workload,omitempty" yaml:"workload,omitempty"`
	Schedule  *process.Schedule `json:"schedule" yaml:"schedule"`
	Summary   *metrics.Summary  `json:"summary" yaml:"summary"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
}

// Policy returns the policy label, for example "RR-Q4".
func (r *Report) Policy() string {
	if r == nil || r.Schedule == nil {
		return ""
	}
	return r.Schedule.Policy.String()
}

// Kind returns the policy kind as a string.
func (r *Report) Kind() string {
	if r == nil || r.Schedule == nil {
		return ""
	}
	return string(r.Schedule.Policy.Kind)
}
