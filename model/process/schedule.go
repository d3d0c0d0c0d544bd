package process

import "github.com/viant/schedsim/policy"

// Schedule is the reconstructed execution of a workload under a policy.
// Processes keep the order in which they were supplied.
type Schedule struct {
	Policy    policy.Policy `json:"policy" yaml:"policy"`
	Timeline  Timeline      `json:"timeline" yaml:"timeline"`
	Processes []*Process    `json:"processes" yaml:"processes"`
	TotalTime int           `json:"totalTime" yaml:"totalTime"`
}

// Lookup returns the process with the supplied pid or nil.
func (s *Schedule) Lookup(pid string) *Process {
	for _, p := range s.Processes {
		if p.PID == pid {
			return p
		}
	}
	return nil
}
