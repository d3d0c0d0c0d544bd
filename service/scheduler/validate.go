package scheduler

import (
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/types"
	"github.com/viant/schedsim/policy"
)

func validate(processes []*process.Process, aPolicy policy.Policy) error {
	if err := aPolicy.Validate(); err != nil {
		return types.NewConfigurationError("%v", err)
	}
	if len(processes) == 0 {
		return types.NewConfigurationError("at least one process is required")
	}
	seen := make(map[string]int, len(processes))
	for i, p := range processes {
		if p == nil {
			return types.NewConfigurationError("process #%d is nil", i)
		}
		if p.PID == "" {
			return types.NewConfigurationError("process #%d has empty pid", i)
		}
		if p.PID == process.Idle {
			return types.NewConfigurationError("process #%d uses reserved pid %q", i, process.Idle)
		}
		if prev, ok := seen[p.PID]; ok {
			return types.NewConfigurationError("duplicate pid %q at #%d and #%d", p.PID, prev, i)
		}
		seen[p.PID] = i
		if p.ArrivalTime < 0 {
			return types.NewConfigurationError("process %q has negative arrival time %d", p.PID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return types.NewConfigurationError("process %q has non-positive burst time %d", p.PID, p.BurstTime)
		}
	}
	return nil
}
