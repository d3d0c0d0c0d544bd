package metrics

import (
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/types"
)

// Summary aggregates per-process statistics of a reconstructed schedule.
type Summary struct {
	Processes      int     `json:"processes" yaml:"processes"`
	TotalTime      int     `json:"totalTime" yaml:"totalTime"`
	BusyTime       int     `json:"busyTime" yaml:"busyTime"`
	AvgWaiting     float64 `json:"avgWaiting" yaml:"avgWaiting"`
	AvgTurnaround  float64 `json:"avgTurnaround" yaml:"avgTurnaround"`
	AvgResponse    float64 `json:"avgResponse" yaml:"avgResponse"`
	Throughput     float64 `json:"throughput" yaml:"throughput"`
	CPUUtilization float64 `json:"cpuUtilization" yaml:"cpuUtilization"`
}

// Calculate computes averages over completed records. Busy time is the sum of
// bursts, so utilization equals busy / totalTime.
func Calculate(records []*process.Process, totalTime int) (*Summary, error) {
	if len(records) == 0 {
		return nil, types.NewEmptyInputError("no processes to summarize")
	}
	if totalTime <= 0 {
		return nil, types.NewConfigurationError("total time must be > 0, got %d", totalTime)
	}
	ret := &Summary{Processes: len(records), TotalTime: totalTime}
	var waiting, turnaround, response int
	for i, p := range records {
		if p == nil {
			return nil, types.NewConfigurationError("record #%d is nil", i)
		}
		if !p.Completed() {
			return nil, types.NewConfigurationError("process %q has not completed", p.PID)
		}
		waiting += p.WaitingTime
		turnaround += p.TurnaroundTime
		response += p.ResponseTime
		ret.BusyTime += p.BurstTime
	}
	if ret.BusyTime > totalTime {
		return nil, types.NewConfigurationError("busy time %d exceeds total time %d", ret.BusyTime, totalTime)
	}
	n := float64(len(records))
	ret.AvgWaiting = float64(waiting) / n
	ret.AvgTurnaround = float64(turnaround) / n
	ret.AvgResponse = float64(response) / n
	ret.Throughput = n / float64(totalTime)
	ret.CPUUtilization = float64(ret.BusyTime) / float64(totalTime)
	return ret, nil
}

// FromSchedule summarizes a schedule produced by the scheduler service.
func FromSchedule(schedule *process.Schedule) (*Summary, error) {
	if schedule == nil {
		return nil, types.NewEmptyInputError("schedule is nil")
	}
	return Calculate(schedule.Processes, schedule.TotalTime)
}
