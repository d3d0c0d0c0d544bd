package process

// Unset marks a time field that has not been assigned yet.
const Unset = -1

// Process represents a single CPU burst submitted to the simulator.
//
// PID, ArrivalTime and BurstTime are supplied by the caller; the remaining
// fields are derived by the scheduler while a schedule is reconstructed and are
// frozen once RemainingTime reaches zero.
type Process struct {
	PID         string `json:"pid" yaml:"pid"`
	ArrivalTime int    `json:"arrivalTime" yaml:"arrival"`
	BurstTime   int    `json:"burstTime" yaml:"burst"`

	RemainingTime  int `json:"remainingTime" yaml:"-"`
	StartTime      int `json:"startTime" yaml:"-"`
	CompletionTime int `json:"completionTime" yaml:"-"`
	WaitingTime    int `json:"waitingTime" yaml:"-"`
	TurnaroundTime int `json:"turnaroundTime" yaml:"-"`
	ResponseTime   int `json:"responseTime" yaml:"-"`
}

// New creates a process with derived fields reset.
func New(pid string, arrival, burst int) *Process {
	ret := &Process{PID: pid, ArrivalTime: arrival, BurstTime: burst}
	ret.Reset()
	return ret
}

// Reset clears every derived field so the process can be scheduled again.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.CompletionTime = Unset
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.ResponseTime = 0
}

// Clone returns a detached copy of the process input with derived fields reset.
func (p *Process) Clone() *Process {
	return New(p.PID, p.ArrivalTime, p.BurstTime)
}

// Started returns true once the process has been dispatched at least once.
func (p *Process) Started() bool {
	return p.StartTime != Unset
}

// Completed returns true once all of the burst has been served.
func (p *Process) Completed() bool {
	return p.CompletionTime != Unset && p.RemainingTime == 0
}

// Dispatch records the first dispatch instant; later dispatches are ignored.
func (p *Process) Dispatch(at int) {
	if p.Started() {
		return
	}
	p.StartTime = at
	p.ResponseTime = at - p.ArrivalTime
}

// Run consumes units of the remaining burst.
func (p *Process) Run(units int) {
	p.RemainingTime -= units
	if p.RemainingTime < 0 {
		p.RemainingTime = 0
	}
}

// Complete freezes completion, turnaround and waiting time at the given instant.
func (p *Process) Complete(at int) {
	if p.CompletionTime != Unset {
		return
	}
	p.CompletionTime = at
	p.TurnaroundTime = at - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// Clone deep copies a process list including derived fields.
func Clone(processes []*Process) []*Process {
	ret := make([]*Process, len(processes))
	for i, p := range processes {
		if p == nil {
			continue
		}
		cp := *p
		ret[i] = &cp
	}
	return ret
}
