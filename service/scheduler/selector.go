package scheduler

import (
	"container/heap"

	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/policy"
)

// entry is a working copy of a process together with its input position.
type entry struct {
	*process.Process
	index int
}

// selector is the policy specific part of the scheduling state machine.
type selector interface {
	// admit adds an arrived process to the ready set.
	admit(e *entry)
	// next removes and returns the process to dispatch, nil when no process is ready.
	next() *entry
	// quota returns how many units the dispatched process runs before the
	// selection is revisited. nextArrival is -1 when every process has arrived.
	quota(e *entry, now, nextArrival int) int
	// requeue returns an unfinished process to the ready set.
	requeue(e *entry)
}

func newSelector(aPolicy policy.Policy) selector {
	switch aPolicy.Kind {
	case policy.SJF:
		return newHeapSelector(byBurst, false)
	case policy.SRTF:
		return newHeapSelector(byRemaining, true)
	case policy.RR:
		return &roundRobin{quantum: aPolicy.Quantum}
	default:
		return newHeapSelector(byArrival, false)
	}
}

// byArrival orders by arrival time, then input order.
func byArrival(a, b *entry) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.index < b.index
}

// byBurst orders by burst time, then arrival time, then input order.
func byBurst(a, b *entry) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return byArrival(a, b)
}

// byRemaining orders by remaining time, then arrival time, then input order.
func byRemaining(a, b *entry) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return byArrival(a, b)
}

// readyQueue implements heap.Interface for entries.
type readyQueue struct {
	items []*entry
	less  func(a, b *entry) bool
}

func (q *readyQueue) Len() int { return len(q.items) }

func (q *readyQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

func (q *readyQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push is called by heap.Push; do not call directly.
func (q *readyQueue) Push(x any) {
	q.items = append(q.items, x.(*entry))
}

// Pop is called by heap.Pop; do not call directly.
func (q *readyQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// heapSelector serves FCFS, SJF and SRTF. Non-preemptive selectors run the
// chosen process to completion; the preemptive one revisits the choice at
// every arrival instant.
type heapSelector struct {
	ready      *readyQueue
	preemptive bool
}

func newHeapSelector(less func(a, b *entry) bool, preemptive bool) *heapSelector {
	ready := &readyQueue{less: less}
	heap.Init(ready)
	return &heapSelector{ready: ready, preemptive: preemptive}
}

func (s *heapSelector) admit(e *entry) {
	heap.Push(s.ready, e)
}

func (s *heapSelector) next() *entry {
	if s.ready.Len() == 0 {
		return nil
	}
	return heap.Pop(s.ready).(*entry)
}

func (s *heapSelector) quota(e *entry, now, nextArrival int) int {
	if !s.preemptive || nextArrival < 0 {
		return e.RemainingTime
	}
	if until := nextArrival - now; until < e.RemainingTime {
		return until
	}
	return e.RemainingTime
}

func (s *heapSelector) requeue(e *entry) {
	heap.Push(s.ready, e)
}

// roundRobin keeps a FIFO ready queue and grants at most quantum units per
// dispatch.
type roundRobin struct {
	queue   []*entry
	quantum int
}

func (r *roundRobin) admit(e *entry) {
	r.queue = append(r.queue, e)
}

func (r *roundRobin) next() *entry {
	if len(r.queue) == 0 {
		return nil
	}
	head := r.queue[0]
	r.queue[0] = nil
	r.queue = r.queue[1:]
	return head
}

func (r *roundRobin) quota(e *entry, _, _ int) int {
	if e.RemainingTime < r.quantum {
		return e.RemainingTime
	}
	return r.quantum
}

func (r *roundRobin) requeue(e *entry) {
	r.queue = append(r.queue, e)
}
