package scheduler

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/tracing"
)

// Service reconstructs execution timelines. It holds no per-run state, so a
// single instance can serve concurrent simulations over disjoint inputs.
type Service struct {
	listeners []Listener
}

// New creates a scheduler service.
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Simulate runs the workload under the supplied policy. The input processes
// are not modified; the returned schedule holds populated copies in input
// order. Invalid input fails with types.ErrConfiguration.
func (s *Service) Simulate(ctx context.Context, processes []*process.Process, aPolicy policy.Policy) (*process.Schedule, error) {
	ctx, span := tracing.StartSpan(ctx, "scheduler.simulate")
	span.WithAttributes(map[string]string{"policy": aPolicy.String()}).WithInt("processes", len(processes))
	schedule, err := s.simulate(ctx, processes, aPolicy)
	if err == nil {
		span.WithInt("total_time", schedule.TotalTime)
	}
	tracing.EndSpan(span, err)
	return schedule, err
}

func (s *Service) simulate(ctx context.Context, processes []*process.Process, aPolicy policy.Policy) (*process.Schedule, error) {
	if err := validate(processes, aPolicy); err != nil {
		return nil, err
	}
	entries := make([]*entry, len(processes))
	records := make([]*process.Process, len(processes))
	for i, p := range processes {
		records[i] = p.Clone()
		entries[i] = &entry{Process: records[i], index: i}
	}
	timeline, err := s.run(ctx, entries, newSelector(aPolicy), aPolicy.String())
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug("schedule reconstructed",
		"policy", aPolicy.String(), "processes", len(records), "segments", len(timeline), "total_time", timeline.End())
	return &process.Schedule{
		Policy:    aPolicy,
		Timeline:  timeline,
		Processes: records,
		TotalTime: timeline.End(),
	}, nil
}

// run drives the shared state machine until every process completes. Events
// are tagged with label.
func (s *Service) run(ctx context.Context, entries []*entry, sel selector, label string) (process.Timeline, error) {
	logger := logging.FromContext(ctx)
	pending := make([]*entry, len(entries))
	copy(pending, entries)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	emit := func(event Event) {
		event.Policy = label
		s.emit(event)
	}
	var timeline process.Timeline
	now, next, done := 0, 0, 0
	admit := func() {
		for next < len(pending) && pending[next].ArrivalTime <= now {
			arrived := pending[next]
			sel.admit(arrived)
			emit(Event{Kind: EventArrival, Time: arrived.ArrivalTime, PID: arrived.PID, Remaining: arrived.RemainingTime})
			next++
		}
	}

	for done < len(entries) {
		admit()
		current := sel.next()
		if current == nil {
			if next >= len(pending) {
				return nil, fmt.Errorf("scheduler stalled at %d with %d unfinished processes", now, len(entries)-done)
			}
			until := pending[next].ArrivalTime
			timeline = timeline.Append(process.Idle, now, until)
			emit(Event{Kind: EventIdle, Time: now, Until: until})
			now = until
			continue
		}

		nextArrival := -1
		if next < len(pending) {
			nextArrival = pending[next].ArrivalTime
		}
		units := sel.quota(current, now, nextArrival)
		current.Dispatch(now)
		emit(Event{Kind: EventDispatch, Time: now, PID: current.PID, Until: now + units, Remaining: current.RemainingTime})
		logger.Debug("dispatch", "pid", current.PID, "at", now, "units", units, "remaining", current.RemainingTime)

		timeline = timeline.Append(current.PID, now, now+units)
		now += units
		current.Run(units)

		// arrivals during the slice join the ready set before the preempted process
		admit()
		if current.RemainingTime == 0 {
			current.Complete(now)
			done++
			emit(Event{Kind: EventComplete, Time: now, PID: current.PID})
			continue
		}
		sel.requeue(current)
		emit(Event{Kind: EventRequeue, Time: now, PID: current.PID, Remaining: current.RemainingTime})
	}
	return timeline, nil
}

func (s *Service) emit(event Event) {
	for _, listener := range s.listeners {
		listener(event)
	}
}
