package banker

import (
	"context"
	"strconv"

	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model/resource"
	"github.com/viant/schedsim/model/types"
	"github.com/viant/schedsim/tracing"
)

// Service evaluates resource snapshots. It is stateless.
type Service struct{}

// New creates a banker service.
func New() *Service {
	return &Service{}
}

// IsSafe runs the safety algorithm. The scan restarts at index zero after each
// admitted process, so among several candidates the lowest index finishes
// first.
func (s *Service) IsSafe(ctx context.Context, state *resource.State) (*Verdict, error) {
	ctx, span := tracing.StartSpan(ctx, "banker.is_safe")
	verdict, err := s.isSafe(ctx, state)
	if err == nil {
		span.WithAttributes(map[string]string{"verdict": verdict.String()})
	}
	tracing.EndSpan(span, err)
	return verdict, err
}

func (s *Service) isSafe(ctx context.Context, state *resource.State) (*Verdict, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	verdict := evaluate(state)
	logging.FromContext(ctx).Debug("safety evaluated",
		"processes", state.Processes(), "resources", state.Resources(), "safe", verdict.Safe, "sequence", verdict.Order())
	return verdict, nil
}

func evaluate(state *resource.State) *Verdict {
	n := state.Processes()
	need := state.Need()
	work := append([]int(nil), state.Available...)
	finish := make([]bool, n)
	sequence := make([]int, 0, n)
	for len(sequence) < n {
		admitted := -1
		for i := 0; i < n; i++ {
			if !finish[i] && resource.LessOrEqual(need[i], work) {
				admitted = i
				break
			}
		}
		if admitted == -1 {
			return &Verdict{Safe: false, Sequence: []int{}}
		}
		finish[admitted] = true
		sequence = append(sequence, admitted)
		for j, units := range state.Allocation[admitted] {
			work[j] += units
		}
	}
	return &Verdict{Safe: true, Sequence: sequence}
}

// Request simulates granting request to process index.
//
// A request above the process need fails with types.ErrExceedsMax, above the
// available units with types.ErrInsufficientResources, and one that would
// leave the system unsafe with types.ErrUnsafeState. Refusals also return an
// Outcome carrying an unchanged copy of the snapshot. Malformed input fails
// with types.ErrConfiguration and no outcome.
func (s *Service) Request(ctx context.Context, state *resource.State, index int, request []int) (*Outcome, error) {
	ctx, span := tracing.StartSpan(ctx, "banker.request")
	span.WithInt("process", index)
	outcome, err := s.request(ctx, state, index, request)
	if outcome != nil {
		span.WithAttributes(map[string]string{"granted": strconv.FormatBool(outcome.Granted)})
	}
	tracing.EndSpan(span, err)
	return outcome, err
}

func (s *Service) request(ctx context.Context, state *resource.State, index int, request []int) (*Outcome, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	if index < 0 || index >= state.Processes() {
		return nil, types.NewConfigurationError("process index %d out of range [0, %d)", index, state.Processes())
	}
	if len(request) != state.Resources() {
		return nil, types.NewConfigurationError("request has %d entries, expected %d", len(request), state.Resources())
	}
	for j, v := range request {
		if v < 0 {
			return nil, types.NewConfigurationError("request[%d] = %d is negative", j, v)
		}
	}
	logger := logging.FromContext(ctx)
	outcome := &Outcome{Process: index, Request: append([]int(nil), request...), State: state.Clone()}

	if need := state.NeedOf(index); !resource.LessOrEqual(request, need) {
		err := types.NewExceedsMaxError("%s requested %v, outstanding need is %v", resource.Label(index), request, need)
		outcome.Reason = err.Error()
		logger.Info("request refused", "process", resource.Label(index), "reason", "exceeds max")
		return outcome, err
	}
	if !resource.LessOrEqual(request, state.Available) {
		err := types.NewInsufficientResourcesError("%s requested %v, available is %v", resource.Label(index), request, state.Available)
		outcome.Reason = err.Error()
		logger.Info("request refused", "process", resource.Label(index), "reason", "insufficient resources")
		return outcome, err
	}

	tentative := state.Clone()
	for j, units := range request {
		tentative.Available[j] -= units
		tentative.Allocation[index][j] += units
	}
	verdict := evaluate(tentative)
	if !verdict.Safe {
		err := types.NewUnsafeStateError("granting %v to %s leaves no safe sequence", request, resource.Label(index))
		outcome.Verdict = verdict
		outcome.Reason = err.Error()
		logger.Info("request refused", "process", resource.Label(index), "reason", "unsafe")
		return outcome, err
	}
	outcome.Granted = true
	outcome.State = tentative
	outcome.Verdict = verdict
	logger.Info("request granted", "process", resource.Label(index), "sequence", verdict.Order())
	return outcome, nil
}

