package schedsim

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/viant/schedsim/internal/idgen"
	"github.com/viant/schedsim/internal/logging"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/report"
	"github.com/viant/schedsim/model/resource"
	"github.com/viant/schedsim/model/types"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/banker"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/metrics"
	"github.com/viant/schedsim/service/render"
	"github.com/viant/schedsim/service/scheduler"
	"github.com/viant/schedsim/service/workload"
	"github.com/viant/schedsim/tracing"
)

// Runtime runs simulations and safety evaluations and keeps simulation
// reports for the lifetime of the process.
type Runtime struct {
	config    *Config
	logger    *slog.Logger
	scheduler *scheduler.Service
	banker    *banker.Service
	workload  *workload.Service
	reportDAO dao.Service[string, report.Report]
}

// Comparison holds one report per policy run over the same workload.
type Comparison struct {
	ID             string           `json:"id" yaml:"id"`
	Reports        []*report.Report `json:"reports" yaml:"reports"`
	BestWaiting    string           `json:"bestWaiting" yaml:"bestWaiting"`
	BestTurnaround string           `json:"bestTurnaround" yaml:"bestTurnaround"`
}

// Rows returns the comparison as render rows in run order.
func (c *Comparison) Rows() []*render.ComparisonRow {
	ret := make([]*render.ComparisonRow, 0, len(c.Reports))
	for _, aReport := range c.Reports {
		label := aReport.Policy()
		ret = append(ret, &render.ComparisonRow{
			Label:          label,
			Summary:        aReport.Summary,
			BestWaiting:    label == c.BestWaiting,
			BestTurnaround: label == c.BestTurnaround,
		})
	}
	return ret
}

func (r *Runtime) context(ctx context.Context) context.Context {
	if r.logger == nil {
		return logging.Ensure(ctx, slog.Default())
	}
	return logging.Ensure(ctx, r.logger)
}

// Policy returns a policy of the supplied kind; round robin without a quantum
// takes the configured one.
func (r *Runtime) Policy(kind policy.Kind, quantum int) policy.Policy {
	if kind == policy.RR && quantum == 0 {
		quantum = r.config.Scheduler.Quantum
	}
	return policy.New(kind, quantum)
}

// Simulate runs processes under aPolicy, summarizes the schedule and stores
// the report.
func (r *Runtime) Simulate(ctx context.Context, processes []*process.Process, aPolicy policy.Policy) (*report.Report, error) {
	ctx = r.context(ctx)
	aReport, err := r.simulate(ctx, processes, aPolicy)
	if err != nil {
		return nil, err
	}
	if err = r.reportDAO.Save(ctx, aReport); err != nil {
		return nil, fmt.Errorf("failed to save report %v: %w", aReport.ID, err)
	}
	logging.FromContext(ctx).Info("simulation completed",
		"report", aReport.ID, "policy", aReport.Policy(), "avg_waiting", aReport.Summary.AvgWaiting, "total_time", aReport.Summary.TotalTime)
	return aReport, nil
}

func (r *Runtime) simulate(ctx context.Context, processes []*process.Process, aPolicy policy.Policy) (*report.Report, error) {
	schedule, err := r.scheduler.Simulate(ctx, processes, aPolicy)
	if err != nil {
		return nil, err
	}
	summary, err := metrics.FromSchedule(schedule)
	if err != nil {
		return nil, err
	}
	return &report.Report{
		ID:        idgen.New(),
		Schedule:  schedule,
		Summary:   summary,
		CreatedAt: time.Now(),
	}, nil
}

// Compare runs FCFS, SJF, SRTF and round robin once per quantum over the same
// workload. Without quanta the configured comparison quanta are used. Runs
// execute concurrently, each on its own copy of the input.
func (r *Runtime) Compare(ctx context.Context, processes []*process.Process, quanta ...int) (*Comparison, error) {
	ctx = r.context(ctx)
	if len(quanta) == 0 {
		quanta = r.config.Scheduler.CompareQuanta
	}
	policies := []policy.Policy{policy.New(policy.FCFS, 0), policy.New(policy.SJF, 0), policy.New(policy.SRTF, 0)}
	for _, quantum := range quanta {
		if quantum <= 0 {
			return nil, types.NewConfigurationError("round robin quantum must be > 0, got %d", quantum)
		}
		policies = append(policies, policy.RoundRobin(quantum))
	}

	ctx, span := tracing.StartSpan(ctx, "runtime.compare")
	span.WithInt("policies", len(policies))
	comparison, err := r.compare(ctx, processes, policies)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	for _, aReport := range comparison.Reports {
		if err = r.reportDAO.Save(ctx, aReport); err != nil {
			return nil, fmt.Errorf("failed to save report %v: %w", aReport.ID, err)
		}
	}
	logging.FromContext(ctx).Info("comparison completed",
		"comparison", comparison.ID, "policies", len(policies), "best_waiting", comparison.BestWaiting, "best_turnaround", comparison.BestTurnaround)
	return comparison, nil
}

func (r *Runtime) compare(ctx context.Context, processes []*process.Process, policies []policy.Policy) (*Comparison, error) {
	reports := make([]*report.Report, len(policies))
	errs := make([]error, len(policies))
	var wg sync.WaitGroup
	for i, aPolicy := range policies {
		wg.Add(1)
		go func(i int, aPolicy policy.Policy, input []*process.Process) {
			defer wg.Done()
			reports[i], errs[i] = r.simulate(ctx, input, aPolicy)
		}(i, aPolicy, process.Clone(processes))
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	ret := &Comparison{ID: idgen.New(), Reports: reports}
	bestWaiting, bestTurnaround := reports[0], reports[0]
	for _, aReport := range reports[1:] {
		if aReport.Summary.AvgWaiting < bestWaiting.Summary.AvgWaiting {
			bestWaiting = aReport
		}
		if aReport.Summary.AvgTurnaround < bestTurnaround.Summary.AvgTurnaround {
			bestTurnaround = aReport
		}
	}
	ret.BestWaiting = bestWaiting.Policy()
	ret.BestTurnaround = bestTurnaround.Policy()
	return ret, nil
}

// CheckSafety evaluates a resource snapshot.
func (r *Runtime) CheckSafety(ctx context.Context, state *resource.State) (*banker.Verdict, error) {
	return r.banker.IsSafe(r.context(ctx), state)
}

// Request simulates granting request to the process at index.
func (r *Runtime) Request(ctx context.Context, state *resource.State, index int, request []int) (*banker.Outcome, error) {
	return r.banker.Request(r.context(ctx), state, index, request)
}

// LoadWorkload reads a CSV or YAML workload.
func (r *Runtime) LoadWorkload(ctx context.Context, URL string) ([]*process.Process, error) {
	return r.workload.Load(r.context(ctx), URL)
}

// LoadResources reads a YAML resource snapshot.
func (r *Runtime) LoadResources(ctx context.Context, URL string) (*resource.State, error) {
	return r.workload.LoadResources(r.context(ctx), URL)
}

// Generate writes sample workloads under baseURL.
func (r *Runtime) Generate(ctx context.Context, baseURL string) ([]string, error) {
	return r.workload.Generate(r.context(ctx), baseURL)
}

// Report returns a stored report; unknown ids fail with dao.ErrNotFound.
func (r *Runtime) Report(ctx context.Context, id string) (*report.Report, error) {
	return r.reportDAO.Load(ctx, id)
}

// Reports lists stored reports, optionally narrowed by a "Policy" parameter.
func (r *Runtime) Reports(ctx context.Context, parameters ...*dao.Parameter) ([]*report.Report, error) {
	return r.reportDAO.List(ctx, parameters...)
}
