package schedsim_test

import (
	"context"
	"embed"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/viant/afs/embed"
	"github.com/viant/schedsim"
	"github.com/viant/schedsim/model/types"
	"github.com/viant/schedsim/policy"
	"github.com/viant/schedsim/service/dao"
	"github.com/viant/schedsim/service/scheduler"
)

//go:embed testdata/*
var embedFS embed.FS

func newService(options ...schedsim.Option) *schedsim.Service {
	options = append([]schedsim.Option{
		schedsim.WithMetaFsOptions(&embedFS),
		schedsim.WithMetaBaseURL("embed:///testdata"),
	}, options...)
	return schedsim.New(options...)
}

func TestRuntime_Simulate(t *testing.T) {
	var dispatches int
	srv := newService(schedsim.WithSchedulerListeners(func(event scheduler.Event) {
		if event.Kind == scheduler.EventDispatch {
			dispatches++
		}
	}))
	rt := srv.Runtime()
	ctx := srv.NewContext(context.Background())

	processes, err := rt.LoadWorkload(ctx, "fcfs.csv")
	require.NoError(t, err)
	require.Len(t, processes, 4)

	aReport, err := rt.Simulate(ctx, processes, rt.Policy(policy.FCFS, 0))
	require.NoError(t, err)
	assert.NotEmpty(t, aReport.ID)
	assert.Equal(t, 26, aReport.Schedule.TotalTime)
	assert.InDelta(t, 8.75, aReport.Summary.AvgWaiting, 1e-9)
	assert.Equal(t, 4, dispatches)

	stored, err := rt.Report(ctx, aReport.ID)
	require.NoError(t, err)
	assert.Equal(t, aReport, stored)

	_, err = rt.Report(ctx, "missing")
	assert.True(t, errors.Is(err, dao.ErrNotFound))

	_, err = rt.Simulate(ctx, processes, policy.New(policy.RR, 0))
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	rr, err := rt.Simulate(ctx, processes, rt.Policy(policy.RR, 0))
	require.NoError(t, err)
	assert.Equal(t, "RR-Q4", rr.Policy())

	reports, err := rt.Reports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	reports, err = rt.Reports(ctx, dao.NewParameter("Policy", string(policy.RR)))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, rr.ID, reports[0].ID)
}

func TestRuntime_Compare(t *testing.T) {
	var mux sync.Mutex
	completed := map[string]int{}
	srv := newService(schedsim.WithSchedulerListeners(func(event scheduler.Event) {
		if event.Kind != scheduler.EventComplete {
			return
		}
		mux.Lock()
		defer mux.Unlock()
		completed[event.Policy]++
	}))
	rt := srv.Runtime()
	ctx := context.Background()

	processes, err := rt.LoadWorkload(ctx, "sjf.csv")
	require.NoError(t, err)

	comparison, err := rt.Compare(ctx, processes)
	require.NoError(t, err)
	var labels []string
	var waiting []float64
	for _, aReport := range comparison.Reports {
		labels = append(labels, aReport.Policy())
		waiting = append(waiting, aReport.Summary.AvgWaiting)
	}
	assert.Equal(t, []string{"FCFS", "SJF", "SRTF", "RR-Q4", "RR-Q2"}, labels)
	assert.InDeltaSlice(t, []float64{4.75, 4, 3, 4.5, 5}, waiting, 1e-9)
	assert.Equal(t, "SRTF", comparison.BestWaiting)
	assert.Equal(t, "SRTF", comparison.BestTurnaround)

	assert.Equal(t, map[string]int{"FCFS": 4, "SJF": 4, "SRTF": 4, "RR-Q4": 4, "RR-Q2": 4}, completed)

	rows := comparison.Rows()
	require.Len(t, rows, 5)
	assert.True(t, rows[2].BestWaiting)
	assert.False(t, rows[0].BestWaiting)

	for _, p := range processes {
		assert.Equal(t, p.BurstTime, p.RemainingTime)
	}

	reports, err := rt.Reports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 5)

	comparison, err = rt.Compare(ctx, processes, 1)
	require.NoError(t, err)
	assert.Len(t, comparison.Reports, 4)

	_, err = rt.Compare(ctx, processes, 0)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestRuntime_Banker(t *testing.T) {
	srv := newService()
	rt := srv.Runtime()
	ctx := context.Background()

	state, err := rt.LoadResources(ctx, "banker.yaml")
	require.NoError(t, err)

	verdict, err := rt.CheckSafety(ctx, state)
	require.NoError(t, err)
	assert.True(t, verdict.Safe)
	assert.Equal(t, []string{"P1", "P3", "P0", "P2", "P4"}, verdict.Order())

	before := state.Clone()
	outcome, err := rt.Request(ctx, state, 0, []int{1, 0, 2})
	assert.True(t, errors.Is(err, types.ErrUnsafeState))
	assert.False(t, outcome.Granted)
	assert.True(t, before.Equal(outcome.State))
	assert.True(t, before.Equal(state))

	outcome, err = rt.Request(ctx, state, 1, []int{1, 0, 2})
	require.NoError(t, err)
	assert.True(t, outcome.Granted)
	assert.Equal(t, []int{2, 3, 0}, outcome.State.Available)
}

func TestRuntime_Generate(t *testing.T) {
	dir := t.TempDir()
	rt := schedsim.New().Runtime()
	written, err := rt.Generate(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, written, 5)
	for _, name := range []string{"fcfs.csv", "sjf.csv", "rr.csv", "compare.csv", "banker.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
