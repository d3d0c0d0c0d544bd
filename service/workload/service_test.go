package workload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/schedsim/model/process"
	"github.com/viant/schedsim/model/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestService_Load(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		description string
		name        string
		content     string
		expected    []*process.Process
		expectErr   error
	}{
		{
			description: "csv with header",
			name:        "a.csv",
			content:     "pid,arrival_time,burst_time\nP1,0,8\nP2,1,4\n",
			expected:    []*process.Process{process.New("P1", 0, 8), process.New("P2", 1, 4)},
		},
		{
			description: "csv with reordered aliased header",
			name:        "b.csv",
			content:     "Burst_Time, ProcessId, Arrival_Time\n5,A,3\n2,B,0\n",
			expected:    []*process.Process{process.New("A", 3, 5), process.New("B", 0, 2)},
		},
		{
			description: "headerless csv",
			name:        "c.csv",
			content:     "# pid, arrival, burst\nP1, 0, 3\n\nP2, 2, 1\n",
			expected:    []*process.Process{process.New("P1", 0, 3), process.New("P2", 2, 1)},
		},
		{
			description: "header after comma only rows",
			name:        "h.csv",
			content:     ",,\n , ,\npid,arrival,burst\nP1,0,3\n",
			expected:    []*process.Process{process.New("P1", 0, 3)},
		},
		{
			description: "yaml workload",
			name:        "d.yaml",
			content:     "processes:\n  - pid: P1\n    arrival: 0\n    burst: 7\n  - pid: P2\n    arrival: 2\n    burst: 4\n",
			expected:    []*process.Process{process.New("P1", 0, 7), process.New("P2", 2, 4)},
		},
		{
			description: "invalid burst",
			name:        "e.csv",
			content:     "pid,arrival,burst\nP1,0,x\n",
			expectErr:   types.ErrConfiguration,
		},
		{
			description: "missing column",
			name:        "f.csv",
			content:     "pid,arrival\nP1,0\n",
			expectErr:   types.ErrConfiguration,
		},
		{
			description: "empty yaml",
			name:        "g.yml",
			content:     "processes: []\n",
			expectErr:   types.ErrConfiguration,
		},
	}

	srv := New(afs.New(), "")
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			location := writeFile(t, dir, tc.name, tc.content)
			actual, err := srv.Load(context.Background(), location)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestService_LoadResources(t *testing.T) {
	dir := t.TempDir()
	srv := New(afs.New(), dir)
	writeFile(t, dir, "state.yaml", "available: [3, 3, 2]\nallocation:\n  - [0, 1, 0]\n  - [2, 0, 0]\nmax:\n  - [7, 5, 3]\n  - [3, 2, 2]\n")

	state, err := srv.LoadResources(context.Background(), "state.yaml")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 2}, state.Available)
	assert.Equal(t, [][]int{{0, 1, 0}, {2, 0, 0}}, state.Allocation)
	assert.Equal(t, [][]int{{7, 5, 3}, {3, 2, 2}}, state.Max)

	writeFile(t, dir, "ragged.yaml", "available: [1]\nallocation: [[1, 0]]\nmax: [[1, 0]]\n")
	_, err = srv.LoadResources(context.Background(), "ragged.yaml")
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestService_Generate(t *testing.T) {
	dir := t.TempDir()
	srv := New(afs.New(), "")
	ctx := context.Background()

	written, err := srv.Generate(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, written, 5)

	for name, expected := range Samples() {
		loaded, err := srv.Load(ctx, filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, expected, loaded, name)
	}
	state, err := srv.LoadResources(ctx, filepath.Join(dir, BankerSample))
	require.NoError(t, err)
	assert.True(t, BankerSampleState().Equal(state))
}
