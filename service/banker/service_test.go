package banker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schedsim/model/resource"
	"github.com/viant/schedsim/model/types"
)

func classicState() *resource.State {
	return resource.New(
		[]int{3, 3, 2},
		[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}},
		[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {2, 2, 2}, {4, 3, 3}},
	)
}

func TestService_IsSafe(t *testing.T) {
	testCases := []struct {
		description string
		state       *resource.State
		safe        bool
		sequence    []int
	}{
		{
			description: "classic five process snapshot",
			state:       classicState(),
			safe:        true,
			sequence:    []int{1, 3, 0, 2, 4},
		},
		{
			description: "three process prefix cannot finish",
			state: resource.New(
				[]int{3, 3, 2},
				[][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}},
				[][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}},
			),
			safe:     false,
			sequence: []int{},
		},
		{
			description: "zero need finishes immediately",
			state:       resource.New([]int{0}, [][]int{{1}, {2}}, [][]int{{1}, {2}}),
			safe:        true,
			sequence:    []int{0, 1},
		},
		{
			description: "single process waiting for released units",
			state:       resource.New([]int{1, 0}, [][]int{{0, 1}, {1, 0}}, [][]int{{2, 1}, {1, 1}}),
			safe:        false,
			sequence:    []int{},
		},
	}

	srv := New()
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			before := tc.state.Clone()
			verdict, err := srv.IsSafe(context.Background(), tc.state)
			require.NoError(t, err)
			assert.Equal(t, tc.safe, verdict.Safe)
			assert.Equal(t, tc.sequence, verdict.Sequence)
			assert.True(t, before.Equal(tc.state))

			again, err := srv.IsSafe(context.Background(), tc.state)
			require.NoError(t, err)
			assert.Equal(t, verdict, again)
		})
	}
}

func TestVerdict_Order(t *testing.T) {
	verdict := &Verdict{Safe: true, Sequence: []int{1, 3, 0}}
	assert.Equal(t, []string{"P1", "P3", "P0"}, verdict.Order())
	assert.Equal(t, "safe: P1 -> P3 -> P0", verdict.String())
	assert.Equal(t, "unsafe", (&Verdict{}).String())
}

func TestService_Request(t *testing.T) {
	testCases := []struct {
		description string
		index       int
		request     []int
		granted     bool
		expectErr   error
		available   []int
		allocation  []int
	}{
		{
			description: "granted request keeps the system safe",
			index:       1,
			request:     []int{1, 0, 2},
			granted:     true,
			available:   []int{2, 3, 0},
			allocation:  []int{3, 0, 2},
		},
		{
			description: "unsafe request is rolled back",
			index:       0,
			request:     []int{1, 0, 2},
			expectErr:   types.ErrUnsafeState,
		},
		{
			description: "request above need",
			index:       1,
			request:     []int{2, 0, 0},
			expectErr:   types.ErrExceedsMax,
		},
		{
			description: "request above available",
			index:       0,
			request:     []int{4, 0, 0},
			expectErr:   types.ErrInsufficientResources,
		},
		{
			description: "empty request is trivially granted",
			index:       4,
			request:     []int{0, 0, 0},
			granted:     true,
			available:   []int{3, 3, 2},
			allocation:  []int{0, 0, 2},
		},
	}

	srv := New()
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			state := classicState()
			outcome, err := srv.Request(context.Background(), state, tc.index, tc.request)
			require.NotNil(t, outcome)
			assert.True(t, classicState().Equal(state), "caller state modified")
			assert.Equal(t, tc.granted, outcome.Granted)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), "unexpected error: %v", err)
				assert.True(t, classicState().Equal(outcome.State), "refused outcome must carry the original state")
				assert.NotEmpty(t, outcome.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.available, outcome.State.Available)
			assert.Equal(t, tc.allocation, outcome.State.Allocation[tc.index])
			assert.True(t, outcome.Verdict.Safe)
		})
	}
}

func TestService_Request_Configuration(t *testing.T) {
	srv := New()
	testCases := []struct {
		description string
		state       *resource.State
		index       int
		request     []int
	}{
		{description: "index out of range", state: classicState(), index: 5, request: []int{0, 0, 0}},
		{description: "negative index", state: classicState(), index: -1, request: []int{0, 0, 0}},
		{description: "request length", state: classicState(), index: 0, request: []int{1, 0}},
		{description: "negative request", state: classicState(), index: 0, request: []int{-1, 0, 0}},
		{description: "allocation above max", state: resource.New([]int{1}, [][]int{{3}}, [][]int{{2}}), index: 0, request: []int{0}},
		{description: "nil state", index: 0, request: []int{0}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			outcome, err := srv.Request(context.Background(), tc.state, tc.index, tc.request)
			assert.Nil(t, outcome)
			assert.True(t, errors.Is(err, types.ErrConfiguration), "unexpected error: %v", err)
		})
	}
}
