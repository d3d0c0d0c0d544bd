package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeline_Append(t *testing.T) {
	var timeline Timeline
	timeline = timeline.Append(Idle, 0, 2)
	timeline = timeline.Append("P1", 2, 4)
	timeline = timeline.Append("P1", 4, 5)
	timeline = timeline.Append("P2", 5, 5)
	timeline = timeline.Append("P2", 5, 8)

	assert.Equal(t, Timeline{
		{Occupant: Idle, Start: 0, End: 2},
		{Occupant: "P1", Start: 2, End: 5},
		{Occupant: "P2", Start: 5, End: 8},
	}, timeline)
	assert.Equal(t, 8, timeline.End())
	assert.Equal(t, 6, timeline.BusyTime())
	assert.Equal(t, map[string]int{Idle: 2, "P1": 3, "P2": 3}, timeline.Occupancy())
	assert.Len(t, timeline.Dispatches("P1"), 1)
}

func TestProcess_Lifecycle(t *testing.T) {
	p := New("P1", 2, 5)
	assert.False(t, p.Started())
	p.Dispatch(4)
	p.Dispatch(9)
	assert.Equal(t, 4, p.StartTime)
	assert.Equal(t, 2, p.ResponseTime)
	p.Run(5)
	assert.Equal(t, 0, p.RemainingTime)
	p.Complete(12)
	p.Complete(20)
	assert.True(t, p.Completed())
	assert.Equal(t, 12, p.CompletionTime)
	assert.Equal(t, 10, p.TurnaroundTime)
	assert.Equal(t, 5, p.WaitingTime)

	clone := p.Clone()
	assert.Equal(t, Unset, clone.StartTime)
	assert.Equal(t, 5, clone.RemainingTime)
}
