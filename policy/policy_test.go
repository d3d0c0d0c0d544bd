package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Kind
		expectErr bool
	}{
		{name: "fcfs", input: "FCFS", expect: FCFS},
		{name: "sjf alias", input: "sjf-np", expect: SJF},
		{name: "srtf alias", input: " SJF-P ", expect: SRTF},
		{name: "round robin", input: "round-robin", expect: RR},
		{name: "unknown", input: "lottery", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := Parse(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, kind)
		})
	}
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, New(FCFS, 0).Validate())
	assert.NoError(t, New(SRTF, -1).Validate())
	assert.NoError(t, RoundRobin(2).Validate())
	assert.Error(t, RoundRobin(0).Validate())
	assert.Error(t, Policy{}.Validate())
	assert.Error(t, New("edf", 0).Validate())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "RR-Q4", RoundRobin(4).String())
	assert.Equal(t, "SJF", New(SJF, 0).String())
	assert.True(t, RoundRobin(1).Preemptive())
	assert.False(t, New(FCFS, 0).Preemptive())
}
