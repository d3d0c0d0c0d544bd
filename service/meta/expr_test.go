package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvExpr(t *testing.T) {
	testCases := []struct {
		description string
		env         map[string]string
		input       string
		expected    string
	}{
		{
			description: "no expressions",
			input:       "quantum: 4",
			expected:    "quantum: 4",
		},
		{
			description: "single expression",
			env:         map[string]string{"SCHEDSIM_QUANTUM": "3"},
			input:       "quantum: ${env.SCHEDSIM_QUANTUM}",
			expected:    "quantum: 3",
		},
		{
			description: "multiple expressions",
			env:         map[string]string{"SCHEDSIM_A": "1", "SCHEDSIM_B": "2"},
			input:       "${env.SCHEDSIM_A}-${env.SCHEDSIM_B}-${env.SCHEDSIM_A}",
			expected:    "1-2-1",
		},
		{
			description: "unset variable becomes empty",
			input:       "level=${env.SCHEDSIM_NOT_SET}-end",
			expected:    "level=-end",
		},
		{
			description: "invalid name keeps prefix",
			env:         map[string]string{"SCHEDSIM_Y": "y"},
			input:       "start ${env.X and ${env.SCHEDSIM_Y} end",
			expected:    "start ${env.X and y end",
		},
		{
			description: "unterminated expression",
			input:       "tail ${env.SCHEDSIM_A",
			expected:    "tail ${env.SCHEDSIM_A",
		},
		{
			description: "empty name",
			input:       "oops ${env.} done",
			expected:    "oops  done",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, expandEnvExpr(tc.input))
		})
	}
}
