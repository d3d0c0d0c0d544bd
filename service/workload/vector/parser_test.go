package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVector(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    []int
		shouldError bool
	}{
		{description: "space separated", input: "1 0 2", expected: []int{1, 0, 2}},
		{description: "comma separated", input: "1,0,2", expected: []int{1, 0, 2}},
		{description: "bracketed", input: " [3, 3, 2] ", expected: []int{3, 3, 2}},
		{description: "negative value", input: "-1 2", expected: []int{-1, 2}},
		{description: "empty", input: "", shouldError: true},
		{description: "empty brackets", input: "[]", shouldError: true},
		{description: "missing close bracket", input: "[1 2", shouldError: true},
		{description: "double comma", input: "1,,2", shouldError: true},
		{description: "trailing comma", input: "1,2,", shouldError: true},
		{description: "letters", input: "1 a 2", shouldError: true},
		{description: "trailing input", input: "[1 2] 3", shouldError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParseVector(tc.input)
			if tc.shouldError {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseMatrix(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    [][]int
		shouldError bool
	}{
		{description: "nested brackets", input: "[[0,1,0],[2,0,0]]", expected: [][]int{{0, 1, 0}, {2, 0, 0}}},
		{description: "nested brackets with spaces", input: "[ [7 5 3] [3 2 2] ]", expected: [][]int{{7, 5, 3}, {3, 2, 2}}},
		{description: "semicolon rows", input: "0 1 0; 2 0 0;3 0 2", expected: [][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}}},
		{description: "single row", input: "4 3 3", expected: [][]int{{4, 3, 3}}},
		{description: "empty row", input: "1 2;;3 4", shouldError: true},
		{description: "unterminated", input: "[[1,2],[3,4]", shouldError: true},
		{description: "flat values in brackets", input: "[1, 2]", shouldError: true},
		{description: "double comma between rows", input: "[[1],,[2]]", shouldError: true},
		{description: "empty", input: " ", shouldError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParseMatrix(tc.input)
			if tc.shouldError {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}
