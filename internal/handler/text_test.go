package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int64
	}{
		{
			name:     "one ID per line",
			input:    "123\n456\n789",
			expected: []int64{123, 456, 789},
		},
		{
			name:     "blank lines and padding skipped",
			input:    "  123  \n\n 456 \n",
			expected: []int64{123, 456},
		},
		{
			name:     "junk lines skipped",
			input:    "123\n@username\nне число\n456",
			expected: []int64{123, 456},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "negative chat-style ID accepted",
			input:    "-1001234567890",
			expected: []int64{-1001234567890},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseIDLines(tt.input))
		})
	}
}
