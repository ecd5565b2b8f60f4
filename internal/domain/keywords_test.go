package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "typical response",
			raw:      "pantai, senja, liburan",
			expected: []string{"pantai", "senja", "liburan"},
		},
		{
			name:     "whitespace trimmed",
			raw:      "  pantai ,senja ,  liburan  ",
			expected: []string{"pantai", "senja", "liburan"},
		},
		{
			name:     "empty tokens dropped",
			raw:      "pantai,,senja, ,liburan",
			expected: []string{"pantai", "senja", "liburan"},
		},
		{
			name:     "capped at five",
			raw:      "a, b, c, d, e, f, g",
			expected: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "order preserved",
			raw:      "zebra, apel, mangga",
			expected: []string{"zebra", "apel", "mangga"},
		},
		{
			name:     "empty response",
			raw:      "",
			expected: nil,
		},
		{
			name:     "only separators",
			raw:      ", , ,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseKeywords(tt.raw))
		})
	}
}

func TestJoinKeywords(t *testing.T) {
	assert.Equal(t, "pantai, senja", JoinKeywords([]string{"pantai", "senja"}))
	assert.Equal(t, "", JoinKeywords(nil))
}
