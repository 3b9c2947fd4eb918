//nolint:testpackage
package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeStrSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "No duplicates",
			input:    []string{"/src/a", "/src/b", "/src/c"},
			expected: []string{"/src/a", "/src/b", "/src/c"},
		},
		{
			name:     "Duplicates keep the first occurrence",
			input:    []string{"/src/b", "/src/a", "/src/b", "/src/c", "/src/a"},
			expected: []string{"/src/b", "/src/a", "/src/c"},
		},
		{
			name:     "All elements are duplicates",
			input:    []string{"a", "a", "a"},
			expected: []string{"a"},
		},
		{
			name:     "Case-sensitive duplicates",
			input:    []string{"a", "A", "a"},
			expected: []string{"a", "A"},
		},
		{
			name:     "Empty input",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, DedupeStrSlice(tt.input))
		})
	}
}

func TestTrimTrailingSlashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "/src/a/", expected: "/src/a"},
		{input: "/src/a//", expected: "/src/a"},
		{input: "/src/a", expected: "/src/a"},
		{input: "/", expected: "/"},
		{input: "relative/", expected: "relative"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, TrimTrailingSlashes(tt.input))
		})
	}
}
