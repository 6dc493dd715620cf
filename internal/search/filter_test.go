package search

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		names    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			names:    []string{"Ada Lovelace", "Alan Turing", "Grace Hopper"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			names:    []string{"Ada Lovelace", "Alan Turing", "Grace Hopper"},
			pattern:  "*Turing",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			names:    []string{"Maths", "Further Maths", "Art", "Mathematics"},
			pattern:  "*Math*",
			expected: 3,
		},
		{
			name:     "simple contains match",
			names:    []string{"Maths", "Art", "Music"},
			pattern:  "Mu",
			expected: 1,
		},
		{
			name:     "case insensitive",
			names:    []string{"Maths", "Art"},
			pattern:  "maths",
			expected: 1,
		},
		{
			name:     "no matches",
			names:    []string{"Maths", "Art"},
			pattern:  "*History*",
			expected: 0,
		},
		{
			name:     "question mark glob",
			names:    []string{"Art", "Ant", "Arts"},
			pattern:  "A?t",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.names, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty name list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*Ada*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("only wildcards matches everything via glob", func(t *testing.T) {
		result := filter.FilterByName([]string{"Ada", "Bob"}, "*")
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})

	t.Run("indexes keep collection order", func(t *testing.T) {
		result := filter.FilterByName([]string{"Ada", "Bob", "Adam"}, "Ada*")
		if len(result) != 2 || result[0] != 0 || result[1] != 2 {
			t.Errorf("expected [0 2], got %v", result)
		}
	})
}
