package search

import (
	"path/filepath"
	"strings"
)

// Filter matches student names and test subjects against a name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Match reports whether name matches pattern.
// An empty pattern matches everything. Patterns with * or ? use glob
// matching, falling back to matching every non-empty part between
// wildcards as a substring. Plain patterns are substring matches.
// Matching is case-insensitive.
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	name = strings.ToLower(name)
	pattern = strings.ToLower(pattern)

	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

// FilterByName returns the indexes of names matching pattern, in order
func (f *Filter) FilterByName(names []string, pattern string) []int {
	matched := make([]int, 0, len(names))
	for i, name := range names {
		if f.Match(name, pattern) {
			matched = append(matched, i)
		}
	}
	return matched
}
