package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Math\r\n60%\nlast"), &out)

	for _, expected := range []string{"Math", "60%", "last"} {
		got, err := p.Ask("> ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}

	if _, err := p.Ask("> "); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if out.String() != "> > > > " {
		t.Errorf("unexpected prompt output: %q", out.String())
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{line: "A,B,C", expected: []string{"A", "B", "C"}},
		{line: "A, B", expected: []string{"A", " B"}},
		{line: "", expected: []string{""}},
		{line: "A,,C", expected: []string{"A", "", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := SplitList(tt.line)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("item %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}
