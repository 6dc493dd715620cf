package domain

import (
	"errors"
	"testing"
)

func TestStudent_TakeTest(t *testing.T) {
	paper := TestPaper{Subject: "Math", MarkScheme: []string{"A", "B", "C"}, PassMark: "60%"}

	t.Run("records outcome under subject", func(t *testing.T) {
		s := NewStudent("Ada")
		if _, err := s.TakeTest(paper, []string{"A", "B", "X"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TestResults["Math"] != Passed {
			t.Errorf("expected %s, got %s", Passed, s.TestResults["Math"])
		}
	})

	t.Run("retake overwrites the earlier attempt", func(t *testing.T) {
		s := NewStudent("Ada")
		s.TakeTest(paper, []string{"A", "B", "C"})
		s.TakeTest(paper, []string{"X", "Y", "Z"})
		if len(s.TestResults) != 1 {
			t.Fatalf("expected 1 result, got %d", len(s.TestResults))
		}
		if s.TestResults["Math"] != Failed {
			t.Errorf("expected %s, got %s", Failed, s.TestResults["Math"])
		}
	})

	t.Run("nil results map is created", func(t *testing.T) {
		s := Student{Name: "Bob"}
		if _, err := s.TakeTest(paper, []string{"A", "B", "C"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TestResults["Math"] != Passed {
			t.Errorf("expected %s, got %s", Passed, s.TestResults["Math"])
		}
	})

	t.Run("error leaves results untouched", func(t *testing.T) {
		s := NewStudent("Ada")
		s.TestResults["Math"] = Passed
		bad := TestPaper{Subject: "Math", MarkScheme: []string{"A"}, PassMark: "lots"}
		if _, err := s.TakeTest(bad, []string{"B"}); !errors.Is(err, ErrInvalidPassMark) {
			t.Fatalf("expected ErrInvalidPassMark, got %v", err)
		}
		if s.TestResults["Math"] != Passed {
			t.Errorf("expected earlier result to survive, got %s", s.TestResults["Math"])
		}
	})
}

func TestStudent_String(t *testing.T) {
	s := NewStudent("Ada")
	s.TestResults["Math"] = Passed
	s.TestResults["Art"] = Failed

	expected := "Name: Ada, Results: [Art: Failed!; Math: Passed!]"
	if got := s.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	empty := NewStudent("Bob")
	if got := empty.String(); got != "Name: Bob, Results: []" {
		t.Errorf("unexpected string for empty student: %q", got)
	}
}
