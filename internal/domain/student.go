package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Student holds a name and the latest outcome per subject
type Student struct {
	Name        string             `json:"Name"`
	TestResults map[string]Outcome `json:"TestResults"`
}

// NewStudent creates a Student with an empty results map
func NewStudent(name string) Student {
	return Student{Name: name, TestResults: make(map[string]Outcome)}
}

// TakeTest grades the answers against the paper and records the outcome
// under the paper's subject, replacing any earlier attempt.
// On error TestResults is left unchanged.
func (s *Student) TakeTest(paper TestPaper, answers []string) (Result, error) {
	result, err := Grade(paper, answers)
	if err != nil {
		return Result{}, err
	}
	if s.TestResults == nil {
		s.TestResults = make(map[string]Outcome)
	}
	s.TestResults[paper.Subject] = result.Outcome
	return result, nil
}

// Subjects returns the subjects the student has results for, sorted
func (s Student) Subjects() []string {
	subjects := make([]string, 0, len(s.TestResults))
	for subject := range s.TestResults {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

func (s Student) String() string {
	parts := make([]string, 0, len(s.TestResults))
	for _, subject := range s.Subjects() {
		parts = append(parts, fmt.Sprintf("%s: %s", subject, s.TestResults[subject]))
	}
	return fmt.Sprintf("Name: %s, Results: [%s]", s.Name, strings.Join(parts, "; "))
}
