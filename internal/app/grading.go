package app

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"grader/internal/domain"
)

// AnswerFunc supplies a student's answers for one test paper
type AnswerFunc func(student domain.Student, paper domain.TestPaper) ([]string, error)

// ProgressFunc is told how many of total gradings are finished and the latest result
type ProgressFunc func(done, total int, result domain.Result)

// GiveTest grades one student on one test.
// A missing student or test returns domain.ErrNotFound and changes nothing.
func (s *Session) GiveTest(name, subject string, answers []string) (domain.Result, error) {
	student := s.FindStudent(name)
	if student == nil {
		return domain.Result{}, fmt.Errorf("student %q: %w", name, domain.ErrNotFound)
	}
	paper := s.FindTest(subject)
	if paper == nil {
		return domain.Result{}, fmt.Errorf("test %q: %w", subject, domain.ErrNotFound)
	}
	return s.grade(student, *paper, answers)
}

// GradeableTests splits the tests into those that can be graded, in
// collection order, and a joined error naming each one that cannot.
func (s *Session) GradeableTests() ([]domain.TestPaper, error) {
	papers := make([]domain.TestPaper, 0, len(s.Tests))
	var errs []error
	for _, paper := range s.Tests {
		if err := paper.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("skipped: %w", err))
			continue
		}
		papers = append(papers, paper)
	}
	return papers, errors.Join(errs...)
}

// GiveAllTests has one student sit every test in collection order.
// Tests that cannot be graded are skipped without asking for answers and
// come back joined in the error once the run is over. An answer error
// stops the run; earlier results are kept.
func (s *Session) GiveAllTests(name string, answer AnswerFunc) ([]domain.Result, error) {
	student := s.FindStudent(name)
	if student == nil {
		return nil, fmt.Errorf("student %q: %w", name, domain.ErrNotFound)
	}

	papers, skipped := s.GradeableTests()
	results := make([]domain.Result, 0, len(papers))
	for _, paper := range papers {
		answers, err := answer(*student, paper)
		if err != nil {
			return results, err
		}
		result, err := s.grade(student, paper, answers)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, skipped
}

// EveryoneTakesAll has every student sit every gradeable test, students and
// tests both in collection order. Skipped tests are reported as in
// GiveAllTests. progress may be nil.
func (s *Session) EveryoneTakesAll(answer AnswerFunc, progress ProgressFunc) ([]domain.Result, error) {
	papers, skipped := s.GradeableTests()
	total := len(s.Students) * len(papers)
	done := 0
	results := make([]domain.Result, 0, total)

	for i := range s.Students {
		student := &s.Students[i]
		for _, paper := range papers {
			answers, err := answer(*student, paper)
			if err != nil {
				return results, err
			}
			result, err := s.grade(student, paper, answers)
			if err != nil {
				return results, err
			}
			results = append(results, result)
			done++
			if progress != nil {
				progress(done, total, result)
			}
		}
	}
	return results, skipped
}

func (s *Session) grade(student *domain.Student, paper domain.TestPaper, answers []string) (domain.Result, error) {
	result, err := student.TakeTest(paper, answers)
	if err != nil {
		return domain.Result{}, fmt.Errorf("grade %s on %q: %w", student.Name, paper.Subject, err)
	}
	s.log.WithFields(logrus.Fields{
		"student": student.Name,
		"subject": paper.Subject,
		"correct": result.Correct,
		"total":   result.Total,
		"outcome": result.Outcome,
	}).Debug("test graded")
	return result, nil
}
