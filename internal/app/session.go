package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"grader/internal/domain"
	"grader/internal/search"
	"grader/internal/storage"
)

// Session owns the in-memory test and student collections between
// Open and Close. Nothing is written to storage until Close.
type Session struct {
	Tests    []domain.TestPaper
	Students []domain.Student

	store  storage.Storage
	log    logrus.FieldLogger
	filter *search.Filter
}

// Open loads both collections from the store
func Open(store storage.Storage, log logrus.FieldLogger) (*Session, error) {
	tests, err := store.LoadTests()
	if err != nil {
		return nil, fmt.Errorf("load tests: %w", err)
	}
	students, err := store.LoadStudents()
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	log.WithFields(logrus.Fields{"tests": len(tests), "students": len(students)}).Debug("session opened")

	return &Session{
		Tests:    tests,
		Students: students,
		store:    store,
		log:      log,
		filter:   search.NewFilter(),
	}, nil
}

// Close writes both collections back to the store
func (s *Session) Close() error {
	if err := s.store.SaveTests(s.Tests); err != nil {
		return fmt.Errorf("save tests: %w", err)
	}
	if err := s.store.SaveStudents(s.Students); err != nil {
		return fmt.Errorf("save students: %w", err)
	}
	s.log.Debug("session saved")
	return nil
}

// AddTest appends a new test paper. Duplicate subjects are allowed;
// lookups always find the first one.
func (s *Session) AddTest(subject, passMark string, markScheme []string) domain.TestPaper {
	paper := domain.TestPaper{Subject: subject, MarkScheme: markScheme, PassMark: passMark}
	s.Tests = append(s.Tests, paper)
	s.log.WithField("subject", subject).Debug("test added")
	return paper
}

// DeleteTest removes every test with the subject and returns how many went
func (s *Session) DeleteTest(subject string) int {
	kept := s.Tests[:0]
	for _, t := range s.Tests {
		if t.Subject != subject {
			kept = append(kept, t)
		}
	}
	removed := len(s.Tests) - len(kept)
	s.Tests = kept
	s.log.WithFields(logrus.Fields{"subject": subject, "removed": removed}).Debug("tests deleted")
	return removed
}

// FindTest returns the first test with the subject, or nil
func (s *Session) FindTest(subject string) *domain.TestPaper {
	for i := range s.Tests {
		if s.Tests[i].Subject == subject {
			return &s.Tests[i]
		}
	}
	return nil
}

// AddStudent appends a new student with no results
func (s *Session) AddStudent(name string) domain.Student {
	student := domain.NewStudent(name)
	s.Students = append(s.Students, student)
	s.log.WithField("student", name).Debug("student added")
	return student
}

// DeleteStudent removes every student with the name and returns how many went
func (s *Session) DeleteStudent(name string) int {
	kept := s.Students[:0]
	for _, st := range s.Students {
		if st.Name != name {
			kept = append(kept, st)
		}
	}
	removed := len(s.Students) - len(kept)
	s.Students = kept
	s.log.WithFields(logrus.Fields{"student": name, "removed": removed}).Debug("students deleted")
	return removed
}

// FindStudent returns the first student with the name, or nil
func (s *Session) FindStudent(name string) *domain.Student {
	for i := range s.Students {
		if s.Students[i].Name == name {
			return &s.Students[i]
		}
	}
	return nil
}

// FilterTests returns the tests whose subject matches pattern
func (s *Session) FilterTests(pattern string) []domain.TestPaper {
	subjects := make([]string, len(s.Tests))
	for i, t := range s.Tests {
		subjects[i] = t.Subject
	}
	matched := make([]domain.TestPaper, 0, len(s.Tests))
	for _, i := range s.filter.FilterByName(subjects, pattern) {
		matched = append(matched, s.Tests[i])
	}
	return matched
}

// FilterStudents returns the students whose name matches pattern
func (s *Session) FilterStudents(pattern string) []domain.Student {
	names := make([]string, len(s.Students))
	for i, st := range s.Students {
		names[i] = st.Name
	}
	matched := make([]domain.Student, 0, len(s.Students))
	for _, i := range s.filter.FilterByName(names, pattern) {
		matched = append(matched, s.Students[i])
	}
	return matched
}
