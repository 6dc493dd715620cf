package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"grader/internal/domain"
)

// LoadTests reads the test papers file.
func (s *JSONStorage) LoadTests() ([]domain.TestPaper, error) {
	tests := []domain.TestPaper{}
	if err := s.load(s.cfg.TestsPath(), &tests); err != nil {
		return nil, err
	}
	if tests == nil {
		tests = []domain.TestPaper{}
	}
	return tests, nil
}

// SaveTests overwrites the test papers file.
func (s *JSONStorage) SaveTests(tests []domain.TestPaper) error {
	if tests == nil {
		tests = []domain.TestPaper{}
	}
	return s.save(s.cfg.TestsPath(), tests, len(tests))
}

// LoadStudents reads the students file. Students stored without results get an empty map.
func (s *JSONStorage) LoadStudents() ([]domain.Student, error) {
	students := []domain.Student{}
	if err := s.load(s.cfg.StudentsPath(), &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []domain.Student{}
	}
	for i := range students {
		if students[i].TestResults == nil {
			students[i].TestResults = make(map[string]domain.Outcome)
		}
	}
	return students, nil
}

// SaveStudents overwrites the students file.
func (s *JSONStorage) SaveStudents(students []domain.Student) error {
	if students == nil {
		students = []domain.Student{}
	}
	return s.save(s.cfg.StudentsPath(), students, len(students))
}

func (s *JSONStorage) load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.WithField("path", path).Debug("data file not found, starting empty")
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrDeserialization, path, err)
	}
	s.log.WithField("path", path).Debug("data file loaded")
	return nil
}

func (s *JSONStorage) save(path string, v any, count int) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.log.WithFields(logrus.Fields{"path": path, "records": count}).Debug("data file saved")
	return nil
}
