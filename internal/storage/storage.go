package storage

import (
	"errors"

	"github.com/sirupsen/logrus"

	"grader/internal/config"
	"grader/internal/domain"
)

// ErrDeserialization is returned when a data file is not valid JSON of the expected shape
var ErrDeserialization = errors.New("deserialization error")

// Storage persists and loads the test and student collections.
// A missing file loads as an empty collection.
type Storage interface {
	LoadTests() ([]domain.TestPaper, error)
	SaveTests(tests []domain.TestPaper) error
	LoadStudents() ([]domain.Student, error)
	SaveStudents(students []domain.Student) error
}

// JSONStorage stores each collection as an indented JSON array in its own file.
// Files are overwritten in place with no locking.
type JSONStorage struct {
	cfg *config.Config
	log logrus.FieldLogger
}

// NewJSONStorage returns a Storage that reads/writes the config's tests and students paths.
func NewJSONStorage(cfg *config.Config, log logrus.FieldLogger) *JSONStorage {
	return &JSONStorage{cfg: cfg, log: log}
}
