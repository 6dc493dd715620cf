package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"grader/internal/config"
)

// New builds the application logger. Diagnostics go to stderr so they never
// mix with menu output on stdout.
func New(cfg *config.Config) *logrus.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger writing to w
func NewWithWriter(cfg *config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Apply(log, cfg)
	return log
}

// Apply sets the logger level from cfg.
// An unknown level falls back to the default one.
func Apply(log *logrus.Logger, cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level, _ = logrus.ParseLevel(config.DefaultLogLevel)
		log.SetLevel(level)
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using default")
		return
	}
	log.SetLevel(level)
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
