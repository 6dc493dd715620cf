package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"grader/internal/config"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "default level", level: config.DefaultLogLevel, expected: logrus.WarnLevel},
		{name: "debug level", level: "debug", expected: logrus.DebugLevel},
		{name: "unknown level falls back", level: "chatty", expected: logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.LogLevel = tt.level
			var buf bytes.Buffer
			log := NewWithWriter(cfg, &buf)
			if log.GetLevel() != tt.expected {
				t.Errorf("expected level %s, got %s", tt.expected, log.GetLevel())
			}
		})
	}

	t.Run("apply changes the level", func(t *testing.T) {
		cfg := config.New()
		log := NewWithWriter(cfg, &bytes.Buffer{})
		cfg.LogLevel = "debug"
		Apply(log, cfg)
		if log.GetLevel() != logrus.DebugLevel {
			t.Errorf("expected debug, got %s", log.GetLevel())
		}
	})

	t.Run("debug messages are filtered at warn", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(config.New(), &buf)
		log.Debug("hidden")
		log.Warn("shown")
		if strings.Contains(buf.String(), "hidden") {
			t.Error("debug message should be filtered")
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Error("warn message should be written")
		}
	})
}
