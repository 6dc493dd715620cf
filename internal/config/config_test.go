package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Paths(t *testing.T) {
	tests := []struct {
		name             string
		config           *Config
		expectedTests    string
		expectedStudents string
	}{
		{
			name:             "default paths",
			config:           New(),
			expectedTests:    "tests.json",
			expectedStudents: "students.json",
		},
		{
			name: "with data dir",
			config: &Config{
				DataDir:      "/data",
				TestsFile:    "tests.json",
				StudentsFile: "students.json",
			},
			expectedTests:    "/data/tests.json",
			expectedStudents: "/data/students.json",
		},
		{
			name: "absolute file ignores data dir",
			config: &Config{
				DataDir:      "/data",
				TestsFile:    "/elsewhere/papers.json",
				StudentsFile: "pupils.json",
			},
			expectedTests:    "/elsewhere/papers.json",
			expectedStudents: "/data/pupils.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.TestsPath(); got != tt.expectedTests {
				t.Errorf("expected %s, got %s", tt.expectedTests, got)
			}
			if got := tt.config.StudentsPath(); got != tt.expectedStudents {
				t.Errorf("expected %s, got %s", tt.expectedStudents, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected DataDir %s, got %s", DefaultDataDir, cfg.DataDir)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Flags.Sheet != DefaultRosterSheet {
		t.Errorf("expected Sheet %s, got %s", DefaultRosterSheet, cfg.Flags.Sheet)
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/from-env")
	t.Setenv(EnvTestsFile, "env-tests.json")
	t.Setenv(EnvStudentsFile, "")
	t.Setenv(EnvLogLevel, "info")

	t.Run("env overrides defaults", func(t *testing.T) {
		cfg := Load(Flags{})
		if cfg.DataDir != "/from-env" {
			t.Errorf("expected /from-env, got %s", cfg.DataDir)
		}
		if cfg.TestsFile != "env-tests.json" {
			t.Errorf("expected env-tests.json, got %s", cfg.TestsFile)
		}
		if cfg.StudentsFile != DefaultStudentsFile {
			t.Errorf("expected %s, got %s", DefaultStudentsFile, cfg.StudentsFile)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("expected info, got %s", cfg.LogLevel)
		}
		if cfg.Flags.Sheet != DefaultRosterSheet {
			t.Errorf("expected sheet %s, got %s", DefaultRosterSheet, cfg.Flags.Sheet)
		}
	})

	t.Run("flags override env", func(t *testing.T) {
		cfg := Load(Flags{DataDir: "/from-flag", TestsFile: "flag-tests.json", Verbose: true})
		if cfg.DataDir != "/from-flag" {
			t.Errorf("expected /from-flag, got %s", cfg.DataDir)
		}
		if cfg.TestsFile != "flag-tests.json" {
			t.Errorf("expected flag-tests.json, got %s", cfg.TestsFile)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("expected debug, got %s", cfg.LogLevel)
		}
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("reads variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(EnvStudentsFile+"=dotenv-students.json\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv(EnvStudentsFile, "")
		os.Unsetenv(EnvStudentsFile)

		if err := LoadEnv(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := Load(Flags{}).StudentsFile; got != "dotenv-students.json" {
			t.Errorf("expected dotenv-students.json, got %s", got)
		}
	})
}
