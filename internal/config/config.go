package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Storage settings
	DataDir      string
	TestsFile    string
	StudentsFile string

	// Logging
	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	DataDir      string
	TestsFile    string
	StudentsFile string
	Verbose      bool
	Filter       string
	Plain        bool
	Summary      bool
	Sheet        string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		DataDir:      DefaultDataDir,
		TestsFile:    DefaultTestsFile,
		StudentsFile: DefaultStudentsFile,
		LogLevel:     DefaultLogLevel,
		Flags:        Flags{Sheet: DefaultRosterSheet},
	}
}

// LoadEnv reads a .env file into the process environment.
// A missing file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load creates a config from defaults, then environment, then flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.applyEnv()
	cfg.Flags = flags

	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.TestsFile != "" {
		cfg.TestsFile = flags.TestsFile
	}
	if flags.StudentsFile != "" {
		cfg.StudentsFile = flags.StudentsFile
	}
	if flags.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvTestsFile); v != "" {
		c.TestsFile = v
	}
	if v := os.Getenv(EnvStudentsFile); v != "" {
		c.StudentsFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// TestsPath returns the path of the tests file.
// Absolute file names are used as given, relative ones live under DataDir.
func (c *Config) TestsPath() string {
	return c.resolve(c.TestsFile)
}

// StudentsPath returns the path of the students file
func (c *Config) StudentsPath() string {
	return c.resolve(c.StudentsFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
