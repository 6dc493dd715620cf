package main

import (
	"fmt"
	"os"

	"grader/internal/cli"
	"grader/internal/cli/commands"
	"grader/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "grader",
		Short:         "Record test papers, students and results",
		Long:          `A console tool for recording test papers and students, grading answers against mark schemes and keeping each student's latest result per subject. Data lives in tests.json and students.json.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
