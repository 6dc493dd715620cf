package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"grader/internal/cli"
	"grader/internal/config"
	"grader/internal/logging"
	"grader/internal/storage"
	"grader/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Menu   *MenuCommand
	List   *ListCommand
	Scores *ScoresCommand
	Export *ExportCommand
	Import *ImportCommand

	log *logrus.Logger
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	log := logging.New(cfg)
	jsonStorage := storage.NewJSONStorage(cfg, log)
	viewer := ui.NewScoreViewer()

	return &Commands{
		Menu:   NewMenuCommand(cfg, jsonStorage, log),
		List:   NewListCommand(cfg, jsonStorage, log),
		Scores: NewScoresCommand(cfg, jsonStorage, viewer, log),
		Export: NewExportCommand(cfg, jsonStorage, log),
		Import: NewImportCommand(cfg, jsonStorage, log),
		log:    log,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.DataDir, "data-dir", "d", "", "Directory holding tests.json and students.json")
	rootCmd.PersistentFlags().StringVar(&flags.TestsFile, "tests-file", "", "Tests file name or path (default tests.json)")
	rootCmd.PersistentFlags().StringVar(&flags.StudentsFile, "students-file", "", "Students file name or path (default students.json)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log loads, saves and gradings to stderr")

	// Update config with env and flags after parsing
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
			return err
		}
		*cfg = *config.Load(flags.ToConfigFlags())
		logging.Apply(c.log, cfg)
		return nil
	}

	// The bare command opens the menu
	rootCmd.RunE = c.Menu.Execute

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Long:  "Add and delete tests and students, give tests and view scores. Choice 0 saves and exits.",
		Args:  cobra.NoArgs,
		RunE:  c.Menu.Execute,
	}
	rootCmd.AddCommand(menuCmd)

	testsCmd := &cobra.Command{
		Use:   "tests",
		Short: "List test papers",
		Args:  cobra.NoArgs,
		RunE:  c.List.ExecuteTests,
	}
	testsCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter by subject (supports wildcards, e.g. '*Math*')")
	rootCmd.AddCommand(testsCmd)

	studentsCmd := &cobra.Command{
		Use:   "students",
		Short: "List students and their results",
		Args:  cobra.NoArgs,
		RunE:  c.List.ExecuteStudents,
	}
	studentsCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter by name (supports wildcards, e.g. 'Ada*')")
	rootCmd.AddCommand(studentsCmd)

	scoresCmd := &cobra.Command{
		Use:   "scores",
		Short: "View scores interactively",
		Long:  "Browse every student's results in an interactive viewer, or print them with --plain",
		Args:  cobra.NoArgs,
		RunE:  c.Scores.Execute,
	}
	scoresCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter by student name (supports wildcards)")
	scoresCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print scores instead of opening the viewer")
	scoresCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print pass statistics per subject")
	rootCmd.AddCommand(scoresCmd)

	exportCmd := &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export scores to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Export.Execute,
	}
	rootCmd.AddCommand(exportCmd)

	importCmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Add students from a spreadsheet roster",
		Long:  "Read student names from column A of a roster (first row is a header) and save them",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Import.Execute,
	}
	importCmd.Flags().StringVar(&flags.Sheet, "sheet", config.DefaultRosterSheet, "Sheet to read names from")
	rootCmd.AddCommand(importCmd)
}
