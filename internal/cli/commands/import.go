package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"grader/internal/app"
	"grader/internal/config"
	"grader/internal/report"
	"grader/internal/storage"
	"grader/internal/ui"
)

// ImportCommand handles the import command
type ImportCommand struct {
	config  *config.Config
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(cfg *config.Config, st storage.Storage, log logrus.FieldLogger) *ImportCommand {
	return &ImportCommand{
		config:  cfg,
		storage: st,
		log:     log,
	}
}

// Execute appends the roster's students and saves
func (ic *ImportCommand) Execute(cmd *cobra.Command, args []string) error {
	names, err := report.ImportStudents(args[0], ic.config.Flags.Sheet)
	if err != nil {
		return fmt.Errorf("import students: %w", err)
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if len(names) == 0 {
		printer.Warn("No students found in %s", args[0])
		return nil
	}

	session, err := app.Open(ic.storage, ic.log)
	if err != nil {
		return err
	}
	for _, name := range names {
		session.AddStudent(name)
	}
	if err := session.Close(); err != nil {
		return err
	}

	printer.Success("Imported %d student(s)", len(names))
	return nil
}
