package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"grader/internal/app"
	"grader/internal/config"
	"grader/internal/storage"
	"grader/internal/ui"
)

// ListCommand handles the tests and students commands
type ListCommand struct {
	config  *config.Config
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, st storage.Storage, log logrus.FieldLogger) *ListCommand {
	return &ListCommand{
		config:  cfg,
		storage: st,
		log:     log,
	}
}

// ExecuteTests prints the test papers
func (lc *ListCommand) ExecuteTests(cmd *cobra.Command, args []string) error {
	session, err := app.Open(lc.storage, lc.log)
	if err != nil {
		return err
	}
	ui.NewPrinter(cmd.OutOrStdout()).Tests(session.FilterTests(lc.config.Flags.Filter))
	return nil
}

// ExecuteStudents prints the students with their results
func (lc *ListCommand) ExecuteStudents(cmd *cobra.Command, args []string) error {
	session, err := app.Open(lc.storage, lc.log)
	if err != nil {
		return err
	}
	ui.NewPrinter(cmd.OutOrStdout()).Students(session.FilterStudents(lc.config.Flags.Filter))
	return nil
}
