package commands

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"grader/internal/app"
	"grader/internal/config"
	"grader/internal/storage"
	"grader/internal/ui"
)

// ScoresCommand handles the scores command
type ScoresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
	log     logrus.FieldLogger
}

// NewScoresCommand creates a new ScoresCommand
func NewScoresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer, log logrus.FieldLogger) *ScoresCommand {
	return &ScoresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
		log:     log,
	}
}

// Execute runs the command
func (sc *ScoresCommand) Execute(cmd *cobra.Command, args []string) error {
	session, err := app.Open(sc.storage, sc.log)
	if err != nil {
		return err
	}
	printer := ui.NewPrinter(cmd.OutOrStdout())

	if sc.config.Flags.Summary {
		printer.Summary(session.Stats())
		return nil
	}

	students := session.FilterStudents(sc.config.Flags.Filter)
	if sc.config.Flags.Plain {
		printer.Students(students)
		return nil
	}
	err = sc.viewer.View(session.Tests, students)
	if errors.Is(err, ui.ErrNoStudents) {
		printer.Students(nil)
		return nil
	}
	return err
}
