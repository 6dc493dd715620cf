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

// ExportCommand handles the export command
type ExportCommand struct {
	config  *config.Config
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(cfg *config.Config, st storage.Storage, log logrus.FieldLogger) *ExportCommand {
	return &ExportCommand{
		config:  cfg,
		storage: st,
		log:     log,
	}
}

// Execute writes the score sheet to args[0]
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	session, err := app.Open(ec.storage, ec.log)
	if err != nil {
		return err
	}
	path := args[0]
	printer := ui.NewPrinter(cmd.OutOrStdout())

	var bar *ui.ProgressBar
	var progress report.ProgressFunc
	if len(session.Students) > 0 {
		bar = ui.NewProgressBar(len(session.Students), "Exporting", cmd.ErrOrStderr())
		progress = func(done, total int) {
			bar.Set(done)
		}
	}
	err = report.ExportScores(path, session.Tests, session.Students, progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("export scores: %w", err)
	}

	ec.log.WithField("path", path).Debug("scores exported")
	printer.Success("Exported %d student(s) and %d test(s) to %s", len(session.Students), len(session.Tests), path)
	return nil
}
