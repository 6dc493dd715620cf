package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"grader/internal/app"
	"grader/internal/cli"
	"grader/internal/config"
	"grader/internal/domain"
	"grader/internal/storage"
	"grader/internal/ui"
)

// MenuCommand runs the interactive menu
type MenuCommand struct {
	config  *config.Config
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewMenuCommand creates a new MenuCommand
func NewMenuCommand(cfg *config.Config, st storage.Storage, log logrus.FieldLogger) *MenuCommand {
	return &MenuCommand{
		config:  cfg,
		storage: st,
		log:     log,
	}
}

// menuRun is the state of one menu session
type menuRun struct {
	session  *app.Session
	prompter *cli.Prompter
	printer  *ui.Printer
	progress io.Writer
	log      logrus.FieldLogger
}

// errExit ends the loop after a save
var errExit = errors.New("exit")

// Execute loads the data, loops over menu choices and saves on choice 0.
// Running out of input ends the loop without saving.
func (mc *MenuCommand) Execute(cmd *cobra.Command, args []string) error {
	session, err := app.Open(mc.storage, mc.log)
	if err != nil {
		return err
	}

	run := &menuRun{
		session:  session,
		prompter: cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		printer:  ui.NewPrinter(cmd.OutOrStdout()),
		progress: cmd.ErrOrStderr(),
		log:      mc.log,
	}

	for {
		run.printer.Menu()
		choice, err := run.prompter.Ask("Choice: ")
		if errors.Is(err, io.EOF) {
			mc.log.Warn("input closed, exiting without saving")
			return nil
		}
		if err != nil {
			return err
		}

		err = run.dispatch(strings.TrimSpace(choice))
		switch {
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			mc.log.Warn("input closed, exiting without saving")
			return nil
		case err != nil:
			return err
		}
	}
}

func (r *menuRun) dispatch(choice string) error {
	var err error
	switch choice {
	case "1":
		err = r.addTest()
	case "2":
		r.printer.Tests(r.session.Tests)
	case "3":
		err = r.deleteTest()
	case "4":
		err = r.addStudent()
	case "5", "8":
		r.printer.Students(r.session.Students)
	case "6":
		err = r.deleteStudent()
	case "7":
		err = r.giveTest()
	case "9":
		err = r.giveAllTests()
	case "10":
		err = r.everyoneTakesAll()
	case "0":
		if err := r.session.Close(); err != nil {
			return err
		}
		return errExit
	default:
		r.log.WithField("choice", choice).Debug("unknown menu choice")
	}
	return r.report(err)
}

// report prints grading errors and swallows lookup misses so the loop
// keeps going. Anything else, including io.EOF, is returned.
func (r *menuRun) report(err error) error {
	switch {
	case err == nil, errors.Is(err, domain.ErrNotFound):
		return nil
	case errors.Is(err, domain.ErrInvalidPassMark), errors.Is(err, domain.ErrInvalidTestPaper):
		r.printer.Error(err)
		return nil
	}
	return err
}

func (r *menuRun) addTest() error {
	subject, err := r.prompter.Ask("Subject: ")
	if err != nil {
		return err
	}
	passMark, err := r.prompter.Ask("Pass Mark (e.g. 60%): ")
	if err != nil {
		return err
	}
	scheme, err := r.prompter.AskList("Mark Scheme (comma-separated): ")
	if err != nil {
		return err
	}

	paper := r.session.AddTest(subject, passMark, scheme)
	if _, err := paper.RequiredPercentage(); err != nil {
		r.printer.Warn("Warning: %v, this test cannot be graded until it is replaced", err)
	}
	return nil
}

func (r *menuRun) deleteTest() error {
	subject, err := r.prompter.Ask("Subject to delete: ")
	if err != nil {
		return err
	}
	r.session.DeleteTest(subject)
	return nil
}

func (r *menuRun) addStudent() error {
	name, err := r.prompter.Ask("Student Name: ")
	if err != nil {
		return err
	}
	r.session.AddStudent(name)
	return nil
}

func (r *menuRun) deleteStudent() error {
	name, err := r.prompter.Ask("Student Name to delete: ")
	if err != nil {
		return err
	}
	r.session.DeleteStudent(name)
	return nil
}

// giveTest asks for answers only when both the student and the test exist
func (r *menuRun) giveTest() error {
	name, err := r.prompter.Ask("Student Name: ")
	if err != nil {
		return err
	}
	subject, err := r.prompter.Ask("Test Subject: ")
	if err != nil {
		return err
	}
	if r.session.FindStudent(name) == nil || r.session.FindTest(subject) == nil {
		return nil
	}

	answers, err := r.prompter.AskList("Answers (comma-separated): ")
	if err != nil {
		return err
	}
	result, err := r.session.GiveTest(name, subject, answers)
	if err != nil {
		return err
	}
	r.printer.Result(name, result)
	return nil
}

func (r *menuRun) giveAllTests() error {
	name, err := r.prompter.Ask("Student Name: ")
	if err != nil {
		return err
	}
	if r.session.FindStudent(name) == nil {
		return nil
	}

	results, err := r.session.GiveAllTests(name, r.askAnswers)
	for _, result := range results {
		r.printer.Result(name, result)
	}
	return err
}

// everyoneTakesAll prints a heading per student even when there is nothing
// to sit. Ungradeable tests are skipped and reported after the run.
func (r *menuRun) everyoneTakesAll() error {
	papers, skipped := r.session.GradeableTests()
	if len(papers) == 0 {
		for _, student := range r.session.Students {
			r.printer.StudentHeading(student.Name)
		}
		return skipped
	}
	total := len(r.session.Students) * len(papers)
	if total == 0 {
		return skipped
	}

	testCount := len(papers)
	bar := ui.NewProgressBar(total, "Grading", r.progress)
	asked := 0
	answer := func(student domain.Student, paper domain.TestPaper) ([]string, error) {
		if asked%testCount == 0 {
			r.printer.StudentHeading(student.Name)
		}
		asked++
		return r.askAnswers(student, paper)
	}

	results, err := r.session.EveryoneTakesAll(answer, func(done, total int, result domain.Result) {
		bar.Record(result.Outcome)
	})
	bar.Finish()
	if len(results) == total {
		passed, failed := bar.Counts()
		r.printer.Success("Graded %d attempt(s): %d passed, %d failed", passed+failed, passed, failed)
	}
	return err
}

func (r *menuRun) askAnswers(student domain.Student, paper domain.TestPaper) ([]string, error) {
	return r.prompter.AskList(fmt.Sprintf("Answers for %s: ", paper.Subject))
}
