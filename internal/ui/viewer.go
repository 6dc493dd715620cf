package ui

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"grader/internal/domain"
)

// ErrNoStudents is returned by View when there is nobody to show
var ErrNoStudents = errors.New("no students to view")

// Viewer displays scores interactively
type Viewer interface {
	View(tests []domain.TestPaper, students []domain.Student) error
}

// ScoreViewer shows students on the left and the selected student's
// results on the right. It never modifies the data it is given.
type ScoreViewer struct{}

// NewScoreViewer creates a new ScoreViewer
func NewScoreViewer() *ScoreViewer {
	return &ScoreViewer{}
}

// View runs the TUI until the user quits
func (sv *ScoreViewer) View(tests []domain.TestPaper, students []domain.Student) error {
	if len(students) == 0 {
		return ErrNoStudents
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, s := range students {
		list.AddItem(listItemText(i, s, tests), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Scores (%d students, %d tests) | ↑↓ navigate, → details, ← back, [yellow]q[white] or Ctrl+C to exit ", len(students), len(tests)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(students) {
			return
		}
		statsView.SetText(formatStudentStats(students[index], len(tests)))
		detailsView.SetText(formatStudentDetails(students[index], tests))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// listItemText renders one student row with a passed/total badge.
// Only current tests count, each subject once.
func listItemText(index int, s domain.Student, tests []domain.TestPaper) string {
	seen := make(map[string]bool, len(tests))
	passed := 0
	for _, test := range tests {
		if seen[test.Subject] {
			continue
		}
		seen[test.Subject] = true
		if s.TestResults[test.Subject] == domain.Passed {
			passed++
		}
	}
	name := tview.Escape(s.Name)
	if name == "" {
		name = fmt.Sprintf("Student %d", index+1)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s [gray](%d/%d passed)[white]", index+1, name, passed, len(seen))
}

func formatStudentStats(s domain.Student, testCount int) string {
	return fmt.Sprintf("[cyan]student:[white] [yellow]%s[white]  [cyan]taken:[white] %d  [cyan]tests:[white] %d\n",
		tview.Escape(s.Name), len(s.TestResults), testCount)
}

// formatStudentDetails lists every test in collection order, then results
// for subjects that no longer have a test
func formatStudentDetails(s domain.Student, tests []domain.TestPaper) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	shown := make(map[string]bool)
	for _, t := range tests {
		if shown[t.Subject] {
			continue
		}
		shown[t.Subject] = true
		fmt.Fprintf(w, "%s\t%s\t[gray]pass mark %s[white]\n", tview.Escape(t.Subject), outcomeTag(s.TestResults[t.Subject]), tview.Escape(t.PassMark))
	}

	var orphans []string
	for _, subject := range s.Subjects() {
		if !shown[subject] {
			orphans = append(orphans, subject)
		}
	}
	if len(orphans) > 0 {
		fmt.Fprintf(w, "\n[yellow]Results for removed tests:[white]\n")
		for _, subject := range orphans {
			fmt.Fprintf(w, "%s\t%s\n", tview.Escape(subject), outcomeTag(s.TestResults[subject]))
		}
	}

	w.Flush()
	return builder.String()
}

func outcomeTag(outcome domain.Outcome) string {
	switch outcome {
	case domain.Passed:
		return "[green]✓ Passed![white]"
	case domain.Failed:
		return "[red]✗ Failed![white]"
	default:
		return "[gray]not taken[white]"
	}
}
