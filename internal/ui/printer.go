package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"grader/internal/app"
	"grader/internal/domain"
)

// MenuItems are the interactive menu entries in display order
var MenuItems = []string{
	"1. Add Test",
	"2. View Tests",
	"3. Delete Test",
	"4. Add Student",
	"5. View Students",
	"6. Delete Student",
	"7. Give Test",
	"8. View Scores",
	"9. Give All Tests",
	"10. Student Takes All Tests",
	"0. Exit",
}

// Printer formats and displays output
type Printer struct {
	out io.Writer

	title   *color.Color
	heading *color.Color
	good    *color.Color
	bad     *color.Color
	warn    *color.Color
}

// NewPrinter creates a new Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		heading: color.New(color.FgCyan),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
	}
}

// Menu prints the menu
func (p *Printer) Menu() {
	fmt.Fprintln(p.out)
	p.title.Fprintln(p.out, "--- MENU ---")
	fmt.Fprintln(p.out, strings.Join(MenuItems[:6], "\n"))
	fmt.Fprintln(p.out, strings.Join(MenuItems[6:], "\n"))
}

// Tests prints each test paper on its own line
func (p *Printer) Tests(tests []domain.TestPaper) {
	if len(tests) == 0 {
		p.warn.Fprintln(p.out, "No tests found")
		return
	}
	for _, t := range tests {
		fmt.Fprintln(p.out, t.String())
	}
}

// Students prints each student and their results on its own line
func (p *Printer) Students(students []domain.Student) {
	if len(students) == 0 {
		p.warn.Fprintln(p.out, "No students found")
		return
	}
	for _, s := range students {
		fmt.Fprintln(p.out, s.String())
	}
}

// StudentHeading introduces a student during class-wide test taking
func (p *Printer) StudentHeading(name string) {
	fmt.Fprintln(p.out)
	p.heading.Fprintf(p.out, "Student: %s\n", name)
}

// Result prints a graded attempt, green when passed and red when failed
func (p *Printer) Result(student string, result domain.Result) {
	c := p.bad
	if result.Outcome == domain.Passed {
		c = p.good
	}
	c.Fprintf(p.out, "%s - %s: %d/%d (%.2f%%, pass mark %d%%) %s\n",
		student, result.Subject, result.Correct, result.Total, result.Percentage, result.PassMark, result.Outcome)
}

// Error prints an error in red
func (p *Printer) Error(err error) {
	p.bad.Fprintf(p.out, "✗ %v\n", err)
}

// Warn prints a warning in yellow
func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}

// Success prints a confirmation in green
func (p *Printer) Success(format string, args ...any) {
	p.good.Fprintf(p.out, "✓ "+format+"\n", args...)
}

// Summary prints pass statistics per subject as a table
func (p *Printer) Summary(stats []app.SubjectStats) {
	if len(stats) == 0 {
		p.warn.Fprintln(p.out, "No tests found")
		return
	}

	fmt.Fprintln(p.out, "┌──────────────────────┬──────────┬──────────┬──────────┬───────────┐")
	fmt.Fprintf(p.out, "│ %-20s │ %-8s │ %-8s │ %-8s │ %-9s │\n", "Subject", "Attempts", "Passed", "Failed", "Pass rate")
	fmt.Fprintln(p.out, "├──────────────────────┼──────────┼──────────┼──────────┼───────────┤")
	for _, s := range stats {
		fmt.Fprintf(p.out, "│ %-20s │ %-8d │ ", truncate(s.Subject, 20), s.Attempts)
		p.good.Fprintf(p.out, "%-8d", s.Passed)
		fmt.Fprint(p.out, " │ ")
		p.bad.Fprintf(p.out, "%-8d", s.Failed)
		fmt.Fprintf(p.out, " │ %8.1f%% │\n", s.PassRate())
	}
	fmt.Fprintln(p.out, "└──────────────────────┴──────────┴──────────┴──────────┴───────────┘")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
