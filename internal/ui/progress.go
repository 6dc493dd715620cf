package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"grader/internal/domain"
)

// ProgressBar shows how far a batch of gradings or an export has got
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	label  string
	passed int
	failed int
}

// NewProgressBar creates a new progress bar writing to w (normally stderr)
func NewProgressBar(count int, label string, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString(label+": ")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, label: label}
}

// Set moves the bar to done
func (p *ProgressBar) Set(done int) {
	p.bar.Set(done)
}

// Record counts a graded outcome and advances the bar by one
func (p *ProgressBar) Record(outcome domain.Outcome) {
	if outcome == domain.Passed {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Describe(
		color.CyanString(p.label+": ") +
			color.GreenString("[passed: %d", p.passed) +
			" | " +
			color.RedString("failed: %d]", p.failed),
	)
	p.bar.Add(1)
}

// Counts returns the outcomes recorded so far
func (p *ProgressBar) Counts() (passed, failed int) {
	return p.passed, p.failed
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
