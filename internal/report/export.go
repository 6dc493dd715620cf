package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"grader/internal/domain"
)

const (
	// ScoresSheet holds one row per student and one column per test
	ScoresSheet = "Scores"
	// TestsSheet lists the test papers
	TestsSheet = "Tests"
)

// ProgressFunc is told how many of total students have been written
type ProgressFunc func(done, total int)

// ExportScores writes a workbook with a score matrix and the test list.
// Cells for subjects a student never took are left empty.
func ExportScores(path string, tests []domain.TestPaper, students []domain.Student, progress ProgressFunc) error {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with Sheet1, rename it instead of adding another
	if err := f.SetSheetName(f.GetSheetName(0), ScoresSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(tests)+1)
	header = append(header, "Name")
	for _, t := range tests {
		header = append(header, t.Subject)
	}
	if err := f.SetSheetRow(ScoresSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, student := range students {
		row := make([]any, 0, len(tests)+1)
		row = append(row, student.Name)
		for _, t := range tests {
			row = append(row, string(student.TestResults[t.Subject]))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ScoresSheet, cell, &row); err != nil {
			return fmt.Errorf("write row for %s: %w", student.Name, err)
		}
		if progress != nil {
			progress(i+1, len(students))
		}
	}

	if err := writeTestsSheet(f, tests); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeTestsSheet(f *excelize.File, tests []domain.TestPaper) error {
	if _, err := f.NewSheet(TestsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	header := []any{"Subject", "PassMark", "MarkScheme"}
	if err := f.SetSheetRow(TestsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, t := range tests {
		row := []any{t.Subject, t.PassMark, strings.Join(t.MarkScheme, ",")}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TestsSheet, cell, &row); err != nil {
			return fmt.Errorf("write test %s: %w", t.Subject, err)
		}
	}
	return nil
}
