package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TestPaper is a test that students can sit
type TestPaper struct {
	Subject    string   `json:"Subject"`
	MarkScheme []string `json:"MarkScheme"`
	PassMark   string   `json:"PassMark"` // e.g. "60%"
}

// String formats the paper the way the menu lists it
func (p TestPaper) String() string {
	return fmt.Sprintf("Subject: %s, PassMark: %s, MarkScheme: %s", p.Subject, p.PassMark, strings.Join(p.MarkScheme, ", "))
}

// RequiredPercentage parses PassMark into an integer threshold.
// Trailing '%' characters are stripped before parsing.
func (p TestPaper) RequiredPercentage() (int, error) {
	raw := strings.TrimRight(p.PassMark, "%")
	required, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q for subject %q", ErrInvalidPassMark, p.PassMark, p.Subject)
	}
	return required, nil
}

// Validate reports whether the paper can be graded at all
func (p TestPaper) Validate() error {
	if len(p.MarkScheme) == 0 {
		return fmt.Errorf("%w: subject %q has an empty mark scheme", ErrInvalidTestPaper, p.Subject)
	}
	_, err := p.RequiredPercentage()
	return err
}
