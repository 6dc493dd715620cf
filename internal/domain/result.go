package domain

// Outcome is the stored pass/fail verdict for one subject
type Outcome string

const (
	Passed Outcome = "Passed!"
	Failed Outcome = "Failed!"
)

// Result describes a single graded attempt
type Result struct {
	Subject    string
	Correct    int     // answers matching the mark scheme position by position
	Total      int     // length of the mark scheme
	Percentage float64 // Correct / Total * 100
	PassMark   int     // parsed threshold, inclusive
	Outcome    Outcome
}

// Grade compares answers with the paper's mark scheme.
// Only the overlapping prefix is compared: surplus answers are ignored and
// missing answers count as wrong.
func Grade(paper TestPaper, answers []string) (Result, error) {
	if err := paper.Validate(); err != nil {
		return Result{}, err
	}
	total := len(paper.MarkScheme)
	required, _ := paper.RequiredPercentage()

	correct := 0
	for i := 0; i < total && i < len(answers); i++ {
		if answers[i] == paper.MarkScheme[i] {
			correct++
		}
	}

	// exact ties pass; Percentage is display only
	outcome := Failed
	if correct*100 >= required*total {
		outcome = Passed
	}

	return Result{
		Subject:    paper.Subject,
		Correct:    correct,
		Total:      total,
		Percentage: float64(correct) / float64(total) * 100,
		PassMark:   required,
		Outcome:    outcome,
	}, nil
}
