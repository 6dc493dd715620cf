package app

import "grader/internal/domain"

// SubjectStats counts the stored outcomes for one subject
type SubjectStats struct {
	Subject  string
	Attempts int
	Passed   int
	Failed   int
}

// PassRate is the share of attempts that passed, in percent
func (s SubjectStats) PassRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Attempts) * 100
}

// Stats summarises results per test, in test collection order.
// Results for subjects that no longer have a test are not counted.
func (s *Session) Stats() []SubjectStats {
	stats := make([]SubjectStats, 0, len(s.Tests))
	seen := make(map[string]bool)
	for _, paper := range s.Tests {
		if seen[paper.Subject] {
			continue
		}
		seen[paper.Subject] = true

		entry := SubjectStats{Subject: paper.Subject}
		for _, student := range s.Students {
			outcome, ok := student.TestResults[paper.Subject]
			if !ok {
				continue
			}
			entry.Attempts++
			if outcome == domain.Passed {
				entry.Passed++
			} else {
				entry.Failed++
			}
		}
		stats = append(stats, entry)
	}
	return stats
}
