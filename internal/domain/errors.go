package domain

import "errors"

var (
	// ErrNotFound is returned when a student or test lookup misses
	ErrNotFound = errors.New("not found")
	// ErrInvalidPassMark is returned when a pass mark is not "<integer>%"
	ErrInvalidPassMark = errors.New("invalid pass mark")
	// ErrInvalidTestPaper is returned when a paper cannot be graded (empty mark scheme)
	ErrInvalidTestPaper = errors.New("invalid test paper")
)
