package domain

import "errors"

var ErrReportNotFound = errors.New("report not found")
var ErrInvalidReport = errors.New("invalid report")

// Report captures one weekly check-in: a score per category name plus free
// notes. A user has at most one report per (calendarWeek, year); submitting
// the same week again replaces the previous report.
type Report struct {
	ID           string             `json:"id"`
	CalendarWeek int                `json:"calendarWeek"`
	Year         int                `json:"year"`
	Scores       map[string]float64 `json:"scores"`
	Notes        string             `json:"notes,omitempty"`
	UserEmail    string             `json:"-"`
}

// ValidScore reports whether s is inside the wheel's 1..10 range.
func ValidScore(s float64) bool {
	return s >= 1 && s <= 10
}
