package domain

import (
	"time"
	"unicode/utf8"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/audit"
)

// QuizResult records the outcome of one quiz run. The score is taken as the
// client reports it; it is never recomputed against the question set.
type QuizResult struct {
	audit.Envelope
	Username     string
	Score        int
	MaxScore     int
	CompletedAt  *time.Time // nil when the client did not report a completion time
	MessageShown string
}

// Validate checks the result for persistence.
func (r *QuizResult) Validate() error {
	if r.Username == "" {
		return apierr.Validation("username", "zorunlu alan")
	}
	if utf8.RuneCountInString(r.Username) > 64 {
		return apierr.Validation("username", "en fazla 64 karakter")
	}
	if r.Score < 0 {
		return apierr.Validation("score", "negatif olamaz")
	}
	if r.MaxScore < 0 {
		return apierr.Validation("maxScore", "negatif olamaz")
	}
	return nil
}
