package domain

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/audit"
)

// TimelineEvent is a dated entry on the shared timeline, optionally carrying a
// media attachment and an interactive element.
type TimelineEvent struct {
	audit.Envelope
	Title              string
	EventDate          time.Time
	Description        string
	MediaURL           string
	InteractionType    InteractionType
	InteractionPayload json.RawMessage
}

type InteractionType string

const (
	InteractionNone     InteractionType = "NONE"
	InteractionQuiz     InteractionType = "QUIZ"
	InteractionSurprise InteractionType = "SURPRISE"
)

// ParseInteractionType returns the InteractionType for s, or false when s names no known type.
func ParseInteractionType(s string) (InteractionType, bool) {
	switch InteractionType(s) {
	case InteractionNone, InteractionQuiz, InteractionSurprise:
		return InteractionType(s), true
	default:
		return "", false
	}
}

// Validate checks the event for persistence.
func (e *TimelineEvent) Validate() error {
	if e.Title == "" {
		return apierr.Validation("title", "zorunlu alan")
	}
	if utf8.RuneCountInString(e.Title) > 120 {
		return apierr.Validation("title", "en fazla 120 karakter")
	}
	if e.EventDate.IsZero() {
		return apierr.Validation("eventDate", "zorunlu alan")
	}
	if e.Description == "" {
		return apierr.Validation("description", "zorunlu alan")
	}
	if utf8.RuneCountInString(e.MediaURL) > 512 {
		return apierr.Validation("mediaUrl", "en fazla 512 karakter")
	}
	if e.InteractionType == "" {
		e.InteractionType = InteractionNone
	}
	if _, ok := ParseInteractionType(string(e.InteractionType)); !ok {
		return apierr.Validation("interactionType", "NONE, QUIZ veya SURPRISE olmalı")
	}
	if len(e.InteractionPayload) > 0 && !json.Valid(e.InteractionPayload) {
		return apierr.Validation("interactionPayload", "geçerli JSON olmalı")
	}
	return nil
}
