package domain

import (
	"time"
	"unicode/utf8"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/audit"
)

// DreamPlan is a goal on the couple's shared "dream plan" board.
type DreamPlan struct {
	audit.Envelope
	Title       string
	Description string
	TargetDate  *time.Time // nil when no target date is set
	Status      PlanStatus
	ExtraNotes  string
}

type PlanStatus string

const (
	PlanStatusPlanned    PlanStatus = "PLANNED"
	PlanStatusInProgress PlanStatus = "IN_PROGRESS"
	PlanStatusCompleted  PlanStatus = "COMPLETED"
	PlanStatusArchived   PlanStatus = "ARCHIVED"
)

// ParsePlanStatus returns the PlanStatus for s, or false when s names no known status.
func ParsePlanStatus(s string) (PlanStatus, bool) {
	switch PlanStatus(s) {
	case PlanStatusPlanned, PlanStatusInProgress, PlanStatusCompleted, PlanStatusArchived:
		return PlanStatus(s), true
	default:
		return "", false
	}
}

// Validate checks the plan for persistence. Returns the first failing field as a validation failure.
func (p *DreamPlan) Validate() error {
	if p.Title == "" {
		return apierr.Validation("title", "zorunlu alan")
	}
	if utf8.RuneCountInString(p.Title) > 120 {
		return apierr.Validation("title", "en fazla 120 karakter")
	}
	if p.Description == "" {
		return apierr.Validation("description", "zorunlu alan")
	}
	if p.Status == "" {
		p.Status = PlanStatusPlanned
	}
	if _, ok := ParsePlanStatus(string(p.Status)); !ok {
		return apierr.Validation("status", "PLANNED, IN_PROGRESS, COMPLETED veya ARCHIVED olmalı")
	}
	return nil
}
