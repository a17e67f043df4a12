package service

import (
	"time"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/plan/domain"
)

const isoDate = "2006-01-02"

func toDTO(p *domain.DreamPlan) DreamPlanDTO {
	dto := DreamPlanDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		ExtraNotes:  p.ExtraNotes,
	}
	if p.TargetDate != nil {
		dto.TargetDate = p.TargetDate.Format(isoDate)
	}
	return dto
}

// toEntity builds a fresh plan from the DTO. Audit fields stay unset for the
// store to assign; any id in the DTO is ignored.
func toEntity(dto DreamPlanDTO) (*domain.DreamPlan, error) {
	p := &domain.DreamPlan{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      domain.PlanStatus(dto.Status),
		ExtraNotes:  dto.ExtraNotes,
	}
	td, err := parseTargetDate(dto.TargetDate)
	if err != nil {
		return nil, err
	}
	p.TargetDate = td
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// applyUpdate overwrites all non-audit fields of the existing plan in place.
func applyUpdate(dto DreamPlanDTO, p *domain.DreamPlan) error {
	td, err := parseTargetDate(dto.TargetDate)
	if err != nil {
		return err
	}
	p.Title = dto.Title
	p.Description = dto.Description
	p.TargetDate = td
	p.Status = domain.PlanStatus(dto.Status)
	p.ExtraNotes = dto.ExtraNotes
	return p.Validate()
}

func parseTargetDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return nil, apierr.Validation("targetDate", "YYYY-MM-DD biçiminde olmalı")
	}
	return &t, nil
}
