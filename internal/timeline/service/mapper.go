package service

import (
	"time"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/timeline/domain"
)

const isoDate = "2006-01-02"

func toDTO(e *domain.TimelineEvent) TimelineEventDTO {
	return TimelineEventDTO{
		ID:                 e.ID,
		Title:              e.Title,
		EventDate:          e.EventDate.Format(isoDate),
		Description:        e.Description,
		MediaURL:           e.MediaURL,
		InteractionType:    string(e.InteractionType),
		InteractionPayload: e.InteractionPayload,
	}
}

// toEntity builds a fresh event from the DTO. Audit fields stay unset for the
// store to assign; any id in the DTO is ignored.
func toEntity(dto TimelineEventDTO) (*domain.TimelineEvent, error) {
	ed, err := parseEventDate(dto.EventDate)
	if err != nil {
		return nil, err
	}
	e := &domain.TimelineEvent{
		Title:              dto.Title,
		EventDate:          ed,
		Description:        dto.Description,
		MediaURL:           dto.MediaURL,
		InteractionType:    domain.InteractionType(dto.InteractionType),
		InteractionPayload: dto.InteractionPayload,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// applyUpdate overwrites all non-audit fields of the existing event in place.
func applyUpdate(dto TimelineEventDTO, e *domain.TimelineEvent) error {
	ed, err := parseEventDate(dto.EventDate)
	if err != nil {
		return err
	}
	e.Title = dto.Title
	e.EventDate = ed
	e.Description = dto.Description
	e.MediaURL = dto.MediaURL
	e.InteractionType = domain.InteractionType(dto.InteractionType)
	e.InteractionPayload = dto.InteractionPayload
	return e.Validate()
}

func parseEventDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, apierr.Validation("eventDate", "zorunlu alan")
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, apierr.Validation("eventDate", "YYYY-MM-DD biçiminde olmalı")
	}
	return t, nil
}
