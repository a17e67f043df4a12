package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/storage"
	"milestone-tracker/backend/internal/timeline/domain"
)

// mediaFolder is the object store folder for timeline attachments.
const mediaFolder = "timeline"

// Repo is the minimal timeline repository needed by the service.
type Repo interface {
	GetByID(ctx context.Context, id string) (*domain.TimelineEvent, error)
	List(ctx context.Context) ([]*domain.TimelineEvent, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.TimelineEvent, error)
	Create(ctx context.Context, e *domain.TimelineEvent) error
	Update(ctx context.Context, e *domain.TimelineEvent) error
	Delete(ctx context.Context, id string) error
}

// Service implements timeline event CRUD, range queries, and media upload.
type Service struct {
	repo  Repo
	store storage.ObjectStorage
}

// NewService returns a Service backed by the given repository and object store.
func NewService(repo Repo, store storage.ObjectStorage) *Service {
	return &Service{repo: repo, store: store}
}

// List returns all events ordered by event date ascending.
func (s *Service) List(ctx context.Context) ([]TimelineEventDTO, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(events), nil
}

// ListBetween returns events dated within [start, end], both inclusive, in
// YYYY-MM-DD form, ordered ascending. A start after end yields an empty list.
func (s *Service) ListBetween(ctx context.Context, start, end string) ([]TimelineEventDTO, error) {
	st, err := parseRangeDate("startDate", start)
	if err != nil {
		return nil, err
	}
	en, err := parseRangeDate("endDate", end)
	if err != nil {
		return nil, err
	}
	if st.After(en) {
		return []TimelineEventDTO{}, nil
	}
	events, err := s.repo.ListBetween(ctx, st, en)
	if err != nil {
		return nil, err
	}
	return toDTOs(events), nil
}

// GetByID returns the event for id, or a not-found failure.
func (s *Service) GetByID(ctx context.Context, id string) (TimelineEventDTO, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return TimelineEventDTO{}, err
	}
	return toDTO(e), nil
}

// Create persists a new event; the store assigns id and audit fields.
func (s *Service) Create(ctx context.Context, dto TimelineEventDTO) (TimelineEventDTO, error) {
	e, err := toEntity(dto)
	if err != nil {
		return TimelineEventDTO{}, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return TimelineEventDTO{}, err
	}
	return toDTO(e), nil
}

// Update loads the event, overwrites its non-audit fields from the DTO, and saves it.
func (s *Service) Update(ctx context.Context, id string, dto TimelineEventDTO) (TimelineEventDTO, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return TimelineEventDTO{}, err
	}
	if err := applyUpdate(dto, e); err != nil {
		return TimelineEventDTO{}, err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return TimelineEventDTO{}, err
	}
	return toDTO(e), nil
}

// Delete removes the event and cleans up its media attachment. A failed media
// deletion is logged, never surfaced; the event itself is always removed.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if e.MediaURL != "" {
		if err := s.store.Delete(ctx, e.MediaURL); err != nil {
			log.Printf("timeline: media cleanup for event %s failed: %v", id, err)
		}
	}
	return nil
}

// UploadAndCreate stores the file in the object store and creates an event
// referencing the resulting public URL. A failed upload fails the request; no
// event is created.
func (s *Service) UploadAndCreate(ctx context.Context, req UploadRequest) (TimelineEventDTO, error) {
	if len(req.FileData) == 0 {
		return TimelineEventDTO{}, apierr.Validation("file", "zorunlu alan")
	}
	dto := TimelineEventDTO{
		Title:           req.Title,
		EventDate:       req.EventDate,
		Description:     req.Description,
		InteractionType: req.InteractionType,
	}
	if req.InteractionPayload != "" {
		if !json.Valid([]byte(req.InteractionPayload)) {
			return TimelineEventDTO{}, apierr.Validation("interactionPayload", "geçerli JSON olmalı")
		}
		dto.InteractionPayload = json.RawMessage(req.InteractionPayload)
	}
	// Validate the event fields before touching the object store so a bad
	// request never leaves an orphaned upload behind.
	if _, err := toEntity(dto); err != nil {
		return TimelineEventDTO{}, err
	}
	url, err := s.store.Upload(ctx, req.FileData, req.ContentType, mediaFolder)
	if err != nil {
		return TimelineEventDTO{}, err
	}
	dto.MediaURL = url
	return s.Create(ctx, dto)
}

func (s *Service) find(ctx context.Context, id string) (*domain.TimelineEvent, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apierr.NotFound("timeline event", id)
	}
	return e, nil
}

func parseRangeDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, apierr.Validation(field, "zorunlu alan")
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, apierr.Validation(field, "YYYY-MM-DD biçiminde olmalı")
	}
	return t, nil
}

func toDTOs(events []*domain.TimelineEvent) []TimelineEventDTO {
	out := make([]TimelineEventDTO, len(events))
	for i, e := range events {
		out[i] = toDTO(e)
	}
	return out
}
