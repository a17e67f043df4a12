package service

import (
	"context"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/plan/domain"
)

// Repo is the minimal dream plan repository needed by the service.
type Repo interface {
	GetByID(ctx context.Context, id string) (*domain.DreamPlan, error)
	List(ctx context.Context) ([]*domain.DreamPlan, error)
	ListByStatus(ctx context.Context, status domain.PlanStatus) ([]*domain.DreamPlan, error)
	Create(ctx context.Context, p *domain.DreamPlan) error
	Update(ctx context.Context, p *domain.DreamPlan) error
	Delete(ctx context.Context, id string) error
}

// Service implements dream plan CRUD over the repository, mapping DTOs to entities.
type Service struct {
	repo Repo
}

// NewService returns a Service backed by the given repository.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// List returns all plans.
func (s *Service) List(ctx context.Context) ([]DreamPlanDTO, error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(plans), nil
}

// ListByStatus returns plans with the given status, ordered by target date ascending.
func (s *Service) ListByStatus(ctx context.Context, status domain.PlanStatus) ([]DreamPlanDTO, error) {
	plans, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toDTOs(plans), nil
}

// GetByID returns the plan for id, or a not-found failure.
func (s *Service) GetByID(ctx context.Context, id string) (DreamPlanDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return DreamPlanDTO{}, err
	}
	return toDTO(p), nil
}

// Create persists a new plan; the store assigns id and audit fields.
func (s *Service) Create(ctx context.Context, dto DreamPlanDTO) (DreamPlanDTO, error) {
	p, err := toEntity(dto)
	if err != nil {
		return DreamPlanDTO{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return DreamPlanDTO{}, err
	}
	return toDTO(p), nil
}

// Update loads the plan, overwrites its non-audit fields from the DTO, and saves it.
func (s *Service) Update(ctx context.Context, id string, dto DreamPlanDTO) (DreamPlanDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return DreamPlanDTO{}, err
	}
	if err := applyUpdate(dto, p); err != nil {
		return DreamPlanDTO{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return DreamPlanDTO{}, err
	}
	return toDTO(p), nil
}

// Delete removes the plan, failing with not-found when it does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) find(ctx context.Context, id string) (*domain.DreamPlan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apierr.NotFound("dream plan", id)
	}
	return p, nil
}

func toDTOs(plans []*domain.DreamPlan) []DreamPlanDTO {
	out := make([]DreamPlanDTO, len(plans))
	for i, p := range plans {
		out[i] = toDTO(p)
	}
	return out
}
