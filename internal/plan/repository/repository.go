package repository

import (
	"context"

	"milestone-tracker/backend/internal/plan/domain"
)

// Repository defines persistence for dream plans. The store assigns id and
// audit fields on Create/Update; callers never set them.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.DreamPlan, error)
	List(ctx context.Context) ([]*domain.DreamPlan, error)
	ListByStatus(ctx context.Context, status domain.PlanStatus) ([]*domain.DreamPlan, error)
	Create(ctx context.Context, p *domain.DreamPlan) error
	Update(ctx context.Context, p *domain.DreamPlan) error
	Delete(ctx context.Context, id string) error
}
