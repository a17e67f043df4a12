package repository

import (
	"context"
	"time"

	"milestone-tracker/backend/internal/timeline/domain"
)

// Repository defines persistence for timeline events. The store assigns id and
// audit fields on Create/Update; callers never set them.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.TimelineEvent, error)
	List(ctx context.Context) ([]*domain.TimelineEvent, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.TimelineEvent, error)
	Create(ctx context.Context, e *domain.TimelineEvent) error
	Update(ctx context.Context, e *domain.TimelineEvent) error
	Delete(ctx context.Context, id string) error
}
