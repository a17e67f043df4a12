package repository

import (
	"context"

	"milestone-tracker/backend/internal/quiz/domain"
)

// QuestionRepository defines persistence for quiz questions. The store assigns
// id and audit fields on Create/Update; callers never set them.
type QuestionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.QuizQuestion, error)
	List(ctx context.Context) ([]*domain.QuizQuestion, error)
	ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]*domain.QuizQuestion, error)
	Create(ctx context.Context, q *domain.QuizQuestion) error
	Update(ctx context.Context, q *domain.QuizQuestion) error
	Delete(ctx context.Context, id string) error
}

// ResultRepository defines persistence for quiz results.
type ResultRepository interface {
	Create(ctx context.Context, r *domain.QuizResult) error
	ListByUsername(ctx context.Context, username string) ([]*domain.QuizResult, error)
}
