package service

import (
	"context"
	"math/rand/v2"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/quiz/domain"
)

// QuestionRepo is the minimal question repository needed by the service.
type QuestionRepo interface {
	GetByID(ctx context.Context, id string) (*domain.QuizQuestion, error)
	List(ctx context.Context) ([]*domain.QuizQuestion, error)
	ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]*domain.QuizQuestion, error)
	Create(ctx context.Context, q *domain.QuizQuestion) error
	Update(ctx context.Context, q *domain.QuizQuestion) error
	Delete(ctx context.Context, id string) error
}

// ResultRepo is the minimal result repository needed by the service.
type ResultRepo interface {
	Create(ctx context.Context, r *domain.QuizResult) error
	ListByUsername(ctx context.Context, username string) ([]*domain.QuizResult, error)
}

// Service implements quiz question CRUD, random selection, and result recording.
type Service struct {
	questions QuestionRepo
	results   ResultRepo
}

// NewService returns a Service backed by the given repositories.
func NewService(questions QuestionRepo, results ResultRepo) *Service {
	return &Service{questions: questions, results: results}
}

// ListQuestions returns all questions, or only those at the given difficulty
// when it is non-nil.
func (s *Service) ListQuestions(ctx context.Context, difficulty *domain.Difficulty) ([]QuizQuestionDTO, error) {
	qs, err := s.poolFor(ctx, difficulty)
	if err != nil {
		return nil, err
	}
	return questionsToDTOs(qs), nil
}

// GetQuestion returns the question for id, or a not-found failure.
func (s *Service) GetQuestion(ctx context.Context, id string) (QuizQuestionDTO, error) {
	q, err := s.findQuestion(ctx, id)
	if err != nil {
		return QuizQuestionDTO{}, err
	}
	return questionToDTO(q), nil
}

// CreateQuestion persists a new question; the store assigns id and audit fields.
func (s *Service) CreateQuestion(ctx context.Context, dto QuizQuestionDTO) (QuizQuestionDTO, error) {
	q, err := questionToEntity(dto)
	if err != nil {
		return QuizQuestionDTO{}, err
	}
	if err := s.questions.Create(ctx, q); err != nil {
		return QuizQuestionDTO{}, err
	}
	return questionToDTO(q), nil
}

// UpdateQuestion loads the question, overwrites its non-audit fields from the DTO, and saves it.
func (s *Service) UpdateQuestion(ctx context.Context, id string, dto QuizQuestionDTO) (QuizQuestionDTO, error) {
	q, err := s.findQuestion(ctx, id)
	if err != nil {
		return QuizQuestionDTO{}, err
	}
	if err := applyQuestionUpdate(dto, q); err != nil {
		return QuizQuestionDTO{}, err
	}
	if err := s.questions.Update(ctx, q); err != nil {
		return QuizQuestionDTO{}, err
	}
	return questionToDTO(q), nil
}

// DeleteQuestion removes the question, failing with not-found when it does not exist.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := s.findQuestion(ctx, id); err != nil {
		return err
	}
	return s.questions.Delete(ctx, id)
}

// GetRandomQuestions picks count questions uniformly without replacement from
// the full set, or from the difficulty subset when it is non-nil. When the
// pool holds fewer than count questions the whole pool is returned.
func (s *Service) GetRandomQuestions(ctx context.Context, count int, difficulty *domain.Difficulty) ([]QuizQuestionDTO, error) {
	if count < 1 {
		return nil, apierr.Validation("count", "pozitif bir sayı olmalı")
	}
	pool, err := s.poolFor(ctx, difficulty)
	if err != nil {
		return nil, err
	}
	if len(pool) <= count {
		return questionsToDTOs(pool), nil
	}
	picked := make([]*domain.QuizQuestion, 0, count)
	for _, i := range rand.Perm(len(pool))[:count] {
		picked = append(picked, pool[i])
	}
	return questionsToDTOs(picked), nil
}

// RecordResult persists a result exactly as reported; the score is never
// checked against the question set.
func (s *Service) RecordResult(ctx context.Context, dto QuizResultDTO) (QuizResultDTO, error) {
	r, err := resultToEntity(dto)
	if err != nil {
		return QuizResultDTO{}, err
	}
	if err := s.results.Create(ctx, r); err != nil {
		return QuizResultDTO{}, err
	}
	return resultToDTO(r), nil
}

// ListResultsForUser returns the user's results newest-completed first.
func (s *Service) ListResultsForUser(ctx context.Context, username string) ([]QuizResultDTO, error) {
	if username == "" {
		return nil, apierr.Validation("username", "zorunlu alan")
	}
	rs, err := s.results.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]QuizResultDTO, len(rs))
	for i, r := range rs {
		out[i] = resultToDTO(r)
	}
	return out, nil
}

func (s *Service) poolFor(ctx context.Context, difficulty *domain.Difficulty) ([]*domain.QuizQuestion, error) {
	if difficulty == nil {
		return s.questions.List(ctx)
	}
	return s.questions.ListByDifficulty(ctx, *difficulty)
}

func (s *Service) findQuestion(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apierr.NotFound("quiz question", id)
	}
	return q, nil
}

func questionsToDTOs(qs []*domain.QuizQuestion) []QuizQuestionDTO {
	out := make([]QuizQuestionDTO, len(qs))
	for i, q := range qs {
		out[i] = questionToDTO(q)
	}
	return out
}
