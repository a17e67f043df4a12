package service

import (
	"time"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/quiz/domain"
)

func questionToDTO(q *domain.QuizQuestion) QuizQuestionDTO {
	return QuizQuestionDTO{
		ID:             q.ID,
		Question:       q.Question,
		Options:        q.Options,
		CorrectOption:  q.CorrectOption,
		Explanation:    q.Explanation,
		RewardMediaURL: q.RewardMediaURL,
		Difficulty:     string(q.Difficulty),
	}
}

// questionToEntity builds a fresh question from the DTO. Audit fields stay
// unset for the store to assign; any id in the DTO is ignored.
func questionToEntity(dto QuizQuestionDTO) (*domain.QuizQuestion, error) {
	q := &domain.QuizQuestion{
		Question:       dto.Question,
		Options:        dto.Options,
		CorrectOption:  dto.CorrectOption,
		Explanation:    dto.Explanation,
		RewardMediaURL: dto.RewardMediaURL,
		Difficulty:     domain.Difficulty(dto.Difficulty),
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// applyQuestionUpdate overwrites all non-audit fields of the existing question in place.
func applyQuestionUpdate(dto QuizQuestionDTO, q *domain.QuizQuestion) error {
	q.Question = dto.Question
	q.Options = dto.Options
	q.CorrectOption = dto.CorrectOption
	q.Explanation = dto.Explanation
	q.RewardMediaURL = dto.RewardMediaURL
	q.Difficulty = domain.Difficulty(dto.Difficulty)
	return q.Validate()
}

func resultToDTO(r *domain.QuizResult) QuizResultDTO {
	dto := QuizResultDTO{
		ID:           r.ID,
		Username:     r.Username,
		Score:        r.Score,
		MaxScore:     r.MaxScore,
		MessageShown: r.MessageShown,
	}
	if r.CompletedAt != nil {
		dto.CompletedAt = r.CompletedAt.Format(time.RFC3339)
	}
	return dto
}

func resultToEntity(dto QuizResultDTO) (*domain.QuizResult, error) {
	r := &domain.QuizResult{
		Username:     dto.Username,
		Score:        dto.Score,
		MaxScore:     dto.MaxScore,
		MessageShown: dto.MessageShown,
	}
	if dto.CompletedAt != "" {
		t, err := time.Parse(time.RFC3339, dto.CompletedAt)
		if err != nil {
			return nil, apierr.Validation("completedAt", "RFC 3339 biçiminde olmalı")
		}
		r.CompletedAt = &t
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
