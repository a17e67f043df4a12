package domain

import (
	"encoding/json"
	"unicode/utf8"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/audit"
)

// QuizQuestion is a multiple-choice question. Options is a JSON object mapping
// option keys to their display labels; CorrectOption is the index of the right
// answer within that mapping.
type QuizQuestion struct {
	audit.Envelope
	Question       string
	Options        json.RawMessage
	CorrectOption  int16
	Explanation    string
	RewardMediaURL string
	Difficulty     Difficulty
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty returns the Difficulty for s, or false when s names no known level.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	default:
		return "", false
	}
}

// Validate checks the question for persistence.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return apierr.Validation("question", "zorunlu alan")
	}
	if len(q.Options) == 0 {
		return apierr.Validation("options", "zorunlu alan")
	}
	var opts map[string]string
	if err := json.Unmarshal(q.Options, &opts); err != nil || len(opts) == 0 {
		return apierr.Validation("options", "anahtar-etiket eşlemesi olmalı")
	}
	if q.CorrectOption < 0 {
		return apierr.Validation("correctOption", "negatif olamaz")
	}
	if utf8.RuneCountInString(q.RewardMediaURL) > 512 {
		return apierr.Validation("rewardMediaUrl", "en fazla 512 karakter")
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyEasy
	}
	if _, ok := ParseDifficulty(string(q.Difficulty)); !ok {
		return apierr.Validation("difficulty", "EASY, MEDIUM veya HARD olmalı")
	}
	return nil
}
