package service

import "encoding/json"

// QuizQuestionDTO is the wire representation of a quiz question. Audit fields
// are never exposed or accepted.
type QuizQuestionDTO struct {
	ID             string          `json:"id,omitempty"`
	Question       string          `json:"question"`
	Options        json.RawMessage `json:"options"`
	CorrectOption  int16           `json:"correctOption"`
	Explanation    string          `json:"explanation,omitempty"`
	RewardMediaURL string          `json:"rewardMediaUrl,omitempty"`
	Difficulty     string          `json:"difficulty,omitempty"`
}

// QuizResultDTO is the wire representation of a quiz result.
type QuizResultDTO struct {
	ID           string `json:"id,omitempty"`
	Username     string `json:"username"`
	Score        int    `json:"score"`
	MaxScore     int    `json:"maxScore"`
	CompletedAt  string `json:"completedAt,omitempty"`
	MessageShown string `json:"messageShown,omitempty"`
}
