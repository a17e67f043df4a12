package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"milestone-tracker/backend/internal/audit"
	"milestone-tracker/backend/internal/quiz/domain"
)

const questionColumns = "id, question, options, correct_option, explanation, reward_media_url, difficulty, created_at, updated_at, created_by, updated_by"

type PostgresQuestionRepository struct {
	db *sql.DB
}

// NewPostgresQuestionRepository returns a quiz question repository that uses the given db for persistence.
func NewPostgresQuestionRepository(db *sql.DB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

// GetByID returns the question for id, or nil if not found.
func (r *PostgresQuestionRepository) GetByID(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+questionColumns+" FROM quiz_questions WHERE id = $1", id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return q, nil
}

// List returns all questions ordered by creation time ascending.
func (r *PostgresQuestionRepository) List(ctx context.Context) ([]*domain.QuizQuestion, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+questionColumns+" FROM quiz_questions ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQuestions(rows)
}

// ListByDifficulty returns questions at the given level ordered by creation time ascending.
func (r *PostgresQuestionRepository) ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]*domain.QuizQuestion, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+questionColumns+" FROM quiz_questions WHERE difficulty = $1 ORDER BY created_at ASC",
		string(d))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQuestions(rows)
}

// Create persists the question, assigning id and audit fields from the acting session.
func (r *PostgresQuestionRepository) Create(ctx context.Context, q *domain.QuizQuestion) error {
	q.StampCreate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_questions (`+questionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		q.ID, q.Question, []byte(q.Options), q.CorrectOption, nullString(q.Explanation),
		nullString(q.RewardMediaURL), string(q.Difficulty),
		q.CreatedAt, q.UpdatedAt, q.CreatedBy, q.UpdatedBy)
	return err
}

// Update rewrites all non-audit fields and refreshes updated_at/updated_by.
func (r *PostgresQuestionRepository) Update(ctx context.Context, q *domain.QuizQuestion) error {
	q.StampUpdate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`UPDATE quiz_questions
		 SET question = $2, options = $3, correct_option = $4, explanation = $5,
		     reward_media_url = $6, difficulty = $7, updated_at = $8, updated_by = $9
		 WHERE id = $1`,
		q.ID, q.Question, []byte(q.Options), q.CorrectOption, nullString(q.Explanation),
		nullString(q.RewardMediaURL), string(q.Difficulty), q.UpdatedAt, q.UpdatedBy)
	return err
}

// Delete removes the question with the given id. Missing rows are not an error.
func (r *PostgresQuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM quiz_questions WHERE id = $1", id)
	return err
}

const resultColumns = "id, username, score, max_score, completed_at, message_shown, created_at, updated_at, created_by, updated_by"

type PostgresResultRepository struct {
	db *sql.DB
}

// NewPostgresResultRepository returns a quiz result repository that uses the given db for persistence.
func NewPostgresResultRepository(db *sql.DB) *PostgresResultRepository {
	return &PostgresResultRepository{db: db}
}

// Create persists the result, assigning id and audit fields from the acting session.
func (r *PostgresResultRepository) Create(ctx context.Context, res *domain.QuizResult) error {
	res.StampCreate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (`+resultColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.ID, res.Username, res.Score, res.MaxScore, nullTime(res.CompletedAt),
		nullString(res.MessageShown), res.CreatedAt, res.UpdatedAt, res.CreatedBy, res.UpdatedBy)
	return err
}

// ListByUsername returns the user's results ordered by completion time descending,
// results without a completion time last.
func (r *PostgresResultRepository) ListByUsername(ctx context.Context, username string) ([]*domain.QuizResult, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+resultColumns+" FROM quiz_results WHERE username = $1 ORDER BY completed_at DESC NULLS LAST",
		username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.QuizResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*domain.QuizQuestion, error) {
	var q domain.QuizQuestion
	var options []byte
	var explanation, rewardMediaURL sql.NullString
	var difficulty string
	if err := row.Scan(&q.ID, &q.Question, &options, &q.CorrectOption, &explanation, &rewardMediaURL,
		&difficulty, &q.CreatedAt, &q.UpdatedAt, &q.CreatedBy, &q.UpdatedBy); err != nil {
		return nil, err
	}
	q.Options = options
	q.Explanation = explanation.String
	q.RewardMediaURL = rewardMediaURL.String
	q.Difficulty = domain.Difficulty(difficulty)
	return &q, nil
}

func collectQuestions(rows *sql.Rows) ([]*domain.QuizQuestion, error) {
	var out []*domain.QuizQuestion
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanResult(row rowScanner) (*domain.QuizResult, error) {
	var res domain.QuizResult
	var completedAt sql.NullTime
	var messageShown sql.NullString
	if err := row.Scan(&res.ID, &res.Username, &res.Score, &res.MaxScore, &completedAt, &messageShown,
		&res.CreatedAt, &res.UpdatedAt, &res.CreatedBy, &res.UpdatedBy); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		res.CompletedAt = &t
	}
	res.MessageShown = messageShown.String
	return &res, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
