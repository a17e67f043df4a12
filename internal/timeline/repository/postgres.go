package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"milestone-tracker/backend/internal/audit"
	"milestone-tracker/backend/internal/timeline/domain"
)

const eventColumns = "id, title, event_date, description, media_url, interaction_type, interaction_payload, created_at, updated_at, created_by, updated_by"

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a timeline event repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the event for id, or nil if not found.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.TimelineEvent, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM timeline_events WHERE id = $1", id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// List returns all events ordered by event date ascending.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.TimelineEvent, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+eventColumns+" FROM timeline_events ORDER BY event_date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ListBetween returns events whose date falls within [start, end], both bounds
// inclusive, ordered by event date ascending.
func (r *PostgresRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.TimelineEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM timeline_events WHERE event_date >= $1 AND event_date <= $2 ORDER BY event_date ASC",
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// Create persists the event, assigning id and audit fields from the acting session.
func (r *PostgresRepository) Create(ctx context.Context, e *domain.TimelineEvent) error {
	e.StampCreate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO timeline_events (`+eventColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.Title, e.EventDate, e.Description, nullString(e.MediaURL),
		string(e.InteractionType), nullBytes(e.InteractionPayload),
		e.CreatedAt, e.UpdatedAt, e.CreatedBy, e.UpdatedBy)
	return err
}

// Update rewrites all non-audit fields and refreshes updated_at/updated_by.
func (r *PostgresRepository) Update(ctx context.Context, e *domain.TimelineEvent) error {
	e.StampUpdate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`UPDATE timeline_events
		 SET title = $2, event_date = $3, description = $4, media_url = $5,
		     interaction_type = $6, interaction_payload = $7, updated_at = $8, updated_by = $9
		 WHERE id = $1`,
		e.ID, e.Title, e.EventDate, e.Description, nullString(e.MediaURL),
		string(e.InteractionType), nullBytes(e.InteractionPayload), e.UpdatedAt, e.UpdatedBy)
	return err
}

// Delete removes the event with the given id. Missing rows are not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM timeline_events WHERE id = $1", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.TimelineEvent, error) {
	var e domain.TimelineEvent
	var mediaURL sql.NullString
	var interactionType string
	var payload []byte
	if err := row.Scan(&e.ID, &e.Title, &e.EventDate, &e.Description, &mediaURL, &interactionType,
		&payload, &e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy); err != nil {
		return nil, err
	}
	e.MediaURL = mediaURL.String
	e.InteractionType = domain.InteractionType(interactionType)
	e.InteractionPayload = payload
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.TimelineEvent, error) {
	var out []*domain.TimelineEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
