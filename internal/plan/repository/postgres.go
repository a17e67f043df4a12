package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"milestone-tracker/backend/internal/audit"
	"milestone-tracker/backend/internal/plan/domain"
)

const planColumns = "id, title, description, target_date, status, extra_notes, created_at, updated_at, created_by, updated_by"

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a dream plan repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the plan for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.DreamPlan, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+planColumns+" FROM dream_plans WHERE id = $1", id)
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// List returns all plans ordered by creation time ascending.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.DreamPlan, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+planColumns+" FROM dream_plans ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlans(rows)
}

// ListByStatus returns plans with the given status ordered by target date ascending, undated plans last.
func (r *PostgresRepository) ListByStatus(ctx context.Context, status domain.PlanStatus) ([]*domain.DreamPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+planColumns+" FROM dream_plans WHERE status = $1 ORDER BY target_date ASC NULLS LAST",
		string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlans(rows)
}

// Create persists the plan, assigning id and audit fields from the acting session.
func (r *PostgresRepository) Create(ctx context.Context, p *domain.DreamPlan) error {
	p.StampCreate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dream_plans (`+planColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Title, p.Description, nullTime(p.TargetDate), string(p.Status), nullString(p.ExtraNotes),
		p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.UpdatedBy)
	return err
}

// Update rewrites all non-audit fields and refreshes updated_at/updated_by.
// created_at/created_by are never part of the statement.
func (r *PostgresRepository) Update(ctx context.Context, p *domain.DreamPlan) error {
	p.StampUpdate(audit.Actor(ctx), time.Now().UTC())
	_, err := r.db.ExecContext(ctx,
		`UPDATE dream_plans
		 SET title = $2, description = $3, target_date = $4, status = $5, extra_notes = $6,
		     updated_at = $7, updated_by = $8
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, nullTime(p.TargetDate), string(p.Status), nullString(p.ExtraNotes),
		p.UpdatedAt, p.UpdatedBy)
	return err
}

// Delete removes the plan with the given id. Missing rows are not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM dream_plans WHERE id = $1", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.DreamPlan, error) {
	var p domain.DreamPlan
	var targetDate sql.NullTime
	var extraNotes sql.NullString
	var status string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &targetDate, &status, &extraNotes,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy); err != nil {
		return nil, err
	}
	if targetDate.Valid {
		t := targetDate.Time
		p.TargetDate = &t
	}
	p.Status = domain.PlanStatus(status)
	p.ExtraNotes = extraNotes.String
	return &p, nil
}

func collectPlans(rows *sql.Rows) ([]*domain.DreamPlan, error) {
	var out []*domain.DreamPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
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
