// Package audit provides the shared audit envelope embedded in every persisted
// entity, and the actor context used to attribute writes to the acting session.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SystemActor is recorded for writes that happen outside a user session (e.g. cmd/seed).
const SystemActor = "_system"

// Envelope carries the identifier and audit metadata shared by all entity kinds.
// The store layer assigns every field; client input never reaches them.
type Envelope struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// StampCreate assigns a fresh id (unless one is already set) and initializes all
// audit fields to now/actor. Called by repositories on insert, exactly once.
func (e *Envelope) StampCreate(actor string, now time.Time) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	e.CreatedBy = actor
	e.UpdatedBy = actor
}

// StampUpdate refreshes updatedAt/updatedBy. createdAt/createdBy are never touched.
func (e *Envelope) StampUpdate(actor string, now time.Time) {
	e.UpdatedAt = now
	e.UpdatedBy = actor
}

type contextKey struct{ name string }

var actorKey = contextKey{"actor"}

// WithActor returns a context carrying the acting session's username.
// The session middleware sets it; repositories read it when stamping.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey, username)
}

// Actor returns the acting username from context, or SystemActor when none is set.
func Actor(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey).(string); ok && v != "" {
		return v
	}
	return SystemActor
}
