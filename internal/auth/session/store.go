// Package session holds the server-side session registry. Sessions are opaque
// tokens bound to a username with a fixed lifetime; the process restart wipes
// them, which is acceptable for a two-user application.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one live login.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Registry tracks live sessions by token.
type Registry interface {
	// Create registers a new session for username. When the user already has
	// the maximum number of live sessions, the oldest one is evicted; login
	// itself is never rejected for being over the cap.
	Create(username string) Session
	// Resolve returns the session for token if present and not expired.
	Resolve(token string) (Session, bool)
	// Revoke removes the session for token. Unknown tokens are a no-op.
	Revoke(token string)
}

// MemoryRegistry is an in-memory Registry implementation.
type MemoryRegistry struct {
	mu         sync.Mutex
	m          map[string]Session
	ttl        time.Duration
	maxPerUser int
	nowF       func() time.Time
}

// NewMemoryRegistry returns a registry issuing sessions that live for ttl,
// keeping at most maxPerUser live sessions per username.
func NewMemoryRegistry(ttl time.Duration, maxPerUser int) *MemoryRegistry {
	if maxPerUser < 1 {
		maxPerUser = 1
	}
	return &MemoryRegistry{
		m:          make(map[string]Session),
		ttl:        ttl,
		maxPerUser: maxPerUser,
		nowF:       time.Now().UTC,
	}
}

// Create registers a new session for username, evicting the user's oldest
// session when the cap is reached.
func (r *MemoryRegistry) Create(username string) Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nowF()
	r.evictLocked(username, now)
	s := Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}
	r.m[s.Token] = s
	return s
}

// Resolve returns the session for token if present and not expired. Expired
// sessions are removed on lookup.
func (r *MemoryRegistry) Resolve(token string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.m[token]
	if !ok {
		return Session{}, false
	}
	if !s.ExpiresAt.After(r.nowF()) {
		delete(r.m, token)
		return Session{}, false
	}
	return s, true
}

// Revoke removes the session for token.
func (r *MemoryRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, token)
}

// evictLocked drops the user's expired sessions, then the oldest live ones
// until a slot is free. Caller holds the mutex.
func (r *MemoryRegistry) evictLocked(username string, now time.Time) {
	var live []Session
	for token, s := range r.m {
		if s.Username != username {
			continue
		}
		if !s.ExpiresAt.After(now) {
			delete(r.m, token)
			continue
		}
		live = append(live, s)
	}
	for len(live) >= r.maxPerUser {
		oldest := 0
		for i, s := range live {
			if s.CreatedAt.Before(live[oldest].CreatedAt) {
				oldest = i
			}
		}
		delete(r.m, live[oldest].Token)
		live = append(live[:oldest], live[oldest+1:]...)
	}
}
