package service

import (
	"context"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/auth/session"
	"milestone-tracker/backend/internal/security"
)

// Service authenticates against the fixed credential table and manages sessions.
type Service struct {
	users    map[string]string // username → bcrypt hash
	hasher   *security.Hasher
	sessions session.Registry
}

// NewService returns an auth Service over the given credential table and
// session registry. users maps usernames to bcrypt hashes.
func NewService(users map[string]string, hasher *security.Hasher, sessions session.Registry) *Service {
	return &Service{users: users, hasher: hasher, sessions: sessions}
}

// Login verifies the credentials and establishes a session. An unknown
// username and a wrong password fail identically.
func (s *Service) Login(ctx context.Context, username, password string) (session.Session, error) {
	hash, ok := s.users[username]
	if !ok {
		// Burn a comparison anyway so unknown usernames take as long as wrong passwords.
		_ = s.hasher.Compare("$2a$12$C6UzMDM.H6dfI/f/IKcEeO7ZBlTRVE9VyTNkmFqBWvIWgtJCwKx2y", []byte(password))
		return session.Session{}, apierr.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(hash, []byte(password)); err != nil {
		return session.Session{}, apierr.ErrInvalidCredentials
	}
	return s.sessions.Create(username), nil
}

// Logout revokes the session for token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) {
	s.sessions.Revoke(token)
}

// Resolve returns the live session for token, or an unauthorized failure.
func (s *Service) Resolve(ctx context.Context, token string) (session.Session, error) {
	sess, ok := s.sessions.Resolve(token)
	if !ok {
		return session.Session{}, apierr.ErrUnauthorized
	}
	return sess, nil
}
