package models

import (
	"time"
)

// Session is a browser session created by the GitHub OAuth sign-in demo.
// The session ID doubles as the cookie value, so it must be unguessable
// (a v4 UUID from shared.GenerateID).
type Session struct {
	id        string
	userLogin string
	userEmail string
	createdAt time.Time
	expiresAt time.Time
}

// NewSession creates a Session for the given GitHub user with the supplied
// time-to-live.
func NewSession(id, userLogin, userEmail string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		id:        id,
		userLogin: userLogin,
		userEmail: userEmail,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

func (s *Session) ID() string           { return s.id }
func (s *Session) UserLogin() string    { return s.userLogin }
func (s *Session) UserEmail() string    { return s.userEmail }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

func (s *Session) SetCreatedAt(t time.Time) { s.createdAt = t }
func (s *Session) SetExpiresAt(t time.Time) { s.expiresAt = t }

// Expired reports whether the session lapsed before now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.expiresAt)
}
