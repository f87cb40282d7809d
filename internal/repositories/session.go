package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// SessionRepository persists browser sessions for the OAuth sign-in demo.
// Sessions are keyed by their uuid, which is also the cookie value, so the
// generic Repository interface (sequence numbers, soft deletes) does not
// apply here.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_login, user_email, created_at, expires_at) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, session.ID(), session.UserLogin(), session.UserEmail(), session.CreatedAt(), session.ExpiresAt())
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// Get retrieves a live session by ID. Expired sessions are reported as
// not found so callers treat the browser as signed out.
func (r *SessionRepository) Get(id string) (*models.Session, error) {
	query := `
		SELECT id, user_login, user_email, created_at, expires_at
		FROM sessions
		WHERE id = ?
	`

	var (
		sessionID string
		userLogin string
		userEmail string
		createdAt time.Time
		expiresAt time.Time
	)

	err := r.db.QueryRow(query, id).Scan(&sessionID, &userLogin, &userEmail, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	session := models.NewSession(sessionID, userLogin, userEmail, 0)
	session.SetCreatedAt(createdAt)
	session.SetExpiresAt(expiresAt)

	if session.Expired(time.Now()) {
		return nil, fmt.Errorf("%w: %s", shared.ErrSessionExpired, id)
	}

	return session, nil
}

// Delete removes a session by ID (sign-out)
func (r *SessionRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSessionNotFound, id)
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry and returns how
// many were removed.
func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}
