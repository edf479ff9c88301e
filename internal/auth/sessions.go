package auth

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/wordbook/internal/config"
	"github.com/mrlokans/wordbook/internal/database"
	"github.com/mrlokans/wordbook/internal/entities"
	"github.com/mrlokans/wordbook/internal/review"
)

// Session data keys
const (
	SessionKeyUserID       = "user_id"
	SessionKeyUsername     = "username"
	SessionKeyReviewIndex  = "review_index"
	SessionKeyReviewWord   = "review_word"
	SessionKeyReviewReveal = "review_reveal"
)

const sqliteSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	expiry REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`

const postgresSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	data BYTEA NOT NULL,
	expiry TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry);`

// SessionManager wraps scs.SessionManager with application-specific methods.
type SessionManager struct {
	*scs.SessionManager
	cleanup interface{ StopCleanup() }
}

// NewSessionManager creates the sessions table if needed and returns a
// manager backed by the store matching the database dialect.
func NewSessionManager(sqlDB *sql.DB, dialect database.Dialect, cfg config.Auth) (*SessionManager, error) {
	sm := scs.New()
	result := &SessionManager{SessionManager: sm}

	switch dialect {
	case database.DialectPostgres:
		if _, err := sqlDB.Exec(postgresSessionsTable); err != nil {
			return nil, fmt.Errorf("failed to create sessions table: %w", err)
		}
		store := postgresstore.New(sqlDB)
		sm.Store = store
		result.cleanup = store
	default:
		if _, err := sqlDB.Exec(sqliteSessionsTable); err != nil {
			return nil, fmt.Errorf("failed to create sessions table: %w", err)
		}
		store := sqlite3store.New(sqlDB)
		sm.Store = store
		result.cleanup = store
	}

	sm.Lifetime = cfg.SessionLifetime
	sm.IdleTimeout = cfg.SessionLifetime / 2

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return result, nil
}

// Close stops the store's background expiry sweep.
func (sm *SessionManager) Close() {
	if sm.cleanup != nil {
		sm.cleanup.StopCleanup()
	}
}

// CreateSession stores the user in a fresh session after a successful login.
func (sm *SessionManager) CreateSession(r *http.Request, user *entities.User) error {
	// Renew token to prevent session fixation
	if err := sm.RenewToken(r.Context()); err != nil {
		return err
	}

	// Stored as int to match GetInt() retrieval
	sm.Put(r.Context(), SessionKeyUserID, int(user.ID))
	sm.Put(r.Context(), SessionKeyUsername, user.Username)

	return nil
}

// DestroySession removes all session data and invalidates the session.
func (sm *SessionManager) DestroySession(r *http.Request) error {
	return sm.Destroy(r.Context())
}

// GetUserID retrieves the user ID from the session.
// Returns 0 if not authenticated.
func (sm *SessionManager) GetUserID(r *http.Request) uint {
	return uint(sm.GetInt(r.Context(), SessionKeyUserID))
}

// GetUsername retrieves the username from the session.
func (sm *SessionManager) GetUsername(r *http.Request) string {
	return sm.GetString(r.Context(), SessionKeyUsername)
}

// IsAuthenticated returns true if the request has a logged-in session.
func (sm *SessionManager) IsAuthenticated(r *http.Request) bool {
	return sm.GetUserID(r) != 0
}

// RequireSession returns the session's user id or ErrUnauthenticated.
func (sm *SessionManager) RequireSession(r *http.Request) (uint, error) {
	userID := sm.GetUserID(r)
	if userID == 0 {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}

// LoadCursor reads the review cursor from the session.
func (sm *SessionManager) LoadCursor(r *http.Request) review.Cursor {
	ctx := r.Context()
	return review.Cursor{
		Index:    sm.GetInt(ctx, SessionKeyReviewIndex),
		Word:     sm.GetString(ctx, SessionKeyReviewWord),
		Revealed: sm.GetBool(ctx, SessionKeyReviewReveal),
	}
}

// SaveCursor writes the review cursor back to the session.
func (sm *SessionManager) SaveCursor(r *http.Request, cursor review.Cursor) {
	ctx := r.Context()
	sm.Put(ctx, SessionKeyReviewIndex, cursor.Index)
	sm.Put(ctx, SessionKeyReviewWord, cursor.Word)
	sm.Put(ctx, SessionKeyReviewReveal, cursor.Revealed)
}

// ResetCursor returns the review cursor to the first word.
func (sm *SessionManager) ResetCursor(r *http.Request) {
	ctx := r.Context()
	sm.Remove(ctx, SessionKeyReviewIndex)
	sm.Remove(ctx, SessionKeyReviewWord)
	sm.Remove(ctx, SessionKeyReviewReveal)
}
