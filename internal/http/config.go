package http

import (
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/auth"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database Pinger
	Words    WordService

	// Authentication
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	AuthMiddleware *auth.Middleware

	// CSRF protection is skipped when the secret is empty
	CSRFSecret    []byte
	SecureCookies bool

	Logger *zap.Logger

	// Application info
	Version string
}
