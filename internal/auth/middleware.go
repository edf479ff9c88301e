package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys for user data
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
)

// LoginPath is where unauthenticated browsers are sent.
const LoginPath = "/"

// Middleware rejects requests without a logged-in session.
type Middleware struct {
	service        *Service
	sessionManager *SessionManager
	publicPaths    map[string]bool
	log            *zap.Logger
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, sessionManager *SessionManager, log *zap.Logger) *Middleware {
	if log == nil {
		log = zap.NewNop()
	}
	publicPaths := map[string]bool{
		LoginPath:      true,
		"/health":      true,
		"/ping":        true,
		"/favicon.ico": true,
	}

	return &Middleware{
		service:        service,
		sessionManager: sessionManager,
		publicPaths:    publicPaths,
		log:            log,
	}
}

// Handler returns a Gin middleware handler that authenticates requests.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		userID, err := m.sessionManager.RequireSession(c.Request)
		if err == nil {
			err = m.setUserContext(c, userID)
		}
		if err != nil {
			m.reject(c, err)
			return
		}

		c.Next()
	}
}

// setUserContext confirms the session's user still exists and exposes it
// to handlers.
func (m *Middleware) setUserContext(c *gin.Context, userID uint) error {
	user, err := m.service.GetUserByID(userID)
	if errors.Is(err, ErrUserNotFound) {
		return ErrUnauthenticated
	}
	if err != nil {
		return err
	}
	c.Set(ContextKeyUserID, user.ID)
	c.Set(ContextKeyUsername, user.Username)
	return nil
}

func (m *Middleware) reject(c *gin.Context, err error) {
	if !errors.Is(err, ErrUnauthenticated) {
		m.log.Error("Session user lookup failed", zap.Error(err))
		if IsAPIRequest(c) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		} else {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	if IsAPIRequest(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return
	}

	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

// isPublicPath checks if a path should be accessible without authentication.
func (m *Middleware) isPublicPath(path string) bool {
	if m.publicPaths[path] {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// IsAPIRequest reports whether the caller expects JSON rather than HTML.
func IsAPIRequest(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// RequireSession returns the authenticated user's ID from the context, or
// ErrUnauthenticated when the middleware did not admit a user.
func RequireSession(c *gin.Context) (uint, error) {
	userID := GetUserID(c)
	if userID == 0 {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 if not authenticated.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetUsername retrieves the authenticated user's username from the context.
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}
