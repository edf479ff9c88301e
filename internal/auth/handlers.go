package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HomePath is where a successful login lands.
const HomePath = "/home"

// AuthController handles authentication-related HTTP endpoints.
// Templates are looked up by name on the engine's HTML renderer.
type AuthController struct {
	service        *Service
	sessionManager *SessionManager
	log            *zap.Logger
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, sessionManager *SessionManager, log *zap.Logger) *AuthController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthController{
		service:        service,
		sessionManager: sessionManager,
		log:            log,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router gin.IRouter) {
	router.GET(LoginPath, ac.LoginPage)
	router.POST(LoginPath, ac.Login)
	router.GET("/logout", ac.Logout)
	router.POST("/logout", ac.Logout)
}

// LoginPage renders the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, HomePath)
		return
	}

	ac.renderLogin(c, http.StatusOK, "", "")
}

// Login handles the login form submission.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ac.service.Authenticate(username, password)
	if errors.Is(err, ErrInvalidCredentials) {
		ac.log.Info("Login failed", zap.String("username", username))
		ac.renderLogin(c, http.StatusOK, username, "Invalid username or password")
		return
	}
	if err != nil {
		ac.log.Error("Login lookup failed", zap.Error(err))
		ac.renderLogin(c, http.StatusInternalServerError, username, "Something went wrong. Please try again.")
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		ac.log.Error("Failed to create session", zap.Error(err))
		ac.renderLogin(c, http.StatusInternalServerError, username, "Failed to create session")
		return
	}

	ac.log.Info("User logged in", zap.String("username", user.Username), zap.Uint("user_id", user.ID))
	c.Redirect(http.StatusFound, HomePath)
}

// Logout destroys the session and redirects to login.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessionManager.DestroySession(c.Request); err != nil {
		ac.log.Warn("Failed to destroy session", zap.Error(err))
	}
	c.Redirect(http.StatusFound, LoginPath)
}

func (ac *AuthController) renderLogin(c *gin.Context, status int, username, errMsg string) {
	c.HTML(status, "login.html", gin.H{
		"Title":     "Login",
		"Username":  username,
		"Error":     errMsg,
		"CSRFToken": GetCSRFToken(c),
	})
}
