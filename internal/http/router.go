package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestLogger(log))
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.SecureCookies {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	router.Use(cfg.SessionManager.SessionLoadSave())
	router.Use(cfg.AuthMiddleware.Handler())

	// Inject auth data for templates
	router.Use(AuthContextMiddleware())

	router.SetHTMLTemplate(template.Must(LoadTemplates()))

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager, log)
	uiController := NewUIController(cfg.Words)
	historyController := NewHistoryController(cfg.Words, cfg.SessionManager)
	reviewController := NewReviewController(cfg.Words, cfg.SessionManager)
	apiController := NewWordsAPIController(cfg.Words, cfg.SessionManager)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Login and logout
	authController.RegisterRoutes(router)

	// UI routes
	router.GET("/home", uiController.HomePage)
	router.GET("/add_word", uiController.AddWordPage)
	router.POST("/add_word", uiController.AddWords)
	router.GET("/word_history", historyController.HistoryPage)
	router.POST("/word_history", reviewController.Review)
	router.POST("/delete_word", historyController.DeleteWord)
	router.GET("/review", reviewController.ReviewPage)
	router.POST("/review", reviewController.Review)

	// Words API endpoints
	router.GET("/api/words", apiController.ListWords)
	router.POST("/api/words", apiController.AddWords)
	router.DELETE("/api/words", apiController.DeleteWord)
	router.GET("/api/words/:id/meaning", apiController.GetMeaning)
	router.GET("/api/enrich", apiController.Enrich)

	return router
}
