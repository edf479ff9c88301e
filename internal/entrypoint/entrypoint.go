package entrypoint

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/auth"
	"github.com/mrlokans/wordbook/internal/config"
	"github.com/mrlokans/wordbook/internal/database"
	"github.com/mrlokans/wordbook/internal/database/users"
	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/enrichment"
	http_controllers "github.com/mrlokans/wordbook/internal/http"
	"github.com/mrlokans/wordbook/internal/logging"
	"github.com/mrlokans/wordbook/internal/services"
	"github.com/mrlokans/wordbook/internal/translate"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests for up to the configured shutdown timeout.
func Serve(router *gin.Engine, cfg *config.Config, log *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("Shutting down server", zap.String("signal", sig.String()), zap.Duration("timeout", timeout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info("Server exiting")
	return nil
}

// resolveCSRFSecret accepts a hex encoded secret and falls back to the raw
// bytes. An empty value gets a random secret for this process only.
func resolveCSRFSecret(raw string, log *zap.Logger) ([]byte, error) {
	if raw == "" {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			return nil, fmt.Errorf("generate CSRF secret: %w", err)
		}
		log.Info("Generated session secret (set SESSION_SECRET to persist)")
		raw = secret
	}
	if decoded, err := hex.DecodeString(raw); err == nil {
		return decoded, nil
	}
	return []byte(raw), nil
}

// accountCounter is implemented by users.Repository.
type accountCounter interface {
	CountUsers() (int64, error)
}

// logAccounts reports how many accounts can log in. With none, every page
// is unreachable, so that case is a warning.
func logAccounts(store accountCounter, log *zap.Logger) {
	total, err := store.CountUsers()
	switch {
	case err != nil:
		log.Warn("Could not count accounts", zap.Error(err))
	case total == 0:
		log.Warn("No accounts exist. Set SEED_USERS and SEED_PASSWORD to create one.")
	default:
		log.Info("Accounts available", zap.Int64("users", total))
	}
}

// Run wires the application together and serves it.
func Run(cfg *config.Config, version string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Wordbook", zap.String("version", version))

	// Initialize database
	db, err := database.NewDatabase(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("Error closing database", zap.Error(err))
		}
	}()

	// Authentication
	usersRepo := users.NewRepository(db.DB)
	authService := auth.NewService(usersRepo, cfg.Auth, log)
	if cfg.Auth.PasswordScheme == config.PasswordSchemePlain {
		log.Warn("Passwords are stored and compared in plaintext; set AUTH_PASSWORD_SCHEME=bcrypt for new deployments")
	}

	seeded, err := authService.SeedUsers(cfg.Seed.Usernames, cfg.Seed.Password)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if seeded > 0 {
		log.Info("Seeded demo accounts", zap.Int("created", seeded))
	}
	logAccounts(usersRepo, log)

	sessionManager, err := auth.NewSessionManager(db.SQLDB(), db.Dialect(), cfg.Auth)
	if err != nil {
		return fmt.Errorf("initialize session manager: %w", err)
	}

	secret, err := resolveCSRFSecret(cfg.Auth.SessionSecret, log)
	if err != nil {
		return err
	}

	// Enrichment
	translator := translate.NewClient(cfg.Translate.URL)
	dictClient := dictionary.NewFreeDictionaryClient(cfg.Dictionary.URL, cfg.Dictionary.MinInterval)
	enricher := enrichment.NewEnricher(translator, dictClient, enrichment.Options{
		SourceLang: cfg.Translate.SourceLang,
		TargetLang: cfg.Translate.TargetLang,
		Timeout:    cfg.Enrichment.ExternalTimeout,
	}, log)

	wordService := services.NewWordService(words.NewRepository(db.DB), enricher, services.WordServiceConfig{
		Workers:  cfg.Enrichment.Workers,
		PageSize: config.HistoryPageSize,
	}, log)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		Words:          wordService,
		AuthService:    authService,
		SessionManager: sessionManager,
		AuthMiddleware: auth.NewMiddleware(authService, sessionManager, log),
		CSRFSecret:     secret,
		SecureCookies:  cfg.Auth.SecureCookies,
		Logger:         log,
		Version:        version,
	})

	onShutdown := func(ctx context.Context) {
		sessionManager.Close()
	}

	return Serve(router, cfg, log, onShutdown)
}
