package auth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/config"
	"github.com/mrlokans/wordbook/internal/database/users"
	"github.com/mrlokans/wordbook/internal/entities"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore defines the user data access the service needs.
// Implemented by users.Repository.
type UserStore interface {
	CreateUser(username, password string) (*entities.User, error)
	GetUserByCredentials(username, password string) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
	GetUserByID(id uint) (*entities.User, error)
}

// Service handles authentication and demo account seeding.
type Service struct {
	users  UserStore
	config config.Auth
	log    *zap.Logger
}

// NewService creates a new authentication service.
func NewService(store UserStore, cfg config.Auth, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		users:  store,
		config: cfg,
		log:    log,
	}
}

// Authenticate returns the user whose username and password both match
// exactly. Any mismatch is ErrInvalidCredentials; store failures are wrapped.
//
// With the plain scheme the password column is compared as stored. There is
// no lockout and no rate limiting.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if s.config.PasswordScheme == config.PasswordSchemeBcrypt {
		return s.authenticateHashed(username, password)
	}

	user, err := s.users.GetUserByCredentials(username, password)
	if errors.Is(err, users.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *Service) authenticateHashed(username, password string) (*entities.User, error) {
	user, err := s.users.GetUserByUsername(username)
	if errors.Is(err, users.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.Password); err != nil {
		if !errors.Is(err, ErrInvalidPassword) {
			// Usually a plaintext row left over from the plain scheme.
			s.log.Warn("Stored password is not a bcrypt hash", zap.String("username", username), zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SeedUsers creates each missing account with the shared placeholder
// password. Existing accounts are left untouched. Returns how many were
// created.
func (s *Service) SeedUsers(usernames []string, password string) (int, error) {
	if len(usernames) > 0 && password == "" {
		return 0, ErrPasswordRequired
	}

	created := 0
	for _, username := range usernames {
		_, err := s.users.GetUserByUsername(username)
		if err == nil {
			continue
		}
		if !errors.Is(err, users.ErrNotFound) {
			return created, fmt.Errorf("failed to check user %q: %w", username, err)
		}

		stored, err := s.storedPassword(password)
		if err != nil {
			return created, err
		}
		if _, err := s.users.CreateUser(username, stored); err != nil {
			return created, fmt.Errorf("failed to create user %q: %w", username, err)
		}
		created++
		s.log.Info("Seeded user", zap.String("username", username))
	}
	return created, nil
}

func (s *Service) storedPassword(password string) (string, error) {
	if s.config.PasswordScheme != config.PasswordSchemeBcrypt {
		return password, nil
	}
	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// GetUserByID retrieves a user by their ID.
func (s *Service) GetUserByID(id uint) (*entities.User, error) {
	user, err := s.users.GetUserByID(id)
	if errors.Is(err, users.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
