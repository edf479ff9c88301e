// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByCredentials("alice", "secret")
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/wordbook/internal/entities"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser stores a new user. The password must already be in the
// configured storage form (plaintext or hash).
func (r *Repository) CreateUser(username, password string) (*entities.User, error) {
	user := &entities.User{
		Username: username,
		Password: password,
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByCredentials finds a user whose username and stored password both
// match exactly. Comparison is case-sensitive on both columns.
func (r *Repository) GetUserByCredentials(username, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	return r.found(&user, err)
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	return r.found(&user, err)
}

// GetUserByUsername retrieves a user by username.
func (r *Repository) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return r.found(&user, err)
}

// CountUsers returns the number of accounts.
func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *Repository) found(user *entities.User, err error) (*entities.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
