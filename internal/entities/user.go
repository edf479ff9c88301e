package entities

import (
	"time"
)

// User is an account able to log in. Rows are seeded at startup and never
// mutated afterwards; there is no registration flow.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // Plaintext or bcrypt hash, see config.PasswordScheme
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
