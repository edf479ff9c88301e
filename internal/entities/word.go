package entities

import (
	"time"
)

// Word is a user-submitted English term with its derived meaning.
// Meaning is a composite blob: the translation, optionally followed by
// "\nExamples:\n" and up to two "- <example>" lines.
type Word struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Word      string    `gorm:"type:text;not null" json:"word"`
	Meaning   string    `gorm:"type:text;not null" json:"meaning"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Word) TableName() string {
	return "words"
}
