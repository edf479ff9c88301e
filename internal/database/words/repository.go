// Package words provides per-user storage for vocabulary words and their
// composed meanings.
//
// Every query is scoped by user id. Insertion order is primary-key order,
// so "most recent first" is id DESC.
//
// # Usage
//
//	repo := words.NewRepository(db)
//	id, err := repo.AddWord(userID, "cat", "बिल्ली")
//	items, total, err := repo.ListWordsPage(userID, 1, 10)
package words

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/wordbook/internal/entities"
)

// ErrNotFound is returned when a word does not exist for the requesting user.
var ErrNotFound = errors.New("word not found")

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddWord inserts one row and returns its id. Duplicates are allowed.
func (r *Repository) AddWord(userID uint, word, meaning string) (uint, error) {
	w := &entities.Word{
		UserID:  userID,
		Word:    word,
		Meaning: meaning,
	}
	if err := r.db.Create(w).Error; err != nil {
		return 0, err
	}
	return w.ID, nil
}

// ListWords returns all words for a user in insertion order.
func (r *Repository) ListWords(userID uint) ([]entities.Word, error) {
	var items []entities.Word
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error
	return items, err
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchWords returns the user's words containing query, ignoring case.
// The query is a plain substring; % and _ have no special meaning.
func (r *Repository) SearchWords(userID uint, query string) ([]entities.Word, error) {
	var items []entities.Word
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	err := r.db.Where(`user_id = ? AND LOWER(word) LIKE ? ESCAPE '\'`, userID, pattern).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// ListWordsPage returns the page-th slice (1-indexed) of the user's words,
// most recent first, plus the user's total word count. A page past the end
// yields an empty slice.
func (r *Repository) ListWordsPage(userID uint, page, pageSize int) ([]entities.Word, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total, err := r.CountWords(userID)
	if err != nil {
		return nil, 0, err
	}

	items := []entities.Word{}
	// Compared in pages so a huge page number cannot overflow the offset.
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	if int64(page-1) >= totalPages {
		return items, total, nil
	}
	offset := (page - 1) * pageSize

	err = r.db.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// DeleteWord removes every row matching (userID, word) exactly and returns
// the number of rows removed. Deleting a missing word is not an error.
func (r *Repository) DeleteWord(userID uint, word string) (int64, error) {
	result := r.db.Where("user_id = ? AND word = ?", userID, word).Delete(&entities.Word{})
	return result.RowsAffected, result.Error
}

// GetMeaning returns the meaning of a word the user owns.
func (r *Repository) GetMeaning(userID, wordID uint) (string, error) {
	var w entities.Word
	err := r.db.Select("meaning").Where("id = ? AND user_id = ?", wordID, userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return w.Meaning, nil
}

// CountWords returns how many words the user has stored.
func (r *Repository) CountWords(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&entities.Word{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
