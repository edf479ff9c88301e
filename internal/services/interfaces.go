package services

import (
	"context"

	"github.com/mrlokans/wordbook/internal/entities"
)

// WordStore is the per-user persistence the word service needs.
// Implemented by words.Repository.
type WordStore interface {
	AddWord(userID uint, word, meaning string) (uint, error)
	ListWords(userID uint) ([]entities.Word, error)
	SearchWords(userID uint, query string) ([]entities.Word, error)
	ListWordsPage(userID uint, page, pageSize int) ([]entities.Word, int64, error)
	DeleteWord(userID uint, word string) (int64, error)
	GetMeaning(userID, wordID uint) (string, error)
	CountWords(userID uint) (int64, error)
}

// Enricher turns a word into its composed meaning.
// Implemented by enrichment.Enricher.
type Enricher interface {
	Enrich(ctx context.Context, word string) (string, error)
}

// BatchResult contains the outcome of a batch add.
type BatchResult struct {
	Inserted int
	IDs      []uint
	// Degraded lists words stored with the placeholder meaning because
	// translation failed.
	Degraded []string
}

// Page is one page of a user's word history, most recent first.
type Page struct {
	Items      []entities.Word
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

func (p Page) PrevPage() int { return p.Page - 1 }

func (p Page) NextPage() int { return p.Page + 1 }
