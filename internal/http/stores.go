package http

import (
	"context"
	"net/http"

	"github.com/mrlokans/wordbook/internal/entities"
	"github.com/mrlokans/wordbook/internal/review"
	"github.com/mrlokans/wordbook/internal/services"
)

// WordService is what the word pages and the JSON API need.
// Implemented by services.WordService.
type WordService interface {
	AddWords(ctx context.Context, userID uint, words []string) (services.BatchResult, error)
	AddWord(ctx context.Context, userID uint, word string) (entities.Word, error)
	Preview(ctx context.Context, word string) (string, error)
	HistoryPage(userID uint, page int) (services.Page, error)
	DeleteWord(userID uint, word string) (int64, error)
	ListWords(userID uint, query string) ([]entities.Word, error)
	GetMeaning(userID, wordID uint) (string, error)
	CountWords(userID uint) (int64, error)
}

// CursorStore keeps the review cursor in the caller's session.
// Implemented by auth.SessionManager.
type CursorStore interface {
	LoadCursor(r *http.Request) review.Cursor
	SaveCursor(r *http.Request, cursor review.Cursor)
	ResetCursor(r *http.Request)
}

// Pinger reports whether the database can serve queries.
// Implemented by database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}
