package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/enrichment"
	"github.com/mrlokans/wordbook/internal/services"
)

// WordsAPIController exposes the word store as JSON.
type WordsAPIController struct {
	words   WordService
	cursors CursorStore
}

func NewWordsAPIController(words WordService, cursors CursorStore) *WordsAPIController {
	return &WordsAPIController{words: words, cursors: cursors}
}

// WordResponse is a stored word as returned by the API.
type WordResponse struct {
	ID      uint   `json:"id"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// WordsPageResponse is one page of history.
type WordsPageResponse struct {
	Words      []WordResponse `json:"words"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// AddWordsRequest accepts either a single word or a batch.
type AddWordsRequest struct {
	Word  string   `json:"word"`
	Words []string `json:"words"`
}

// AddWordsResponse reports a batch insert.
type AddWordsResponse struct {
	Inserted int      `json:"inserted"`
	IDs      []uint   `json:"ids"`
	Degraded []string `json:"degraded,omitempty"`
}

// ListWords returns a page of history, or every match when q is given.
// GET /api/words?page=N
// GET /api/words?q=text
func (ac *WordsAPIController) ListWords(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if query := strings.TrimSpace(c.Query("q")); query != "" {
		items, err := ac.words.ListWords(userID, query)
		if err != nil {
			respondInternalError(c, err, "search words")
			return
		}
		out := make([]WordResponse, 0, len(items))
		for _, w := range items {
			out = append(out, WordResponse{ID: w.ID, Word: w.Word, Meaning: w.Meaning})
		}
		c.JSON(http.StatusOK, gin.H{"words": out})
		return
	}

	page, err := ac.words.HistoryPage(userID, parsePage(c.Query("page")))
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	resp := WordsPageResponse{
		Words:      make([]WordResponse, 0, len(page.Items)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, w := range page.Items {
		resp.Words = append(resp.Words, WordResponse{ID: w.ID, Word: w.Word, Meaning: w.Meaning})
	}
	c.JSON(http.StatusOK, resp)
}

// AddWords stores one word or a batch.
// A single word fails with 502 when translation is unavailable, a batch
// stores the placeholder instead and lists the word under "degraded".
// POST /api/words
func (ac *WordsAPIController) AddWords(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddWordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if len(req.Words) == 0 && strings.TrimSpace(req.Word) != "" {
		word, err := ac.words.AddWord(c.Request.Context(), userID, req.Word)
		if errors.Is(err, enrichment.ErrTranslationFailed) {
			respondError(c, http.StatusBadGateway, "translation_failed", "translation unavailable")
			return
		}
		if err != nil {
			respondInternalError(c, err, "add word")
			return
		}
		c.JSON(http.StatusCreated, WordResponse{ID: word.ID, Word: word.Word, Meaning: word.Meaning})
		return
	}

	result, err := ac.words.AddWords(c.Request.Context(), userID, req.Words)
	if errors.Is(err, services.ErrNoWords) {
		respondBadRequest(c, "at least one word is required")
		return
	}
	if err != nil {
		requestLogger(c).Warn("Batch stopped early", zap.Int("inserted", result.Inserted))
		respondInternalError(c, err, "add words")
		return
	}

	c.JSON(http.StatusCreated, AddWordsResponse{
		Inserted: result.Inserted,
		IDs:      result.IDs,
		Degraded: result.Degraded,
	})
}

// DeleteWord removes every entry with the given value.
// DELETE /api/words?word=text
func (ac *WordsAPIController) DeleteWord(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	word := strings.TrimSpace(c.Query("word"))
	if word == "" {
		respondBadRequest(c, "word is required")
		return
	}

	deleted, err := ac.words.DeleteWord(userID, word)
	if err != nil {
		respondInternalError(c, err, "delete word")
		return
	}
	if ac.cursors != nil {
		ac.cursors.ResetCursor(c.Request)
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GetMeaning returns the stored meaning as plain text.
// GET /api/words/:id/meaning
func (ac *WordsAPIController) GetMeaning(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	meaning, err := ac.words.GetMeaning(userID, id)
	if errors.Is(err, words.ErrNotFound) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get meaning")
		return
	}

	c.String(http.StatusOK, meaning)
}

// Enrich composes a meaning without storing anything.
// GET /api/enrich?word=text
func (ac *WordsAPIController) Enrich(c *gin.Context) {
	word := strings.TrimSpace(c.Query("word"))
	if word == "" {
		respondBadRequest(c, "word is required")
		return
	}

	meaning, err := ac.words.Preview(c.Request.Context(), word)
	if errors.Is(err, enrichment.ErrTranslationFailed) {
		respondError(c, http.StatusBadGateway, "translation_failed", "translation unavailable")
		return
	}
	if err != nil {
		respondInternalError(c, err, "enrich word")
		return
	}

	c.JSON(http.StatusOK, gin.H{"word": word, "meaning": meaning})
}
