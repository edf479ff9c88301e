package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryController serves the paginated word history.
type HistoryController struct {
	words   WordService
	cursors CursorStore
}

func NewHistoryController(words WordService, cursors CursorStore) *HistoryController {
	return &HistoryController{words: words, cursors: cursors}
}

// HistoryPage lists the user's words, most recent first.
// GET /word_history?page=N
func (hc *HistoryController) HistoryPage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, err := hc.words.HistoryPage(userID, parsePage(c.Query("page")))
	if err != nil {
		renderInternalError(c, err, "word history")
		return
	}

	c.HTML(http.StatusOK, "word_history.html", pageData(c, "Word history", gin.H{
		"Page": page,
	}))
}

// DeleteWord removes every entry with the submitted word value and returns
// to the page the user was on.
// POST /delete_word
func (hc *HistoryController) DeleteWord(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	word := strings.TrimSpace(c.PostForm("word"))
	if word == "" {
		c.String(http.StatusBadRequest, "word is required")
		return
	}

	deleted, err := hc.words.DeleteWord(userID, word)
	if err != nil {
		renderInternalError(c, err, "delete word")
		return
	}
	requestLogger(c).Info("Word deleted", zap.String("word", word), zap.Int64("rows", deleted))

	if hc.cursors != nil {
		hc.cursors.ResetCursor(c.Request)
	}

	page := parsePage(c.PostForm("page"))
	c.Redirect(http.StatusFound, fmt.Sprintf("/word_history?page=%d", page))
}
