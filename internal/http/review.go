package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordbook/internal/review"
)

// ReviewController drives the flash-card screen. The position lives in the
// session, so every request reloads the word list and clamps the cursor to it.
type ReviewController struct {
	words   WordService
	cursors CursorStore
}

func NewReviewController(words WordService, cursors CursorStore) *ReviewController {
	return &ReviewController{words: words, cursors: cursors}
}

// ReviewPage shows the word under the cursor, and its meaning if the last
// action was a reveal.
// GET /review
func (rc *ReviewController) ReviewPage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := rc.words.ListWords(userID, "")
	if err != nil {
		renderInternalError(c, err, "list words for review")
		return
	}

	cursor := rc.cursors.LoadCursor(c.Request)
	cursor.Clamp(len(items))
	revealed := cursor.Consume()

	data := gin.H{"Count": len(items)}
	if len(items) > 0 {
		current := items[cursor.Index]
		cursor.Word = current.Word
		data["Word"] = current.Word
		data["Meaning"] = current.Meaning
		data["Revealed"] = revealed
		data["Position"] = cursor.Index + 1
	} else {
		cursor.Word = ""
	}

	// Saved before rendering: the session cookie is written with the headers.
	rc.cursors.SaveCursor(c.Request, cursor)

	c.HTML(http.StatusOK, "review.html", pageData(c, "Review", data))
}

// Review applies one of next, meaning or delete and redirects back to the
// review page.
// POST /review
// POST /word_history
func (rc *ReviewController) Review(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	action, err := review.ParseAction(c.PostForm("action"))
	if errors.Is(err, review.ErrUnknownAction) {
		c.String(http.StatusBadRequest, "unknown action")
		return
	}

	cursor := rc.cursors.LoadCursor(c.Request)

	switch action {
	case review.ActionNext:
		count, err := rc.words.CountWords(userID)
		if err != nil {
			renderInternalError(c, err, "count words for review")
			return
		}
		cursor.Next(int(count))
	case review.ActionMeaning:
		cursor.Reveal()
	case review.ActionDelete:
		if cursor.Word != "" {
			if _, err := rc.words.DeleteWord(userID, cursor.Word); err != nil {
				renderInternalError(c, err, "delete reviewed word")
				return
			}
		}
		cursor.AfterDelete()
	}

	rc.cursors.SaveCursor(c.Request, cursor)
	c.Redirect(http.StatusFound, "/review")
}
