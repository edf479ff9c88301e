package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/services"
)

// UIController renders the home and add-word pages.
type UIController struct {
	words WordService
}

func NewUIController(words WordService) *UIController {
	return &UIController{words: words}
}

// HomePage greets the user with their word count.
// GET /home
func (uc *UIController) HomePage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	count, err := uc.words.CountWords(userID)
	if err != nil {
		renderInternalError(c, err, "count words")
		return
	}

	c.HTML(http.StatusOK, "home.html", pageData(c, "Home", gin.H{
		"Count": count,
	}))
}

// AddWordPage renders the empty add-word form.
// GET /add_word
func (uc *UIController) AddWordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_word.html", pageData(c, "Add words", nil))
}

// AddWords enriches and stores every submitted word.
// The form may repeat the "word" field or put several words in one field
// separated by newlines or commas.
// POST /add_word
func (uc *UIController) AddWords(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	words := services.SplitInput(c.PostFormArray("word"))
	result, err := uc.words.AddWords(c.Request.Context(), userID, words)
	if errors.Is(err, services.ErrNoWords) {
		c.String(http.StatusBadRequest, "Please enter at least one word.")
		return
	}
	if err != nil {
		requestLogger(c).Warn("Batch stopped early", zap.Int("inserted", result.Inserted))
		renderInternalError(c, err, "add words")
		return
	}

	c.HTML(http.StatusOK, "add_word.html", pageData(c, "Add words", gin.H{
		"Result": result,
	}))
}
