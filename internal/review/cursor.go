// Package review implements the flash-card cursor that walks a user's words
// one at a time.
//
// The cursor lives in the session between requests:
//
//	Browsing(i) --next--> Browsing((i+1) mod n)
//	Browsing(i) --meaning--> Revealed(i)   shown once, then Browsing(i)
//	any        --delete--> Browsing(0)     removes the remembered word
package review

import "errors"

// Action is a button pressed on the review screen.
type Action string

const (
	ActionNext    Action = "next"
	ActionMeaning Action = "meaning"
	ActionDelete  Action = "delete"
)

// ErrUnknownAction is returned for an action outside Next, Meaning and Delete.
var ErrUnknownAction = errors.New("unknown review action")

// ParseAction validates a form value.
func ParseAction(raw string) (Action, error) {
	switch a := Action(raw); a {
	case ActionNext, ActionMeaning, ActionDelete:
		return a, nil
	default:
		return "", ErrUnknownAction
	}
}

// Cursor is the per-session review position.
// Word is the value shown at Index when the page was last rendered, and is
// what a delete removes.
type Cursor struct {
	Index    int
	Word     string
	Revealed bool
}

// Clamp resets Index to 0 when it falls outside [0, count).
func (c *Cursor) Clamp(count int) {
	if c.Index < 0 || c.Index >= count {
		c.Index = 0
	}
}

// Next advances cyclically and hides the meaning.
func (c *Cursor) Next(count int) {
	c.Revealed = false
	if count <= 0 {
		c.Index = 0
		return
	}
	c.Clamp(count)
	c.Index = (c.Index + 1) % count
}

// Reveal shows the meaning on the next render only.
func (c *Cursor) Reveal() {
	c.Revealed = true
}

// AfterDelete returns to the first word.
func (c *Cursor) AfterDelete() {
	c.Index = 0
	c.Word = ""
	c.Revealed = false
}

// Consume reports whether the meaning should be shown for this render and
// clears the one-shot flag.
func (c *Cursor) Consume() bool {
	shown := c.Revealed
	c.Revealed = false
	return shown
}
