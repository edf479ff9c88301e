package dictionary

import (
	"context"
	"errors"
)

// ErrWordNotFound is returned when the provider has no entry for a word.
var ErrWordNotFound = errors.New("word not found in dictionary")

// Definition is a single sense of a word.
type Definition struct {
	Text    string
	Example string
}

// Group holds the definitions the provider lists under one part of speech.
type Group struct {
	PartOfSpeech string
	Definitions  []Definition
}

// LookupResult contains the result of a dictionary lookup.
type LookupResult struct {
	Word   string
	Groups []Group
}

// Client defines the interface for dictionary API providers.
type Client interface {
	Lookup(ctx context.Context, word string) (*LookupResult, error)
	Examples(ctx context.Context, word string) ([]string, error)
}

// MaxExamples is the number of example sentences kept per word.
const MaxExamples = 2

// FirstExamples walks the groups in order, takes the first non-empty example
// from each group, and stops once limit examples are collected.
func FirstExamples(groups []Group, limit int) []string {
	var examples []string
	for _, group := range groups {
		if len(examples) >= limit {
			break
		}
		for _, def := range group.Definitions {
			if def.Example != "" {
				examples = append(examples, def.Example)
				break
			}
		}
	}
	return examples
}
