// Package enrichment derives a word's meaning from a translation and a
// handful of dictionary example sentences.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrTranslationFailed wraps any translation error or timeout. Enrichment
// cannot proceed without a translation.
var ErrTranslationFailed = errors.New("translation failed")

// Placeholder is stored as the meaning when a batch insert could not
// translate a word.
const Placeholder = "(translation unavailable)"

const (
	examplesHeader = "\nExamples:\n"
	maxExamples    = 2
)

// Translator translates text between languages.
type Translator interface {
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// ExampleFinder returns example sentences for a word in source order.
type ExampleFinder interface {
	Examples(ctx context.Context, word string) ([]string, error)
}

// Options configures an Enricher.
type Options struct {
	SourceLang string
	TargetLang string
	Timeout    time.Duration
}

// Enricher composes a meaning from a Translator and an ExampleFinder.
type Enricher struct {
	translator Translator
	examples   ExampleFinder
	opts       Options
	log        *zap.Logger
}

// NewEnricher creates an Enricher. A zero Timeout leaves calls bounded only
// by the caller's context.
func NewEnricher(translator Translator, examples ExampleFinder, opts Options, log *zap.Logger) *Enricher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Enricher{
		translator: translator,
		examples:   examples,
		opts:       opts,
		log:        log,
	}
}

// Enrich returns "<translation>" or
// "<translation>\nExamples:\n- <ex1>\n- <ex2>".
// Example lookup failures are absorbed.
func (e *Enricher) Enrich(ctx context.Context, word string) (string, error) {
	translation, err := e.translate(ctx, word)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrTranslationFailed, word, err)
	}

	examples := e.lookupExamples(ctx, word)
	return Compose(translation, examples), nil
}

// Compose lays out a translation and up to two examples.
func Compose(translation string, examples []string) string {
	kept := make([]string, 0, maxExamples)
	for _, ex := range examples {
		if len(kept) == maxExamples {
			break
		}
		ex = strings.TrimSpace(ex)
		if ex != "" {
			kept = append(kept, ex)
		}
	}
	if len(kept) == 0 {
		return translation
	}

	var b strings.Builder
	b.WriteString(translation)
	b.WriteString(examplesHeader)
	for i, ex := range kept {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(ex)
	}
	return b.String()
}

func (e *Enricher) translate(ctx context.Context, word string) (string, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.translator.Translate(ctx, word, e.opts.SourceLang, e.opts.TargetLang)
}

func (e *Enricher) lookupExamples(ctx context.Context, word string) []string {
	if e.examples == nil {
		return nil
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	examples, err := e.examples.Examples(ctx, word)
	if err != nil {
		e.log.Debug("Example lookup failed", zap.String("word", word), zap.Error(err))
		return nil
	}
	return examples
}

func (e *Enricher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.opts.Timeout)
}
