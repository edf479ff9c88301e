package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mrlokans/wordbook/internal/enrichment"
	"github.com/mrlokans/wordbook/internal/entities"
)

// ErrNoWords is returned when a submission contains no non-blank word.
var ErrNoWords = errors.New("no words submitted")

// WordService coordinates enrichment and storage of a user's words.
type WordService struct {
	store    WordStore
	enricher Enricher
	workers  int
	pageSize int
	log      *zap.Logger
}

// WordServiceConfig holds the knobs for NewWordService.
type WordServiceConfig struct {
	// Workers bounds how many words are enriched at once in a batch.
	Workers  int
	PageSize int
}

// NewWordService creates a new word service.
func NewWordService(store WordStore, enricher Enricher, cfg WordServiceConfig, log *zap.Logger) *WordService {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WordService{
		store:    store,
		enricher: enricher,
		workers:  cfg.Workers,
		pageSize: cfg.PageSize,
		log:      log,
	}
}

// SplitInput breaks raw form values on newlines and commas, trims each
// entry and drops blanks. Order is preserved.
func SplitInput(values []string) []string {
	var out []string
	for _, v := range values {
		parts := strings.FieldsFunc(v, func(r rune) bool {
			return r == '\n' || r == '\r' || r == ','
		})
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

type enriched struct {
	meaning string
	err     error
}

// AddWords enriches and stores every non-blank word in input order.
//
// A translation failure stores enrichment.Placeholder and records the word
// in BatchResult.Degraded. A store failure stops the batch: rows inserted
// before it stay, and the partial result is returned alongside the error.
func (s *WordService) AddWords(ctx context.Context, userID uint, words []string) (BatchResult, error) {
	var cleaned []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			cleaned = append(cleaned, w)
		}
	}
	if len(cleaned) == 0 {
		return BatchResult{}, ErrNoWords
	}

	meanings, err := s.enrichAll(ctx, cleaned)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for i, word := range cleaned {
		meaning := meanings[i].meaning
		if meanings[i].err != nil {
			s.log.Warn("Storing word with placeholder meaning",
				zap.String("word", word),
				zap.Error(meanings[i].err),
			)
			meaning = enrichment.Placeholder
			result.Degraded = append(result.Degraded, word)
		}

		id, err := s.store.AddWord(userID, word, meaning)
		if err != nil {
			return result, fmt.Errorf("store word %q: %w", word, err)
		}
		result.Inserted++
		result.IDs = append(result.IDs, id)
	}

	s.log.Info("Words added",
		zap.Uint("user_id", userID),
		zap.Int("inserted", result.Inserted),
		zap.Int("degraded", len(result.Degraded)),
	)
	return result, nil
}

// enrichAll runs enrichment with at most s.workers calls in flight. Results
// are indexed by input position.
func (s *WordService) enrichAll(ctx context.Context, words []string) ([]enriched, error) {
	results := make([]enriched, len(words))
	if s.workers == 1 || len(words) == 1 {
		for i, w := range words {
			results[i].meaning, results[i].err = s.enricher.Enrich(ctx, w)
		}
	} else {
		workers := min(s.workers, len(words))
		pool := NewWorkerPool(workers, len(words))
		pool.Start(ctx)

		for i, w := range words {
			if err := pool.Submit(func(ctx context.Context) {
				results[i].meaning, results[i].err = s.enricher.Enrich(ctx, w)
			}); err != nil {
				pool.Close()
				return nil, err
			}
		}
		pool.Close()
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enrich words: %w", err)
	}
	return results, nil
}

// AddWord enriches and stores a single word. Translation failure is
// returned as enrichment.ErrTranslationFailed and nothing is stored.
func (s *WordService) AddWord(ctx context.Context, userID uint, word string) (entities.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return entities.Word{}, ErrNoWords
	}

	meaning, err := s.enricher.Enrich(ctx, word)
	if err != nil {
		return entities.Word{}, err
	}

	id, err := s.store.AddWord(userID, word, meaning)
	if err != nil {
		return entities.Word{}, fmt.Errorf("store word %q: %w", word, err)
	}
	return entities.Word{ID: id, UserID: userID, Word: word, Meaning: meaning}, nil
}

// Preview returns the meaning a word would be stored with.
func (s *WordService) Preview(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", ErrNoWords
	}
	return s.enricher.Enrich(ctx, word)
}

// HistoryPage returns the requested page of the user's history. Pages below
// 1 are treated as 1; pages past the end are empty.
func (s *WordService) HistoryPage(userID uint, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.store.ListWordsPage(userID, page, s.pageSize)
	if err != nil {
		return Page{}, fmt.Errorf("list words page %d: %w", page, err)
	}

	return Page{
		Items:      items,
		Page:       page,
		PageSize:   s.pageSize,
		Total:      total,
		TotalPages: TotalPages(total, s.pageSize),
	}, nil
}

// TotalPages returns ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// DeleteWord removes every copy of word from the user's list.
func (s *WordService) DeleteWord(userID uint, word string) (int64, error) {
	affected, err := s.store.DeleteWord(userID, word)
	if err != nil {
		return 0, fmt.Errorf("delete word %q: %w", word, err)
	}
	return affected, nil
}

// ListWords returns the user's words in insertion order, optionally
// filtered by a case-insensitive substring.
func (s *WordService) ListWords(userID uint, query string) ([]entities.Word, error) {
	query = strings.TrimSpace(query)
	if query != "" {
		return s.store.SearchWords(userID, query)
	}
	return s.store.ListWords(userID)
}

func (s *WordService) GetMeaning(userID, wordID uint) (string, error) {
	return s.store.GetMeaning(userID, wordID)
}

func (s *WordService) CountWords(userID uint) (int64, error) {
	return s.store.CountWords(userID)
}
