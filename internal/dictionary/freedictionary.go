package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// FreeDictionaryClient implements Client using the Free Dictionary API.
// API docs: https://dictionaryapi.dev/
type FreeDictionaryClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

// wait blocks until the interval since the previous call has passed or ctx
// is done, whichever comes first.
func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		timer := time.NewTimer(r.interval - since)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	r.lastCall = time.Now()
	return nil
}

// NewFreeDictionaryClient creates a new Free Dictionary API client.
// Per-call deadlines come from the caller's context.
func NewFreeDictionaryClient(baseURL string, minInterval time.Duration) *FreeDictionaryClient {
	return &FreeDictionaryClient{
		httpClient:  &http.Client{},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: newRateLimiter(minInterval),
	}
}

// Lookup fetches word definitions from the Free Dictionary API.
func (c *FreeDictionaryClient) Lookup(ctx context.Context, word string) (*LookupResult, error) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word == "" {
		return nil, fmt.Errorf("empty word")
	}

	if err := c.rateLimiter.wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Wordbook/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch definition: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrWordNotFound, word)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResponse []freeDictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(apiResponse) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrWordNotFound, word)
	}

	return convertToLookupResult(word, apiResponse), nil
}

// Examples returns up to MaxExamples example sentences for word.
func (c *FreeDictionaryClient) Examples(ctx context.Context, word string) ([]string, error) {
	result, err := c.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}
	return FirstExamples(result.Groups, MaxExamples), nil
}

// convertToLookupResult flattens every entry's meanings into groups, keeping
// the provider's order.
func convertToLookupResult(word string, entries []freeDictionaryResponse) *LookupResult {
	result := &LookupResult{
		Word: word,
	}

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			group := Group{PartOfSpeech: meaning.PartOfSpeech}
			for _, def := range meaning.Definitions {
				group.Definitions = append(group.Definitions, Definition{
					Text:    def.Definition,
					Example: strings.TrimSpace(def.Example),
				})
			}
			result.Groups = append(result.Groups, group)
		}
	}

	return result
}

// Free Dictionary API response types

type freeDictionaryResponse struct {
	Word     string            `json:"word"`
	Meanings []freeDictMeaning `json:"meanings"`
}

type freeDictMeaning struct {
	PartOfSpeech string               `json:"partOfSpeech"`
	Definitions  []freeDictDefinition `json:"definitions"`
}

type freeDictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
