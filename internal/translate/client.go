// Package translate is a client for the Google translate "gtx" endpoint.
//
// The endpoint answers with a nested JSON array whose first element lists
// translated segments:
//
//	[[["बिल्ली","cat",null,null,10]],null,"en",...]
//
// Segments are concatenated in order to form the translation.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrEmptyTranslation is returned when the service answers without text.
var ErrEmptyTranslation = errors.New("empty translation")

// Client translates text between two languages.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a translation client. Deadlines come from the context
// passed to Translate.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Translate returns text translated from src to dst.
func (c *Client) Translate(ctx context.Context, text, src, dst string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", src)
	params.Set("tl", dst)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Wordbook/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch translation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	translated, err := joinSegments(payload)
	if err != nil {
		return "", err
	}
	return translated, nil
}

func joinSegments(payload []json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyTranslation
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyTranslation
	}
	return out, nil
}
