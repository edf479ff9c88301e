package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catResponse = `[
  {
    "word": "cat",
    "phonetics": [{"text": ""}, {"text": "/kæt/", "audio": "https://example.org/cat.mp3"}],
    "meanings": [
      {"partOfSpeech": "noun", "definitions": [
        {"definition": "A domesticated feline."},
        {"definition": "A person.", "example": "A cat sat."},
        {"definition": "Jazz enthusiast.", "example": "Second example in the same group."}
      ]},
      {"partOfSpeech": "verb", "definitions": [
        {"definition": "To hoist.", "example": "The cat ran."}
      ]}
    ]
  },
  {
    "word": "cat",
    "meanings": [
      {"partOfSpeech": "noun", "definitions": [
        {"definition": "Catamaran.", "example": "Ignored third."}
      ]}
    ]
  }
]`

func newTestServer(t *testing.T, handler http.HandlerFunc) *FreeDictionaryClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewFreeDictionaryClient(server.URL, 0)
}

func TestFreeDictionaryClient_Lookup(t *testing.T) {
	var gotPath string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catResponse))
	})

	result, err := client.Lookup(context.Background(), "  Cat ")

	require.NoError(t, err)
	assert.Equal(t, "/cat", gotPath)
	assert.Equal(t, "cat", result.Word)
	require.Len(t, result.Groups, 3)
	assert.Equal(t, "noun", result.Groups[0].PartOfSpeech)
	assert.Len(t, result.Groups[0].Definitions, 3)
}

func TestFreeDictionaryClient_Examples(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catResponse))
	})

	examples, err := client.Examples(context.Background(), "cat")

	require.NoError(t, err)
	assert.Equal(t, []string{"A cat sat.", "The cat ran."}, examples)
}

func TestFreeDictionaryClient_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Lookup(context.Background(), "qwxz")

	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestFreeDictionaryClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "a list"`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, tt.handler)

			_, err := client.Lookup(context.Background(), "cat")

			assert.Error(t, err)
		})
	}
}

func TestFreeDictionaryClient_EmptyWord(t *testing.T) {
	client := NewFreeDictionaryClient("http://127.0.0.1:0", 0)

	_, err := client.Lookup(context.Background(), "   ")

	assert.Error(t, err)
}

func TestFreeDictionaryClient_RespectsDeadline(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Lookup(ctx, "cat")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter := newRateLimiter(time.Hour)
	require.NoError(t, limiter.wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, limiter.wait(ctx), context.Canceled)
}

func TestFirstExamples(t *testing.T) {
	groups := []Group{
		{PartOfSpeech: "noun", Definitions: []Definition{{Text: "a"}, {Text: "b", Example: "first"}, {Text: "c", Example: "skipped"}}},
		{PartOfSpeech: "verb", Definitions: []Definition{{Text: "d"}}},
		{PartOfSpeech: "adj", Definitions: []Definition{{Text: "e", Example: "second"}}},
		{PartOfSpeech: "adv", Definitions: []Definition{{Text: "f", Example: "third"}}},
	}

	tests := []struct {
		name     string
		groups   []Group
		limit    int
		expected []string
	}{
		{"first per group, stop at two", groups, 2, []string{"first", "second"}},
		{"limit one", groups, 1, []string{"first"}},
		{"limit larger than available", groups, 10, []string{"first", "second", "third"}},
		{"no groups", nil, 2, nil},
		{"groups without examples", []Group{{Definitions: []Definition{{Text: "x"}}}}, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstExamples(tt.groups, tt.limit))
		})
	}
}
