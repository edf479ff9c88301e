package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wordbook/internal/auth"
	"github.com/mrlokans/wordbook/internal/database"
	"github.com/mrlokans/wordbook/internal/database/users"
	"github.com/mrlokans/wordbook/internal/database/words"
	"github.com/mrlokans/wordbook/internal/dictionary"
	"github.com/mrlokans/wordbook/internal/enrichment"
	"github.com/mrlokans/wordbook/internal/http"
	"github.com/mrlokans/wordbook/internal/services"
	"github.com/mrlokans/wordbook/internal/translate"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// WordStore implementations
var _ services.WordStore = (*words.Repository)(nil)

// UserStore implementations
var _ auth.UserStore = (*users.Repository)(nil)

// Health check target
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// External Services
// =============================================================================

// Translator implementations
var _ enrichment.Translator = (*translate.Client)(nil)

// ExampleFinder and dictionary Client implementations
var _ enrichment.ExampleFinder = (*dictionary.FreeDictionaryClient)(nil)
var _ dictionary.Client = (*dictionary.FreeDictionaryClient)(nil)

// =============================================================================
// Application Services
// =============================================================================

var _ services.Enricher = (*enrichment.Enricher)(nil)
var _ http.WordService = (*services.WordService)(nil)
var _ http.CursorStore = (*auth.SessionManager)(nil)
