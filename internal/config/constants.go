package config

// Default endpoints for the external enrichment services
const (
	// DefaultTranslateURL is the public Google Translate endpoint used by browser clients
	DefaultTranslateURL = "https://translate.googleapis.com/translate_a/single"

	// DefaultDictionaryURL is the Free Dictionary API entries endpoint for English
	DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

	// HistoryPageSize is the fixed number of words shown per word history page
	HistoryPageSize = 10
)
