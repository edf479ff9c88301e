// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - WordStore: Per-user word storage (internal/services/interfaces.go)
//   - UserStore: Credential lookup and seeding (internal/auth/service.go)
//   - CursorStore: Review position kept in the session (internal/http/stores.go)
//
// ## External Service Interfaces
//
//   - Translator: Machine translation of a word (internal/enrichment/enricher.go)
//   - ExampleFinder: Usage examples for a word (internal/enrichment/enricher.go)
//   - Client: Full dictionary lookups (internal/dictionary/client.go)
//
// ## Application Interfaces
//
//   - Enricher: Word to composed meaning (internal/services/interfaces.go)
//   - WordService: Everything the handlers call (internal/http/stores.go)
//
// # Adding a New Translation Provider
//
//  1. Implement Translator in its own package under internal/
//
//     type DeepLClient struct {
//         apiKey     string
//         httpClient *http.Client
//     }
//
//     func (c *DeepLClient) Translate(ctx context.Context, text, src, dst string) (string, error)
//
//  2. Add a compile-time check to checks.go
//
//  3. Pass it to enrichment.NewEnricher in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
