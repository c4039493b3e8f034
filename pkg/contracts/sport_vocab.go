package contracts

// StatPattern maps a market-text fragment to a normalized stat type code.
// Patterns are matched by substring, in slice order: combined-stat patterns
// ("points rebounds assists" → PRA) must come before the single stats they
// contain ("points" → Pts), or the shorter pattern shadows the longer one.
type StatPattern struct {
	Pattern string
	Code    string
}

// SportVocab is the per-sport stat vocabulary contract. Each sport module
// under sports/ implements this and registers itself with the vocab registry.
type SportVocab interface {
	// SportKey returns the canonical sport identifier (e.g. "basketball_nba")
	SportKey() string

	// SportAliases returns the alternate names scrapers use for this sport
	// ("NBA", "Basketball"), matched case-insensitively
	SportAliases() []string

	// StatPatterns returns the ordered stat vocabulary
	StatPatterns() []StatPattern
}
