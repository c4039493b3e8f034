package classify

import (
	"strings"

	"github.com/Bet-Zero/BetTracker-sub001/internal/registry"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Classifier infers a leg's market category and normalized type code from
// its raw market text. It operates on text only; entity resolution is a
// separate concern handled by the resolver.
type Classifier struct {
	registry *registry.VocabRegistry
}

// NewClassifier creates a classifier backed by the given vocabulary registry
func NewClassifier(reg *registry.VocabRegistry) *Classifier {
	return &Classifier{registry: reg}
}

// Keyword sets for category classification. Matched by substring against
// lowercased market text.
var (
	futuresKeywords = []string{
		"to win",
		"mvp",
		"champion", // also matches "championship"
		"outright",
		"win total",
		"make the playoffs",
		"make playoffs",
		"miss the playoffs",
		"miss playoffs",
		"rookie of the year",
		"futures",
		"award",
	}

	mainMarketKeywords = []string{
		"moneyline",
		"money line",
		"spread",
		"total",
		"puck line",
		"run line",
	}

	// matched as standalone words so "turnovers" doesn't read as "over"
	mainMarketTokens = []string{"over", "under"}

	propKeywords = []string{
		"player",
		"prop",
		"to record",
		"to score",
	}
)

// Classify returns the market category for a leg's raw market text.
// Rules are evaluated in strict priority order with early exit; the order is
// load-bearing and must not be rearranged.
func (c *Classifier) Classify(marketText, sport string) string {
	text := strings.ToLower(strings.TrimSpace(marketText))

	// 1. Futures first: "win total" is a future, and checking main-market
	// keywords first would misread its "total" as a team total.
	for _, kw := range futuresKeywords {
		if strings.Contains(text, kw) {
			return models.CategoryFutures
		}
	}

	// 2. Main markets, unless the text also says "player" or "prop": a
	// "player points total" is a prop, not a team total.
	if !strings.Contains(text, "player") && !strings.Contains(text, "prop") {
		for _, kw := range mainMarketKeywords {
			if strings.Contains(text, kw) {
				return models.CategoryMainMarkets
			}
		}
		for _, tok := range mainMarketTokens {
			if tokenMatch(text, tok) {
				return models.CategoryMainMarkets
			}
		}
	}

	// 3. Bare "TD" means triple-double in basketball. For other sports the
	// token is left to type mapping (NFL touchdowns land in Props anyway
	// via the vocabulary below).
	if c.isBasketball(sport) && tokenMatch(text, "td") {
		return models.CategoryProps
	}

	// 4. Generic prop keywords
	for _, kw := range propKeywords {
		if strings.Contains(text, kw) {
			return models.CategoryProps
		}
	}

	// 5. Sport-specific stat vocabulary
	if vocab, ok := c.registry.Lookup(sport); ok {
		for _, sp := range vocab.StatPatterns() {
			if strings.Contains(text, sp.Pattern) {
				return models.CategoryProps
			}
		}
	}

	// 6. Default to Props: a prop misfiled as a main market corrupts
	// totals-vs-props dashboards more visibly than the reverse.
	return models.CategoryProps
}

// DetermineType returns the normalized type code for a classified market.
// For Props an empty return is the explicit "needs manual classification"
// signal; the classifier never guesses a stat code.
func (c *Classifier) DetermineType(marketText, category, sport string) string {
	text := strings.ToLower(strings.TrimSpace(marketText))

	switch category {
	case models.CategoryProps:
		return c.propType(text, sport)
	case models.CategoryMainMarkets:
		return mainMarketType(text)
	case models.CategoryFutures:
		return futureType(text)
	}

	return ""
}

// propType resolves a prop's stat code: direct aliases first, then the
// sport vocabulary in declared order (combined stats before their parts)
func (c *Classifier) propType(text, sport string) string {
	switch {
	case strings.Contains(text, "first basket"):
		return "FB"
	case strings.Contains(text, "top points"), strings.Contains(text, "top pts"):
		return "Top Pts"
	case strings.Contains(text, "triple double"), strings.Contains(text, "triple-double"):
		return "TD"
	case strings.Contains(text, "double double"), strings.Contains(text, "double-double"):
		return "DD"
	}

	// Bare TD/DD/FB tokens are basketball shorthand only; football "TD"
	// resolves through the NFL vocabulary instead
	if c.isBasketball(sport) {
		switch {
		case tokenMatch(text, "td"):
			return "TD"
		case tokenMatch(text, "dd"):
			return "DD"
		case tokenMatch(text, "fb"):
			return "FB"
		}
	}

	if vocab, ok := c.registry.Lookup(sport); ok {
		for _, sp := range vocab.StatPatterns() {
			if strings.Contains(text, sp.Pattern) {
				return sp.Code
			}
		}
	}

	return ""
}

// mainMarketType maps main-market text to Spread/Total/Moneyline
func mainMarketType(text string) string {
	switch {
	case strings.Contains(text, "spread"), strings.Contains(text, "puck line"), strings.Contains(text, "run line"):
		return "Spread"
	case strings.Contains(text, "total"), strings.Contains(text, "over"), strings.Contains(text, "under"):
		return "Total"
	case strings.Contains(text, "moneyline"), strings.Contains(text, "money line"), tokenMatch(text, "ml"):
		return "Moneyline"
	}

	return "Spread"
}

// futureType maps futures text to a named future, falling back to the
// generic "Future"
func futureType(text string) string {
	switch {
	case strings.Contains(text, "mvp"):
		return "MVP"
	case strings.Contains(text, "rookie of the year"):
		return "ROY"
	case strings.Contains(text, "win total"):
		return "Win Total"
	case strings.Contains(text, "champion"):
		return "Championship"
	case strings.Contains(text, "division"):
		return "Division"
	case strings.Contains(text, "conference"):
		return "Conference"
	case strings.Contains(text, "playoffs"):
		return "Playoffs"
	}

	return "Future"
}

// isBasketball reports whether the sport resolves to a basketball vocabulary
func (c *Classifier) isBasketball(sport string) bool {
	vocab, ok := c.registry.Lookup(sport)
	return ok && vocab.SportKey() == "basketball_nba"
}

// tokenMatch reports whether text contains tok as a standalone word
func tokenMatch(text, tok string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if field == tok {
			return true
		}
	}
	return false
}
