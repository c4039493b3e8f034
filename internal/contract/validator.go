package contract

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Report is the outcome of validating a scraped bet against the parser
// contract. Errors make the bet invalid and keep it out of the pipeline:
// a malformed ticket must never reach financial aggregation. Warnings flag
// cosmetic omissions that degrade gracefully to classification fallbacks.
type Report struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Timestamp layouts scrapers are allowed to emit
var placedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var knownCategories = map[string]bool{
	"":                         true, // absent is fine; the classifier fills it in
	models.CategoryProps:       true,
	models.CategoryMainMarkets: true,
	models.CategoryFutures:     true,
	models.CategoryParlays:     true,
}

// Validate checks a candidate bet against the parser contract
func Validate(bet models.Bet) Report {
	report := Report{Errors: []string{}, Warnings: []string{}}

	if strings.TrimSpace(bet.ID) == "" {
		report.Errors = append(report.Errors, "missing id")
	}
	if strings.TrimSpace(bet.BetID) == "" {
		report.Errors = append(report.Errors, "missing betId")
	}

	if strings.TrimSpace(bet.PlacedAt) == "" {
		report.Errors = append(report.Errors, "missing placedAt")
	} else if !parsesAsTime(bet.PlacedAt) {
		report.Errors = append(report.Errors, fmt.Sprintf("invalid placedAt: %q", bet.PlacedAt))
	}

	if math.IsNaN(bet.Stake) || math.IsInf(bet.Stake, 0) {
		report.Errors = append(report.Errors, "stake is not a number")
	} else if bet.Stake <= 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("stake must be positive, got %v", bet.Stake))
	}

	if math.IsNaN(bet.Payout) || math.IsInf(bet.Payout, 0) {
		report.Errors = append(report.Errors, "payout is not a number")
	}

	// Multi-leg bet types must carry their legs; only legacy simple singles
	// may use bet-level fields alone
	if len(bet.Legs) == 0 && legsExpected(bet.BetType) {
		report.Errors = append(report.Errors, fmt.Sprintf("betType %q requires legs", bet.BetType))
	}

	for i, leg := range bet.Legs {
		validateLeg(&report, leg, fmt.Sprintf("legs[%d]", i))
	}

	if !knownCategories[bet.MarketCategory] {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("unknown marketCategory %q, classifier will infer it", bet.MarketCategory))
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// validateLeg checks one leg and recurses into group children
func validateLeg(report *Report, leg models.Leg, path string) {
	// Structural placeholders (group wrapper with nothing inside) are the
	// flattener's job to drop, not a contract violation
	if strings.TrimSpace(leg.Market) == "" && !leg.IsGroupLeg {
		report.Errors = append(report.Errors, fmt.Sprintf("%s missing market", path))
	}

	if leg.EntityType == "" && !leg.IsGroupLeg {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s missing entityType", path))
	}

	for i, child := range leg.Children {
		validateLeg(report, child, fmt.Sprintf("%s.children[%d]", path, i))
	}
}

// legsExpected reports whether a bet type is inherently multi-leg
func legsExpected(betType models.BetType) bool {
	switch betType {
	case models.BetTypeParlay, models.BetTypeSGP, models.BetTypeSGPPlus:
		return true
	}
	return false
}

func parsesAsTime(s string) bool {
	for _, layout := range placedAtLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
