package flatten

import (
	"fmt"
	"strings"

	"github.com/Bet-Zero/BetTracker-sub001/internal/classify"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/oddsmath"
	"github.com/google/uuid"
)

// MaxLegsPerBet caps how many legs one ticket may expand to. Anything above
// this is malformed scraper output; the excess is dropped with a diagnostic
// rather than flooding the sheet with spurious rows.
const MaxLegsPerBet = 10

// Flattener expands a validated bet into display-ready FinalRows: one row
// per leg, plus a synthetic header row for parlays. It owns no state beyond
// its classifier and never mutates the bet it is given.
type Flattener struct {
	classifier *classify.Classifier
}

// NewFlattener creates a flattener using the given classifier
func NewFlattener(c *classify.Classifier) *Flattener {
	return &Flattener{classifier: c}
}

// BetToRows flattens one bet into FinalRows. Diagnostics report recoverable
// capacity violations (leg cap); they never abort the flatten.
func (f *Flattener) BetToRows(bet models.Bet) ([]models.FinalRow, []string) {
	var diagnostics []string

	legs := dedupeLegs(expandLegs(bet.Legs))

	// A ticket is a parlay iff it arrived with legs and still has more than
	// one after group expansion; a single leg inside a "parlay" wrapper is
	// just a single
	isParlay := len(bet.Legs) > 0 && len(legs) > 1

	if len(legs) > MaxLegsPerBet {
		diagnostics = append(diagnostics, fmt.Sprintf(
			"bet %s: %d legs exceeds cap of %d, excess dropped", bet.BetID, len(legs), MaxLegsPerBet))
		legs = legs[:MaxLegsPerBet]
	}

	if isParlay {
		return f.parlayRows(bet, legs), diagnostics
	}

	if len(legs) == 0 {
		// Legacy simple single: bet-level fields only
		return []models.FinalRow{f.legacyRow(bet)}, diagnostics
	}

	rows := make([]models.FinalRow, 0, len(legs))
	for _, leg := range legs {
		rows = append(rows, f.singleRow(bet, leg))
	}
	return rows, diagnostics
}

// expandLegs flattens group legs into their children and drops structural
// placeholders, recursively and without mutating the input
func expandLegs(legs []models.Leg) []models.Leg {
	out := make([]models.Leg, 0, len(legs))

	for _, leg := range legs {
		if isPlaceholder(leg) {
			continue
		}

		if leg.IsGroupLeg {
			// A group is replaced by its children; an empty group renders
			// nothing at all
			out = append(out, expandLegs(leg.Children)...)
			continue
		}

		out = append(out, leg)
	}

	return out
}

// isPlaceholder detects the SGP container wrapper some scrapers emit: market
// text naming the parlay itself, with no selection content behind it
func isPlaceholder(leg models.Leg) bool {
	return strings.Contains(strings.ToLower(leg.Market), "same game parlay") &&
		len(leg.Entities) == 0 && !leg.HasChildren()
}

// dedupeLegs drops exact duplicate selections, keeping first occurrence
func dedupeLegs(legs []models.Leg) []models.Leg {
	seen := make(map[string]bool, len(legs))
	out := make([]models.Leg, 0, len(legs))

	for _, leg := range legs {
		key := strings.ToLower(strings.Join([]string{
			leg.Market,
			strings.Join(leg.Entities, "|"),
			leg.Target.String(),
			leg.OU,
		}, "||"))

		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, leg)
	}

	return out
}

// parlayRows emits the header row followed by one child row per leg. Ticket
// money (stake/toWin/net) appears on the header only; repeating it per child
// would visually multiply a single stake across N rows.
func (f *Flattener) parlayRows(bet models.Bet, legs []models.Leg) []models.FinalRow {
	groupID := uuid.NewString()
	legCount := len(legs)

	rows := make([]models.FinalRow, 0, legCount+1)

	header := f.baseRow(bet)
	header.Category = models.CategoryParlays
	header.Type = parlayLabel(bet.BetType)
	header.Name = fmt.Sprintf("%s (%d)", header.Type, legCount)
	header.ParlayGroupID = groupID
	header.LegIndex = 0
	header.LegCount = legCount
	header.IsParlayHeader = true
	f.applyMoney(&header, bet)
	rows = append(rows, header)

	for i, leg := range legs {
		row := f.baseRow(bet)
		row.ParlayGroupID = groupID
		row.LegIndex = i + 1
		row.LegCount = legCount
		row.IsParlayChild = true
		row.Live = "" // live flag belongs to the ticket, shown on the header

		f.applyClassification(&row, leg, bet.Sport)
		f.applySubject(&row, leg)

		// Leg-level odds are informational only; stake and net stay on the
		// header
		row.RawOdds = leg.Odds
		row.Odds = oddsmath.FormatAmerican(leg.Odds)
		row.Result = string(leg.Result)

		rows = append(rows, row)
	}

	return rows
}

// singleRow emits one fully-valued row for a non-parlay leg
func (f *Flattener) singleRow(bet models.Bet, leg models.Leg) models.FinalRow {
	row := f.baseRow(bet)
	row.LegCount = 1

	f.applyClassification(&row, leg, bet.Sport)
	f.applySubject(&row, leg)
	f.applyMoney(&row, bet)

	return row
}

// legacyRow emits the one row for a bet with no legs at all: bet-level
// fields carry everything and the category comes from the scraper when it
// provided one
func (f *Flattener) legacyRow(bet models.Bet) models.FinalRow {
	row := f.baseRow(bet)
	row.LegCount = 1

	row.Category = bet.MarketCategory
	if row.Category == "" {
		row.Category = models.CategoryProps
	}

	f.applyMoney(&row, bet)
	return row
}

// baseRow seeds the fields every row shares
func (f *Flattener) baseRow(bet models.Bet) models.FinalRow {
	live := "0"
	if bet.IsLive {
		live = "1"
	}

	return models.FinalRow{
		BetID:    bet.BetID,
		Book:     bet.Book,
		Sport:    bet.Sport,
		PlacedAt: bet.PlacedAt,
		Over:     "0",
		Under:    "0",
		Result:   string(bet.Result),
		Live:     live,
		Tail:     bet.Tail,
	}
}

// applyClassification fills Category/Type from the leg's market text
func (f *Flattener) applyClassification(row *models.FinalRow, leg models.Leg, sport string) {
	row.Category = f.classifier.Classify(leg.Market, sport)
	row.Type = f.classifier.DetermineType(leg.Market, row.Category, sport)
}

// applySubject fills the subject name(s), line, and over/under flags
func (f *Flattener) applySubject(row *models.FinalRow, leg models.Leg) {
	if len(leg.Entities) > 0 {
		row.Name = leg.Entities[0]
	}

	// Two-entity totals keep both sides (opposing teams) instead of
	// collapsing to one subject
	if row.Category == models.CategoryMainMarkets && row.Type == "Total" && len(leg.Entities) > 1 {
		row.Name2 = leg.Entities[1]
	}

	row.Line = leg.Target.String()

	switch {
	case strings.EqualFold(leg.OU, "over"):
		row.Over = "1"
	case strings.EqualFold(leg.OU, "under"):
		row.Under = "1"
	case leg.Target.IsMilestone():
		// "3+" style milestones are implicit overs
		row.Over = "1"
	}
}

// applyMoney fills ticket-level financial fields on a row
func (f *Flattener) applyMoney(row *models.FinalRow, bet models.Bet) {
	row.RawOdds = bet.Odds
	row.RawStake = bet.Stake
	row.Odds = oddsmath.FormatAmerican(bet.Odds)
	row.Bet = oddsmath.FormatMoney(bet.Stake)

	if toWin, ok := oddsmath.ToWin(bet.Stake, bet.Odds, bet.Payout); ok {
		row.RawToWin = &toWin
		row.ToWin = oddsmath.FormatMoney(toWin)
	}

	if net, ok := oddsmath.Net(bet.Result, bet.Stake, bet.Odds, bet.Payout); ok {
		row.RawNet = &net
		row.Net = oddsmath.FormatMoney(net)
	}
}

// parlayLabel maps a bet type to its header label
func parlayLabel(betType models.BetType) string {
	switch betType {
	case models.BetTypeSGP:
		return "SGP"
	case models.BetTypeSGPPlus:
		return "SGP+"
	}
	return "Parlay"
}
