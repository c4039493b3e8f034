package football_nfl

import "github.com/Bet-Zero/BetTracker-sub001/pkg/contracts"

// Vocab implements SportVocab for NFL Football
type Vocab struct{}

// NewVocab creates the NFL stat vocabulary
func NewVocab() *Vocab {
	return &Vocab{}
}

// SportKey returns the sport identifier
func (v *Vocab) SportKey() string {
	return "football_nfl"
}

// SportAliases returns the names scrapers use for this sport
func (v *Vocab) SportAliases() []string {
	return []string{"nfl", "football", "ncaaf", "cfb"}
}

// StatPatterns returns the ordered NFL stat vocabulary.
// "passing touchdowns" must precede both "passing yards"-style prefixes and
// the bare touchdown patterns, and every multi-word pattern precedes the
// single stats it contains.
func (v *Vocab) StatPatterns() []contracts.StatPattern {
	return []contracts.StatPattern{
		{Pattern: "passing touchdowns", Code: "Pass TD"},
		{Pattern: "pass tds", Code: "Pass TD"},
		{Pattern: "passing yards", Code: "Pass Yds"},
		{Pattern: "pass yds", Code: "Pass Yds"},
		{Pattern: "rushing yards", Code: "Rush Yds"},
		{Pattern: "rush yds", Code: "Rush Yds"},
		{Pattern: "receiving yards", Code: "Rec Yds"},
		{Pattern: "rec yds", Code: "Rec Yds"},
		{Pattern: "rush + rec yards", Code: "Rush+Rec"},
		{Pattern: "rushing + receiving", Code: "Rush+Rec"},
		{Pattern: "anytime touchdown", Code: "TD"},
		{Pattern: "anytime td", Code: "TD"},
		{Pattern: "first touchdown", Code: "First TD"},
		{Pattern: "first td", Code: "First TD"},
		{Pattern: "touchdowns", Code: "TD"},
		{Pattern: "touchdown", Code: "TD"},
		{Pattern: "td", Code: "TD"},
		{Pattern: "receptions", Code: "Rec"},
		{Pattern: "completions", Code: "Comp"},
		{Pattern: "interceptions", Code: "INT"},
		{Pattern: "sacks", Code: "Sack"},
		{Pattern: "field goals", Code: "FG"},
		{Pattern: "kicking points", Code: "Kick Pts"},
	}
}
