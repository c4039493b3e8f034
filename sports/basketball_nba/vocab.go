package basketball_nba

import "github.com/Bet-Zero/BetTracker-sub001/pkg/contracts"

// Vocab implements SportVocab for NBA Basketball
type Vocab struct{}

// NewVocab creates the NBA stat vocabulary
func NewVocab() *Vocab {
	return &Vocab{}
}

// SportKey returns the sport identifier
func (v *Vocab) SportKey() string {
	return "basketball_nba"
}

// SportAliases returns the names scrapers use for this sport
func (v *Vocab) SportAliases() []string {
	return []string{"nba", "basketball", "wnba", "ncaab", "cbb"}
}

// StatPatterns returns the ordered NBA stat vocabulary.
// Combined stats are listed before their component stats so that
// "points rebounds assists" resolves to PRA rather than Pts.
func (v *Vocab) StatPatterns() []contracts.StatPattern {
	return []contracts.StatPattern{
		{Pattern: "points rebounds assists", Code: "PRA"},
		{Pattern: "pts rebs asts", Code: "PRA"},
		{Pattern: "pts reb ast", Code: "PRA"},
		{Pattern: "points rebounds", Code: "PR"},
		{Pattern: "pts rebs", Code: "PR"},
		{Pattern: "points assists", Code: "PA"},
		{Pattern: "pts asts", Code: "PA"},
		{Pattern: "rebounds assists", Code: "RA"},
		{Pattern: "rebs asts", Code: "RA"},
		{Pattern: "triple double", Code: "TD"},
		{Pattern: "triple-double", Code: "TD"},
		{Pattern: "double double", Code: "DD"},
		{Pattern: "double-double", Code: "DD"},
		{Pattern: "first basket", Code: "FB"},
		{Pattern: "top points scorer", Code: "Top Pts"},
		{Pattern: "top points", Code: "Top Pts"},
		{Pattern: "made threes", Code: "3pt"},
		{Pattern: "three pointers", Code: "3pt"},
		{Pattern: "3-pointers", Code: "3pt"},
		{Pattern: "3 pointers", Code: "3pt"},
		{Pattern: "threes", Code: "3pt"},
		{Pattern: "3pt", Code: "3pt"},
		{Pattern: "points", Code: "Pts"},
		{Pattern: "pts", Code: "Pts"},
		{Pattern: "rebounds", Code: "Reb"},
		{Pattern: "rebs", Code: "Reb"},
		{Pattern: "assists", Code: "Ast"},
		{Pattern: "asts", Code: "Ast"},
		{Pattern: "steals", Code: "Stl"},
		{Pattern: "blocks", Code: "Blk"},
		{Pattern: "turnovers", Code: "TO"},
	}
}
