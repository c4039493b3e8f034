package baseball_mlb

import "github.com/Bet-Zero/BetTracker-sub001/pkg/contracts"

// Vocab implements SportVocab for MLB Baseball
type Vocab struct{}

// NewVocab creates the MLB stat vocabulary
func NewVocab() *Vocab {
	return &Vocab{}
}

// SportKey returns the sport identifier
func (v *Vocab) SportKey() string {
	return "baseball_mlb"
}

// SportAliases returns the names scrapers use for this sport
func (v *Vocab) SportAliases() []string {
	return []string{"mlb", "baseball"}
}

// StatPatterns returns the ordered MLB stat vocabulary
func (v *Vocab) StatPatterns() []contracts.StatPattern {
	return []contracts.StatPattern{
		{Pattern: "hits + runs + rbis", Code: "H+R+RBI"},
		{Pattern: "hits runs rbis", Code: "H+R+RBI"},
		{Pattern: "home runs", Code: "HR"},
		{Pattern: "home run", Code: "HR"},
		{Pattern: "total bases", Code: "TB"},
		{Pattern: "stolen bases", Code: "SB"},
		{Pattern: "strikeouts", Code: "K"},
		{Pattern: "pitcher outs", Code: "Outs"},
		{Pattern: "earned runs", Code: "ER"},
		{Pattern: "rbis", Code: "RBI"},
		{Pattern: "rbi", Code: "RBI"},
		{Pattern: "runs", Code: "R"},
		{Pattern: "hits", Code: "H"},
		{Pattern: "walks", Code: "BB"},
	}
}
