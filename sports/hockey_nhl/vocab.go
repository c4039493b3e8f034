package hockey_nhl

import "github.com/Bet-Zero/BetTracker-sub001/pkg/contracts"

// Vocab implements SportVocab for NHL Hockey
type Vocab struct{}

// NewVocab creates the NHL stat vocabulary
func NewVocab() *Vocab {
	return &Vocab{}
}

// SportKey returns the sport identifier
func (v *Vocab) SportKey() string {
	return "hockey_nhl"
}

// SportAliases returns the names scrapers use for this sport
func (v *Vocab) SportAliases() []string {
	return []string{"nhl", "hockey"}
}

// StatPatterns returns the ordered NHL stat vocabulary
func (v *Vocab) StatPatterns() []contracts.StatPattern {
	return []contracts.StatPattern{
		{Pattern: "goals + assists", Code: "G+A"},
		{Pattern: "goals assists", Code: "G+A"},
		{Pattern: "shots on goal", Code: "SOG"},
		{Pattern: "anytime goal", Code: "ATG"},
		{Pattern: "first goal", Code: "First Goal"},
		{Pattern: "power play points", Code: "PPP"},
		{Pattern: "goals", Code: "G"},
		{Pattern: "goal", Code: "G"},
		{Pattern: "assists", Code: "A"},
		{Pattern: "points", Code: "Pts"},
		{Pattern: "saves", Code: "Saves"},
		{Pattern: "blocked shots", Code: "Blk"},
	}
}
