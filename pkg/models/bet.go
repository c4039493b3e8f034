package models

// BetType classifies the overall shape of a wager ticket
type BetType string

const (
	BetTypeSingle  BetType = "single"
	BetTypeParlay  BetType = "parlay"
	BetTypeSGP     BetType = "sgp"
	BetTypeSGPPlus BetType = "sgp_plus"
	BetTypeLive    BetType = "live"
	BetTypeOther   BetType = "other"
)

// Result is the settlement state of a bet or leg
type Result string

const (
	ResultWin     Result = "win"
	ResultLoss    Result = "loss"
	ResultPush    Result = "push"
	ResultPending Result = "pending"
)

// EntityType tags what kind of subject a leg is about
type EntityType string

const (
	EntityTypePlayer  EntityType = "player"
	EntityTypeTeam    EntityType = "team"
	EntityTypeUnknown EntityType = "unknown"
)

// Market categories produced by the classifier
const (
	CategoryProps       = "Props"
	CategoryMainMarkets = "Main Markets"
	CategoryFutures     = "Futures"
	CategoryParlays     = "Parlays"
)

// Bet is one wager ticket as emitted by a site-specific scraper.
// Scrapers own this shape; BetTracker only reads it. A bet must pass
// contract.Validate before it enters the flattening pipeline.
type Bet struct {
	ID       string `json:"id"`
	Book     string `json:"book"`
	BetID    string `json:"betId"`
	PlacedAt string `json:"placedAt"` // ISO-8601; validated, kept raw for display

	BetType        BetType `json:"betType"`
	MarketCategory string  `json:"marketCategory"`
	Sport          string  `json:"sport"`

	Odds   int     `json:"odds"` // American
	Stake  float64 `json:"stake"`
	Payout float64 `json:"payout"` // realized payout, 0 when unknown

	Result Result `json:"result"`
	IsLive bool   `json:"isLive"`
	Tail   string `json:"tail,omitempty"` // who the bettor copied, if anyone

	Legs []Leg `json:"legs"`
}

// Leg is one selection within a wager. A leg with IsGroupLeg set wraps an
// inner same-game parlay folded into a larger combination (SGP+); its
// Children are themselves legs and may nest further.
type Leg struct {
	Market     string     `json:"market"`
	Entities   []string   `json:"entities"`
	EntityType EntityType `json:"entityType"`
	Target     Target     `json:"target"` // line/threshold; "3+" style milestones allowed
	OU         string     `json:"ou"`     // "Over", "Under", or empty
	Odds       int        `json:"odds"`   // leg-level American odds; 0 when absent
	Result     Result     `json:"result"`

	IsGroupLeg bool  `json:"isGroupLeg,omitempty"`
	Children   []Leg `json:"children,omitempty"`
}

// HasChildren reports whether the leg wraps nested selections
func (l Leg) HasChildren() bool {
	return len(l.Children) > 0
}
