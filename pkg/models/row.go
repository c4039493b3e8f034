package models

// FinalRow is one flattened, classified, display-ready record. The frontend
// spreadsheet renders these directly: display fields are pre-formatted
// strings, with raw numeric shadows kept alongside so aggregation never has
// to re-parse what it just formatted.
type FinalRow struct {
	// Ticket identity, carried for filtering and persistence
	BetID    string `json:"betId"`
	Book     string `json:"book"`
	Sport    string `json:"sport"`
	PlacedAt string `json:"placedAt"`

	// Classification
	Category string `json:"Category"`
	Type     string `json:"Type"` // empty string means "needs manual classification"

	// Subject. Name2 is set only for two-entity totals (opposing teams)
	Name  string `json:"Name"`
	Name2 string `json:"Name2,omitempty"`

	// Over/Under flags as the sheet stores them: "1" or "0"
	Over  string `json:"Over"`
	Under string `json:"Under"`

	// Display fields, formatted per oddsmath conventions
	Line   string `json:"Line"`
	Odds   string `json:"Odds"`
	Bet    string `json:"Bet"`
	ToWin  string `json:"ToWin"`
	Result string `json:"Result"`
	Net    string `json:"Net"` // empty while pending, never "0.00"
	Live   string `json:"Live"`
	Tail   string `json:"Tail,omitempty"`

	// Raw numeric shadows for arithmetic reuse. Nil means unknown/pending,
	// which is distinct from zero.
	RawOdds  int      `json:"_rawOdds"`
	RawStake float64  `json:"_rawStake"`
	RawToWin *float64 `json:"_rawToWin,omitempty"`
	RawNet   *float64 `json:"_rawNet,omitempty"`

	// Parlay bookkeeping
	ParlayGroupID  string `json:"_parlayGroupId,omitempty"`
	LegIndex       int    `json:"_legIndex"`
	LegCount       int    `json:"_legCount"`
	IsParlayHeader bool   `json:"_isParlayHeader"`
	IsParlayChild  bool   `json:"_isParlayChild"`
}

// RowUpdate is the message pushed to websocket clients when an import
// produces new rows
type RowUpdate struct {
	BetID string     `json:"bet_id"`
	Book  string     `json:"book"`
	Sport string     `json:"sport"`
	Rows  []FinalRow `json:"rows"`
}
