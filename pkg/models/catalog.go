package models

// EntityKind selects which part of the reference catalog a lookup targets
type EntityKind string

const (
	KindTeam     EntityKind = "team"
	KindPlayer   EntityKind = "player"
	KindStatType EntityKind = "stattype"
)

// CanonicalEntity is one user-curated reference record: the single
// authoritative name for a team, player, or stat type, plus the raw strings
// scrapers are known to emit for it. Disabling an entity removes it from
// resolution without deleting its history.
type CanonicalEntity struct {
	Canonical string   `json:"canonical"`
	Sport     string   `json:"sport,omitempty"` // empty means not sport-scoped
	Aliases   []string `json:"aliases"`
	Disabled  bool     `json:"disabled"`
}

// ResolutionStatus is the tri-state outcome of an entity lookup
type ResolutionStatus string

const (
	// StatusResolved means exactly one enabled canonical claims the alias
	StatusResolved ResolutionStatus = "resolved"
	// StatusAmbiguous means two or more enabled canonicals claim it; this is
	// a legitimate steady state requiring user disambiguation, not an error
	StatusAmbiguous ResolutionStatus = "ambiguous"
	// StatusUnresolved means nothing claims it
	StatusUnresolved ResolutionStatus = "unresolved"
)

// Resolution is the result of resolving one raw string against a catalog
// snapshot. It is valid only for the snapshot version it was computed from.
type Resolution struct {
	Status     ResolutionStatus `json:"status"`
	Canonical  string           `json:"canonical,omitempty"`
	Candidates []string         `json:"candidates,omitempty"`
	Version    int64            `json:"version"`
}

// Resolved builds a resolved result
func Resolved(canonical string, version int64) Resolution {
	return Resolution{Status: StatusResolved, Canonical: canonical, Version: version}
}

// Ambiguous builds an ambiguous result carrying every claiming canonical
func Ambiguous(candidates []string, version int64) Resolution {
	return Resolution{Status: StatusAmbiguous, Candidates: candidates, Version: version}
}

// Unresolved builds an unresolved result
func Unresolved(version int64) Resolution {
	return Resolution{Status: StatusUnresolved, Version: version}
}
