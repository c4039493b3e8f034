package resolve

import (
	"github.com/Bet-Zero/BetTracker-sub001/internal/catalog"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// AcceptedLists holds the frontend's own curated names. Entities the user
// already added out-of-band resolve immediately, so the sheet never flags a
// name the user has explicitly accepted even if the catalog lacks an alias
// for it.
type AcceptedLists struct {
	Teams     []string
	Players   []string
	StatTypes []string
}

// Resolver maps free-text entity strings to canonical catalog entries. All
// resolution methods are pure functions of (raw string, sport, snapshot);
// the resolver holds no catalog state of its own.
type Resolver struct {
	acceptedTeams     map[string]string // normalized key -> accepted name
	acceptedPlayers   map[string]string
	acceptedStatTypes map[string]string
}

// NewResolver creates a resolver with the given accepted lists
func NewResolver(accepted AcceptedLists) *Resolver {
	return &Resolver{
		acceptedTeams:     buildAcceptedIndex(accepted.Teams),
		acceptedPlayers:   buildAcceptedIndex(accepted.Players),
		acceptedStatTypes: buildAcceptedIndex(accepted.StatTypes),
	}
}

func buildAcceptedIndex(names []string) map[string]string {
	idx := make(map[string]string, len(names))
	for _, name := range names {
		key := catalog.NormalizeKey(name)
		if key == "" {
			continue
		}
		if _, exists := idx[key]; !exists {
			idx[key] = name
		}
	}
	return idx
}

// ResolveTeam resolves a raw team string against the snapshot
func (r *Resolver) ResolveTeam(snap *catalog.Snapshot, raw, sport string) models.Resolution {
	return r.resolve(snap, models.KindTeam, r.acceptedTeams, raw, sport)
}

// ResolvePlayer resolves a raw player string against the snapshot
func (r *Resolver) ResolvePlayer(snap *catalog.Snapshot, raw, sport string) models.Resolution {
	return r.resolve(snap, models.KindPlayer, r.acceptedPlayers, raw, sport)
}

// ResolveBetType resolves a raw stat-type string against the snapshot
func (r *Resolver) ResolveBetType(snap *catalog.Snapshot, raw, sport string) models.Resolution {
	return r.resolve(snap, models.KindStatType, r.acceptedStatTypes, raw, sport)
}

// ResolveKind resolves against an explicit entity kind, for API callers
func (r *Resolver) ResolveKind(snap *catalog.Snapshot, kind models.EntityKind, raw, sport string) models.Resolution {
	switch kind {
	case models.KindTeam:
		return r.ResolveTeam(snap, raw, sport)
	case models.KindPlayer:
		return r.ResolvePlayer(snap, raw, sport)
	case models.KindStatType:
		return r.ResolveBetType(snap, raw, sport)
	}
	return models.Unresolved(snap.Version())
}

// resolve runs the shared lookup: accepted-list short circuit, then alias
// index. Zero matches → unresolved; one distinct canonical → resolved; more
// than one → ambiguous carrying every candidate for user disambiguation.
func (r *Resolver) resolve(snap *catalog.Snapshot, kind models.EntityKind, accepted map[string]string, raw, sport string) models.Resolution {
	key := catalog.NormalizeKey(raw)
	if key == "" {
		return models.Unresolved(snap.Version())
	}

	if name, ok := accepted[key]; ok {
		return models.Resolved(name, snap.Version())
	}

	matches := snap.Lookup(kind, key, sport)
	switch len(matches) {
	case 0:
		return models.Unresolved(snap.Version())
	case 1:
		return models.Resolved(matches[0], snap.Version())
	}

	return models.Ambiguous(matches, snap.Version())
}
