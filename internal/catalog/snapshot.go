package catalog

import (
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Snapshot is an immutable view of the catalog at one version, indexed for
// alias lookup. Resolution results computed from a snapshot are valid only
// while the catalog version matches; after any mutation consumers must take
// a fresh snapshot.
type Snapshot struct {
	version int64
	index   map[models.EntityKind]map[string][]indexEntry
}

type indexEntry struct {
	canonical string
	sport     string // normalized; empty means not sport-scoped
}

// Snapshot builds an immutable lookup view of the current catalog state.
// Disabled entities are left out of the index entirely. An entity's
// canonical name doubles as an alias for itself.
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := &Snapshot{
		version: c.version,
		index:   make(map[models.EntityKind]map[string][]indexEntry),
	}

	for kind, entities := range c.entries {
		byKey := make(map[string][]indexEntry)
		for _, e := range entities {
			if e.Disabled {
				continue
			}

			entry := indexEntry{canonical: e.Canonical, sport: NormalizeKey(e.Sport)}
			keys := make([]string, 0, len(e.Aliases)+1)
			keys = append(keys, NormalizeKey(e.Canonical))
			for _, alias := range e.Aliases {
				keys = append(keys, NormalizeKey(alias))
			}

			seen := make(map[string]bool, len(keys))
			for _, key := range keys {
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				byKey[key] = append(byKey[key], entry)
			}
		}
		snap.index[kind] = byKey
	}

	return snap
}

// Version returns the catalog version this snapshot was taken at
func (s *Snapshot) Version() int64 {
	return s.version
}

// Lookup returns the distinct enabled canonicals claiming the given alias
// key, filtered by sport for sport-scoped entities. Entities with no sport
// scope match every sport.
func (s *Snapshot) Lookup(kind models.EntityKind, key, sport string) []string {
	sportKey := NormalizeKey(sport)

	var out []string
	seen := make(map[string]bool)

	for _, entry := range s.index[kind][key] {
		if entry.sport != "" && sportKey != "" && entry.sport != sportKey {
			continue
		}
		if seen[entry.canonical] {
			continue
		}
		seen[entry.canonical] = true
		out = append(out, entry.canonical)
	}

	return out
}
