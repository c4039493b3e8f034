package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Catalog owns the user-curated reference data: canonical teams, players and
// stat types with their alias sets. Every mutation bumps a monotonic version;
// consumers that memoize resolution results key their memo by that version
// and re-derive when it moves. The catalog itself never resolves anything;
// that is the resolver's job, over an immutable Snapshot.
type Catalog struct {
	mu      sync.RWMutex
	version int64
	entries map[models.EntityKind][]models.CanonicalEntity
}

// New creates an empty catalog at version 1
func New() *Catalog {
	return &Catalog{
		version: 1,
		entries: make(map[models.EntityKind][]models.CanonicalEntity),
	}
}

// NormalizeKey reduces a raw string to its alias lookup key: trimmed,
// case-folded, internal whitespace collapsed
func NormalizeKey(raw string) string {
	fields := strings.Fields(strings.ToLower(raw))
	return strings.Join(fields, " ")
}

// DedupeAliases removes aliases that normalize to the same lookup key,
// keeping the first occurrence in its original form and order
func DedupeAliases(aliases []string) []string {
	seen := make(map[string]bool, len(aliases))
	out := make([]string, 0, len(aliases))

	for _, alias := range aliases {
		key := NormalizeKey(alias)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, alias)
	}

	return out
}

// Version returns the current catalog version
func (c *Catalog) Version() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Add inserts a new canonical entity. The alias list is deduplicated by
// normalized key before storage.
func (c *Catalog) Add(kind models.EntityKind, entity models.CanonicalEntity) error {
	if strings.TrimSpace(entity.Canonical) == "" {
		return fmt.Errorf("canonical name cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.find(kind, entity.Canonical, entity.Sport) >= 0 {
		return fmt.Errorf("%s %q already exists", kind, entity.Canonical)
	}

	entity.Aliases = DedupeAliases(entity.Aliases)
	c.entries[kind] = append(c.entries[kind], entity)
	c.version++
	return nil
}

// Update replaces an existing entity's record, matched by canonical name and
// sport
func (c *Catalog) Update(kind models.EntityKind, entity models.CanonicalEntity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(kind, entity.Canonical, entity.Sport)
	if idx < 0 {
		return fmt.Errorf("%s %q not found", kind, entity.Canonical)
	}

	entity.Aliases = DedupeAliases(entity.Aliases)
	c.entries[kind][idx] = entity
	c.version++
	return nil
}

// Remove deletes an entity
func (c *Catalog) Remove(kind models.EntityKind, canonical, sport string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(kind, canonical, sport)
	if idx < 0 {
		return fmt.Errorf("%s %q not found", kind, canonical)
	}

	c.entries[kind] = append(c.entries[kind][:idx], c.entries[kind][idx+1:]...)
	c.version++
	return nil
}

// SetDisabled flips an entity's disabled flag. Disabled entities are
// excluded from resolution entirely but keep their stored data.
func (c *Catalog) SetDisabled(kind models.EntityKind, canonical, sport string, disabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(kind, canonical, sport)
	if idx < 0 {
		return fmt.Errorf("%s %q not found", kind, canonical)
	}

	c.entries[kind][idx].Disabled = disabled
	c.version++
	return nil
}

// AddAliases merges new aliases into an entity, deduplicating against the
// existing set by normalized key (first occurrence wins, order preserved)
func (c *Catalog) AddAliases(kind models.EntityKind, canonical, sport string, aliases []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(kind, canonical, sport)
	if idx < 0 {
		return fmt.Errorf("%s %q not found", kind, canonical)
	}

	merged := append(append([]string{}, c.entries[kind][idx].Aliases...), aliases...)
	c.entries[kind][idx].Aliases = DedupeAliases(merged)
	c.version++
	return nil
}

// Replace swaps in an entire entity set for a kind, used when loading from
// storage at startup
func (c *Catalog) Replace(kind models.EntityKind, entities []models.CanonicalEntity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cleaned := make([]models.CanonicalEntity, len(entities))
	for i, e := range entities {
		e.Aliases = DedupeAliases(e.Aliases)
		cleaned[i] = e
	}

	c.entries[kind] = cleaned
	c.version++
}

// List returns a copy of the entities of one kind
func (c *Catalog) List(kind models.EntityKind) []models.CanonicalEntity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.CanonicalEntity, len(c.entries[kind]))
	copy(out, c.entries[kind])
	return out
}

// find locates an entity index by canonical name and sport; callers hold the
// lock
func (c *Catalog) find(kind models.EntityKind, canonical, sport string) int {
	nameKey := NormalizeKey(canonical)
	sportKey := NormalizeKey(sport)

	for i, e := range c.entries[kind] {
		if NormalizeKey(e.Canonical) == nameKey && NormalizeKey(e.Sport) == sportKey {
			return i
		}
	}
	return -1
}
