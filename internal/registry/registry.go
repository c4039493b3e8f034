package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/contracts"
)

// VocabRegistry manages registered sport vocabularies, resolving the loose
// sport strings scrapers emit ("NBA", "basketball") to a vocabulary
type VocabRegistry struct {
	vocabs  map[string]contracts.SportVocab // by sport key
	byAlias map[string]contracts.SportVocab // by lowercased alias
	mu      sync.RWMutex
}

// NewVocabRegistry creates a new vocabulary registry
func NewVocabRegistry() *VocabRegistry {
	return &VocabRegistry{
		vocabs:  make(map[string]contracts.SportVocab),
		byAlias: make(map[string]contracts.SportVocab),
	}
}

// Register adds a sport vocabulary to the registry
func (r *VocabRegistry) Register(vocab contracts.SportVocab) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sportKey := vocab.SportKey()
	if _, exists := r.vocabs[sportKey]; exists {
		return fmt.Errorf("vocabulary for sport %s is already registered", sportKey)
	}

	r.vocabs[sportKey] = vocab
	r.byAlias[strings.ToLower(sportKey)] = vocab
	for _, alias := range vocab.SportAliases() {
		r.byAlias[strings.ToLower(strings.TrimSpace(alias))] = vocab
	}

	return nil
}

// Lookup resolves a raw sport string to a registered vocabulary
func (r *VocabRegistry) Lookup(sport string) (contracts.SportVocab, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vocab, exists := r.byAlias[strings.ToLower(strings.TrimSpace(sport))]
	return vocab, exists
}

// GetAll returns all registered vocabularies
func (r *VocabRegistry) GetAll() []contracts.SportVocab {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vocabs := make([]contracts.SportVocab, 0, len(r.vocabs))
	for _, vocab := range r.vocabs {
		vocabs = append(vocabs, vocab)
	}
	return vocabs
}

// Count returns the number of registered vocabularies
func (r *VocabRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.vocabs)
}
