package registry_test

import (
	"testing"

	"github.com/Bet-Zero/BetTracker-sub001/internal/registry"
	"github.com/Bet-Zero/BetTracker-sub001/sports/basketball_nba"
	"github.com/Bet-Zero/BetTracker-sub001/sports/football_nfl"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := registry.NewVocabRegistry()

	if err := reg.Register(basketball_nba.NewVocab()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register(football_nfl.NewVocab()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if reg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", reg.Count())
	}

	tests := []struct {
		name    string
		sport   string
		wantKey string
		wantOK  bool
	}{
		{"Sport key itself", "basketball_nba", "basketball_nba", true},
		{"Common alias", "NBA", "basketball_nba", true},
		{"Alias case folded", "nba", "basketball_nba", true},
		{"Alias with whitespace", "  nfl ", "football_nfl", true},
		{"Generic sport name", "basketball", "basketball_nba", true},
		{"Unknown sport", "cricket", "", false},
		{"Empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab, ok := reg.Lookup(tt.sport)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.sport, ok, tt.wantOK)
			}
			if ok && vocab.SportKey() != tt.wantKey {
				t.Errorf("Lookup(%q) = %q, want %q", tt.sport, vocab.SportKey(), tt.wantKey)
			}
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := registry.NewVocabRegistry()

	if err := reg.Register(basketball_nba.NewVocab()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	if err := reg.Register(basketball_nba.NewVocab()); err == nil {
		t.Error("second Register of the same sport should fail")
	}
}
