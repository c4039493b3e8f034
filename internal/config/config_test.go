package config_test

import (
	"os"
	"testing"

	"github.com/Bet-Zero/BetTracker-sub001/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear environment variables
	os.Clearenv()

	cfg := config.LoadConfig()

	// Check server defaults
	if cfg.Server.Addr != ":8090" {
		t.Errorf("Expected default server addr ':8090', got '%s'", cfg.Server.Addr)
	}

	// Check Redis defaults
	if cfg.Redis.URL != "localhost:6380" {
		t.Errorf("Expected default redis URL 'localhost:6380', got '%s'", cfg.Redis.URL)
	}

	if cfg.Redis.Password != "" {
		t.Errorf("Expected empty default redis password, got '%s'", cfg.Redis.Password)
	}

	// Check stream defaults
	if cfg.Stream.ConsumerGroup != "bet-tracker" {
		t.Errorf("Expected default consumer group 'bet-tracker', got '%s'", cfg.Stream.ConsumerGroup)
	}

	if cfg.Stream.ConsumerID != "tracker-1" {
		t.Errorf("Expected default consumer ID 'tracker-1', got '%s'", cfg.Stream.ConsumerID)
	}

	// Check default book (fanduel)
	if len(cfg.Stream.RawBetStreams) != 1 {
		t.Fatalf("Expected 1 default raw bet stream, got %d", len(cfg.Stream.RawBetStreams))
	}

	if cfg.Stream.RawBetStreams[0] != "bets.raw.fanduel" {
		t.Errorf("Expected default stream 'bets.raw.fanduel', got '%s'", cfg.Stream.RawBetStreams[0])
	}

	if cfg.Stream.RejectedStream != "bets.rejected" {
		t.Errorf("Expected rejected stream 'bets.rejected', got '%s'", cfg.Stream.RejectedStream)
	}
}

func TestLoadConfig_MultipleBooks(t *testing.T) {
	os.Clearenv()
	os.Setenv("BOOKS", "fanduel, draftkings ,caesars")
	defer os.Unsetenv("BOOKS")

	cfg := config.LoadConfig()

	want := []string{"bets.raw.fanduel", "bets.raw.draftkings", "bets.raw.caesars"}
	if len(cfg.Stream.RawBetStreams) != len(want) {
		t.Fatalf("Expected %d streams, got %d: %v", len(want), len(cfg.Stream.RawBetStreams), cfg.Stream.RawBetStreams)
	}

	for i, stream := range want {
		if cfg.Stream.RawBetStreams[i] != stream {
			t.Errorf("stream[%d] = '%s', want '%s'", i, cfg.Stream.RawBetStreams[i], stream)
		}
	}
}

func TestLoadConfig_AcceptedLists(t *testing.T) {
	os.Clearenv()
	os.Setenv("ACCEPTED_TEAMS", "Los Angeles Lakers,Boston Celtics")
	os.Setenv("ACCEPTED_PLAYERS", "LeBron James")
	defer func() {
		os.Unsetenv("ACCEPTED_TEAMS")
		os.Unsetenv("ACCEPTED_PLAYERS")
	}()

	cfg := config.LoadConfig()

	if len(cfg.Accepted.Teams) != 2 {
		t.Errorf("Expected 2 accepted teams, got %v", cfg.Accepted.Teams)
	}

	if len(cfg.Accepted.Players) != 1 || cfg.Accepted.Players[0] != "LeBron James" {
		t.Errorf("Expected accepted player 'LeBron James', got %v", cfg.Accepted.Players)
	}

	if len(cfg.Accepted.StatTypes) != 0 {
		t.Errorf("Expected no accepted stat types, got %v", cfg.Accepted.StatTypes)
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("SERVER_ADDR", ":9999")
	os.Setenv("CONSUMER_GROUP", "custom-group")
	defer func() {
		os.Unsetenv("SERVER_ADDR")
		os.Unsetenv("CONSUMER_GROUP")
	}()

	cfg := config.LoadConfig()

	if cfg.Server.Addr != ":9999" {
		t.Errorf("Expected server addr ':9999', got '%s'", cfg.Server.Addr)
	}

	if cfg.Stream.ConsumerGroup != "custom-group" {
		t.Errorf("Expected consumer group 'custom-group', got '%s'", cfg.Stream.ConsumerGroup)
	}
}
