package client_test

import (
	"testing"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/internal/client"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// MockHub implements the Hub interface for testing
type MockHub struct {
	unregisteredClients []*client.Client
}

func (m *MockHub) Unregister(c *client.Client) {
	m.unregisteredClients = append(m.unregisteredClients, c)
}

func TestClient_MatchesFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.SubscriptionFilter
		update   models.RowUpdate
		expected bool
	}{
		{
			name:     "empty filter matches everything",
			filter:   models.SubscriptionFilter{},
			update:   models.RowUpdate{Book: "fanduel", Sport: "NBA"},
			expected: true,
		},
		{
			name:     "book filter matches",
			filter:   models.SubscriptionFilter{Books: []string{"fanduel", "draftkings"}},
			update:   models.RowUpdate{Book: "fanduel", Sport: "NBA"},
			expected: true,
		},
		{
			name:     "book filter doesn't match",
			filter:   models.SubscriptionFilter{Books: []string{"draftkings"}},
			update:   models.RowUpdate{Book: "fanduel", Sport: "NBA"},
			expected: false,
		},
		{
			name:     "sport filter matches",
			filter:   models.SubscriptionFilter{Sports: []string{"NBA"}},
			update:   models.RowUpdate{Book: "fanduel", Sport: "NBA"},
			expected: true,
		},
		{
			name:     "sport filter doesn't match",
			filter:   models.SubscriptionFilter{Sports: []string{"NFL"}},
			update:   models.RowUpdate{Book: "fanduel", Sport: "NBA"},
			expected: false,
		},
		{
			name:     "both filters must match",
			filter:   models.SubscriptionFilter{Books: []string{"fanduel"}, Sports: []string{"NFL"}},
			update:   models.RowUpdate{Book: "fanduel", Sport: "NBA"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := client.NewClient("test-client", nil, &MockHub{})
			c.SetFilter(tt.filter)

			if got := c.MatchesFilter(tt.update); got != tt.expected {
				t.Errorf("MatchesFilter() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClient_TrySend(t *testing.T) {
	c := client.NewClient("test-client", nil, &MockHub{})

	msg := models.ServerMessage{
		Type:      models.MessageTypeRowUpdate,
		Timestamp: time.Now(),
	}

	// Fresh client has buffer capacity
	if !c.TrySend(msg) {
		t.Fatal("TrySend on an empty buffer should succeed")
	}

	// Fill the buffer completely
	for c.TrySend(msg) {
	}

	// Full buffer drops instead of blocking
	if c.TrySend(msg) {
		t.Error("TrySend on a full buffer should return false")
	}
}

func TestClient_FilterRoundTrip(t *testing.T) {
	c := client.NewClient("test-client", nil, &MockHub{})

	filter := models.SubscriptionFilter{Books: []string{"fanduel"}, Sports: []string{"NBA", "NFL"}}
	c.SetFilter(filter)

	got := c.GetFilter()
	if len(got.Books) != 1 || got.Books[0] != "fanduel" {
		t.Errorf("books = %v, want [fanduel]", got.Books)
	}
	if len(got.Sports) != 2 {
		t.Errorf("sports = %v, want two entries", got.Sports)
	}
}
