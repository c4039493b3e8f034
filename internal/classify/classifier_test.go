package classify_test

import (
	"testing"

	"github.com/Bet-Zero/BetTracker-sub001/internal/classify"
	"github.com/Bet-Zero/BetTracker-sub001/internal/registry"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/Bet-Zero/BetTracker-sub001/sports/basketball_nba"
	"github.com/Bet-Zero/BetTracker-sub001/sports/football_nfl"
)

func newTestClassifier(t *testing.T) *classify.Classifier {
	t.Helper()

	reg := registry.NewVocabRegistry()
	if err := reg.Register(basketball_nba.NewVocab()); err != nil {
		t.Fatalf("failed to register NBA vocab: %v", err)
	}
	if err := reg.Register(football_nfl.NewVocab()); err != nil {
		t.Fatalf("failed to register NFL vocab: %v", err)
	}

	return classify.NewClassifier(reg)
}

func TestClassify(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name   string
		market string
		sport  string
		want   string
	}{
		{"Moneyline", "Moneyline", "NBA", models.CategoryMainMarkets},
		{"Spread", "Point Spread", "NBA", models.CategoryMainMarkets},
		{"Game total", "Total Points Over/Under", "NBA", models.CategoryMainMarkets},
		{"Bare over is main market", "Over 224.5", "NBA", models.CategoryMainMarkets},
		{"Puck line", "Puck Line", "NHL", models.CategoryMainMarkets},

		{"Player override beats total", "Player Points Total", "NBA", models.CategoryProps},
		{"Prop keyword", "Rebounds Prop", "NBA", models.CategoryProps},
		{"To record", "To Record a Double Double", "NBA", models.CategoryProps},
		{"Turnovers is not an over", "Turnovers", "NBA", models.CategoryProps},
		{"Stat vocabulary", "Made Threes", "NBA", models.CategoryProps},
		{"Unknown text defaults to props", "Mystery Market", "NBA", models.CategoryProps},

		{"Championship future", "To Win the Championship", "NBA", models.CategoryFutures},
		{"MVP award", "MVP", "NBA", models.CategoryFutures},
		{"Win total beats total", "Regular Season Win Total", "NBA", models.CategoryFutures},
		{"Playoffs", "To Make the Playoffs", "NBA", models.CategoryFutures},

		{"Bare TD in basketball", "TD", "NBA", models.CategoryProps},
		{"Anytime TD in football", "Anytime TD Scorer", "NFL", models.CategoryProps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.market, tt.sport); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.market, tt.sport, got, tt.want)
			}
		})
	}
}

func TestDetermineTypeProps(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name   string
		market string
		sport  string
		want   string
	}{
		// Combined stats must win over their component words
		{"PRA before points", "Points Rebounds Assists", "NBA", "PRA"},
		{"PR before points", "Points Rebounds", "NBA", "PR"},
		{"Plain points", "Points", "NBA", "Pts"},
		{"Made threes", "Made Threes", "NBA", "3pt"},
		{"Threes shorthand", "Threes", "NBA", "3pt"},
		{"Rebounds", "Total Rebounds", "NBA", "Reb"},

		{"Triple double alias", "To Record a Triple Double", "NBA", "TD"},
		{"Bare TD is basketball shorthand", "TD", "NBA", "TD"},
		{"First basket", "First Basket Scorer", "NBA", "FB"},
		{"Top points", "Top Points Scorer", "NBA", "Top Pts"},

		{"Football TD resolves via vocab", "Anytime TD Scorer", "NFL", "TD"},
		{"Passing TDs before passing yards", "Passing Touchdowns", "NFL", "Pass TD"},
		{"Passing yards", "Passing Yards", "NFL", "Pass Yds"},

		{"Unknown stat needs manual classification", "Mystery Stat", "NBA", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.DetermineType(tt.market, models.CategoryProps, tt.sport)
			if got != tt.want {
				t.Errorf("DetermineType(%q, Props, %q) = %q, want %q", tt.market, tt.sport, got, tt.want)
			}
		})
	}
}

func TestDetermineTypeMainMarkets(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name   string
		market string
		want   string
	}{
		{"Spread", "Point Spread", "Spread"},
		{"Puck line is a spread", "Puck Line", "Spread"},
		{"Total", "Game Total", "Total"},
		{"Over", "Over 48.5", "Total"},
		{"Moneyline", "Moneyline", "Moneyline"},
		{"ML token", "ML", "Moneyline"},
		{"Unrecognized defaults to spread", "Alternative Lines", "Spread"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.DetermineType(tt.market, models.CategoryMainMarkets, "NBA")
			if got != tt.want {
				t.Errorf("DetermineType(%q, Main Markets) = %q, want %q", tt.market, got, tt.want)
			}
		})
	}
}

func TestDetermineTypeFutures(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name   string
		market string
		want   string
	}{
		{"MVP", "NBA MVP", "MVP"},
		{"Rookie of the year", "Rookie of the Year", "ROY"},
		{"Win total", "Season Win Total", "Win Total"},
		{"Championship", "To Win the Championship", "Championship"},
		{"Generic future", "To Win Outright", "Future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.DetermineType(tt.market, models.CategoryFutures, "NBA")
			if got != tt.want {
				t.Errorf("DetermineType(%q, Futures) = %q, want %q", tt.market, got, tt.want)
			}
		})
	}
}
