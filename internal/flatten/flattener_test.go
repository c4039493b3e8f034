package flatten_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/Bet-Zero/BetTracker-sub001/internal/classify"
	"github.com/Bet-Zero/BetTracker-sub001/internal/flatten"
	"github.com/Bet-Zero/BetTracker-sub001/internal/registry"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/Bet-Zero/BetTracker-sub001/sports/basketball_nba"
	"github.com/Bet-Zero/BetTracker-sub001/sports/football_nfl"
)

func newTestFlattener(t *testing.T) *flatten.Flattener {
	t.Helper()

	reg := registry.NewVocabRegistry()
	if err := reg.Register(basketball_nba.NewVocab()); err != nil {
		t.Fatalf("failed to register NBA vocab: %v", err)
	}
	if err := reg.Register(football_nfl.NewVocab()); err != nil {
		t.Fatalf("failed to register NFL vocab: %v", err)
	}

	return flatten.NewFlattener(classify.NewClassifier(reg))
}

func singleBet() models.Bet {
	return models.Bet{
		ID:       "import-1",
		Book:     "fanduel",
		BetID:    "FD-1001",
		PlacedAt: "2024-11-02T19:04:00Z",
		BetType:  models.BetTypeSingle,
		Sport:    "NBA",
		Odds:     360,
		Stake:    1.00,
		Payout:   4.60,
		Result:   models.ResultWin,
		Legs: []models.Leg{
			{
				Market:     "Made Threes",
				Entities:   []string{"Will Richard"},
				EntityType: models.EntityTypePlayer,
				Target:     models.Target("3+"),
			},
		},
	}
}

func parlayBet(legCount int) models.Bet {
	legs := make([]models.Leg, 0, legCount)
	names := []string{"LeBron James", "Anthony Davis", "Austin Reaves", "Rui Hachimura",
		"Jarred Vanderbilt", "Gabe Vincent", "Jaxson Hayes", "Max Christie",
		"Cam Reddish", "Christian Wood", "Jalen Hood-Schifino", "Maxwell Lewis",
		"DAngelo Russell", "Taurean Prince", "Dalton Knecht"}

	markets := []string{"Points", "Rebounds", "Assists", "Made Threes", "Steals", "Blocks"}

	for i := 0; i < legCount; i++ {
		legs = append(legs, models.Leg{
			Market:     markets[i%len(markets)],
			Entities:   []string{names[i%len(names)]},
			EntityType: models.EntityTypePlayer,
			Target:     models.Target("10.5"),
			OU:         "Over",
			Odds:       -120,
			Result:     models.ResultPending,
		})
	}

	return models.Bet{
		ID:       "import-2",
		Book:     "draftkings",
		BetID:    "DK-2002",
		PlacedAt: "2024-11-03T12:00:00Z",
		BetType:  models.BetTypeParlay,
		Sport:    "NBA",
		Odds:     600,
		Stake:    5.00,
		Result:   models.ResultPending,
		Legs:     legs,
	}
}

func TestSingleBetEndToEnd(t *testing.T) {
	f := newTestFlattener(t)

	rows, diags := f.BetToRows(singleBet())
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Category", row.Category, models.CategoryProps},
		{"Type", row.Type, "3pt"},
		{"Name", row.Name, "Will Richard"},
		{"Line", row.Line, "3+"},
		{"Over", row.Over, "1"},
		{"Under", row.Under, "0"},
		{"Odds", row.Odds, "+360"},
		{"Bet", row.Bet, "1.00"},
		{"ToWin", row.ToWin, "4.60"},
		{"Net", row.Net, "3.60"},
		{"Result", row.Result, "win"},
		{"Live", row.Live, "0"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if row.IsParlayHeader || row.IsParlayChild {
		t.Error("single bet row must not carry parlay flags")
	}
	if row.RawNet == nil || math.Abs(*row.RawNet-3.60) > 0.0001 {
		t.Errorf("RawNet = %v, want 3.60", row.RawNet)
	}
}

func TestFlattenIsIdempotent(t *testing.T) {
	f := newTestFlattener(t)
	bet := parlayBet(3)

	first, _ := f.BetToRows(bet)
	second, _ := f.BetToRows(bet)

	// Group IDs are freshly generated per call; everything else must be
	// byte-identical
	for i := range second {
		second[i].ParlayGroupID = first[i].ParlayGroupID
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("flattening the same bet twice produced different rows")
	}
}

func TestParlayProducesHeaderPlusChildren(t *testing.T) {
	f := newTestFlattener(t)

	rows, diags := f.BetToRows(parlayBet(3))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 children = 4 rows, got %d", len(rows))
	}

	header := rows[0]
	if !header.IsParlayHeader {
		t.Fatal("first row must be the parlay header")
	}
	if header.Category != models.CategoryParlays {
		t.Errorf("header category = %q, want %q", header.Category, models.CategoryParlays)
	}
	if header.Name != "Parlay (3)" {
		t.Errorf("header name = %q, want %q", header.Name, "Parlay (3)")
	}
	if header.Bet != "5.00" || header.Odds != "+600" {
		t.Errorf("header money = bet %q odds %q, want ticket stake and odds", header.Bet, header.Odds)
	}
	if header.LegIndex != 0 || header.LegCount != 3 {
		t.Errorf("header indices = (%d, %d), want (0, 3)", header.LegIndex, header.LegCount)
	}

	for i, row := range rows[1:] {
		if !row.IsParlayChild {
			t.Errorf("row %d is not marked as a parlay child", i+1)
		}
		if row.ParlayGroupID != header.ParlayGroupID {
			t.Errorf("row %d group ID %q != header group ID %q", i+1, row.ParlayGroupID, header.ParlayGroupID)
		}
		if row.LegIndex != i+1 {
			t.Errorf("row %d leg index = %d", i+1, row.LegIndex)
		}

		// Ticket money lives on the header only
		if row.Bet != "" || row.ToWin != "" || row.Net != "" {
			t.Errorf("row %d carries money fields: bet=%q toWin=%q net=%q", i+1, row.Bet, row.ToWin, row.Net)
		}

		// Leg odds are informational
		if row.Odds != "-120" {
			t.Errorf("row %d odds = %q, want leg odds -120", i+1, row.Odds)
		}
	}
}

func TestSGPLabels(t *testing.T) {
	f := newTestFlattener(t)

	tests := []struct {
		name    string
		betType models.BetType
		want    string
	}{
		{"SGP", models.BetTypeSGP, "SGP (2)"},
		{"SGP plus", models.BetTypeSGPPlus, "SGP+ (2)"},
		{"Plain parlay", models.BetTypeParlay, "Parlay (2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bet := parlayBet(2)
			bet.BetType = tt.betType

			rows, _ := f.BetToRows(bet)
			if rows[0].Name != tt.want {
				t.Errorf("header name = %q, want %q", rows[0].Name, tt.want)
			}
		})
	}
}

func TestLegCapDropsExcess(t *testing.T) {
	f := newTestFlattener(t)

	rows, diags := f.BetToRows(parlayBet(15))

	if len(rows) != flatten.MaxLegsPerBet+1 {
		t.Errorf("expected header + %d children, got %d rows", flatten.MaxLegsPerBet, len(rows))
	}

	if len(diags) != 1 || !strings.Contains(diags[0], "exceeds cap") {
		t.Errorf("diagnostics = %v, want a single cap diagnostic", diags)
	}
}

func TestGroupLegsExpandRecursively(t *testing.T) {
	f := newTestFlattener(t)

	bet := parlayBet(0)
	bet.BetType = models.BetTypeSGPPlus
	bet.Legs = []models.Leg{
		{
			IsGroupLeg: true,
			Children: []models.Leg{
				{Market: "Points", Entities: []string{"LeBron James"}, Target: models.Target("25.5"), OU: "Over"},
				{Market: "Assists", Entities: []string{"LeBron James"}, Target: models.Target("7.5"), OU: "Over"},
			},
		},
		{Market: "Rebounds", Entities: []string{"Anthony Davis"}, Target: models.Target("11.5"), OU: "Under"},
	}

	rows, _ := f.BetToRows(bet)
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 flattened legs, got %d rows", len(rows))
	}

	names := []string{rows[1].Name, rows[2].Name, rows[3].Name}
	want := []string{"LeBron James", "LeBron James", "Anthony Davis"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("flattened leg order = %v, want %v", names, want)
	}

	if rows[3].Under != "1" {
		t.Errorf("under flag not set on the under leg")
	}
}

func TestPlaceholderLegsAreDropped(t *testing.T) {
	f := newTestFlattener(t)

	bet := parlayBet(0)
	bet.BetType = models.BetTypeSGP
	bet.Legs = []models.Leg{
		{Market: "Same Game Parlay (3 legs)"},
		{Market: "Points", Entities: []string{"LeBron James"}, Target: models.Target("25.5"), OU: "Over"},
		{Market: "Assists", Entities: []string{"LeBron James"}, Target: models.Target("7.5"), OU: "Over"},
	}

	rows, _ := f.BetToRows(bet)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 real legs, got %d rows", len(rows))
	}

	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), "same game parlay") {
			t.Errorf("placeholder leg leaked into output: %q", row.Name)
		}
	}
}

func TestDuplicateLegsCollapse(t *testing.T) {
	f := newTestFlattener(t)

	leg := models.Leg{Market: "Points", Entities: []string{"LeBron James"}, Target: models.Target("25.5"), OU: "Over"}

	bet := parlayBet(0)
	bet.BetType = models.BetTypeParlay
	bet.Legs = []models.Leg{leg, leg, {Market: "Assists", Entities: []string{"LeBron James"}, Target: models.Target("7.5"), OU: "Over"}}

	rows, _ := f.BetToRows(bet)
	if len(rows) != 3 {
		t.Errorf("expected header + 2 distinct legs, got %d rows", len(rows))
	}
}

func TestSingleLegInParlayWrapperIsSingle(t *testing.T) {
	f := newTestFlattener(t)

	bet := parlayBet(1)

	rows, _ := f.BetToRows(bet)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row for a one-leg wrapper, got %d", len(rows))
	}
	if rows[0].IsParlayHeader || rows[0].IsParlayChild {
		t.Error("one-leg wrapper must flatten as a plain single")
	}
	if rows[0].Bet != "5.00" {
		t.Errorf("single row must carry ticket money, bet = %q", rows[0].Bet)
	}
}

func TestTwoEntityTotalKeepsBothTeams(t *testing.T) {
	f := newTestFlattener(t)

	bet := singleBet()
	bet.Legs = []models.Leg{
		{
			Market:     "Game Total",
			Entities:   []string{"Los Angeles Lakers", "Boston Celtics"},
			EntityType: models.EntityTypeTeam,
			Target:     models.Target("224.5"),
			OU:         "Over",
		},
	}

	rows, _ := f.BetToRows(bet)
	row := rows[0]

	if row.Category != models.CategoryMainMarkets || row.Type != "Total" {
		t.Fatalf("classification = (%q, %q), want Main Markets Total", row.Category, row.Type)
	}
	if row.Name != "Los Angeles Lakers" || row.Name2 != "Boston Celtics" {
		t.Errorf("names = (%q, %q), want both teams", row.Name, row.Name2)
	}
	if row.Over != "1" {
		t.Error("over flag not set")
	}
}

func TestLegacyBetWithoutLegs(t *testing.T) {
	f := newTestFlattener(t)

	bet := singleBet()
	bet.Legs = nil
	bet.MarketCategory = models.CategoryMainMarkets

	rows, diags := f.BetToRows(bet)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 legacy row, got %d", len(rows))
	}

	row := rows[0]
	if row.Category != models.CategoryMainMarkets {
		t.Errorf("category = %q, want scraper-provided category", row.Category)
	}
	if row.Bet != "1.00" || row.Odds != "+360" {
		t.Errorf("legacy row money = bet %q odds %q", row.Bet, row.Odds)
	}
}

func TestPendingRowsRenderBlankMoney(t *testing.T) {
	f := newTestFlattener(t)

	bet := singleBet()
	bet.Result = models.ResultPending
	bet.Payout = 0

	rows, _ := f.BetToRows(bet)
	row := rows[0]

	if row.Net != "" || row.RawNet != nil {
		t.Errorf("pending net = %q (%v), want blank", row.Net, row.RawNet)
	}

	// ToWin is still projectable from the odds
	if row.ToWin != "4.60" {
		t.Errorf("pending toWin = %q, want 4.60", row.ToWin)
	}
}
