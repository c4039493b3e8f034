package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Store defines the persistence interface for imported bets and their rows
type Store interface {
	Ping(ctx context.Context) error
	SaveImport(ctx context.Context, bet models.Bet, rows []models.FinalRow) error
	GetRows(ctx context.Context, filters RowFilters) ([]models.FinalRow, error)
	GetRowsByBet(ctx context.Context, betID string) ([]models.FinalRow, error)
	GetSummary(ctx context.Context) (*Summary, error)
	Close() error
}

// RowFilters narrows row queries
type RowFilters struct {
	Book     string
	Sport    string
	Result   string
	Category string
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}

// Summary is the aggregate view over all stored rows. Pending rows
// contribute 0 to net here, deliberately different from per-row display
// where pending renders blank.
type Summary struct {
	TotalBets   int                     `json:"total_bets"`
	TotalRows   int                     `json:"total_rows"`
	TotalStaked float64                 `json:"total_staked"`
	TotalNet    float64                 `json:"total_net"`
	ByBook      map[string]GroupSummary `json:"by_book"`
	BySport     map[string]GroupSummary `json:"by_sport"`
}

// GroupSummary is one by-book or by-sport aggregate bucket
type GroupSummary struct {
	Count  int     `json:"count"`
	Staked float64 `json:"staked"`
	Net    float64 `json:"net"`
}

// Postgres implements Store against Holocron
type Postgres struct {
	db *sql.DB
}

// NewPostgres connects to the database and returns a store
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Postgres{db: db}, nil
}

// DB exposes the underlying handle so other stores can share the connection
func (p *Postgres) DB() *sql.DB {
	return p.db
}

// Ping checks database connectivity
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection
func (p *Postgres) Close() error {
	return p.db.Close()
}

// SaveImport atomically stores a bet and its flattened rows. Re-importing
// the same betId replaces the previous rows, so a re-scrape never
// double-counts a ticket.
func (p *Postgres) SaveImport(ctx context.Context, bet models.Bet, rows []models.FinalRow) error {
	rawJSON, err := json.Marshal(bet)
	if err != nil {
		return fmt.Errorf("marshal bet: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO imported_bets (
			bet_id, book, sport, bet_type, placed_at, odds, stake, payout,
			result, is_live, tail, raw
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (bet_id) DO UPDATE SET
			book = EXCLUDED.book,
			sport = EXCLUDED.sport,
			bet_type = EXCLUDED.bet_type,
			placed_at = EXCLUDED.placed_at,
			odds = EXCLUDED.odds,
			stake = EXCLUDED.stake,
			payout = EXCLUDED.payout,
			result = EXCLUDED.result,
			is_live = EXCLUDED.is_live,
			tail = EXCLUDED.tail,
			raw = EXCLUDED.raw,
			imported_at = NOW()`,
		bet.BetID, bet.Book, bet.Sport, string(bet.BetType), bet.PlacedAt,
		bet.Odds, bet.Stake, bet.Payout, string(bet.Result), bet.IsLive,
		bet.Tail, rawJSON,
	)
	if err != nil {
		return fmt.Errorf("upsert bet: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM final_rows WHERE bet_id = $1`, bet.BetID); err != nil {
		return fmt.Errorf("clear previous rows: %w", err)
	}

	for _, row := range rows {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO final_rows (
				bet_id, book, sport, placed_at, category, type_code,
				name, name2, over_flag, under_flag, line, odds, bet, to_win,
				result, net, live, tail, raw_odds, raw_stake, raw_to_win, raw_net,
				parlay_group_id, leg_index, leg_count, is_parlay_header, is_parlay_child
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
				$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`,
			row.BetID, row.Book, row.Sport, row.PlacedAt, row.Category, row.Type,
			row.Name, row.Name2, row.Over, row.Under, row.Line, row.Odds, row.Bet, row.ToWin,
			row.Result, row.Net, row.Live, row.Tail, row.RawOdds, row.RawStake, row.RawToWin, row.RawNet,
			nullIfEmpty(row.ParlayGroupID), row.LegIndex, row.LegCount, row.IsParlayHeader, row.IsParlayChild,
		)
		if err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetRows retrieves rows with optional filters, newest tickets first
func (p *Postgres) GetRows(ctx context.Context, filters RowFilters) ([]models.FinalRow, error) {
	query := `
		SELECT
			bet_id, book, sport, placed_at, category, type_code,
			name, name2, over_flag, under_flag, line, odds, bet, to_win,
			result, net, live, tail, raw_odds, raw_stake, raw_to_win, raw_net,
			parlay_group_id, leg_index, leg_count, is_parlay_header, is_parlay_child
		FROM final_rows
		WHERE 1=1
	`

	args := []interface{}{}
	argPos := 1

	if filters.Book != "" {
		query += fmt.Sprintf(" AND book = $%d", argPos)
		args = append(args, filters.Book)
		argPos++
	}

	if filters.Sport != "" {
		query += fmt.Sprintf(" AND sport = $%d", argPos)
		args = append(args, filters.Sport)
		argPos++
	}

	if filters.Result != "" {
		query += fmt.Sprintf(" AND result = $%d", argPos)
		args = append(args, filters.Result)
		argPos++
	}

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, filters.Category)
		argPos++
	}

	if filters.Since != nil {
		query += fmt.Sprintf(" AND placed_at >= $%d", argPos)
		args = append(args, filters.Since.Format(time.RFC3339))
		argPos++
	}

	if filters.Until != nil {
		query += fmt.Sprintf(" AND placed_at <= $%d", argPos)
		args = append(args, filters.Until.Format(time.RFC3339))
		argPos++
	}

	query += " ORDER BY placed_at DESC, bet_id, leg_index"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filters.Limit)
		argPos++
	}

	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filters.Offset)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// GetRowsByBet retrieves one ticket's rows in display order
func (p *Postgres) GetRowsByBet(ctx context.Context, betID string) ([]models.FinalRow, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT
			bet_id, book, sport, placed_at, category, type_code,
			name, name2, over_flag, under_flag, line, odds, bet, to_win,
			result, net, live, tail, raw_odds, raw_stake, raw_to_win, raw_net,
			parlay_group_id, leg_index, leg_count, is_parlay_header, is_parlay_child
		FROM final_rows
		WHERE bet_id = $1
		ORDER BY leg_index`,
		betID,
	)
	if err != nil {
		return nil, fmt.Errorf("query bet rows: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// GetSummary aggregates net and staked across stored rows. Parlay children
// carry no money of their own, so summing raw_stake/raw_net over all rows
// never double-counts a shared ticket stake.
func (p *Postgres) GetSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		ByBook:  make(map[string]GroupSummary),
		BySport: make(map[string]GroupSummary),
	}

	err := p.db.QueryRowContext(ctx, `
		SELECT
			COUNT(DISTINCT bet_id),
			COUNT(*),
			COALESCE(SUM(raw_stake), 0),
			COALESCE(SUM(COALESCE(raw_net, 0)), 0)
		FROM final_rows`,
	).Scan(&summary.TotalBets, &summary.TotalRows, &summary.TotalStaked, &summary.TotalNet)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}

	summary.ByBook, err = p.groupSummary(ctx, "book")
	if err != nil {
		return nil, fmt.Errorf("summary by book: %w", err)
	}

	summary.BySport, err = p.groupSummary(ctx, "sport")
	if err != nil {
		return nil, fmt.Errorf("summary by sport: %w", err)
	}

	return summary, nil
}

func (p *Postgres) groupSummary(ctx context.Context, column string) (map[string]GroupSummary, error) {
	// column is one of "book"/"sport", never user input
	query := fmt.Sprintf(`
		SELECT %s,
			COUNT(DISTINCT bet_id),
			COALESCE(SUM(raw_stake), 0),
			COALESCE(SUM(COALESCE(raw_net, 0)), 0)
		FROM final_rows
		GROUP BY %s`, column, column)

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]GroupSummary)
	for rows.Next() {
		var key string
		var g GroupSummary
		if err := rows.Scan(&key, &g.Count, &g.Staked, &g.Net); err != nil {
			return nil, err
		}
		result[key] = g
	}

	return result, rows.Err()
}

func scanRows(rows *sql.Rows) ([]models.FinalRow, error) {
	var out []models.FinalRow

	for rows.Next() {
		var row models.FinalRow
		var name2, tail, groupID sql.NullString

		err := rows.Scan(
			&row.BetID, &row.Book, &row.Sport, &row.PlacedAt, &row.Category, &row.Type,
			&row.Name, &name2, &row.Over, &row.Under, &row.Line, &row.Odds, &row.Bet, &row.ToWin,
			&row.Result, &row.Net, &row.Live, &tail, &row.RawOdds, &row.RawStake, &row.RawToWin, &row.RawNet,
			&groupID, &row.LegIndex, &row.LegCount, &row.IsParlayHeader, &row.IsParlayChild,
		)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row.Name2 = name2.String
		row.Tail = tail.String
		row.ParlayGroupID = groupID.String

		out = append(out, row)
	}

	return out, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
