package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Store persists catalog entities in Holocron (Postgres). The in-memory
// Catalog remains the source of truth at runtime; the store is written
// through on every mutation and read once at startup.
type Store struct {
	db *sql.DB
}

// NewStore creates a catalog store on an existing database handle
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to Postgres and returns a catalog store
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Store{db: db}, nil
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAll reads every stored entity into the given catalog, one kind at a
// time
func (s *Store) LoadAll(ctx context.Context, cat *Catalog) error {
	for _, kind := range []models.EntityKind{models.KindTeam, models.KindPlayer, models.KindStatType} {
		entities, err := s.loadKind(ctx, kind)
		if err != nil {
			return fmt.Errorf("load %s entities: %w", kind, err)
		}
		cat.Replace(kind, entities)
	}
	return nil
}

func (s *Store) loadKind(ctx context.Context, kind models.EntityKind) ([]models.CanonicalEntity, error) {
	query := `
		SELECT canonical, sport, aliases, disabled
		FROM catalog_entities
		WHERE kind = $1
		ORDER BY canonical
	`

	rows, err := s.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var entities []models.CanonicalEntity
	for rows.Next() {
		var e models.CanonicalEntity
		var aliasesJSON []byte

		if err := rows.Scan(&e.Canonical, &e.Sport, &aliasesJSON, &e.Disabled); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}

		if err := json.Unmarshal(aliasesJSON, &e.Aliases); err != nil {
			return nil, fmt.Errorf("parse aliases JSON for %q: %w", e.Canonical, err)
		}

		entities = append(entities, e)
	}

	return entities, rows.Err()
}

// Upsert writes one entity through to storage
func (s *Store) Upsert(ctx context.Context, kind models.EntityKind, e models.CanonicalEntity) error {
	aliasesJSON, err := json.Marshal(e.Aliases)
	if err != nil {
		return fmt.Errorf("marshal aliases: %w", err)
	}

	query := `
		INSERT INTO catalog_entities (kind, canonical, sport, aliases, disabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (kind, canonical, sport) DO UPDATE SET
			aliases = EXCLUDED.aliases,
			disabled = EXCLUDED.disabled,
			updated_at = NOW()
	`

	_, err = s.db.ExecContext(ctx, query, string(kind), e.Canonical, e.Sport, aliasesJSON, e.Disabled)
	if err != nil {
		return fmt.Errorf("upsert entity: %w", err)
	}

	return nil
}

// Delete removes one entity from storage
func (s *Store) Delete(ctx context.Context, kind models.EntityKind, canonical, sport string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM catalog_entities WHERE kind = $1 AND canonical = $2 AND sport = $3`,
		string(kind), canonical, sport,
	)
	if err != nil {
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}
