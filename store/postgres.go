/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/mikeb26/swisspair/director"
)

// PostgresStore implements director.Store on top of the tournament
// database. SavePairings writes one round inside a transaction, which also
// serializes concurrent generation attempts for the same (tournament,
// round) via the delete-then-insert on the round's rows.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects and pings the tournament database.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStore wraps an existing handle; useful for tests.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) FetchRoster(ctx context.Context, tournamentID int64,
	section string) ([]director.PlayerRow, error) {

	query := `
		SELECT id, name, rating, status, section,
		       COALESCE(intentional_bye_rounds::text, '')
		FROM players
		WHERE tournament_id = $1 AND section = $2
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, tournamentID, section)
	if err != nil {
		return nil, fmt.Errorf("store: fetch roster: %w", err)
	}
	defer rows.Close()

	var roster []director.PlayerRow
	for rows.Next() {
		var row director.PlayerRow
		var byeRounds string
		if err := rows.Scan(&row.ID, &row.Name, &row.Rating, &row.Status,
			&row.Section, &byeRounds); err != nil {
			return nil, fmt.Errorf("store: scan roster row: %w", err)
		}
		row.IntentionalByeRounds = byeRounds
		roster = append(roster, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: fetch roster: %w", err)
	}

	return roster, nil
}

func (s *PostgresStore) FetchPairings(ctx context.Context, tournamentID int64,
	section string, beforeRound int) ([]director.PairingRow, error) {

	query := `
		SELECT white_player_id, black_player_id, COALESCE(result, ''),
		       COALESCE(bye_type, ''), round, section, board
		FROM pairings
		WHERE tournament_id = $1 AND section = $2 AND round < $3
		ORDER BY round, board`

	rows, err := s.db.QueryContext(ctx, query, tournamentID, section, beforeRound)
	if err != nil {
		return nil, fmt.Errorf("store: fetch pairings: %w", err)
	}
	defer rows.Close()

	var history []director.PairingRow
	for rows.Next() {
		var row director.PairingRow
		var blackID sql.NullInt64
		if err := rows.Scan(&row.WhiteID, &blackID, &row.Result,
			&row.ByeType, &row.Round, &row.Section, &row.Board); err != nil {
			return nil, fmt.Errorf("store: scan pairing row: %w", err)
		}
		if blackID.Valid {
			id := int(blackID.Int64)
			row.BlackID = &id
		}
		history = append(history, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: fetch pairings: %w", err)
	}

	return history, nil
}

func (s *PostgresStore) SavePairings(ctx context.Context, tournamentID int64,
	round int, records []director.PairingRecord) error {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin save pairings: %w", err)
	}
	defer tx.Rollback()

	// regenerate semantics: the round's previous rows, if any, are replaced
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pairings WHERE tournament_id = $1 AND round = $2`,
		tournamentID, round); err != nil {
		return fmt.Errorf("store: clear round %d: %w", round, err)
	}

	insert := `
		INSERT INTO pairings
			(tournament_id, white_player_id, black_player_id, result,
			 round, section, board, is_bye, bye_type)
		VALUES ($1, $2, $3, NULL, $4, $5, $6, $7, NULLIF($8, ''))`
	for _, rec := range records {
		var blackID sql.NullInt64
		if rec.BlackID != nil {
			blackID = sql.NullInt64{Int64: int64(*rec.BlackID), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insert, tournamentID, rec.WhiteID,
			blackID, round, rec.Section, rec.Board, rec.IsBye,
			rec.ByeType); err != nil {
			return fmt.Errorf("store: insert board %d: %w", rec.Board, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit pairings: %w", err)
	}

	return nil
}
