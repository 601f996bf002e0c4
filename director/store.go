/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package director

import (
	"context"
	"errors"
)

var (
	// ErrUnknownPlayer indicates a historical pairing references a player
	// id absent from the roster; upstream data is corrupt and the
	// computation is abandoned rather than silently skipping the row.
	ErrUnknownPlayer = errors.New("director: pairing references unknown player")

	// ErrMissingResult indicates a prior-round game has no recorded result,
	// so the requested round cannot be paired yet.
	ErrMissingResult = errors.New("director: prior round has unreported results")

	// ErrBadResultCode indicates a stored result outside the known codes.
	ErrBadResultCode = errors.New("director: unrecognized result code")

	// ErrBadRound indicates a non-positive round number was requested.
	ErrBadRound = errors.New("director: round number must be positive")

	// ErrReadOnlyStore indicates the store cannot persist pairings.
	ErrReadOnlyStore = errors.New("director: store is read-only")
)

// PlayerRow is a roster row as the external store supplies it.
type PlayerRow struct {
	ID      int
	Name    string
	Rating  int
	Status  string
	Section string

	// IntentionalByeRounds arrives in whatever shape the store kept it:
	// an array, a scalar, a JSON string, or a comma-separated string.
	IntentionalByeRounds interface{}
}

// Active reports whether the row is an active entrant.
func (r PlayerRow) Active() bool {
	return r.Status == "" || r.Status == "active"
}

// PairingRow is one historical board result.
type PairingRow struct {
	WhiteID int
	// BlackID is nil for a bye row.
	BlackID *int
	// Result is one of 1-0, 0-1, 1/2-1/2, 1-0F, 0-1F, 1/2-1/2F, or empty
	// (null) for byes and unfinished games.
	Result  string
	ByeType string
	Round   int
	Section string
	Board   int
}

// PairingRecord is one generated board, shaped for persistence.
type PairingRecord struct {
	WhiteID int
	BlackID *int
	IsBye   bool
	ByeType string
	Board   int
	Section string
}

// Store supplies roster and result history and persists generated rounds.
// Callers must serialize pairing generation per (tournament, round);
// concurrent invocations racing to persist divergent pairing sets are a
// correctness hazard the engine does not guard against.
type Store interface {
	// FetchRoster returns every roster row for the section, all statuses.
	FetchRoster(ctx context.Context, tournamentID int64, section string) ([]PlayerRow, error)

	// FetchPairings returns all pairing rows for rounds strictly before
	// beforeRound. Full history is required for repeat-detection and
	// tiebreaks, never just the previous round.
	FetchPairings(ctx context.Context, tournamentID int64, section string,
		beforeRound int) ([]PairingRow, error)

	// SavePairings persists one generated round.
	SavePairings(ctx context.Context, tournamentID int64, round int,
		records []PairingRecord) error
}
