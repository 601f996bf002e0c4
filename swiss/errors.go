/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "errors"

var (
	// ErrUnsatisfiablePairing indicates the compatibility graph for the
	// round, after bye-vertex augmentation, admits no perfect matching.
	// Retrying without relaxing constraints cannot succeed.
	ErrUnsatisfiablePairing = errors.New("swiss: round constraints admit no full pairing")

	// ErrCorruptAcceleration indicates a historical accelerated score would
	// fall below its unaccelerated baseline.
	ErrCorruptAcceleration = errors.New("swiss: acceleration table is corrupt")

	// ErrBadRoundsBack indicates a historical score was requested further
	// back than the player's match history.
	ErrBadRoundsBack = errors.New("swiss: roundsBack exceeds match history")

	// ErrHistoryTooLong indicates a player carries more match records than
	// the tournament has played rounds.
	ErrHistoryTooLong = errors.New("swiss: match history longer than played rounds")
)
