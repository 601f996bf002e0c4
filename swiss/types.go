/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Color identifies the piece color a player held in a game, or the color a
// player is due next round.
type Color int

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return "none"
	}
}

// Opposite returns the other color; ColorNone maps to itself.
func (c Color) Opposite() Color {
	switch c {
	case ColorWhite:
		return ColorBlack
	case ColorBlack:
		return ColorWhite
	default:
		return ColorNone
	}
}

// MatchScore is the outcome of a single round from one player's perspective.
type MatchScore int

const (
	ScoreLoss MatchScore = iota
	ScoreDraw
	ScoreWin
)

func (m MatchScore) String() string {
	switch m {
	case ScoreWin:
		return "win"
	case ScoreDraw:
		return "draw"
	default:
		return "loss"
	}
}

// ByeType distinguishes the kinds of non-game rounds a player can have.
type ByeType int

const (
	ByeNone ByeType = iota
	// ByeFull is a pairing-allocated bye worth the configured full-bye points.
	ByeFull
	// ByeHalfPoint is a player-requested (intentional) bye worth draw points.
	ByeHalfPoint
	// ByeZeroPoint is a bye worth nothing.
	ByeZeroPoint
	// ByeUnpaired marks a round the player was absent and not paired at all.
	ByeUnpaired
)

func (b ByeType) String() string {
	switch b {
	case ByeFull:
		return "bye"
	case ByeHalfPoint:
		return "half_point_bye"
	case ByeZeroPoint:
		return "zero_point_bye"
	case ByeUnpaired:
		return "unpaired"
	default:
		return "none"
	}
}

// Match records one round of a player's history. The list of Matches on a
// Player is index-aligned to round number (index 0 is round 1).
type Match struct {
	// OpponentID is the opponent's player id, or the player's own id for a
	// bye of any kind.
	OpponentID int
	// Color the player held; ColorNone for byes and unpaired rounds.
	Color Color
	// Outcome from this player's perspective.
	Outcome MatchScore
	// GameWasPlayed is false for byes and forfeits.
	GameWasPlayed bool
	// ParticipatedInPairing is false only for a true unpaired/absent round.
	ParticipatedInPairing bool
}

// IsBye reports whether the match is a self-paired (bye) round.
func (m Match) IsBye(selfID int) bool {
	return m.OpponentID == selfID
}

// Player is a roster entry plus everything the pairing strategies derive
// from its match history. Players are reconstructed from scratch for every
// pairing request; nothing here survives across requests.
type Player struct {
	ID     int
	Name   string
	Rating int

	// Matches holds one entry per round played so far, in round order. Its
	// length never exceeds the tournament's played-round count.
	Matches []Match

	// IntentionalByeRounds are 1-based rounds the player requested off.
	IntentionalByeRounds map[int]bool

	// Forbidden is the set of opponent ids this player may not be paired
	// against, derived from match history plus any configured forbidden
	// pairs.
	Forbidden map[int]bool

	// Acceleration holds the per-round bonus points, index-aligned to round
	// number. Empty for unaccelerated players.
	Acceleration []float64

	// Derived by UpdateColorPreferences.
	ColorImbalance      int
	ColorPreference     Color
	RepeatedColorStreak int

	// Bye counters derived from history. ByeCount counts all
	// pairing-allocated byes (full and half).
	ByeCount          int
	HalfPointByeCount int
	FullByeCount      int

	// RankIndex is the player's position in the score/rating ranking,
	// 0-based; used as the final tiebreaker everywhere.
	RankIndex int
}

// HasIntentionalBye reports whether the player requested the given 1-based
// round off.
func (p *Player) HasIntentionalBye(round int) bool {
	return p.IntentionalByeRounds[round]
}

// MayPlay reports whether opp is a legal opponent as far as the forbidden
// set goes.
func (p *Player) MayPlay(opp *Player) bool {
	return p.ID != opp.ID && !p.Forbidden[opp.ID]
}

// Tournament owns the players for the lifetime of one pairing computation.
type Tournament struct {
	// PlayedRounds is the number of completed rounds; the round being paired
	// is PlayedRounds+1.
	PlayedRounds int
	// TotalRounds is the expected number of rounds.
	TotalRounds int

	Scoring ScoringTable

	// InitialColor is the color convention for the higher-ranked player of
	// board one in round one.
	InitialColor Color

	Players []*Player
}

// NextRound returns the 1-based round number about to be paired.
func (t *Tournament) NextRound() int {
	return t.PlayedRounds + 1
}

// IsFinalRound reports whether the round being paired is the last one.
func (t *Tournament) IsFinalRound() bool {
	return t.TotalRounds > 0 && t.NextRound() >= t.TotalRounds
}

// PlayerByID returns the player with the given id, or nil.
func (t *Tournament) PlayerByID(id int) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// Pairing is one board of a generated round. Pairings are never mutated
// after creation within the same round.
type Pairing struct {
	WhiteID int
	// BlackID is 0 for a bye pairing.
	BlackID int
	IsBye   bool
	ByeType ByeType
	Board   int
	Section string
}
