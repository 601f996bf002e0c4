/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// ScoringTable is the six-way point lookup for a tournament. Values are in
// game points (a standard win is 1.0).
type ScoringTable struct {
	Win  float64
	Draw float64
	Loss float64
	// ZeroPointBye is awarded for a self-paired round with a loss outcome.
	ZeroPointBye float64
	// ForfeitLoss is awarded when an opponent was assigned but the game was
	// never played and the player lost.
	ForfeitLoss float64
	// PairingAllocatedBye is awarded for a bye the pairing algorithm
	// assigned; distinct from forfeit losses and zero-point byes.
	PairingAllocatedBye float64
}

// DefaultScoring returns the standard 1 / 0.5 / 0 table with a full-point
// pairing-allocated bye.
func DefaultScoring() ScoringTable {
	return ScoringTable{
		Win:                 1.0,
		Draw:                0.5,
		Loss:                0.0,
		ZeroPointBye:        0.0,
		ForfeitLoss:         0.0,
		PairingAllocatedBye: 1.0,
	}
}

// Points maps (outcome, played-flag, self-paired-flag) to the configured
// point value. Half-point byes score as draws; forfeit wins score as wins.
func (s ScoringTable) Points(outcome MatchScore, played, selfPaired bool) float64 {
	if played {
		switch outcome {
		case ScoreWin:
			return s.Win
		case ScoreDraw:
			return s.Draw
		default:
			return s.Loss
		}
	}

	if selfPaired {
		switch outcome {
		case ScoreWin:
			return s.PairingAllocatedBye
		case ScoreDraw:
			return s.Draw
		default:
			return s.ZeroPointBye
		}
	}

	// unplayed against a real opponent: forfeit
	switch outcome {
	case ScoreWin:
		return s.Win
	case ScoreDraw:
		return s.Draw
	default:
		return s.ForfeitLoss
	}
}

// MatchPoints returns the points p earned from m under this table.
func (s ScoringTable) MatchPoints(p *Player, m Match) float64 {
	return s.Points(m.Outcome, m.GameWasPlayed, m.IsBye(p.ID))
}

// Score returns p's unaccelerated cumulative score.
func (t *Tournament) Score(p *Player) float64 {
	total := 0.0
	for _, m := range p.Matches {
		total += t.Scoring.MatchPoints(p, m)
	}

	return total
}

// ScoreWithAcceleration returns p's cumulative score plus the acceleration
// bonus for the round being paired. With roundsBack > 0 it reconstructs the
// historical score as of that many rounds ago by subtracting points earned
// in later rounds. It fails if the accelerated score would fall below the
// unaccelerated baseline, which indicates a corrupt acceleration table.
func (t *Tournament) ScoreWithAcceleration(p *Player, roundsBack int) (float64, error) {
	if roundsBack < 0 || roundsBack > len(p.Matches) {
		return 0, fmt.Errorf("%w: player %d roundsBack %d history %d",
			ErrBadRoundsBack, p.ID, roundsBack, len(p.Matches))
	}

	base := 0.0
	upto := len(p.Matches) - roundsBack
	for i := 0; i < upto; i++ {
		base += t.Scoring.MatchPoints(p, p.Matches[i])
	}

	// 0-based index of the round being paired as of roundsBack rounds ago
	roundIdx := t.PlayedRounds - roundsBack
	bonus := 0.0
	if roundIdx >= 0 && roundIdx < len(p.Acceleration) {
		bonus = p.Acceleration[roundIdx]
	}
	if base+bonus < base {
		return 0, fmt.Errorf("%w: player %d round %d bonus %v",
			ErrCorruptAcceleration, p.ID, roundIdx+1, bonus)
	}

	return base + bonus, nil
}

// AdjustedScore returns p's score with unplayed games counted as draws; used
// by the tiebreak computations.
func (t *Tournament) AdjustedScore(p *Player) float64 {
	total := 0.0
	for _, m := range p.Matches {
		if m.GameWasPlayed {
			total += t.Scoring.MatchPoints(p, m)
		} else {
			total += t.Scoring.Draw
		}
	}

	return total
}

// Accelerated reports whether p carries a non-zero acceleration bonus for
// the round being paired. Accelerated players sit above the top-score
// threshold for the color compatibility rule.
func (t *Tournament) Accelerated(p *Player) bool {
	roundIdx := t.PlayedRounds
	return roundIdx >= 0 && roundIdx < len(p.Acceleration) &&
		p.Acceleration[roundIdx] > 0
}
