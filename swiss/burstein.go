/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// Tiebreaks holds the per-player tiebreak values the Burstein ordering
// sorts on.
type Tiebreaks struct {
	Adjusted        float64
	SonnebornBerger float64
	Buchholz        float64
	Median          float64
}

// BursteinStrategy pairs a round with the same group mechanics as the
// Dutch strategy but orders and groups players by adjusted score plus
// Sonneborn-Berger, Buchholz, and median before pairing.
type BursteinStrategy struct{}

func (s *BursteinStrategy) Name() string {
	return "burstein"
}

// ComputeTiebreaks derives every active player's tiebreak values. Unplayed
// games count as draws; byes contribute a virtual opponent holding the
// player's own adjusted score.
func ComputeTiebreaks(t *Tournament, players []*Player) map[int]Tiebreaks {
	adjusted := make(map[int]float64, len(t.Players))
	for _, p := range t.Players {
		adjusted[p.ID] = t.AdjustedScore(p)
	}

	out := make(map[int]Tiebreaks, len(players))
	for _, p := range players {
		tb := Tiebreaks{Adjusted: adjusted[p.ID]}

		var oppScores []float64
		for _, m := range p.Matches {
			if !m.ParticipatedInPairing {
				continue
			}
			oppScore, ok := adjusted[m.OpponentID]
			if !ok || m.IsBye(p.ID) {
				// virtual opponent for byes
				oppScore = adjusted[p.ID]
			}
			oppScores = append(oppScores, oppScore)

			tb.Buchholz += oppScore
			switch m.Outcome {
			case ScoreWin:
				tb.SonnebornBerger += oppScore
			case ScoreDraw:
				tb.SonnebornBerger += 0.5 * oppScore
			}
		}

		if t.PlayedRounds > 2 && len(oppScores) > 2 {
			best, worst := oppScores[0], oppScores[0]
			for _, s := range oppScores[1:] {
				if s > best {
					best = s
				}
				if s < worst {
					worst = s
				}
			}
			tb.Median = tb.Buchholz - best - worst
		}

		out[p.ID] = tb
	}

	return out
}

func (s *BursteinStrategy) Pair(t *Tournament) ([]Pairing, error) {
	active, intentional, err := activePlayers(t)
	if err != nil {
		return nil, err
	}
	refreshDerived(active)
	refreshDerived(intentional)

	scores, err := acceleratedScores(t, active)
	if err != nil {
		return nil, err
	}
	tiebreaks := ComputeTiebreaks(t, active)

	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if scores[a.ID] != scores[b.ID] {
			return scores[a.ID] > scores[b.ID]
		}
		ta, tbv := tiebreaks[a.ID], tiebreaks[b.ID]
		if ta.SonnebornBerger != tbv.SonnebornBerger {
			return ta.SonnebornBerger > tbv.SonnebornBerger
		}
		if ta.Buchholz != tbv.Buchholz {
			return ta.Buchholz > tbv.Buchholz
		}
		if ta.Median != tbv.Median {
			return ta.Median > tbv.Median
		}
		return a.RankIndex < b.RankIndex
	})

	if err := certifyFeasible(t, active); err != nil {
		return nil, err
	}

	var pairings []Pairing
	pool := active
	if len(pool)%2 == 1 {
		recipient := s.selectBye(pool, t.NextRound())
		if recipient != nil {
			pool = removePlayer(pool, recipient)
			pairings = append(pairings, byePairing(recipient, allocatedByeType(recipient)))
		}
	}

	groupPairings, err := pairByGroups(t, scoreGroups(pool, scores), false)
	if err != nil {
		return nil, err
	}
	pairings = append(pairings, groupPairings...)

	for _, p := range intentional {
		pairings = append(pairings, byePairing(p, ByeHalfPoint))
	}

	return pairings, nil
}

// selectBye walks the tiebreak-sorted list from the bottom and picks the
// lowest-ranked player who never forced a bye-as-win in an unplayed game.
func (s *BursteinStrategy) selectBye(sorted []*Player, round int) *Player {
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		if p.HasIntentionalBye(round) {
			continue
		}
		if !p.hasUnplayedWin() {
			return p
		}
	}
	if len(sorted) > 0 {
		return sorted[len(sorted)-1]
	}

	return nil
}

// hasUnplayedWin reports whether p was ever awarded a win in a game that
// was not played (full bye or forfeit win).
func (p *Player) hasUnplayedWin() bool {
	for _, m := range p.Matches {
		if !m.GameWasPlayed && m.Outcome == ScoreWin {
			return true
		}
	}

	return false
}
