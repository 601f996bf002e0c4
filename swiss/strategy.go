/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"sort"

	"github.com/mikeb26/swisspair/matching"
)

// Strategy produces one round of pairings for a tournament. Implementations
// are pure: they never mutate the tournament beyond the derived per-player
// fields they recompute, and they return either a full pairing set or an
// error, never a partial one.
type Strategy interface {
	Name() string
	Pair(t *Tournament) ([]Pairing, error)
}

// NewStrategy returns the strategy registered under name ("dutch" or
// "burstein"); unknown names fall back to dutch.
func NewStrategy(name string) Strategy {
	if name == "burstein" {
		return &BursteinStrategy{}
	}

	return &DutchStrategy{}
}

// activePlayers filters to players whose match-history length does not
// exceed the played-round count and who did not request this round off.
// Intentional-bye players are returned separately so the strategy can emit
// their half-point-bye records.
func activePlayers(t *Tournament) (active, intentional []*Player, err error) {
	round := t.NextRound()
	for _, p := range t.Players {
		if len(p.Matches) > t.PlayedRounds {
			return nil, nil, fmt.Errorf("%w: player %d has %d matches after %d rounds",
				ErrHistoryTooLong, p.ID, len(p.Matches), t.PlayedRounds)
		}
		if p.HasIntentionalBye(round) {
			intentional = append(intentional, p)
			continue
		}
		active = append(active, p)
	}

	return active, intentional, nil
}

// refreshDerived recomputes per-player derived state for this computation.
func refreshDerived(players []*Player) {
	for _, p := range players {
		p.UpdateColorPreferences()
		p.RecountByes()
		if p.Forbidden == nil {
			p.Forbidden = make(map[int]bool)
		}
		for _, m := range p.Matches {
			if m.OpponentID != p.ID && m.ParticipatedInPairing {
				p.Forbidden[m.OpponentID] = true
			}
		}
	}
}

// compatible applies the round compatibility rule: players who already met
// may not meet again, and two players holding an absolute preference for
// the same color may not be paired unless this is the final round or either
// sits above the accelerated top-score threshold.
func compatible(t *Tournament, a, b *Player) bool {
	if !a.MayPlay(b) || !b.MayPlay(a) {
		return false
	}
	if a.AbsoluteColorPreference() && b.AbsoluteColorPreference() &&
		a.ColorPreference == b.ColorPreference &&
		a.ColorPreference != ColorNone &&
		!t.IsFinalRound() && !t.Accelerated(a) && !t.Accelerated(b) {
		return false
	}

	return true
}

// certifyFeasible proves a full pairing exists before any greedy search
// runs. The compatibility graph gains a synthetic bye vertex when the
// participant count is odd; failure means the round's constraints are
// jointly unsatisfiable and is surfaced verbatim.
func certifyFeasible(t *Tournament, players []*Player) error {
	n := len(players)
	vertices := n
	if n%2 == 1 {
		vertices++
	}

	s := matching.NewSolver(vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if compatible(t, players[i], players[j]) {
				if err := s.SetEdgeWeight(i, j, 1); err != nil {
					return err
				}
			}
		}
	}
	if vertices > n {
		// the bye vertex is compatible with every participant
		for i := 0; i < n; i++ {
			if err := s.SetEdgeWeight(i, n, 1); err != nil {
				return err
			}
		}
	}

	if err := s.ComputeMatching(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsatisfiablePairing, err)
	}
	if !s.IsComplete() {
		return ErrUnsatisfiablePairing
	}

	return nil
}

// scoreGroups partitions already-sorted players into runs of equal score.
func scoreGroups(players []*Player, score map[int]float64) [][]*Player {
	var groups [][]*Player
	var cur []*Player
	for i, p := range players {
		if i > 0 && score[p.ID] != score[players[i-1].ID] {
			groups = append(groups, cur)
			cur = nil
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}

	return groups
}

// allocatedByeType is the bye subtype a pairing-allocated bye carries for
// this recipient.
func allocatedByeType(p *Player) ByeType {
	if p.EligibleForHalfPointBye() {
		return ByeHalfPoint
	}

	return ByeFull
}

// byePairing builds a bye record for p.
func byePairing(p *Player, bt ByeType) Pairing {
	return Pairing{
		WhiteID: p.ID,
		IsBye:   true,
		ByeType: bt,
	}
}

// removePlayer returns group without p, preserving order.
func removePlayer(group []*Player, p *Player) []*Player {
	out := make([]*Player, 0, len(group)-1)
	for _, q := range group {
		if q.ID != p.ID {
			out = append(out, q)
		}
	}

	return out
}

// acceleratedScores computes every player's accelerated score for the round
// being paired.
func acceleratedScores(t *Tournament, players []*Player) (map[int]float64, error) {
	scores := make(map[int]float64, len(players))
	for _, p := range players {
		s, err := t.ScoreWithAcceleration(p, 0)
		if err != nil {
			return nil, err
		}
		scores[p.ID] = s
	}

	return scores, nil
}

// sortByScore orders players by accelerated score descending, rank index
// ascending.
func sortByScore(players []*Player, score map[int]float64) {
	sort.SliceStable(players, func(i, j int) bool {
		si, sj := score[players[i].ID], score[players[j].ID]
		if si != sj {
			return si > sj
		}
		return players[i].RankIndex < players[j].RankIndex
	})
}
