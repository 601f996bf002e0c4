/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// EligibleForBye reports whether p may receive a full pairing-allocated
// bye: players who have never been granted one.
func (p *Player) EligibleForBye() bool {
	return p.ByeCount == 0
}

// EligibleForHalfPointBye reports whether p may receive a half-point bye: a
// player who already had exactly one full bye and no half-point bye yet.
func (p *Player) EligibleForHalfPointBye() bool {
	return p.FullByeCount == 1 && p.HalfPointByeCount == 0
}

// ByePriority orders bye candidates within an eligibility tier; the lowest
// value wins the bye. Prior byes dominate, then the lowest-rated player is
// preferred.
func (p *Player) ByePriority() int {
	return 1000*p.ByeCount + p.Rating
}

// RecountByes rebuilds the bye counters from the match history.
func (p *Player) RecountByes() {
	p.ByeCount = 0
	p.FullByeCount = 0
	p.HalfPointByeCount = 0
	for _, m := range p.Matches {
		if m.GameWasPlayed || !m.IsBye(p.ID) || !m.ParticipatedInPairing {
			continue
		}
		switch m.Outcome {
		case ScoreWin:
			p.FullByeCount++
			p.ByeCount++
		case ScoreDraw:
			p.HalfPointByeCount++
			p.ByeCount++
		}
	}
}

// selectByeCandidate picks the bye recipient from an odd-sized group:
// half-point-bye eligibles first, then full-bye eligibles, then anyone;
// within a tier the lowest ByePriority wins. Players with an intentional
// bye this round never receive a pairing-allocated bye.
func selectByeCandidate(group []*Player, round int) *Player {
	var best *Player
	bestTier := 3
	for _, p := range group {
		if p.HasIntentionalBye(round) {
			continue
		}
		tier := 2
		if p.EligibleForHalfPointBye() {
			tier = 0
		} else if p.EligibleForBye() {
			tier = 1
		}
		if best == nil || tier < bestTier ||
			(tier == bestTier && p.ByePriority() < best.ByePriority()) {
			best = p
			bestTier = tier
		}
	}
	if best == nil && len(group) > 0 {
		// every candidate requested this round off; fall back to priority
		best = group[0]
		for _, p := range group[1:] {
			if p.ByePriority() < best.ByePriority() {
				best = p
			}
		}
	}

	return best
}
