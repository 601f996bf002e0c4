/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"
)

// TestRecountByes verifies the bye counters derived from match history.
func TestRecountByes(t *testing.T) {
	p := testPlayer(1, 1500)
	p.Matches = []Match{
		playedMatch(2, ColorWhite, ScoreWin),
		byeMatch(1, ScoreWin),  // full bye
		byeMatch(1, ScoreDraw), // half point bye
		byeMatch(1, ScoreLoss), // zero point bye, not counted
		unpairedMatch(1),       // absent, not counted
	}
	p.RecountByes()

	if p.FullByeCount != 1 {
		t.Errorf("FullByeCount = %v; want 1", p.FullByeCount)
	}
	if p.HalfPointByeCount != 1 {
		t.Errorf("HalfPointByeCount = %v; want 1", p.HalfPointByeCount)
	}
	if p.ByeCount != 2 {
		t.Errorf("ByeCount = %v; want 2", p.ByeCount)
	}
}

// TestByeEligibility verifies the two eligibility predicates.
func TestByeEligibility(t *testing.T) {
	fresh := testPlayer(1, 1500)
	fresh.RecountByes()
	if !fresh.EligibleForBye() {
		t.Error("player without byes should be eligible for a full bye")
	}
	if fresh.EligibleForHalfPointBye() {
		t.Error("player without byes should not be half-point-bye eligible")
	}

	once := testPlayer(2, 1500)
	once.Matches = []Match{byeMatch(2, ScoreWin)}
	once.RecountByes()
	if once.EligibleForBye() {
		t.Error("player with a full bye should not be full-bye eligible")
	}
	if !once.EligibleForHalfPointBye() {
		t.Error("player with exactly one full bye should be half-point-bye eligible")
	}
}

// TestSelectByeCandidate verifies tier ordering and the intentional-bye
// exclusion.
func TestSelectByeCandidate(t *testing.T) {
	halfEligible := testPlayer(1, 1800)
	halfEligible.Matches = []Match{byeMatch(1, ScoreWin)}
	halfEligible.RecountByes()

	fresh := testPlayer(2, 1100)
	fresh.RecountByes()

	lowRated := testPlayer(3, 900)
	lowRated.RecountByes()
	lowRated.IntentionalByeRounds = map[int]bool{2: true}

	// tier 0 beats tier 1 even at a higher rating; intentional-bye players
	// are skipped outright
	got := selectByeCandidate([]*Player{fresh, halfEligible, lowRated}, 2)
	if got == nil || got.ID != halfEligible.ID {
		t.Fatalf("candidate = %+v; want player %v", got, halfEligible.ID)
	}

	// within a tier the lowest priority (fewest byes, lowest rating) wins
	fresh2 := testPlayer(4, 1300)
	fresh2.RecountByes()
	got = selectByeCandidate([]*Player{fresh2, fresh}, 2)
	if got == nil || got.ID != fresh.ID {
		t.Fatalf("candidate = %+v; want player %v", got, fresh.ID)
	}
}
