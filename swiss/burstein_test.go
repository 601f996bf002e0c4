/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"
)

// TestComputeTiebreaks verifies Sonneborn-Berger, Buchholz, and the
// virtual-opponent rule for byes.
func TestComputeTiebreaks(t *testing.T) {
	a := testPlayer(1, 1500)
	b := testPlayer(2, 1400)
	c := testPlayer(3, 1300)
	d := testPlayer(4, 1200)

	// round 1: a beats b, c beats d; round 2: a beats c, d takes a full bye
	a.Matches = []Match{
		playedMatch(2, ColorWhite, ScoreWin),
		playedMatch(3, ColorBlack, ScoreWin),
	}
	b.Matches = []Match{
		playedMatch(1, ColorBlack, ScoreLoss),
		byeMatch(2, ScoreDraw),
	}
	c.Matches = []Match{
		playedMatch(4, ColorWhite, ScoreWin),
		playedMatch(1, ColorWhite, ScoreLoss),
	}
	d.Matches = []Match{
		playedMatch(3, ColorBlack, ScoreLoss),
		byeMatch(4, ScoreWin),
	}
	tr := testTournament(2, 5, a, b, c, d)

	tb := ComputeTiebreaks(tr, tr.Players)

	// adjusted scores: a 2.0, b 0.5, c 1.0, d 0.5 (byes count as draws)
	if got := tb[1].Adjusted; got != 2.0 {
		t.Errorf("a adjusted = %v; want 2.0", got)
	}
	if got := tb[4].Adjusted; got != 0.5 {
		t.Errorf("d adjusted = %v; want 0.5", got)
	}

	// a beat b (0.5 adj) and c (1.0 adj)
	if got := tb[1].Buchholz; got != 1.5 {
		t.Errorf("a buchholz = %v; want 1.5", got)
	}
	if got := tb[1].SonnebornBerger; got != 1.5 {
		t.Errorf("a sonneborn-berger = %v; want 1.5", got)
	}

	// d lost to c (1.0 adj) then had a bye: virtual opponent at d's own
	// adjusted score (0.5), winning it
	if got := tb[4].Buchholz; got != 1.5 {
		t.Errorf("d buchholz = %v; want 1.5", got)
	}
	if got := tb[4].SonnebornBerger; got != 0.5 {
		t.Errorf("d sonneborn-berger = %v; want 0.5", got)
	}

	// median needs more than two rounds
	if got := tb[1].Median; got != 0.0 {
		t.Errorf("a median = %v; want 0 with two rounds played", got)
	}
}

// TestBursteinRoundOne verifies the bye goes to the bottom of the tiebreak
// order and the remainder pairs in order.
func TestBursteinRoundOne(t *testing.T) {
	players := []*Player{
		testPlayer(1, 1500),
		testPlayer(2, 1400),
		testPlayer(3, 1300),
		testPlayer(4, 1200),
		testPlayer(5, 1100),
	}
	for i, p := range players {
		p.RankIndex = i
	}
	tr := testTournament(0, 4, players...)

	pairings, err := (&BursteinStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	byes := findByes(pairings)
	if len(byes) != 1 {
		t.Fatalf("got %v byes; want 1", len(byes))
	}
	if byes[0].WhiteID != 5 {
		t.Errorf("bye recipient = %v; want 5 (bottom of the order)",
			byes[0].WhiteID)
	}

	b1 := findPairingWith(pairings, 1)
	if b1 == nil || b1.BlackID != 3 {
		t.Errorf("board one = %+v; want 1 vs 3", b1)
	}
	b2 := findPairingWith(pairings, 2)
	if b2 == nil || b2.BlackID != 4 {
		t.Errorf("board two = %+v; want 2 vs 4", b2)
	}
}

// TestBursteinByeSkipsUnplayedWin verifies the bye walks past players who
// already received an unplayed win.
func TestBursteinByeSkipsUnplayedWin(t *testing.T) {
	players := []*Player{
		testPlayer(1, 1500),
		testPlayer(2, 1400),
		testPlayer(3, 1300),
	}
	for i, p := range players {
		p.RankIndex = i
	}
	// the bottom player already had a full bye
	players[2].Matches = []Match{byeMatch(3, ScoreWin)}
	players[0].Matches = []Match{playedMatch(2, ColorWhite, ScoreWin)}
	players[1].Matches = []Match{playedMatch(1, ColorBlack, ScoreLoss)}
	tr := testTournament(1, 4, players...)

	pairings, err := (&BursteinStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	byes := findByes(pairings)
	if len(byes) != 1 {
		t.Fatalf("got %v byes; want 1", len(byes))
	}
	if byes[0].WhiteID != 2 {
		t.Errorf("bye recipient = %v; want 2 (3 already had an unplayed win)",
			byes[0].WhiteID)
	}
}
