/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"testing"
)

func findByes(pairings []Pairing) []Pairing {
	var byes []Pairing
	for _, p := range pairings {
		if p.IsBye {
			byes = append(byes, p)
		}
	}

	return byes
}

func findPairingWith(pairings []Pairing, id int) *Pairing {
	for i := range pairings {
		p := &pairings[i]
		if !p.IsBye && (p.WhiteID == id || p.BlackID == id) {
			return p
		}
	}

	return nil
}

// TestDutchRoundOne verifies a five-player first round: two boards plus a
// single bye that lands on the lowest-rated player.
func TestDutchRoundOne(t *testing.T) {
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

	pairings, err := (&DutchStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	if len(pairings) != 3 {
		t.Fatalf("got %v pairings; want 3", len(pairings))
	}
	byes := findByes(pairings)
	if len(byes) != 1 {
		t.Fatalf("got %v byes; want 1", len(byes))
	}
	if byes[0].WhiteID != 5 {
		t.Errorf("bye recipient = %v; want 5 (lowest rated)", byes[0].WhiteID)
	}
	if byes[0].ByeType != ByeFull {
		t.Errorf("bye type = %v; want full", byes[0].ByeType)
	}

	// top half by rating faces bottom half; lower id takes white on a
	// colorless first round
	b1 := findPairingWith(pairings, 1)
	if b1 == nil || b1.WhiteID != 1 || b1.BlackID != 3 {
		t.Errorf("board one = %+v; want 1 vs 3", b1)
	}
	b2 := findPairingWith(pairings, 2)
	if b2 == nil || b2.WhiteID != 2 || b2.BlackID != 4 {
		t.Errorf("board two = %+v; want 2 vs 4", b2)
	}
}

// TestDutchColorPreferenceHonored verifies a player with two whites in a
// row is due black and receives it.
func TestDutchColorPreferenceHonored(t *testing.T) {
	players := make([]*Player, 8)
	for i := range players {
		players[i] = testPlayer(i+1, 1800-100*i)
		players[i].RankIndex = i
	}
	p := func(id int) *Player { return players[id-1] }

	// round 1: 1v5, 2v6, 3v8, 4v7; round 2: 1v2, 3v4, 5v6, 7v8
	p(1).Matches = []Match{
		playedMatch(5, ColorWhite, ScoreWin),
		playedMatch(2, ColorWhite, ScoreWin),
	}
	p(2).Matches = []Match{
		playedMatch(6, ColorBlack, ScoreWin),
		playedMatch(1, ColorBlack, ScoreLoss),
	}
	p(3).Matches = []Match{
		playedMatch(8, ColorWhite, ScoreWin),
		playedMatch(4, ColorBlack, ScoreLoss),
	}
	p(4).Matches = []Match{
		playedMatch(7, ColorBlack, ScoreWin),
		playedMatch(3, ColorWhite, ScoreWin),
	}
	p(5).Matches = []Match{
		playedMatch(1, ColorBlack, ScoreLoss),
		playedMatch(6, ColorWhite, ScoreWin),
	}
	p(6).Matches = []Match{
		playedMatch(2, ColorWhite, ScoreLoss),
		playedMatch(5, ColorBlack, ScoreLoss),
	}
	p(7).Matches = []Match{
		playedMatch(4, ColorWhite, ScoreLoss),
		playedMatch(8, ColorBlack, ScoreWin),
	}
	p(8).Matches = []Match{
		playedMatch(3, ColorBlack, ScoreLoss),
		playedMatch(7, ColorWhite, ScoreLoss),
	}

	tr := testTournament(2, 5, players...)
	pairings, err := (&DutchStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	board := findPairingWith(pairings, 1)
	if board == nil {
		t.Fatal("player 1 was not paired")
	}
	if board.BlackID != 1 {
		t.Errorf("player 1 got white in %+v; want black after two whites", board)
	}
	if board.WhiteID != 4 {
		t.Errorf("player 1's opponent = %v; want 4 (the other leader)",
			board.WhiteID)
	}
}

// TestDutchSwapSearch verifies a player whose bottom-half candidates are
// all barred swaps into the top half, and the stranded bottom half pairs
// itself up.
func TestDutchSwapSearch(t *testing.T) {
	players := []*Player{
		testPlayer(1, 1600),
		testPlayer(2, 1500),
		testPlayer(3, 1400),
		testPlayer(4, 1300),
	}
	for i, p := range players {
		p.RankIndex = i
	}
	players[0].Forbidden = map[int]bool{3: true, 4: true}
	players[2].Forbidden = map[int]bool{1: true}
	players[3].Forbidden = map[int]bool{1: true}
	tr := testTournament(0, 4, players...)

	pairings, err := (&DutchStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	if byes := findByes(pairings); len(byes) != 0 {
		t.Fatalf("got %v byes; want none", len(byes))
	}
	b1 := findPairingWith(pairings, 1)
	if b1 == nil || b1.WhiteID != 1 || b1.BlackID != 2 {
		t.Errorf("player 1's board = %+v; want 1 vs 2 via the swap", b1)
	}
	b2 := findPairingWith(pairings, 3)
	if b2 == nil || b2.WhiteID != 3 || b2.BlackID != 4 {
		t.Errorf("player 3's board = %+v; want 3 vs 4 from the sweep", b2)
	}
}

// TestDutchSolverRepairsStrandedGroup verifies a fully pairable group never
// degrades into byes when the aligned walk strands players: the group is
// re-paired on the solver instead.
func TestDutchSolverRepairsStrandedGroup(t *testing.T) {
	players := []*Player{
		testPlayer(1, 1600),
		testPlayer(2, 1500),
		testPlayer(3, 1400),
		testPlayer(4, 1300),
	}
	for i, p := range players {
		p.RankIndex = i
	}
	// only 1-3, 1-4, and 2-3 remain legal; the aligned walk pairs 1 with 3
	// and strands 2 and 4, yet 1-4 plus 2-3 pairs everyone
	players[0].Forbidden = map[int]bool{2: true}
	players[1].Forbidden = map[int]bool{1: true, 4: true}
	players[2].Forbidden = map[int]bool{4: true}
	players[3].Forbidden = map[int]bool{2: true, 3: true}
	tr := testTournament(0, 4, players...)

	pairings, err := (&DutchStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	if byes := findByes(pairings); len(byes) != 0 {
		t.Fatalf("got %v byes in an even pairable group; want none", len(byes))
	}
	if len(pairings) != 2 {
		t.Fatalf("got %v pairings; want 2", len(pairings))
	}
	b1 := findPairingWith(pairings, 1)
	if b1 == nil || b1.WhiteID != 1 || b1.BlackID != 4 {
		t.Errorf("player 1's board = %+v; want 1 vs 4", b1)
	}
	b2 := findPairingWith(pairings, 2)
	if b2 == nil || b2.WhiteID != 2 || b2.BlackID != 3 {
		t.Errorf("player 2's board = %+v; want 2 vs 3", b2)
	}
}

// TestDutchUnsatisfiableRematch verifies two players who already met and
// have no other partners produce an error instead of a repeat pairing.
func TestDutchUnsatisfiableRematch(t *testing.T) {
	a := testPlayer(1, 1500)
	b := testPlayer(2, 1400)
	a.Matches = []Match{playedMatch(2, ColorWhite, ScoreWin)}
	b.Matches = []Match{playedMatch(1, ColorBlack, ScoreLoss)}
	tr := testTournament(1, 4, a, b)

	_, err := (&DutchStrategy{}).Pair(tr)
	if !errors.Is(err, ErrUnsatisfiablePairing) {
		t.Errorf("err = %v; want ErrUnsatisfiablePairing", err)
	}
}

// TestDutchIntentionalBye verifies a player who requested the round off is
// recorded with a half-point bye and excluded from pairing.
func TestDutchIntentionalBye(t *testing.T) {
	players := []*Player{
		testPlayer(1, 1500),
		testPlayer(2, 1400),
		testPlayer(3, 1300),
		testPlayer(4, 1200),
	}
	for i, p := range players {
		p.RankIndex = i
	}
	players[3].IntentionalByeRounds = map[int]bool{1: true}
	tr := testTournament(0, 4, players...)

	pairings, err := (&DutchStrategy{}).Pair(tr)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	byes := findByes(pairings)
	if len(byes) != 2 {
		t.Fatalf("got %v byes; want 2 (allocated + intentional)", len(byes))
	}
	var sawIntentional, sawAllocated bool
	for _, b := range byes {
		switch {
		case b.WhiteID == 4 && b.ByeType == ByeHalfPoint:
			sawIntentional = true
		case b.WhiteID == 3 && b.ByeType == ByeFull:
			sawAllocated = true
		}
	}
	if !sawIntentional {
		t.Error("player 4 should hold a half-point intentional bye")
	}
	if !sawAllocated {
		t.Error("player 3 should hold the pairing-allocated bye")
	}
}

// TestHistoryTooLong verifies a player with more matches than played rounds
// aborts the computation.
func TestHistoryTooLong(t *testing.T) {
	a := testPlayer(1, 1500)
	a.Matches = []Match{playedMatch(2, ColorWhite, ScoreWin)}
	b := testPlayer(2, 1400)
	b.Matches = []Match{playedMatch(1, ColorBlack, ScoreLoss)}
	tr := testTournament(0, 4, a, b)

	_, err := (&DutchStrategy{}).Pair(tr)
	if !errors.Is(err, ErrHistoryTooLong) {
		t.Errorf("err = %v; want ErrHistoryTooLong", err)
	}
}
