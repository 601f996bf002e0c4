/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package director

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mikeb26/swisspair/swiss"
)

// fakeStore serves canned roster and history rows.
type fakeStore struct {
	roster  []PlayerRow
	history []PairingRow
	saved   []PairingRecord
}

func (s *fakeStore) FetchRoster(ctx context.Context, tournamentID int64,
	section string) ([]PlayerRow, error) {
	return s.roster, nil
}

func (s *fakeStore) FetchPairings(ctx context.Context, tournamentID int64,
	section string, beforeRound int) ([]PairingRow, error) {
	var out []PairingRow
	for _, row := range s.history {
		if row.Round < beforeRound {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *fakeStore) SavePairings(ctx context.Context, tournamentID int64,
	round int, records []PairingRecord) error {
	s.saved = records
	return nil
}

func intPtr(v int) *int { return &v }

func testRoster() []PlayerRow {
	return []PlayerRow{
		{ID: 1, Name: "Alpha", Rating: 1500},
		{ID: 2, Name: "Beta", Rating: 1400},
		{ID: 3, Name: "Gamma", Rating: 1300},
		{ID: 4, Name: "Delta", Rating: 1200},
	}
}

func newTestDirector(s Store) *Director {
	return New(s, swiss.NewStrategy("dutch"), swiss.DefaultScoring(), 4, nil)
}

// TestGenerateRoundOne verifies a fresh four-player section pairs into two
// sequentially numbered boards.
func TestGenerateRoundOne(t *testing.T) {
	store := &fakeStore{roster: testRoster()}
	d := newTestDirector(store)

	records, err := d.GeneratePairings(context.Background(), 1, "Open", 1)
	if err != nil {
		t.Fatalf("GeneratePairings: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %v records; want 2", len(records))
	}
	for i, rec := range records {
		if rec.IsBye {
			t.Errorf("record %v is a bye; want a game", i)
		}
		if rec.Board != i+1 {
			t.Errorf("record %v board = %v; want %v", i, rec.Board, i+1)
		}
		if rec.Section != "Open" {
			t.Errorf("record %v section = %q; want Open", i, rec.Section)
		}
	}
}

// TestPairSnapshot verifies pairing from an already-loaded snapshot yields
// the same records as the load-and-pair path, so callers can display and
// persist from one store read.
func TestPairSnapshot(t *testing.T) {
	store := &fakeStore{roster: testRoster()}
	d := newTestDirector(store)

	tr, err := d.LoadTournament(context.Background(), 1, "Open", 1)
	if err != nil {
		t.Fatalf("LoadTournament: %v", err)
	}
	fromSnapshot, err := d.PairSnapshot(tr, "Open")
	if err != nil {
		t.Fatalf("PairSnapshot: %v", err)
	}
	fromStore, err := d.GeneratePairings(context.Background(), 1, "Open", 1)
	if err != nil {
		t.Fatalf("GeneratePairings: %v", err)
	}

	if !reflect.DeepEqual(fromSnapshot, fromStore) {
		t.Errorf("snapshot records = %+v; store records = %+v",
			fromSnapshot, fromStore)
	}
}

// TestGenerateRoundTwoAvoidsRematch verifies round 2 crosses the round 1
// results without re-pairing prior opponents.
func TestGenerateRoundTwoAvoidsRematch(t *testing.T) {
	store := &fakeStore{
		roster: testRoster(),
		history: []PairingRow{
			{WhiteID: 1, BlackID: intPtr(3), Result: "1-0", Round: 1, Board: 1},
			{WhiteID: 2, BlackID: intPtr(4), Result: "0-1", Round: 1, Board: 2},
		},
	}
	d := newTestDirector(store)

	records, err := d.GeneratePairings(context.Background(), 1, "", 2)
	if err != nil {
		t.Fatalf("GeneratePairings: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %v records; want 2", len(records))
	}
	prior := map[int]int{1: 3, 3: 1, 2: 4, 4: 2}
	for _, rec := range records {
		if rec.BlackID == nil {
			t.Fatalf("unexpected bye record %+v", rec)
		}
		if prior[rec.WhiteID] == *rec.BlackID {
			t.Errorf("record %+v repeats a round 1 pairing", rec)
		}
	}
}

// TestGenerateByeSortsLast verifies an odd roster yields a trailing bye
// record with board 0.
func TestGenerateByeSortsLast(t *testing.T) {
	roster := append(testRoster(), PlayerRow{ID: 5, Name: "Echo", Rating: 1100})
	store := &fakeStore{roster: roster}
	d := newTestDirector(store)

	records, err := d.GeneratePairings(context.Background(), 1, "", 1)
	if err != nil {
		t.Fatalf("GeneratePairings: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %v records; want 3", len(records))
	}
	last := records[len(records)-1]
	if !last.IsBye || last.Board != 0 {
		t.Errorf("last record = %+v; want a bye with board 0", last)
	}
	if last.WhiteID != 5 {
		t.Errorf("bye recipient = %v; want 5 (lowest rated)", last.WhiteID)
	}
	if last.ByeType != swiss.ByeFull.String() {
		t.Errorf("bye type = %q; want %q", last.ByeType, swiss.ByeFull.String())
	}
}

// TestWithdrawnExcluded verifies inactive roster rows never get paired but
// their history rows still resolve.
func TestWithdrawnExcluded(t *testing.T) {
	roster := testRoster()
	roster = append(roster, PlayerRow{ID: 5, Name: "Gone", Rating: 1600,
		Status: "withdrawn"})
	store := &fakeStore{
		roster: roster,
		history: []PairingRow{
			{WhiteID: 5, BlackID: intPtr(2), Result: "1-0", Round: 1, Board: 1},
			{WhiteID: 1, BlackID: intPtr(3), Result: "1-0", Round: 1, Board: 2},
			{WhiteID: 4, ByeType: "bye", Round: 1, Board: 0},
		},
	}
	d := newTestDirector(store)

	records, err := d.GeneratePairings(context.Background(), 1, "", 2)
	if err != nil {
		t.Fatalf("GeneratePairings: %v", err)
	}
	for _, rec := range records {
		if rec.WhiteID == 5 || (rec.BlackID != nil && *rec.BlackID == 5) {
			t.Errorf("withdrawn player appears in %+v", rec)
		}
	}
}

// TestMissingResult verifies an unreported prior game blocks pairing.
func TestMissingResult(t *testing.T) {
	store := &fakeStore{
		roster: testRoster(),
		history: []PairingRow{
			{WhiteID: 1, BlackID: intPtr(3), Result: "", Round: 1, Board: 1},
			{WhiteID: 2, BlackID: intPtr(4), Result: "1-0", Round: 1, Board: 2},
		},
	}
	d := newTestDirector(store)

	_, err := d.GeneratePairings(context.Background(), 1, "", 2)
	if !errors.Is(err, ErrMissingResult) {
		t.Errorf("err = %v; want ErrMissingResult", err)
	}
}

// TestUnknownPlayer verifies a history row referencing a player missing
// from the roster aborts the computation.
func TestUnknownPlayer(t *testing.T) {
	store := &fakeStore{
		roster: testRoster(),
		history: []PairingRow{
			{WhiteID: 1, BlackID: intPtr(99), Result: "1-0", Round: 1, Board: 1},
		},
	}
	d := newTestDirector(store)

	_, err := d.GeneratePairings(context.Background(), 1, "", 2)
	if !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("err = %v; want ErrUnknownPlayer", err)
	}
}

// TestBadRound verifies non-positive rounds are rejected up front.
func TestBadRound(t *testing.T) {
	d := newTestDirector(&fakeStore{roster: testRoster()})

	_, err := d.GeneratePairings(context.Background(), 1, "", 0)
	if !errors.Is(err, ErrBadRound) {
		t.Errorf("err = %v; want ErrBadRound", err)
	}
}

// TestBadResultCode verifies unrecognized stored results are rejected.
func TestBadResultCode(t *testing.T) {
	store := &fakeStore{
		roster: testRoster(),
		history: []PairingRow{
			{WhiteID: 1, BlackID: intPtr(3), Result: "2-0", Round: 1, Board: 1},
			{WhiteID: 2, BlackID: intPtr(4), Result: "1-0", Round: 1, Board: 2},
		},
	}
	d := newTestDirector(store)

	_, err := d.GeneratePairings(context.Background(), 1, "", 2)
	if !errors.Is(err, ErrBadResultCode) {
		t.Errorf("err = %v; want ErrBadResultCode", err)
	}
}

// TestRenderTRF verifies the TRF export carries the roster and the XXR
// round count.
func TestRenderTRF(t *testing.T) {
	store := &fakeStore{roster: testRoster()}
	d := newTestDirector(store)

	out, err := d.RenderTRF(context.Background(), 1, "", 1, "Test Open")
	if err != nil {
		t.Fatalf("RenderTRF: %v", err)
	}

	if !strings.HasPrefix(out, "012 Test Open\r\n") {
		t.Errorf("missing seed line:\n%s", out)
	}
	if !strings.Contains(out, "XXR 4\r\n") {
		t.Errorf("missing XXR line:\n%s", out)
	}
	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing player %v:\n%s", name, out)
		}
	}
}

// TestBuildOutputs verifies the text tables render the expected cells.
func TestBuildOutputs(t *testing.T) {
	store := &fakeStore{roster: append(testRoster(),
		PlayerRow{ID: 5, Name: "Echo", Rating: 1100})}
	d := newTestDirector(store)
	ctx := context.Background()

	tr, err := d.LoadTournament(ctx, 1, "", 1)
	if err != nil {
		t.Fatalf("LoadTournament: %v", err)
	}
	records, err := d.GeneratePairings(ctx, 1, "", 1)
	if err != nil {
		t.Fatalf("GeneratePairings: %v", err)
	}

	pout := BuildPairingsOutput(tr, records, 1)
	if !strings.Contains(pout, "Round 1 Pairings") ||
		!strings.Contains(pout, "BYE(1)") {
		t.Errorf("pairings output missing expected cells:\n%s", pout)
	}

	sout := BuildStandingsOutput(tr)
	if !strings.Contains(sout, "Standings after Round 0") ||
		!strings.Contains(sout, "Alpha") {
		t.Errorf("standings output missing expected cells:\n%s", sout)
	}
}
