/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package director

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisspair/swiss"
	"github.com/mikeb26/swisspair/trf"
)

// Director bridges the pairing engine to the external store: it rebuilds a
// tournament snapshot from stored history, runs the configured strategy,
// and shapes the result for persistence or TRF emission. All entities are
// reconstructed from scratch per request; nothing is cached between calls.
type Director struct {
	store       Store
	strategy    swiss.Strategy
	scoring     swiss.ScoringTable
	totalRounds int
	log         *zap.Logger
}

// New returns a Director. A nil logger disables logging.
func New(store Store, strategy swiss.Strategy, scoring swiss.ScoringTable,
	totalRounds int, log *zap.Logger) *Director {

	if log == nil {
		log = zap.NewNop()
	}

	return &Director{
		store:       store,
		strategy:    strategy,
		scoring:     scoring,
		totalRounds: totalRounds,
		log:         log,
	}
}

// GeneratePairings produces the given round's pairings for one section. It
// either returns the full set or an error, never a partial one; persistence
// is the caller's move via SavePairings.
func (d *Director) GeneratePairings(ctx context.Context, tournamentID int64,
	section string, round int) ([]PairingRecord, error) {

	t, err := d.LoadTournament(ctx, tournamentID, section, round)
	if err != nil {
		return nil, err
	}

	return d.PairSnapshot(t, section)
}

// PairSnapshot runs the configured strategy over an already-loaded
// tournament snapshot. Callers that also need the snapshot for display
// load once and pair from it, so table and records come from the same
// store read.
func (d *Director) PairSnapshot(t *swiss.Tournament,
	section string) ([]PairingRecord, error) {

	round := t.NextRound()
	pairings, err := d.strategy.Pair(t)
	if err != nil {
		return nil, fmt.Errorf("pairing round %d: %w", round, err)
	}

	records := formatRecords(pairings, section)
	d.log.Info("generated pairings",
		zap.String("section", section),
		zap.Int("round", round),
		zap.String("strategy", d.strategy.Name()),
		zap.Int("boards", len(records)))

	return records, nil
}

// LoadTournament rebuilds the engine's tournament snapshot for pairing the
// given round. Roster and full prior history are fetched concurrently.
func (d *Director) LoadTournament(ctx context.Context, tournamentID int64,
	section string, round int) (*swiss.Tournament, error) {

	if round < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRound, round)
	}

	var roster []PlayerRow
	var history []PairingRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = d.store.FetchRoster(gctx, tournamentID, section)
		if err != nil {
			return fmt.Errorf("fetch roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		history, err = d.store.FetchPairings(gctx, tournamentID, section, round)
		if err != nil {
			return fmt.Errorf("fetch pairings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d.reconstruct(roster, history, round)
}

// reconstruct turns store rows into a Tournament ready to pair.
func (d *Director) reconstruct(roster []PlayerRow, history []PairingRow,
	round int) (*swiss.Tournament, error) {

	t := &swiss.Tournament{
		PlayedRounds: round - 1,
		TotalRounds:  d.totalRounds,
		Scoring:      d.scoring,
		InitialColor: swiss.ColorWhite,
	}
	if t.TotalRounds < round {
		t.TotalRounds = round
	}

	known := make(map[int]*PlayerRow, len(roster))
	players := make(map[int]*swiss.Player, len(roster))
	for i := range roster {
		row := &roster[i]
		if row.ID > 9999 || row.Rating > 9999 {
			return nil, fmt.Errorf("%w: player %d rating %d",
				trf.ErrFormatLimit, row.ID, row.Rating)
		}
		known[row.ID] = row
		if !row.Active() {
			continue
		}
		byes, err := NormalizeByeRounds(row.IntentionalByeRounds)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", row.ID, err)
		}
		players[row.ID] = &swiss.Player{
			ID:                   row.ID,
			Name:                 row.Name,
			Rating:               row.Rating,
			IntentionalByeRounds: byes,
		}
	}

	// round -> player id -> match
	matches := make(map[int]map[int]swiss.Match)
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].Round != history[j].Round {
			return history[i].Round < history[j].Round
		}
		return history[i].Board < history[j].Board
	})
	for _, row := range history {
		if _, ok := known[row.WhiteID]; !ok {
			return nil, fmt.Errorf("%w: id %d in round %d",
				ErrUnknownPlayer, row.WhiteID, row.Round)
		}
		if row.BlackID != nil {
			if _, ok := known[*row.BlackID]; !ok {
				return nil, fmt.Errorf("%w: id %d in round %d",
					ErrUnknownPlayer, *row.BlackID, row.Round)
			}
		}
		if matches[row.Round] == nil {
			matches[row.Round] = make(map[int]swiss.Match)
		}
		white, black, err := decodeResult(row)
		if err != nil {
			return nil, err
		}
		matches[row.Round][row.WhiteID] = white
		if row.BlackID != nil {
			matches[row.Round][*row.BlackID] = black
		}
	}

	// per-player histories, index-aligned to round number
	ids := make([]int, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p := players[id]
		for r := 1; r < round; r++ {
			m, ok := matches[r][id]
			if !ok {
				// absent that round: unpaired
				m = swiss.Match{OpponentID: id, Outcome: swiss.ScoreLoss}
			}
			p.Matches = append(p.Matches, m)
		}
		p.RecountByes()
		t.Players = append(t.Players, p)
	}

	rankPlayers(t)

	return t, nil
}

// decodeResult maps a stored result code onto the two players' match
// records. The white record doubles as the bye record for bye rows.
func decodeResult(row PairingRow) (white, black swiss.Match, err error) {
	if row.BlackID == nil {
		return decodeBye(row), swiss.Match{}, nil
	}

	white = swiss.Match{OpponentID: *row.BlackID, Color: swiss.ColorWhite,
		ParticipatedInPairing: true}
	black = swiss.Match{OpponentID: row.WhiteID, Color: swiss.ColorBlack,
		ParticipatedInPairing: true}

	switch row.Result {
	case "1-0":
		white.Outcome, black.Outcome = swiss.ScoreWin, swiss.ScoreLoss
		white.GameWasPlayed, black.GameWasPlayed = true, true
	case "0-1":
		white.Outcome, black.Outcome = swiss.ScoreLoss, swiss.ScoreWin
		white.GameWasPlayed, black.GameWasPlayed = true, true
	case "1/2-1/2":
		white.Outcome, black.Outcome = swiss.ScoreDraw, swiss.ScoreDraw
		white.GameWasPlayed, black.GameWasPlayed = true, true
	case "1-0F":
		white.Outcome, black.Outcome = swiss.ScoreWin, swiss.ScoreLoss
	case "0-1F":
		white.Outcome, black.Outcome = swiss.ScoreLoss, swiss.ScoreWin
	case "1/2-1/2F":
		white.Outcome, black.Outcome = swiss.ScoreDraw, swiss.ScoreDraw
	case "", "null":
		return white, black, fmt.Errorf("%w: round %d board %d",
			ErrMissingResult, row.Round, row.Board)
	default:
		return white, black, fmt.Errorf("%w: %q in round %d",
			ErrBadResultCode, row.Result, row.Round)
	}

	return white, black, nil
}

// decodeBye builds the self-paired match for a stored bye row.
func decodeBye(row PairingRow) swiss.Match {
	m := swiss.Match{OpponentID: row.WhiteID, ParticipatedInPairing: true}
	switch row.ByeType {
	case "half_point_bye":
		m.Outcome = swiss.ScoreDraw
	case "zero_point_bye":
		m.Outcome = swiss.ScoreLoss
	case "unpaired":
		m.Outcome = swiss.ScoreLoss
		m.ParticipatedInPairing = false
	default:
		// pairing-allocated full bye
		m.Outcome = swiss.ScoreWin
	}

	return m
}

// rankPlayers assigns rank indices by reconstructed score, ties by rating.
func rankPlayers(t *swiss.Tournament) {
	ranked := make([]*swiss.Player, len(t.Players))
	copy(ranked, t.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := t.Score(ranked[i]), t.Score(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].Rating > ranked[j].Rating
	})
	for idx, p := range ranked {
		p.RankIndex = idx
	}
}

// formatRecords numbers boards sequentially and shapes pairings for
// persistence; byes sort last and carry board 0.
func formatRecords(pairings []swiss.Pairing, section string) []PairingRecord {
	sort.SliceStable(pairings, func(i, j int) bool {
		return !pairings[i].IsBye && pairings[j].IsBye
	})

	records := make([]PairingRecord, 0, len(pairings))
	board := 1
	for _, p := range pairings {
		rec := PairingRecord{
			WhiteID: p.WhiteID,
			Section: section,
		}
		if p.IsBye {
			rec.IsBye = true
			rec.ByeType = p.ByeType.String()
		} else {
			blackID := p.BlackID
			rec.BlackID = &blackID
			rec.Board = board
			board++
		}
		records = append(records, rec)
	}

	return records
}

// RenderTRF emits the reconstructed snapshot as a TRF16 document.
func (d *Director) RenderTRF(ctx context.Context, tournamentID int64,
	section string, round int, seed string) (string, error) {

	t, err := d.LoadTournament(ctx, tournamentID, section, round)
	if err != nil {
		return "", err
	}

	return trf.NewDocument(t, seed).Format()
}
