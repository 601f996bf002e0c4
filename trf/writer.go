/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package trf

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mikeb26/swisspair/swiss"
)

const crlf = "\r\n"

// syntheticFideBase is added to the player id to mint the placeholder FIDE
// id the player line carries.
const syntheticFideBase = 10000000

// Format renders the document as TRF16 text: optional 012 seed line, an
// XXR line while the tournament is incomplete, one player line per player
// in rank order, a blank line, the non-default BB override lines (each
// followed by a blank line), and XXA lines for accelerated players. Lines
// end with CRLF.
func (d *Document) Format() (string, error) {
	t := d.Tournament
	ComputeRanks(t)

	var sb strings.Builder

	if d.Seed != "" {
		sb.WriteString("012 " + d.Seed + crlf)
	}
	if t.TotalRounds > t.PlayedRounds {
		fmt.Fprintf(&sb, "XXR %d%s", t.TotalRounds, crlf)
	}

	ranked := make([]*swiss.Player, len(t.Players))
	copy(ranked, t.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankIndex < ranked[j].RankIndex
	})

	for _, p := range ranked {
		line, err := formatPlayerLine(t, p)
		if err != nil {
			return "", err
		}
		sb.WriteString(line + crlf)
	}
	sb.WriteString(crlf)

	bb, err := d.Ext.Points.bbLines()
	if err != nil {
		return "", err
	}
	for _, line := range bb {
		sb.WriteString(line + crlf)
		sb.WriteString(crlf)
	}

	for _, p := range ranked {
		if !nonDefaultAccel(p.Acceleration) {
			continue
		}
		line, err := formatXXA(p.ID, p.Acceleration)
		if err != nil {
			return "", err
		}
		sb.WriteString(line + crlf)
	}

	return sb.String(), nil
}

// Write renders the document to w.
func (d *Document) Write(w io.Writer) error {
	s, err := d.Format()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

// NewDocument wraps a tournament for emission, deriving the extension block
// from the tournament's scoring table.
func NewDocument(t *swiss.Tournament, seed string) *Document {
	ext := newExtensions()
	ext.Points = FromScoringTable(t.Scoring)
	ext.TotalRounds = t.TotalRounds

	return &Document{Seed: seed, Ext: ext, Tournament: t}
}

// formatPlayerLine renders one fixed-column player record. Ids and ratings
// beyond 9999 and scores beyond 99.9 are format-limit errors, never
// truncated.
func formatPlayerLine(t *swiss.Tournament, p *swiss.Player) (string, error) {
	if p.ID <= 0 || p.ID > maxID {
		return "", fmt.Errorf("%w: player id %d", ErrFormatLimit, p.ID)
	}
	if p.Rating < 0 || p.Rating > maxID {
		return "", fmt.Errorf("%w: rating %d for player %d",
			ErrFormatLimit, p.Rating, p.ID)
	}
	if tenths := int(t.Score(p)*10 + 0.5); tenths > maxTenths {
		return "", fmt.Errorf("%w: score %.1f for player %d",
			ErrFormatLimit, t.Score(p), p.ID)
	}

	width := gamesStart + len(p.Matches)*gamesBlockWidth
	buf := blankLine(width)

	name := p.Name
	if len(name) > fieldName.width {
		name = name[:fieldName.width]
	}

	if err := putFieldInt(buf, fieldID, p.ID); err != nil {
		return "", err
	}
	if err := putField(buf, fieldName, name); err != nil {
		return "", err
	}
	if err := putFieldInt(buf, fieldFideID, syntheticFideBase+p.ID); err != nil {
		return "", err
	}
	if err := putField(buf, fieldTitle, ""); err != nil {
		return "", err
	}
	if err := putFieldInt(buf, fieldIDRep, p.ID); err != nil {
		return "", err
	}
	if err := putFieldInt(buf, fieldRating, p.Rating); err != nil {
		return "", err
	}

	for i, m := range p.Matches {
		block, err := formatGamesBlock(p, m)
		if err != nil {
			return "", err
		}
		copy(buf[gamesStart+i*gamesBlockWidth:], block)
	}

	return string(buf), nil
}

// formatGamesBlock renders one 10-column round record.
func formatGamesBlock(p *swiss.Player, m swiss.Match) ([]byte, error) {
	buf := blankLine(gamesBlockWidth)

	selfPaired := m.IsBye(p.ID)
	if selfPaired {
		copy(buf[blockOpponent.off:], "0000")
	} else {
		if m.OpponentID > maxID || m.OpponentID <= 0 {
			return nil, fmt.Errorf("%w: opponent id %d for player %d",
				ErrFormatLimit, m.OpponentID, p.ID)
		}
		if err := putFieldInt(buf, blockOpponent, m.OpponentID); err != nil {
			return nil, err
		}
	}

	switch m.Color {
	case swiss.ColorWhite:
		buf[blockColor.off] = 'w'
	case swiss.ColorBlack:
		buf[blockColor.off] = 'b'
	}

	var result byte
	switch {
	case m.GameWasPlayed:
		switch m.Outcome {
		case swiss.ScoreWin:
			result = '1'
		case swiss.ScoreDraw:
			result = '='
		default:
			result = '0'
		}
	case !m.ParticipatedInPairing:
		result = 'U'
	case selfPaired:
		switch m.Outcome {
		case swiss.ScoreWin:
			result = 'F'
		case swiss.ScoreDraw:
			result = 'H'
		default:
			result = 'Z'
		}
	default:
		// forfeit against a real opponent
		if m.Outcome == swiss.ScoreWin {
			result = '+'
		} else {
			result = '-'
		}
	}
	buf[blockResult.off] = result

	return buf, nil
}

// ComputeRanks assigns 0-based rank indices: stable sort by unaccelerated
// score descending, rating descending.
func ComputeRanks(t *swiss.Tournament) {
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
