/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package trf

import (
	"bufio"
	"io"
	"strings"

	"github.com/mikeb26/swisspair/swiss"
)

// Document is a parsed TRF file: the optional seed line, the extension
// block, and the reconstructed tournament.
type Document struct {
	// Seed is the free-text 012 line, without its prefix.
	Seed string

	Ext Extensions

	Tournament *swiss.Tournament
}

// Parse reads a TRF16 document. Player lines shorter than their required
// fixed width and unrecognized result or color codes are reported with the
// offending line, never swallowed.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{Ext: newExtensions()}

	type rawPlayer struct {
		line   string
		lineNo int
	}
	var rawPlayers []rawPlayer

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "012 ") {
			doc.Seed = strings.TrimSpace(line[4:])
			continue
		}
		handled, err := doc.Ext.parseExtensionLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if handled {
			continue
		}
		rawPlayers = append(rawPlayers, rawPlayer{line: line, lineNo: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	t := &swiss.Tournament{
		Scoring:      doc.Ext.Points.ScoringTable(),
		InitialColor: swiss.ColorWhite,
	}
	seen := make(map[int]int)
	for _, raw := range rawPlayers {
		p, rounds, err := parsePlayerLine(raw.line, raw.lineNo)
		if err != nil {
			return nil, err
		}
		if first, ok := seen[p.ID]; ok {
			return nil, parseErrf(raw.lineNo, raw.line,
				"duplicate player id %d (first seen on line %d)", p.ID, first)
		}
		seen[p.ID] = raw.lineNo
		if rounds > t.PlayedRounds {
			t.PlayedRounds = rounds
		}
		t.Players = append(t.Players, p)
	}

	t.TotalRounds = doc.Ext.TotalRounds
	if t.TotalRounds < t.PlayedRounds {
		t.TotalRounds = t.PlayedRounds
	}

	for _, p := range t.Players {
		if vec, ok := doc.Ext.Acceleration[p.ID]; ok {
			p.Acceleration = vec
		}
	}
	for _, pair := range doc.Ext.ForbiddenPairs {
		a := t.PlayerByID(pair[0])
		b := t.PlayerByID(pair[1])
		if a == nil || b == nil {
			continue
		}
		if a.Forbidden == nil {
			a.Forbidden = make(map[int]bool)
		}
		if b.Forbidden == nil {
			b.Forbidden = make(map[int]bool)
		}
		a.Forbidden[b.ID] = true
		b.Forbidden[a.ID] = true
	}
	for _, id := range doc.Ext.AbsentIDs {
		if p := t.PlayerByID(id); p != nil {
			if p.IntentionalByeRounds == nil {
				p.IntentionalByeRounds = make(map[int]bool)
			}
			p.IntentionalByeRounds[t.PlayedRounds+1] = true
		}
	}

	ComputeRanks(t)
	doc.Tournament = t

	return doc, nil
}

// parsePlayerLine decodes one fixed-column player record and its games
// blocks, returning the player and the number of rounds encoded.
func parsePlayerLine(line string, lineNo int) (*swiss.Player, int, error) {
	if len(line) < fieldRating.off+fieldRating.width {
		return nil, 0, parseErrf(lineNo, line,
			"player line shorter than required width %d",
			fieldRating.off+fieldRating.width)
	}

	id, err := getFieldInt(line, fieldID, lineNo)
	if err != nil {
		return nil, 0, err
	}
	if id <= 0 {
		return nil, 0, parseErrf(lineNo, line, "bad player id")
	}
	idRep, err := getFieldInt(line, fieldIDRep, lineNo)
	if err != nil {
		return nil, 0, err
	}
	if idRep != 0 && idRep != id {
		return nil, 0, parseErrf(lineNo, line,
			"repeated id %d does not match id %d", idRep, id)
	}
	rating, err := getFieldInt(line, fieldRating, lineNo)
	if err != nil {
		return nil, 0, err
	}

	p := &swiss.Player{
		ID:     id,
		Name:   getField(line, fieldName),
		Rating: rating,
	}

	rounds := 0
	for off := gamesStart; off < len(line); off += gamesBlockWidth {
		if off+gamesBlockWidth > len(line) {
			return nil, 0, parseErrf(lineNo, line,
				"truncated games block at column %d", off+1)
		}
		block := line[off : off+gamesBlockWidth]
		m, err := parseGamesBlock(block, p.ID, lineNo, line)
		if err != nil {
			return nil, 0, err
		}
		p.Matches = append(p.Matches, m)
		rounds++
	}

	return p, rounds, nil
}

// parseGamesBlock decodes a single 10-column round record.
func parseGamesBlock(block string, selfID, lineNo int, line string) (swiss.Match, error) {
	var m swiss.Match

	opp, err := getFieldInt(block, blockOpponent, lineNo)
	if err != nil {
		return m, err
	}

	switch getField(block, blockColor) {
	case "w":
		m.Color = swiss.ColorWhite
	case "b":
		m.Color = swiss.ColorBlack
	case "", "-":
		m.Color = swiss.ColorNone
	default:
		return m, parseErrf(lineNo, line, "unrecognized color code %q",
			getField(block, blockColor))
	}

	result := getField(block, blockResult)
	switch result {
	case "1":
		m.Outcome = swiss.ScoreWin
		m.GameWasPlayed = true
		m.ParticipatedInPairing = true
	case "=":
		m.Outcome = swiss.ScoreDraw
		m.GameWasPlayed = true
		m.ParticipatedInPairing = true
	case "0":
		m.Outcome = swiss.ScoreLoss
		m.GameWasPlayed = true
		m.ParticipatedInPairing = true
	case "+":
		m.Outcome = swiss.ScoreWin
		m.ParticipatedInPairing = true
	case "-":
		m.Outcome = swiss.ScoreLoss
		m.ParticipatedInPairing = true
	case "F":
		m.Outcome = swiss.ScoreWin
		m.ParticipatedInPairing = true
	case "H":
		m.Outcome = swiss.ScoreDraw
		m.ParticipatedInPairing = true
	case "Z":
		m.Outcome = swiss.ScoreLoss
		m.ParticipatedInPairing = true
	case "U":
		m.Outcome = swiss.ScoreLoss
	default:
		return m, parseErrf(lineNo, line, "unrecognized result code %q", result)
	}

	if opp == 0 {
		m.OpponentID = selfID
	} else {
		m.OpponentID = opp
	}

	return m, nil
}
