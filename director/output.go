/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package director

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/swisspair/internal"
	"github.com/mikeb26/swisspair/swiss"
)

// BuildPairingsOutput formats a generated round into an aligned text table.
func BuildPairingsOutput(t *swiss.Tournament, records []PairingRecord,
	round int) string {

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", round))

	type row struct{ board, white, black string }
	var rows []row
	for _, rec := range records {
		white := t.PlayerByID(rec.WhiteID)
		var w, b, bl string
		w = playerCell(t, white)
		if rec.IsBye {
			b = "n/a"
			switch rec.ByeType {
			case swiss.ByeHalfPoint.String():
				bl = "BYE(½)"
			case swiss.ByeZeroPoint.String(), swiss.ByeUnpaired.String():
				bl = "BYE(0)"
			default:
				bl = "BYE(1)"
			}
		} else {
			b = fmt.Sprintf("%d.", rec.Board)
			bl = playerCell(t, t.PlayerByID(*rec.BlackID))
		}
		rows = append(rows, row{board: b, white: w, black: bl})
	}

	// Compute column widths
	maxB, maxW, maxBl := len("Board"), len("White"), len("Black")
	for _, r := range rows {
		if l := len(r.board); l > maxB {
			maxB = l
		}
		if l := len(r.white); l > maxW {
			maxW = l
		}
		if l := len(r.black); l > maxBl {
			maxBl = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxW,
		"White", maxBl, "Black"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
			maxW, r.white, maxBl, r.black))
	}
	sb.WriteString("\n")

	return sb.String()
}

func playerCell(t *swiss.Tournament, p *swiss.Player) string {
	if p == nil {
		return "?"
	}

	return fmt.Sprintf("%s(%d %v)", p.Name, p.Rating,
		internal.ScoreToString(t.Score(p)))
}

// BuildStandingsOutput formats current standings into an aligned table.
func BuildStandingsOutput(t *swiss.Tournament) string {
	players := make([]*swiss.Player, len(t.Players))
	copy(players, t.Players)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].RankIndex < players[j].RankIndex
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standings after Round %v:\n\n", t.PlayedRounds))

	type row struct{ rank, player, score string }
	var rows []row
	priorScore := -1.0
	place := 0
	for idx, p := range players {
		score := t.Score(p)
		var rank string
		if idx != 0 && score == priorScore {
			rank = ""
		} else {
			place = idx + 1
			rank = fmt.Sprintf("%v.", place)
			priorScore = score
		}
		rows = append(rows, row{
			rank:   rank,
			player: p.Name,
			score:  internal.ScoreToString(score),
		})
	}

	maxP, maxN, maxS := len("Place"), len("Name"), len("Score")
	for _, r := range rows {
		if l := len(r.rank); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Place", maxN,
		"Name", maxS, "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.rank,
			maxN, r.player, maxS, r.score))
	}
	sb.WriteString("\n")

	return sb.String()
}
