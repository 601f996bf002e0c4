/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package trf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeb26/swisspair/swiss"
)

// Point codes of the scoring table, resolvable from an XXS extension line.
// Values are stored in game points; the wire format carries tenths.
const (
	CodeWinWhite     = "WW"
	CodeWinBlack     = "BW"
	CodeDrawWhite    = "WD"
	CodeDrawBlack    = "BD"
	CodeLossWhite    = "WL"
	CodeLossBlack    = "BL"
	CodeZeroPointBye = "ZPB"
	CodeHalfPointBye = "HPB"
	CodeFullPointBye = "FPB"
	CodePairedBye    = "PAB"
	CodeForfeitWin   = "FW"
	CodeForfeitLoss  = "FL"
	CodeWin          = "W"
	CodeDraw         = "D"
)

var pointCodes = []string{
	CodeWinWhite, CodeWinBlack, CodeDrawWhite, CodeDrawBlack,
	CodeLossWhite, CodeLossBlack, CodeZeroPointBye, CodeHalfPointBye,
	CodeFullPointBye, CodePairedBye, CodeForfeitWin, CodeForfeitLoss,
	CodeWin, CodeDraw,
}

// PointTable maps the 14 point codes to game-point values.
type PointTable struct {
	points map[string]float64
}

// DefaultPoints returns the standard FIDE table: wins 1, draws 0.5, losses
// and zero-point byes 0, full and pairing-allocated byes 1.
func DefaultPoints() PointTable {
	return PointTable{points: map[string]float64{
		CodeWinWhite:     1.0,
		CodeWinBlack:     1.0,
		CodeDrawWhite:    0.5,
		CodeDrawBlack:    0.5,
		CodeLossWhite:    0.0,
		CodeLossBlack:    0.0,
		CodeZeroPointBye: 0.0,
		CodeHalfPointBye: 0.5,
		CodeFullPointBye: 1.0,
		CodePairedBye:    1.0,
		CodeForfeitWin:   1.0,
		CodeForfeitLoss:  0.0,
		CodeWin:          1.0,
		CodeDraw:         0.5,
	}}
}

// Resolve returns the point value for a code.
func (pt PointTable) Resolve(code string) (float64, error) {
	v, ok := pt.points[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPointCode, code)
	}

	return v, nil
}

// Set overrides one code.
func (pt PointTable) Set(code string, value float64) error {
	if _, ok := pt.points[code]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPointCode, code)
	}
	pt.points[code] = value

	return nil
}

// IsDefault reports whether a code still carries its standard value.
func (pt PointTable) IsDefault(code string) bool {
	def := DefaultPoints()
	return pt.points[code] == def.points[code]
}

// ScoringTable converts the point table into the engine's six-way lookup.
func (pt PointTable) ScoringTable() swiss.ScoringTable {
	return swiss.ScoringTable{
		Win:                 pt.points[CodeWin],
		Draw:                pt.points[CodeDraw],
		Loss:                pt.points[CodeLossWhite],
		ZeroPointBye:        pt.points[CodeZeroPointBye],
		ForfeitLoss:         pt.points[CodeForfeitLoss],
		PairingAllocatedBye: pt.points[CodePairedBye],
	}
}

// FromScoringTable builds a point table from the engine's lookup, keeping
// white/black variants in lockstep.
func FromScoringTable(s swiss.ScoringTable) PointTable {
	pt := DefaultPoints()
	pt.points[CodeWin] = s.Win
	pt.points[CodeWinWhite] = s.Win
	pt.points[CodeWinBlack] = s.Win
	pt.points[CodeForfeitWin] = s.Win
	pt.points[CodeDraw] = s.Draw
	pt.points[CodeDrawWhite] = s.Draw
	pt.points[CodeDrawBlack] = s.Draw
	pt.points[CodeHalfPointBye] = s.Draw
	pt.points[CodeLossWhite] = s.Loss
	pt.points[CodeLossBlack] = s.Loss
	pt.points[CodeZeroPointBye] = s.ZeroPointBye
	pt.points[CodeForfeitLoss] = s.ForfeitLoss
	pt.points[CodePairedBye] = s.PairingAllocatedBye
	pt.points[CodeFullPointBye] = s.PairingAllocatedBye

	return pt
}

// parseXXS folds an "XXS CODE=tenths ..." line into the table.
func (pt PointTable) parseXXS(line string, lineNo int) error {
	for _, tok := range strings.Fields(line)[1:] {
		eq := strings.IndexByte(tok, '=')
		if eq <= 0 {
			return parseErrf(lineNo, line, "bad XXS token %q", tok)
		}
		code := tok[:eq]
		tenths, err := strconv.Atoi(tok[eq+1:])
		if err != nil {
			return parseErrf(lineNo, line, "bad XXS value %q", tok)
		}
		if err := pt.Set(code, float64(tenths)/10); err != nil {
			return parseErrf(lineNo, line, "%v", err)
		}
	}

	return nil
}

// The BB override lines each carry a single tenths value for one scoring
// concern; they are only emitted when non-default.
var bbCodes = []struct {
	prefix string
	codes  []string
}{
	{"BBW", []string{CodeWin, CodeWinWhite, CodeWinBlack, CodeForfeitWin}},
	{"BBD", []string{CodeDraw, CodeDrawWhite, CodeDrawBlack, CodeHalfPointBye}},
	{"BBL", []string{CodeLossWhite, CodeLossBlack}},
	{"BBZ", []string{CodeZeroPointBye}},
	{"BBF", []string{CodeForfeitLoss}},
	{"BBU", []string{CodePairedBye, CodeFullPointBye}},
}

// parseBB folds a "BBx <tenths>" line into the table; reports whether the
// prefix was recognized.
func (pt PointTable) parseBB(line string, lineNo int) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	for _, bb := range bbCodes {
		if fields[0] != bb.prefix {
			continue
		}
		if len(fields) != 2 {
			return true, parseErrf(lineNo, line, "%s wants one value", bb.prefix)
		}
		tenths, err := strconv.Atoi(fields[1])
		if err != nil {
			return true, parseErrf(lineNo, line, "bad %s value %q", bb.prefix, fields[1])
		}
		for _, code := range bb.codes {
			pt.points[code] = float64(tenths) / 10
		}
		return true, nil
	}

	return false, nil
}

// bbLines renders the non-default BB override lines, each in tenths.
func (pt PointTable) bbLines() ([]string, error) {
	def := DefaultPoints()
	var out []string
	for _, bb := range bbCodes {
		lead := bb.codes[0]
		if pt.points[lead] == def.points[lead] {
			continue
		}
		tenths := int(pt.points[lead]*10 + 0.5)
		if tenths > maxTenths || tenths < 0 {
			return nil, fmt.Errorf("%w: %s %v points", ErrFormatLimit,
				bb.prefix, pt.points[lead])
		}
		out = append(out, fmt.Sprintf("%s %d", bb.prefix, tenths))
	}

	return out, nil
}
