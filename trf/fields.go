/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package trf

import (
	"fmt"
	"strconv"
	"strings"
)

// The player line is a fixed-column record. Each field is declared once
// here with its offset and width so parsing and formatting share a single
// table and the bit-exact contract stays mechanically checkable.
type fieldSpec struct {
	name       string
	off, width int
	rightAlign bool
}

var (
	fieldID     = fieldSpec{name: "id", off: 0, width: 4, rightAlign: true}
	fieldName   = fieldSpec{name: "name", off: 4, width: 10}
	fieldFideID = fieldSpec{name: "fide id", off: 14, width: 10, rightAlign: true}
	fieldTitle  = fieldSpec{name: "title", off: 24, width: 4}
	fieldIDRep  = fieldSpec{name: "id2", off: 28, width: 4, rightAlign: true}
	fieldRating = fieldSpec{name: "rating", off: 32, width: 19, rightAlign: true}
	fieldGutter = fieldSpec{name: "gutter", off: 51, width: 28}
)

// gamesStart is the column where the repeating games blocks begin, directly
// after the gutter.
var gamesStart = fieldGutter.off + fieldGutter.width

// One games block per round, gamesBlockWidth columns each: two spaces, the
// opponent id, the color, and the result code.
const gamesBlockWidth = 10

var (
	blockOpponent = fieldSpec{name: "opponent", off: 2, width: 4, rightAlign: true}
	blockColor    = fieldSpec{name: "color", off: 7, width: 1}
	blockResult   = fieldSpec{name: "result", off: 9, width: 1}
)

// playerLineMin is the shortest legal player line: all fixed fields, no
// games blocks.
var playerLineMin = gamesStart

// maxID is the largest id or rating the 4-column fields can carry.
const maxID = 9999

// maxTenths is the largest point value, in tenths, the 3-column score
// fields can carry (99.9 points).
const maxTenths = 999

func getField(line string, f fieldSpec) string {
	if f.off >= len(line) {
		return ""
	}
	end := f.off + f.width
	if end > len(line) {
		end = len(line)
	}

	return strings.TrimSpace(line[f.off:end])
}

func getFieldInt(line string, f fieldSpec, lineNo int) (int, error) {
	s := getField(line, f)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseErrf(lineNo, line, "bad %s field %q", f.name, s)
	}

	return v, nil
}

func putField(buf []byte, f fieldSpec, s string) error {
	if len(s) > f.width {
		return fmt.Errorf("%w: %s %q wider than %d columns",
			ErrFormatLimit, f.name, s, f.width)
	}
	pad := f.width - len(s)
	if f.rightAlign {
		copy(buf[f.off+pad:], s)
	} else {
		copy(buf[f.off:], s)
	}

	return nil
}

func putFieldInt(buf []byte, f fieldSpec, v int) error {
	return putField(buf, f, strconv.Itoa(v))
}

// blankLine returns a space-filled buffer of the given width.
func blankLine(width int) []byte {
	buf := make([]byte, width)
	for i := range buf {
		buf[i] = ' '
	}

	return buf
}
