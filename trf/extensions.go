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

// Extensions holds every extension line of a TRF document, parsed once into
// an immutable value before any player data is interpreted. All extensions
// are optional and additive to default behavior.
type Extensions struct {
	// TotalRounds is the XXR expected round count; 0 when absent.
	TotalRounds int

	// AbsentIDs are XXZ players unavailable for the round being paired.
	AbsentIDs []int

	// ForbiddenPairs are XXF id tuples that must not be paired.
	ForbiddenPairs [][2]int

	// Acceleration maps player id to the per-round bonus vector from XXA.
	Acceleration map[int][]float64

	// Remarks keeps XXC/XXB/XXV free-text lines verbatim, prefix included.
	Remarks []string

	// Points is the scoring table after XXS and BB overrides.
	Points PointTable
}

// xxaIDField is the player id of an XXA line; the 5-column acceleration
// fields follow it starting at column 9.
var xxaIDField = fieldSpec{name: "xxa id", off: 4, width: 4, rightAlign: true}

const (
	xxaVectorStart = 8
	xxaFieldWidth  = 5
)

func newExtensions() Extensions {
	return Extensions{
		Acceleration: make(map[int][]float64),
		Points:       DefaultPoints(),
	}
}

// parseExtensionLine folds one XX*/BB* line into e; reports whether the
// line was an extension line at all.
func (e *Extensions) parseExtensionLine(line string, lineNo int) (bool, error) {
	switch {
	case strings.HasPrefix(line, "XXR"):
		n, err := strconv.Atoi(strings.TrimSpace(line[3:]))
		if err != nil || n <= 0 {
			return true, parseErrf(lineNo, line, "bad XXR round count")
		}
		e.TotalRounds = n

	case strings.HasPrefix(line, "XXZ"):
		for _, tok := range strings.Fields(line)[1:] {
			id, err := strconv.Atoi(tok)
			if err != nil {
				return true, parseErrf(lineNo, line, "bad XXZ id %q", tok)
			}
			e.AbsentIDs = append(e.AbsentIDs, id)
		}

	case strings.HasPrefix(line, "XXF"):
		for _, tok := range strings.Fields(line)[1:] {
			dash := strings.IndexByte(tok, '-')
			if dash <= 0 {
				return true, parseErrf(lineNo, line, "bad XXF pair %q", tok)
			}
			a, errA := strconv.Atoi(tok[:dash])
			b, errB := strconv.Atoi(tok[dash+1:])
			if errA != nil || errB != nil {
				return true, parseErrf(lineNo, line, "bad XXF pair %q", tok)
			}
			e.ForbiddenPairs = append(e.ForbiddenPairs, [2]int{a, b})
		}

	case strings.HasPrefix(line, "XXA"):
		if err := e.parseXXA(line, lineNo); err != nil {
			return true, err
		}

	case strings.HasPrefix(line, "XXS"):
		if err := e.Points.parseXXS(line, lineNo); err != nil {
			return true, err
		}

	case strings.HasPrefix(line, "XXC"),
		strings.HasPrefix(line, "XXB"),
		strings.HasPrefix(line, "XXV"):
		e.Remarks = append(e.Remarks, line)

	case strings.HasPrefix(line, "BB"):
		return e.Points.parseBB(line, lineNo)

	default:
		return false, nil
	}

	return true, nil
}

// parseXXA reads the fixed-width acceleration vector: a 4-column player id
// then 5-column tenths fields starting at column 9.
func (e *Extensions) parseXXA(line string, lineNo int) error {
	if len(line) < xxaVectorStart+1 {
		return parseErrf(lineNo, line, "XXA line too short")
	}
	id, err := getFieldInt(line, xxaIDField, lineNo)
	if err != nil {
		return err
	}
	if id <= 0 {
		return parseErrf(lineNo, line, "bad XXA player id")
	}

	var vec []float64
	for off := xxaVectorStart; off < len(line); off += xxaFieldWidth {
		end := off + xxaFieldWidth
		if end > len(line) {
			end = len(line)
		}
		field := strings.TrimSpace(line[off:end])
		if field == "" {
			vec = append(vec, 0)
			continue
		}
		tenths, err := strconv.Atoi(field)
		if err != nil {
			return parseErrf(lineNo, line, "bad XXA field %q", field)
		}
		vec = append(vec, float64(tenths)/10)
	}
	e.Acceleration[id] = vec

	return nil
}

// formatXXA renders one player's acceleration line.
func formatXXA(id int, vec []float64) (string, error) {
	if id > maxID {
		return "", fmt.Errorf("%w: XXA id %d", ErrFormatLimit, id)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "XXA %4d", id)
	for _, bonus := range vec {
		tenths := int(bonus*10 + 0.5)
		if tenths > maxTenths || tenths < 0 {
			return "", fmt.Errorf("%w: XXA bonus %v for id %d",
				ErrFormatLimit, bonus, id)
		}
		fmt.Fprintf(&sb, "%5d", tenths)
	}

	return sb.String(), nil
}

// nonDefault reports whether the acceleration vector carries any bonus.
func nonDefaultAccel(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return true
		}
	}

	return false
}
