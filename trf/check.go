/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package trf

import (
	"github.com/mikeb26/swisspair/swiss"
)

// Violation is a FIDE-compliance finding for a prospective pairing.
type Violation int

const (
	// ViolationRepeatPairing flags two players who already met.
	ViolationRepeatPairing Violation = iota
	// ViolationColor flags two players who both hold an absolute preference
	// for the same color.
	ViolationColor
)

func (v Violation) String() string {
	switch v {
	case ViolationRepeatPairing:
		return "REPEAT_PAIRING"
	case ViolationColor:
		return "COLOR_VIOLATION"
	default:
		return "UNKNOWN"
	}
}

// CheckPairing inspects a prospective pairing of a and b against their
// prior history and returns every rule violation found.
func CheckPairing(a, b *swiss.Player) []Violation {
	var out []Violation

	for _, m := range a.Matches {
		if m.ParticipatedInPairing && !m.IsBye(a.ID) && m.OpponentID == b.ID {
			out = append(out, ViolationRepeatPairing)
			break
		}
	}

	a.UpdateColorPreferences()
	b.UpdateColorPreferences()
	if a.AbsoluteColorPreference() && b.AbsoluteColorPreference() &&
		a.ColorPreference != swiss.ColorNone &&
		a.ColorPreference == b.ColorPreference {
		out = append(out, ViolationColor)
	}

	return out
}

// DueColors applies the engine's color-assignment rule to a confirmed pair;
// exposed here so TRF consumers share one implementation with the pairing
// strategies.
func DueColors(a, b *swiss.Player) (white, black *swiss.Player) {
	return swiss.AssignColors(a, b)
}
