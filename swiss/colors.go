/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// colorCounts tallies the games p actually played with each color and the
// consecutive same-color streak at the end of the history.
func (p *Player) colorCounts() (whites, blacks, streak int, streakColor, lastColor Color) {
	for _, m := range p.Matches {
		if !m.GameWasPlayed || m.Color == ColorNone {
			continue
		}
		switch m.Color {
		case ColorWhite:
			whites++
		case ColorBlack:
			blacks++
		}
		if m.Color == streakColor {
			streak++
		} else {
			streakColor = m.Color
			streak = 1
		}
		lastColor = m.Color
	}

	return whites, blacks, streak, streakColor, lastColor
}

// UpdateColorPreferences scans the match history and derives ColorImbalance,
// RepeatedColorStreak, and ColorPreference per the FIDE rule ordering:
// an imbalance greater than one demands the corrective color; a two-game
// same-color streak demands alternation; an imbalance of exactly one gets
// the corrective color; otherwise alternate from the last color played.
func (p *Player) UpdateColorPreferences() {
	whites, blacks, streak, streakColor, lastColor := p.colorCounts()

	imbalance := whites - blacks
	if imbalance < 0 {
		p.ColorImbalance = -imbalance
	} else {
		p.ColorImbalance = imbalance
	}
	if streak >= 2 {
		p.RepeatedColorStreak = streak
	} else {
		p.RepeatedColorStreak = 0
	}

	corrective := ColorNone
	if imbalance > 0 {
		corrective = ColorBlack
	} else if imbalance < 0 {
		corrective = ColorWhite
	}

	switch {
	case p.ColorImbalance > 1:
		p.ColorPreference = corrective
	case streak >= 2:
		p.ColorPreference = streakColor.Opposite()
	case p.ColorImbalance == 1:
		p.ColorPreference = corrective
	case lastColor != ColorNone:
		p.ColorPreference = lastColor.Opposite()
	default:
		p.ColorPreference = ColorNone
	}
}

// AbsoluteColorPreference reports whether p's color next round is
// non-negotiable: an imbalance greater than one, or a two-game same-color
// streak. Absolute preferences may still be overridden in the final round
// and for accelerated top-score groups.
func (p *Player) AbsoluteColorPreference() bool {
	return p.ColorImbalance > 1 || p.RepeatedColorStreak >= 2
}

// signedColorBalance is whites minus blacks over played games.
func (p *Player) signedColorBalance() int {
	whites, blacks, _, _, _ := p.colorCounts()
	return whites - blacks
}

// wouldExtendStreak reports whether giving p color c makes a third (or
// longer) consecutive game with the same color.
func (p *Player) wouldExtendStreak(c Color) bool {
	_, _, streak, streakColor, _ := p.colorCounts()
	return streak >= 2 && streakColor == c
}

// AssignColors decides which of a confirmed pair plays white:
// the player with the more negative color balance (fewer whites) gets
// white; on a tie, avoid a third consecutive same color for either player;
// on a further tie, the higher-ranked player (lower rank index) receives
// the color they are due; finally the lower id gets white.
func AssignColors(a, b *Player) (white, black *Player) {
	balA := a.signedColorBalance()
	balB := b.signedColorBalance()
	if balA < balB {
		return a, b
	}
	if balB < balA {
		return b, a
	}

	if a.wouldExtendStreak(ColorWhite) && !b.wouldExtendStreak(ColorWhite) {
		return b, a
	}
	if b.wouldExtendStreak(ColorWhite) && !a.wouldExtendStreak(ColorWhite) {
		return a, b
	}
	if a.wouldExtendStreak(ColorBlack) && !b.wouldExtendStreak(ColorBlack) {
		return a, b
	}
	if b.wouldExtendStreak(ColorBlack) && !a.wouldExtendStreak(ColorBlack) {
		return b, a
	}

	due := a
	other := b
	if b.RankIndex < a.RankIndex {
		due = b
		other = a
	}
	switch due.ColorPreference {
	case ColorWhite:
		return due, other
	case ColorBlack:
		return other, due
	}

	if a.ID <= b.ID {
		return a, b
	}

	return b, a
}
