/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"sort"

	"github.com/mikeb26/swisspair/matching"
)

// DutchStrategy pairs a round per the FIDE C.04.3 Dutch rules: players are
// sorted by accelerated score, partitioned into score groups, and each
// group is paired top half against bottom half by rating. Odd groups send
// their bye candidate down a group; the lowest group's candidate receives
// the pairing-allocated bye.
type DutchStrategy struct{}

func (s *DutchStrategy) Name() string {
	return "dutch"
}

func (s *DutchStrategy) Pair(t *Tournament) ([]Pairing, error) {
	active, intentional, err := activePlayers(t)
	if err != nil {
		return nil, err
	}
	refreshDerived(active)
	refreshDerived(intentional)

	scores, err := acceleratedScores(t, active)
	if err != nil {
		return nil, err
	}
	sortByScore(active, scores)

	if err := certifyFeasible(t, active); err != nil {
		return nil, err
	}

	pairings, err := pairByGroups(t, scoreGroups(active, scores), true)
	if err != nil {
		return nil, err
	}

	for _, p := range intentional {
		pairings = append(pairings, byePairing(p, ByeHalfPoint))
	}

	return pairings, nil
}

// pairByGroups walks score groups from highest to lowest. An odd group's
// bye candidate floats into the next group; the candidate of the lowest
// group receives the pairing-allocated bye. byRating selects whether group
// halves are formed by rating (Dutch) or by the incoming ordering
// (Burstein).
func pairByGroups(t *Tournament, groups [][]*Player, byRating bool) ([]Pairing, error) {
	var pairings []Pairing
	var floater *Player
	round := t.NextRound()

	for gi, group := range groups {
		if floater != nil {
			group = append(append([]*Player{}, group...), floater)
			floater = nil
		}
		if len(group)%2 == 1 {
			candidate := selectByeCandidate(group, round)
			group = removePlayer(group, candidate)
			if gi < len(groups)-1 {
				floater = candidate
			} else {
				pairings = append(pairings, byePairing(candidate, allocatedByeType(candidate)))
			}
		}

		groupPairings, err := pairHalves(t, group, byRating)
		if err != nil {
			return nil, err
		}
		pairings = append(pairings, groupPairings...)
	}
	if floater != nil {
		pairings = append(pairings, byePairing(floater, allocatedByeType(floater)))
	}

	return pairings, nil
}

// pairHalves pairs an even-sized score group: split into a top half and a
// bottom half and pair index i of the top half against index i of the
// bottom half, falling back to a same-half swap search. When the greedy
// walk strands anyone the whole group is re-paired on the matching solver;
// byes are granted only if the group itself admits no full pairing.
func pairHalves(t *Tournament, group []*Player, byRating bool) ([]Pairing, error) {
	if len(group) < 2 {
		if len(group) == 1 {
			return []Pairing{byePairing(group[0], allocatedByeType(group[0]))}, nil
		}
		return nil, nil
	}

	sorted := make([]*Player, len(group))
	copy(sorted, group)
	if byRating {
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Rating != sorted[j].Rating {
				return sorted[i].Rating > sorted[j].Rating
			}
			return sorted[i].RankIndex < sorted[j].RankIndex
		})
	}

	half := len(sorted) / 2
	top := sorted[:half]
	bottom := sorted[half:]

	pairings, stranded := greedyHalves(t, top, bottom)
	if !stranded {
		return pairings, nil
	}

	solved, err := solveGroup(t, sorted, half)
	if err == nil {
		return solved, nil
	}
	if !errors.Is(err, matching.ErrNoPerfectMatching) {
		return nil, err
	}

	// the group itself admits no full pairing; keep the greedy result
	// with its byes
	return pairings, nil
}

// greedyHalves runs the aligned-slot walk with the swap search and the
// leftover sweep. Anyone it cannot place takes a bye; stranded reports
// whether that happened.
func greedyHalves(t *Tournament, top, bottom []*Player) (pairings []Pairing, stranded bool) {
	used := make([]bool, len(top)+len(bottom))

	for i, tp := range top {
		if used[i] {
			continue
		}
		opp := findPartner(t, tp, i, top, bottom, used)
		if opp < 0 {
			used[i] = true
			pairings = append(pairings, byePairing(tp, allocatedByeType(tp)))
			stranded = true
			continue
		}

		used[i] = true
		used[opp] = true
		white, black := AssignColors(tp, playerAt(top, bottom, opp))
		pairings = append(pairings, Pairing{
			WhiteID: white.ID,
			BlackID: black.ID,
		})
	}

	// a swap inside the top half strands bottom-half players; sweep them up
	var leftover []int
	for idx, u := range used {
		if !u {
			leftover = append(leftover, idx)
		}
	}
	for i := 0; i < len(leftover); i++ {
		a := leftover[i]
		if used[a] {
			continue
		}
		pa := playerAt(top, bottom, a)
		matched := false
		for j := i + 1; j < len(leftover); j++ {
			b := leftover[j]
			if used[b] {
				continue
			}
			pb := playerAt(top, bottom, b)
			if !compatible(t, pa, pb) {
				continue
			}
			used[a] = true
			used[b] = true
			white, black := AssignColors(pa, pb)
			pairings = append(pairings, Pairing{
				WhiteID: white.ID,
				BlackID: black.ID,
			})
			matched = true
			break
		}
		if !matched {
			used[a] = true
			pairings = append(pairings, byePairing(pa, allocatedByeType(pa)))
			stranded = true
		}
	}

	return pairings, stranded
}

// solveGroup pairs an even group on the matching solver, preferring
// cross-half pairs among the perfect matchings.
func solveGroup(t *Tournament, sorted []*Player, half int) ([]Pairing, error) {
	s := matching.NewSolver(len(sorted))
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if !compatible(t, sorted[i], sorted[j]) {
				continue
			}
			w := int64(1)
			if (i < half) != (j < half) {
				w = 2
			}
			if err := s.SetEdgeWeight(i, j, w); err != nil {
				return nil, err
			}
		}
	}
	if err := s.ComputeMatching(); err != nil {
		return nil, err
	}
	if !s.IsComplete() {
		return nil, matching.ErrNoPerfectMatching
	}

	partners, err := s.Matching()
	if err != nil {
		return nil, err
	}
	var pairings []Pairing
	for i, j := range partners {
		if j <= i {
			continue
		}
		white, black := AssignColors(sorted[i], sorted[j])
		pairings = append(pairings, Pairing{
			WhiteID: white.ID,
			BlackID: black.ID,
		})
	}

	return pairings, nil
}

// findPartner looks for tp's opponent: the aligned bottom-half slot first,
// then the rest of the bottom half, then unused top-half players. Returns
// an index into the combined top+bottom ordering, or -1.
func findPartner(t *Tournament, tp *Player, ti int,
	top, bottom []*Player, used []bool) int {

	half := len(top)

	// aligned slot, then remaining bottom-half candidates
	order := make([]int, 0, len(bottom))
	if ti < len(bottom) {
		order = append(order, ti)
	}
	for j := range bottom {
		if j != ti {
			order = append(order, j)
		}
	}
	for _, j := range order {
		idx := half + j
		if !used[idx] && compatible(t, tp, bottom[j]) {
			return idx
		}
	}

	// swap search within the top half
	for j := ti + 1; j < half; j++ {
		if !used[j] && compatible(t, tp, top[j]) {
			return j
		}
	}

	return -1
}

func playerAt(top, bottom []*Player, idx int) *Player {
	if idx < len(top) {
		return top[idx]
	}

	return bottom[idx-len(top)]
}
