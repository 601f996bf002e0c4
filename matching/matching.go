/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package matching

const infSlack = int64(1) << 62

// ComputeMatching runs the primal-dual augmenting-path search and produces
// a perfect matching maximizing total edge weight, or ErrNoPerfectMatching
// when no perfect matching is reachable.
func (s *Solver) ComputeMatching() error {
	if s.n == 0 {
		s.computed = true
		return nil
	}
	if s.n%2 == 1 {
		return ErrNoPerfectMatching
	}

	// dual feasibility: dual[u]+dual[v] >= weight[u][v] for every edge
	dual := make([]int64, s.n)
	var maxW int64
	for u := 0; u < s.n; u++ {
		for v := 0; v < s.n; v++ {
			if s.weight[u][v] > maxW {
				maxW = s.weight[u][v]
			}
		}
	}
	for v := range dual {
		dual[v] = maxW / 2
	}

	for i := range s.match {
		s.match[i] = Unmatched
	}

	for root := 0; root < s.n; root++ {
		if s.match[root] != Unmatched {
			continue
		}
		if err := s.augmentFrom(root, dual); err != nil {
			return err
		}
	}
	s.computed = true

	return nil
}

// augmentFrom grows an alternating tree of tight edges from root until it
// finds an augmenting path, adjusting duals whenever the tree is stuck. The
// tree gains a vertex per adjustment, so the loop is bounded by n rounds.
func (s *Solver) augmentFrom(root int, dual []int64) error {
	for range s.match {
		if s.bfsTight(root, dual) {
			return nil
		}

		delta := s.minFrontierSlack(dual)
		if delta >= infSlack {
			return ErrNoPerfectMatching
		}
		for v := 0; v < s.n; v++ {
			switch s.label[v] {
			case labelEven:
				dual[v] -= delta
			case labelOdd:
				dual[v] += delta
			}
		}
	}

	return ErrNoPerfectMatching
}

type vertexLabel int8

const (
	labelFree vertexLabel = iota
	labelEven
	labelOdd
)

// bfsTight searches for an augmenting path from root over tight edges only.
// On success the matching is flipped along the path and true is returned;
// otherwise the even/odd labels of the partial tree are left for the dual
// adjustment step.
func (s *Solver) bfsTight(root int, dual []int64) bool {
	if s.label == nil || len(s.label) != s.n {
		s.label = make([]vertexLabel, s.n)
		s.parent = make([]int, s.n)
	}
	for i := 0; i < s.n; i++ {
		s.label[i] = labelFree
		s.parent[i] = Unmatched
	}

	queue := make([]int, 0, s.n)
	s.label[root] = labelEven
	queue = append(queue, root)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for v := 0; v < s.n; v++ {
			w := s.weight[u][v]
			if w == noEdge || s.label[v] != labelFree {
				continue
			}
			if dual[u]+dual[v] != w {
				continue // not tight
			}

			if s.match[v] == Unmatched {
				// augmenting path found: root ... u - v
				s.flip(u, v)
				return true
			}

			s.label[v] = labelOdd
			s.parent[v] = u
			partner := s.match[v]
			s.label[partner] = labelEven
			s.parent[partner] = v
			queue = append(queue, partner)
		}
	}

	return false
}

// flip rematches along the alternating path ending with tree vertex u and
// free vertex v.
func (s *Solver) flip(u, v int) {
	for u != Unmatched {
		prevMatch := s.match[u]
		s.match[u] = v
		s.match[v] = u

		if prevMatch == Unmatched {
			// u was the root
			return
		}
		// prevMatch is an odd vertex; continue above it
		v = prevMatch
		u = s.parent[prevMatch]
	}
}

// minFrontierSlack returns the minimum slack among edges from an even tree
// vertex to a vertex outside the tree.
func (s *Solver) minFrontierSlack(dual []int64) int64 {
	min := infSlack
	for u := 0; u < s.n; u++ {
		if s.label[u] != labelEven {
			continue
		}
		for v := 0; v < s.n; v++ {
			if s.weight[u][v] == noEdge || s.label[v] != labelFree {
				continue
			}
			slack := dual[u] + dual[v] - s.weight[u][v]
			if slack < min {
				min = slack
			}
		}
	}

	return min
}
