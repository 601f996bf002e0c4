/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package matching

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrBadVertex indicates a vertex index outside [0, n).
	ErrBadVertex = errors.New("matching: vertex index out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("matching: self loops are not allowed")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("matching: edge weights must be non-negative")

	// ErrNoPerfectMatching indicates the graph admits no perfect matching
	// reachable by the augmenting-path search.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching exists")

	// ErrNotComputed indicates Matching was read before ComputeMatching.
	ErrNotComputed = errors.New("matching: matching not yet computed")
)

// Unmatched is the partner value for a vertex without a partner.
const Unmatched = -1

// Solver holds the compatibility graph and the matching state for one
// computation. Vertices are dense indices in [0, n); absent edges are
// incompatible pairs.
type Solver struct {
	n int

	// weight[u][v] holds doubled edge weights so duals stay integral;
	// noEdge marks an absent edge.
	weight [][]int64

	match    []int
	computed bool

	// scratch state for the alternating-tree search
	label  []vertexLabel
	parent []int
}

const noEdge = int64(-1)

// NewSolver returns a solver over n vertices with no edges.
func NewSolver(n int) *Solver {
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := range w[i] {
			w[i][j] = noEdge
		}
	}
	match := make([]int, n)
	for i := range match {
		match[i] = Unmatched
	}

	return &Solver{n: n, weight: w, match: match}
}

// N returns the number of vertices.
func (s *Solver) N() int {
	return s.n
}

// SetEdgeWeight declares u and v compatible with the given non-negative
// weight. The edge is symmetric.
func (s *Solver) SetEdgeWeight(u, v int, w int64) error {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return ErrBadVertex
	}
	if u == v {
		return ErrSelfLoop
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	s.weight[u][v] = 2 * w
	s.weight[v][u] = 2 * w
	s.computed = false

	return nil
}

// Matching returns the partner of each vertex, or Unmatched. The slice is a
// copy.
func (s *Solver) Matching() ([]int, error) {
	if !s.computed {
		return nil, ErrNotComputed
	}
	out := make([]int, s.n)
	copy(out, s.match)

	return out, nil
}

// IsComplete reports whether every vertex has a partner.
func (s *Solver) IsComplete() bool {
	if !s.computed {
		return false
	}
	for _, m := range s.match {
		if m == Unmatched {
			return false
		}
	}

	return true
}
