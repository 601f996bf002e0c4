/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package matching implements a weighted maximum-matching solver over an
// undirected compatibility graph, used to certify that a full round pairing
// is achievable before a strategy commits to one.
//
// The solver is a primal-dual augmenting-path search. Each vertex carries a
// dual value; an edge is tight when the sum of its endpoints' duals equals
// its weight. A BFS over tight edges seeks an augmenting path from every
// unmatched vertex; when none exists the duals are adjusted by the minimum
// slack among frontier edges and the search retries. The search fails with
// ErrNoPerfectMatching when the graph admits no perfect matching, which for
// a bye-augmented pairing graph means the round's constraints are jointly
// unsatisfiable.
//
// Complexity: O(V³) time, O(V²) space for the weight matrix.
//
// Example:
//
//	s := matching.NewSolver(4)
//	s.SetEdgeWeight(0, 1, 1)
//	s.SetEdgeWeight(2, 3, 1)
//	if err := s.ComputeMatching(); err != nil {
//	    return err
//	}
//	partners := s.Matching() // partners[0] == 1, partners[2] == 3
package matching
