// Package coloring assigns colors to map regions so that no two adjacent
// regions share a color.
//
// The package solves proper vertex coloring over a caller-supplied
// adjacency relation. It is the compute core of a boundary-data pipeline:
// the surrounding tooling reads boundary files, decides which regions
// touch, and writes the display format; this package only answers the
// question "which color does each region get, given K colors?".
//
// Two building blocks:
//
//   - Adjacency: an immutable, symmetric, irreflexive relation over a
//     fixed set of region identifiers. Built once, either from a pairwise
//     touches predicate or from a precomputed edge list.
//   - Solve / SolveParallel: backtracking search with forward checking
//     over bitset domains. Returns a total Assignment from region to a
//     color in [0, K), or ErrInfeasible when no such assignment exists.
//
// ErrInfeasible is an expected outcome, not a defect: K may simply be
// smaller than the chromatic number of the region graph. Callers branch
// on it with errors.Is and degrade (skip coloring, raise K). Malformed
// input — duplicate identifiers, K < 1, edges naming undeclared
// regions — is rejected before search with errors matching
// ErrInvalidInput, and is never conflated with infeasibility.
//
// Solve is deterministic: identical inputs produce identical
// assignments, including through SolveParallel, which always prefers the
// lowest-indexed successful branch.
//
// Typical usage:
//
//	adj, err := coloring.NewAdjacencyFromEdges(regions, edges)
//	if err != nil {
//		return err
//	}
//	colors, err := coloring.Solve(ctx, adj, 5)
//	if errors.Is(err, coloring.ErrInfeasible) {
//		// no 5-coloring exists; leave the map uncolored
//	}
package coloring
