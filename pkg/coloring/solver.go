package coloring

import (
	"context"
	"fmt"
)

// Assignment maps every region of a coloring run to a color in [0, K).
// Assignments returned by Solve are total: each declared region appears
// exactly once. Ownership transfers to the caller, which typically
// overlays the colors onto its own per-region records.
type Assignment map[string]int

// Color returns the color assigned to region, and whether the region is
// present in the assignment.
func (m Assignment) Color(region string) (int, bool) {
	c, ok := m[region]
	return c, ok
}

// Validate checks the assignment against an adjacency relation and
// palette size: every declared region must carry exactly one color in
// [0, k), and no adjacent pair may share a color. Solve performs this
// check before returning, so callers only need it when an assignment
// crosses a trust boundary.
func (m Assignment) Validate(adj *Adjacency, k int) error {
	if adj == nil {
		return fmt.Errorf("%w: nil adjacency", ErrInvalidInput)
	}
	if len(m) != adj.Len() {
		return fmt.Errorf("%w: assignment covers %d of %d regions", ErrInvalidInput, len(m), adj.Len())
	}
	for i, r := range adj.regions {
		c, ok := m[r]
		if !ok {
			return fmt.Errorf("%w: region %q has no color", ErrInvalidInput, r)
		}
		if c < 0 || c >= k {
			return fmt.Errorf("%w: region %q color %d outside [0,%d)", ErrInvalidInput, r, c, k)
		}
		for _, j := range adj.nbrs[i] {
			if j > i && m[adj.regions[j]] == c {
				return fmt.Errorf("%w: adjacent regions %q and %q share color %d",
					ErrInvalidInput, r, adj.regions[j], c)
			}
		}
	}
	return nil
}

// Solve finds a proper coloring of the adjacency relation with palette
// [0, k): every region receives one color and no adjacent pair shares
// one.
//
// The search is backtracking with forward checking: each trial
// assignment immediately prunes the color from unassigned neighbors'
// candidate domains, and a wiped-out domain fails the trial before any
// recursion. Regions are chosen by smallest remaining domain with
// lowest-declared-index tie-break, and colors are tried in ascending
// order, so identical inputs always produce identical assignments.
//
// Returns ErrInfeasible when no coloring exists for this k — an
// expected outcome, distinct from the ErrInvalidInput-classed errors
// raised for k < 1 or a nil adjacency. A cancelled context surfaces
// ctx.Err().
func Solve(ctx context.Context, adj *Adjacency, k int) (Assignment, error) {
	if adj == nil {
		return nil, fmt.Errorf("%w: nil adjacency", ErrInvalidInput)
	}
	if k < 1 {
		return nil, &PaletteSizeError{K: k}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if adj.Len() == 0 {
		return Assignment{}, nil
	}

	s := newSearch(adj, k)
	found, err := s.run(ctx, -1, -1)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrInfeasible
	}
	out := s.assignment()
	if err := out.Validate(adj, k); err != nil {
		// Unreachable unless the search itself is broken.
		return nil, err
	}
	return out, nil
}

// domainChange records one pruned domain for the undo trail.
type domainChange struct {
	region int
	prev   paletteSet
}

// search owns all mutable state of one solve call: candidate domains,
// the partial assignment, and the undo trail. Nothing is shared across
// invocations.
type search struct {
	adj        *Adjacency
	k          int
	domains    []paletteSet
	colors     []int // -1 while unassigned
	unassigned int
	trail      []domainChange
}

func newSearch(adj *Adjacency, k int) *search {
	s := &search{
		adj:        adj,
		k:          k,
		domains:    make([]paletteSet, adj.Len()),
		colors:     make([]int, adj.Len()),
		unassigned: adj.Len(),
		trail:      make([]domainChange, 0, 64),
	}
	full := fullPalette(k)
	for i := range s.domains {
		s.domains[i] = full
		s.colors[i] = -1
	}
	return s
}

// run executes the backtracking loop. When seedRegion >= 0 the search
// starts from a forced trial of seedColor on that region, which is how
// SolveParallel splits the top-level branches. Returns whether a
// complete assignment was found.
func (s *search) run(ctx context.Context, seedRegion, seedColor int) (bool, error) {
	type frame struct {
		snap    int // trail length before any trial at this depth
		region  int
		valIdx  int
		choices []int
	}

	var stack []frame
	if seedRegion >= 0 {
		stack = append(stack, frame{snap: 0, region: seedRegion, choices: []int{seedColor}})
	} else {
		first := s.selectRegion()
		stack = append(stack, frame{snap: 0, region: first, choices: s.domains[first].values()})
	}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]

		// Reset whatever the previous trial at this depth did, including
		// its own assignment, so every trial starts from the frame's
		// snapshot state.
		s.undo(f.snap)
		if s.colors[f.region] >= 0 {
			s.colors[f.region] = -1
			s.unassigned++
		}

		if f.valIdx >= len(f.choices) {
			stack = stack[:len(stack)-1]
			continue
		}

		c := f.choices[f.valIdx]
		f.valIdx++

		if !s.assign(f.region, c) {
			continue
		}
		if s.unassigned == 0 {
			return true, nil
		}

		next := s.selectRegion()
		stack = append(stack, frame{snap: len(s.trail), region: next, choices: s.domains[next].values()})
	}
	return false, nil
}

// assign gives region r color c and forward-checks: c is pruned from
// every unassigned neighbor's domain. Returns false when a neighbor's
// domain wipes out; the caller undoes via the trail.
func (s *search) assign(r, c int) bool {
	s.colors[r] = c
	s.unassigned--
	for _, nb := range s.adj.nbrs[r] {
		if s.colors[nb] >= 0 {
			// Already assigned neighbors are consistent: their color was
			// pruned from r's domain when they were assigned.
			continue
		}
		d := s.domains[nb]
		if !d.has(c) {
			continue
		}
		s.trail = append(s.trail, domainChange{region: nb, prev: d})
		nd := d.remove(c)
		s.domains[nb] = nd
		if nd.count() == 0 {
			return false
		}
	}
	return true
}

// undo rewinds the trail to the given length, restoring pruned domains.
func (s *search) undo(to int) {
	for i := len(s.trail) - 1; i >= to; i-- {
		ch := s.trail[i]
		s.domains[ch.region] = ch.prev
	}
	s.trail = s.trail[:to]
}

// selectRegion picks the next region to assign: smallest remaining
// domain, lowest declared index on ties. Must only be called while at
// least one region is unassigned.
func (s *search) selectRegion() int {
	best, bestSize := -1, 0
	for i := range s.colors {
		if s.colors[i] >= 0 {
			continue
		}
		size := s.domains[i].count()
		if best == -1 || size < bestSize {
			best, bestSize = i, size
		}
	}
	return best
}

// assignment materializes the complete coloring.
func (s *search) assignment() Assignment {
	out := make(Assignment, len(s.colors))
	for i, c := range s.colors {
		out[s.adj.regions[i]] = c
	}
	return out
}
