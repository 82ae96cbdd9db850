package coloring

import (
	"fmt"
	"sort"
)

// Adjacency is an immutable, symmetric, irreflexive relation over a
// fixed set of region identifiers. It records which pairs of regions
// touch, and exposes each region's neighbor set.
//
// The declared region order is preserved and drives deterministic
// search: the solver visits regions and reports neighbors relative to
// input order, never map iteration order.
type Adjacency struct {
	regions []string
	index   map[string]int
	nbrs    [][]int // per region, neighbor indices in ascending order
}

// NewAdjacency builds the relation by applying touches to every
// unordered pair of regions. Self-pairs are excluded regardless of what
// the predicate returns. Construction is O(N²) predicate calls, which
// matches the cost of evaluating spatial touch relationships for the
// region counts this package targets; callers with very large N should
// pre-filter with a spatial index and use NewAdjacencyFromEdges.
//
// Duplicate region identifiers and a nil predicate are rejected with
// errors matching ErrInvalidInput.
func NewAdjacency(regions []string, touches func(a, b string) bool) (*Adjacency, error) {
	if touches == nil {
		return nil, fmt.Errorf("%w: nil touches predicate", ErrInvalidInput)
	}
	adj, err := newAdjacency(regions)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(adj.regions); i++ {
		for j := i + 1; j < len(adj.regions); j++ {
			if touches(adj.regions[i], adj.regions[j]) {
				adj.nbrs[i] = append(adj.nbrs[i], j)
				adj.nbrs[j] = append(adj.nbrs[j], i)
			}
		}
	}
	adj.normalize()
	return adj, nil
}

// NewAdjacencyFromEdges builds the relation from a precomputed edge
// list. Each edge is an unordered pair; the symmetric closure is
// applied, duplicate edges collapse, and edges are rejected when they
// name an undeclared region or connect a region to itself.
func NewAdjacencyFromEdges(regions []string, edges [][2]string) (*Adjacency, error) {
	adj, err := newAdjacency(regions)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		i, ok := adj.index[e[0]]
		if !ok {
			return nil, &UnknownRegionError{Region: e[0]}
		}
		j, ok := adj.index[e[1]]
		if !ok {
			return nil, &UnknownRegionError{Region: e[1]}
		}
		if i == j {
			return nil, fmt.Errorf("%w: region %q adjacent to itself", ErrInvalidInput, e[0])
		}
		adj.nbrs[i] = append(adj.nbrs[i], j)
		adj.nbrs[j] = append(adj.nbrs[j], i)
	}
	adj.normalize()
	return adj, nil
}

// newAdjacency validates the region set and allocates empty neighbor
// lists.
func newAdjacency(regions []string) (*Adjacency, error) {
	index := make(map[string]int, len(regions))
	for i, r := range regions {
		if _, dup := index[r]; dup {
			return nil, &DuplicateRegionError{Region: r}
		}
		index[r] = i
	}
	owned := make([]string, len(regions))
	copy(owned, regions)
	return &Adjacency{
		regions: owned,
		index:   index,
		nbrs:    make([][]int, len(regions)),
	}, nil
}

// normalize sorts neighbor lists and removes duplicate entries so that
// lookups and edge enumeration are deterministic.
func (a *Adjacency) normalize() {
	for i, ns := range a.nbrs {
		sort.Ints(ns)
		out := ns[:0]
		for j, n := range ns {
			if j > 0 && n == ns[j-1] {
				continue
			}
			out = append(out, n)
		}
		a.nbrs[i] = out
	}
}

// Len returns the number of declared regions.
func (a *Adjacency) Len() int { return len(a.regions) }

// Regions returns the declared region identifiers in input order.
func (a *Adjacency) Regions() []string {
	out := make([]string, len(a.regions))
	copy(out, a.regions)
	return out
}

// Neighbors returns the regions adjacent to the given one, ordered by
// their position in the declared region set. Returns an error matching
// ErrUnknownRegion for identifiers outside the declared set.
func (a *Adjacency) Neighbors(region string) ([]string, error) {
	i, ok := a.index[region]
	if !ok {
		return nil, &UnknownRegionError{Region: region}
	}
	out := make([]string, len(a.nbrs[i]))
	for j, n := range a.nbrs[i] {
		out[j] = a.regions[n]
	}
	return out, nil
}

// Degree returns the number of regions adjacent to the given one.
func (a *Adjacency) Degree(region string) (int, error) {
	i, ok := a.index[region]
	if !ok {
		return 0, &UnknownRegionError{Region: region}
	}
	return len(a.nbrs[i]), nil
}

// Edges enumerates every adjacent pair exactly once, ordered by the
// declared positions of the endpoints, with the lower-indexed region
// first in each pair.
func (a *Adjacency) Edges() [][2]string {
	var out [][2]string
	for i, ns := range a.nbrs {
		for _, j := range ns {
			if j > i {
				out = append(out, [2]string{a.regions[i], a.regions[j]})
			}
		}
	}
	return out
}
