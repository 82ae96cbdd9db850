package coloring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/mapcolor/pkg/coloring"
)

func TestNewAdjacencyPairwise(t *testing.T) {
	var calls int
	touches := func(a, b string) bool {
		calls++
		require.NotEqual(t, a, b, "predicate must never see a self-pair")
		return a == "A" || b == "A"
	}

	adj, err := coloring.NewAdjacency([]string{"A", "B", "C", "D"}, touches)
	require.NoError(t, err)
	assert.Equal(t, 6, calls, "one predicate call per unordered pair")

	ns, err := adj.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, ns)

	ns, err = adj.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ns)
}

func TestNewAdjacencySelfPairsExcluded(t *testing.T) {
	// Even an always-true predicate must not produce loops.
	adj, err := coloring.NewAdjacency([]string{"X", "Y"}, func(a, b string) bool { return true })
	require.NoError(t, err)

	ns, err := adj.Neighbors("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, ns)
}

func TestNewAdjacencyNilPredicate(t *testing.T) {
	_, err := coloring.NewAdjacency([]string{"A"}, nil)
	require.ErrorIs(t, err, coloring.ErrInvalidInput)
}

func TestDuplicateRegions(t *testing.T) {
	_, err := coloring.NewAdjacency([]string{"A", "B", "A"}, func(a, b string) bool { return false })
	require.ErrorIs(t, err, coloring.ErrInvalidInput)

	var dup *coloring.DuplicateRegionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.Region)

	_, err = coloring.NewAdjacencyFromEdges([]string{"A", "A"}, nil)
	require.ErrorIs(t, err, coloring.ErrInvalidInput)
}

func TestFromEdgesValidation(t *testing.T) {
	regions := []string{"A", "B"}

	_, err := coloring.NewAdjacencyFromEdges(regions, [][2]string{{"A", "C"}})
	require.ErrorIs(t, err, coloring.ErrUnknownRegion)
	require.ErrorIs(t, err, coloring.ErrInvalidInput)

	_, err = coloring.NewAdjacencyFromEdges(regions, [][2]string{{"B", "B"}})
	require.ErrorIs(t, err, coloring.ErrInvalidInput)
	require.False(t, errors.Is(err, coloring.ErrUnknownRegion))
}

func TestFromEdgesSymmetricAndDeduplicated(t *testing.T) {
	adj, err := coloring.NewAdjacencyFromEdges(
		[]string{"A", "B", "C"},
		[][2]string{{"B", "A"}, {"A", "B"}, {"B", "C"}},
	)
	require.NoError(t, err)

	ns, err := adj.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ns)

	ns, err = adj.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ns, "neighbors follow declared region order")

	deg, err := adj.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, adj.Edges())
}

func TestNeighborsUnknownRegion(t *testing.T) {
	adj, err := coloring.NewAdjacencyFromEdges([]string{"A"}, nil)
	require.NoError(t, err)

	_, err = adj.Neighbors("Z")
	require.ErrorIs(t, err, coloring.ErrUnknownRegion)

	var unknown *coloring.UnknownRegionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Z", unknown.Region)

	_, err = adj.Degree("Z")
	require.ErrorIs(t, err, coloring.ErrUnknownRegion)
}

func TestAccessorsCopy(t *testing.T) {
	adj, err := coloring.NewAdjacencyFromEdges([]string{"A", "B"}, [][2]string{{"A", "B"}})
	require.NoError(t, err)

	rs := adj.Regions()
	rs[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, adj.Regions(), "Regions must return a copy")
	assert.Equal(t, 2, adj.Len())
}
