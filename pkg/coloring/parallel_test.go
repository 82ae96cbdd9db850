package coloring_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/mapcolor/pkg/coloring"
)

func TestSolveParallelMatchesSequential(t *testing.T) {
	cases := []struct {
		name string
		adj  *coloring.Adjacency
		k    int
	}{
		{"four-cycle", mustAdjacency(t,
			[]string{"A", "B", "C", "D"},
			[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}), 2},
		{"triangle", triangle(t), 3},
		{"petersen", petersen(t), 3},
		{"petersen-loose", petersen(t), 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := coloring.Solve(context.Background(), tc.adj, tc.k)
			require.NoError(t, err)

			for _, workers := range []int{0, 1, 2, 8} {
				got, err := coloring.SolveParallel(context.Background(), tc.adj, tc.k, workers)
				require.NoError(t, err)
				assert.Equal(t, want, got, "workers=%d must match sequential result", workers)
			}
		})
	}
}

func TestSolveParallelInfeasible(t *testing.T) {
	_, err := coloring.SolveParallel(context.Background(), triangle(t), 2, 4)
	require.ErrorIs(t, err, coloring.ErrInfeasible)
}

func TestSolveParallelBoundaries(t *testing.T) {
	empty := mustAdjacency(t, nil, nil)
	got, err := coloring.SolveParallel(context.Background(), empty, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = coloring.SolveParallel(context.Background(), triangle(t), 0, 2)
	require.ErrorIs(t, err, coloring.ErrInvalidInput)

	_, err = coloring.SolveParallel(context.Background(), nil, 3, 2)
	require.ErrorIs(t, err, coloring.ErrInvalidInput)
}

func TestSolveParallelCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coloring.SolveParallel(ctx, triangle(t), 3, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveParallelDeterminism(t *testing.T) {
	adj := petersen(t)

	first, err := coloring.SolveParallel(context.Background(), adj, 4, 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := coloring.SolveParallel(context.Background(), adj, 4, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
