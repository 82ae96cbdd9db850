package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/mapcolor/pkg/coloring"
)

// mapFile is the on-disk adjacency description:
//
//	regions: [WA, NT, SA]
//	edges:
//	  - [WA, NT]
//	  - [WA, SA]
//	  - [NT, SA]
type mapFile struct {
	Regions []string   `yaml:"regions"`
	Edges   [][]string `yaml:"edges"`
}

var (
	solveColors   int
	solveParallel bool
	solveWorkers  int
	solveTimeout  time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve <map.yaml>",
	Short: "Compute a proper coloring for a region adjacency file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(args[0])
	},
}

func init() {
	// Five colors matches the palette the Statistics Canada boundary
	// pipeline has always used; four suffices for any planar map but
	// leaves the search no slack.
	solveCmd.Flags().IntVar(&solveColors, "colors", 5, "palette size K; colors are indices in [0, K)")
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", false, "fan the top-level search branches across workers")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0, "worker count for --parallel (0 = all CPU cores)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this duration (0 = no limit)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(path string) error {
	adj, err := loadAdjacency(path)
	if err != nil {
		return err
	}
	logger.Info("adjacency loaded",
		"file", path,
		"regions", adj.Len(),
		"edges", len(adj.Edges()),
	)

	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	start := time.Now()
	var colors coloring.Assignment
	if solveParallel {
		colors, err = coloring.SolveParallel(ctx, adj, solveColors, solveWorkers)
	} else {
		colors, err = coloring.Solve(ctx, adj, solveColors)
	}

	switch {
	case errors.Is(err, coloring.ErrInfeasible):
		// A first-class outcome, not a crash: the palette is smaller
		// than the map's chromatic number.
		logger.Error("no valid coloring exists",
			"colors", solveColors,
			"hint", fmt.Sprintf("retry with --colors %d", solveColors+1),
		)
		os.Exit(2)
	case errors.Is(err, context.DeadlineExceeded):
		// Distinct from genuine infeasibility: the search was cut
		// short, so a coloring may still exist.
		logger.Error("search timed out, feasibility undetermined", "timeout", solveTimeout)
		os.Exit(3)
	case err != nil:
		return err
	}

	logger.Info("coloring found", "colors", solveColors, "elapsed", time.Since(start))

	out, err := yaml.Marshal(map[string]coloring.Assignment{"colors": colors})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func loadAdjacency(path string) (*coloring.Adjacency, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mf mapFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	edges := make([][2]string, 0, len(mf.Edges))
	for i, e := range mf.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("parse %s: edge %d has %d endpoints, want 2", path, i, len(e))
		}
		edges = append(edges, [2]string{e[0], e[1]})
	}

	return coloring.NewAdjacencyFromEdges(mf.Regions, edges)
}
