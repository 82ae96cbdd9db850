// Command mapcolor assigns display colors to map regions from a
// precomputed adjacency file, so that no two touching regions share a
// color. It is the CLI driver around pkg/coloring; producing the
// adjacency (which geometries touch which) is the job of the upstream
// boundary-data tooling.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "mapcolor",
	Short: "Color map regions so no touching pair matches",
	Long: `mapcolor solves the region coloring problem: given a set of region
identifiers and the pairs that touch, it assigns every region a color
index from a fixed palette such that adjacent regions always differ.

The adjacency comes in as a YAML file; the resulting region-to-color
mapping goes to stdout as YAML, ready to be joined back onto the
caller's boundary records.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
