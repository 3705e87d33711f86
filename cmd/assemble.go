package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd is the parent of the per-algorithm assembly commands.
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble fragments into a single sequence",
	Run:                        runGreedy,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble the fragments in the input file into a single sequence.
Every ordered pair of fragments is scored by the length of their longest
suffix/prefix overlap and the resulting weighted overlap graph is merged
down to as few contigs as the overlaps allow. Without a subcommand the
greedy mode is run.`,
	Aliases: []string{"asm"},
}

// greedyCmd merges the heaviest edge first, over and over.
var greedyCmd = &cobra.Command{
	Use:                        "greedy",
	Short:                      "Merge the max-weight overlap first, repeatedly",
	Run:                        runGreedy,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble by repeatedly merging the pair of contigs joined by the
maximum-weight edge until no edges remain. Ties between maximum-weight
edges are broken deterministically unless --random is set.`,
}

// hamiltonCmd searches for the best full path before merging.
var hamiltonCmd = &cobra.Command{
	Use:                        "hamilton",
	Short:                      "Merge along a max-weight Hamiltonian path",
	Run:                        runHamilton,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble by searching for a path that visits every contig exactly once
with the maximum summed overlap, then merging the path's contigs in
order. The search is exponential in the worst case; bound it with
--timeout and --steps.`,
	Aliases: []string{"hamiltonian"},
}

// set flags
func init() {
	assembleCmd.PersistentFlags().StringP("in", "i", "", "input file with fragments, one per line or FASTA")
	assembleCmd.PersistentFlags().StringP("out", "o", "", "output file name for the run's results <JSON>")
	assembleCmd.PersistentFlags().BoolP("orientation", "r", true, "resolve each fragment's orientation (forward or reverse-complement) before assembly")
	assembleCmd.PersistentFlags().StringP("snapshots", "g", "", "directory to write per-merge graph snapshots to <DOT>")

	greedyCmd.Flags().Bool("random", false, "break ties between max-weight edges uniformly at random")
	greedyCmd.Flags().Int64("seed", 0, "seed for the tie-break generator (0 seeds from the clock)")

	hamiltonCmd.Flags().DurationP("timeout", "t", 0, "wall-clock limit on the path search (0 is unbounded)")
	hamiltonCmd.Flags().Int("steps", 0, "limit on visited search nodes (0 is unbounded)")

	viper.BindPFlag("in", assembleCmd.PersistentFlags().Lookup("in"))
	viper.BindPFlag("out", assembleCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("orientation", assembleCmd.PersistentFlags().Lookup("orientation"))
	viper.BindPFlag("snapshots", assembleCmd.PersistentFlags().Lookup("snapshots"))
	viper.BindPFlag("random", greedyCmd.Flags().Lookup("random"))
	viper.BindPFlag("seed", greedyCmd.Flags().Lookup("seed"))
	viper.BindPFlag("timeout", hamiltonCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("steps", hamiltonCmd.Flags().Lookup("steps"))

	assembleCmd.AddCommand(greedyCmd)
	assembleCmd.AddCommand(hamiltonCmd)
	rootCmd.AddCommand(assembleCmd)
}
