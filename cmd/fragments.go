package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgoelter/sequence-assembly/config"
)

// fragmentsCmd lists the validated fragments of an input file along
// with the orientation each would be assembled in.
var fragmentsCmd = &cobra.Command{
	Use:                        "fragments [file]",
	Short:                      "List the fragments of an input file",
	Run:                        runFragments,
	SuggestionsMinimumDistance: 3,
	Long: `Read, validate and list the fragments of an input file. For each
fragment the sequence is printed in the orientation it would be
assembled in, with "rc" marking reads the resolver reverse-complemented.`,
}

func runFragments(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	if in == "" && len(args) > 0 {
		in = args[0]
	}
	if in == "" {
		cmd.Help()
		stderr.Fatal("no input file of fragments")
	}

	conf := config.New()
	conf.Orientation, _ = cmd.Flags().GetBool("orientation")

	frags, err := loadFragments(in, conf)
	if err != nil {
		stderr.Fatal(err)
	}

	for _, f := range frags {
		orientation := "fwd"
		if f.RevComp {
			orientation = "rc"
		}
		fmt.Printf("%d\t%s\t%d\t%s\n", f.ID, orientation, len(f.Seq), f.Seq)
	}
}

func init() {
	fragmentsCmd.Flags().StringP("in", "i", "", "input file with fragments, one per line or FASTA")
	fragmentsCmd.Flags().BoolP("orientation", "r", true, "resolve each fragment's orientation before listing")

	rootCmd.AddCommand(fragmentsCmd)
}
