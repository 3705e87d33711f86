package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgoelter/sequence-assembly/config"
	"github.com/pgoelter/sequence-assembly/internal/assembly"
	"github.com/pgoelter/sequence-assembly/internal/fragio"
	"github.com/pgoelter/sequence-assembly/internal/report"
)

func runGreedy(cmd *cobra.Command, args []string) {
	conf := config.New()
	conf.Mode = "greedy"
	run(cmd, args, conf)
}

func runHamilton(cmd *cobra.Command, args []string) {
	conf := config.New()
	conf.Mode = "hamilton"
	run(cmd, args, conf)
}

// run loads the fragments, builds the overlap graph, assembles it in
// the requested mode and reports the result.
func run(cmd *cobra.Command, args []string, conf *config.Config) {
	in := viper.GetString("in")
	if in == "" && len(args) > 0 {
		in = args[0]
	}
	if in == "" {
		cmd.Help()
		stderr.Fatal("no input file of fragments")
	}

	start := time.Now()

	frags, err := loadFragments(in, conf)
	if err != nil {
		stderr.Fatal(err)
	}

	graph, err := assembly.Build(frags)
	if err != nil {
		stderr.Fatal(err)
	}

	snaps, err := report.NewSnapshotter(conf.Snapshots)
	if err != nil {
		stderr.Fatal(err)
	}

	observer := snaps.Observe
	if conf.Verbose {
		observer = func(s assembly.Snapshot) {
			stderr.Printf("%d contigs, %d edges", len(s.Nodes), len(s.Edges))
			snaps.Observe(s)
		}
	}

	var result *assembly.Result
	switch conf.Mode {
	case "hamilton":
		ctx := context.Background()
		if conf.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
			defer cancel()
		}

		hamilton := &assembly.Hamilton{
			MaxSteps:         conf.Steps,
			CheckOrientation: conf.Orientation,
			Observer:         observer,
		}
		result, err = hamilton.Assemble(ctx, graph)
	default:
		greedy := &assembly.Greedy{Observer: observer}
		if conf.Random {
			seed := conf.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			greedy.Rand = rand.New(rand.NewSource(seed))
		}
		result, err = greedy.Assemble(graph)
	}
	if err != nil {
		stderr.Fatal(err)
	}
	if err := snaps.Err(); err != nil {
		stderr.Fatal(err)
	}

	if _, err := report.WriteJSON(viper.GetString("out"), in, conf.Mode, result, time.Since(start).Seconds()); err != nil {
		stderr.Fatal(err)
	}

	if seq, ok := result.Sequence(); ok {
		fmt.Printf("Resulting sequence: %s\n", seq)
		return
	}

	fmt.Println("Could not assemble all fragments!")
	fmt.Println("Those are left:")
	for _, c := range result.Contigs {
		fmt.Printf("Node %d: %s\n", c.ID, c.Seq)
	}
}

// loadFragments reads and validates the input reads and, unless
// disabled, resolves each one's orientation.
func loadFragments(in string, conf *config.Config) ([]assembly.Fragment, error) {
	records, err := fragio.Read(in)
	if err != nil {
		return nil, err
	}

	frags := make([]assembly.Fragment, len(records))
	for i, r := range records {
		f, err := assembly.NewFragment(i, r.Seq)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", r.Name, err)
		}
		frags[i] = f
	}

	if conf.Orientation {
		frags = assembly.Orient(frags)
	}
	return frags, nil
}
