package assembly

import (
	"math/rand"
)

// Greedy merges the pair of contigs joined by the globally
// maximum-weight edge, over and over, until no edges remain. The
// remaining contigs are then either a single assembled sequence or a
// set of mutually non-overlapping contigs (an incomplete assembly,
// reported as a result state).
type Greedy struct {
	// Rand, when non-nil, breaks ties between maximal-weight edges by
	// choosing one uniformly at random. When nil the tie-break is
	// deterministic: the edge with the lowest (source, target) pair.
	// The generator is passed in, never process-global, so seeded
	// runs are reproducible.
	Rand *rand.Rand

	// Observer, when non-nil, receives a snapshot before each merge
	// and a final snapshot when assembly halts
	Observer Observer
}

// Assemble runs the greedy merge loop to its terminal state. The graph
// is owned by the assembler for the duration of the run.
func (a *Greedy) Assemble(g *Graph) (*Result, error) {
	steps := 0

	for g.NumEdges() > 0 {
		pick, _ := g.MaxEdge()
		if a.Rand != nil {
			ties := g.MaxEdges()
			pick = ties[a.Rand.Intn(len(ties))]
		}

		if a.Observer != nil {
			a.Observer(g.Snapshot())
		}

		if _, err := g.Merge(pick.Source, pick.Target); err != nil {
			return nil, err
		}
		steps++
	}

	final := g.Snapshot()
	if a.Observer != nil {
		a.Observer(final)
	}

	return &Result{
		Contigs:  final.Nodes,
		Complete: len(final.Nodes) == 1,
		Steps:    steps,
	}, nil
}
