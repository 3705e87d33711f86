package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pgoelter/sequence-assembly/internal/assembly"
)

// dotNode labels a contig with its sequence in the rendered graph.
type dotNode struct {
	id  int64
	seq string
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) DOTID() string { return fmt.Sprintf("%d", n.id) }

func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.seq}}
}

// dotEdge labels an overlap edge with its weight.
type dotEdge struct {
	from, to dotNode
	weight   int
}

func (e dotEdge) From() graph.Node { return e.from }

func (e dotEdge) To() graph.Node { return e.to }

func (e dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{from: e.to, to: e.from, weight: e.weight}
}

func (e dotEdge) Weight() float64 { return float64(e.weight) }

func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%d", e.weight)}}
}

// marshalDOT renders a graph snapshot as Graphviz DOT.
func marshalDOT(s assembly.Snapshot, name string) ([]byte, error) {
	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))

	nodes := make(map[int64]dotNode, len(s.Nodes))
	for _, n := range s.Nodes {
		dn := dotNode{id: n.ID, seq: n.Seq}
		nodes[n.ID] = dn
		dg.AddNode(dn)
	}

	for _, e := range s.Edges {
		dg.SetWeightedEdge(dotEdge{
			from:   nodes[e.Source],
			to:     nodes[e.Target],
			weight: e.Weight,
		})
	}

	return dot.Marshal(dg, name, "", "  ")
}
