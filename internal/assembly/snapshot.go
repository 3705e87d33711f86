package assembly

// Node is a read-only copy of a live contig, as exposed to renderers
// and reports.
type Node struct {
	ID      int64  `json:"id"`
	Seq     string `json:"seq"`
	Origins []int  `json:"origins"`
}

// Edge is a read-only copy of an overlap edge.
type Edge struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
	Weight int   `json:"weight"`
}

// Snapshot is a read-only copy of the graph's live contigs and edges.
// Snapshots are taken strictly between merges, never during one, so a
// renderer can never observe a half-applied merge.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Snapshot copies the current graph state. Nodes are sorted by id and
// edges by (source, target).
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Nodes: make([]Node, 0, g.NumContigs()),
		Edges: make([]Edge, 0, g.NumEdges()),
	}

	for _, id := range g.ContigIDs() {
		c := g.contigs[id]
		s.Nodes = append(s.Nodes, Node{
			ID:      c.id,
			Seq:     c.Seq,
			Origins: append([]int(nil), c.Origins...),
		})
		s.Edges = append(s.Edges, g.Successors(id)...)
	}

	return s
}
