package assembly

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/graph/simple"
)

// Contig is a live node of the overlap graph: one input fragment, or
// the concatenation of fragments merged so far. A contig is never
// mutated after a merge retires it; merging always allocates a fresh
// contig with a fresh id.
type Contig struct {
	id int64

	// Seq is the contig's current sequence
	Seq string

	// Origins are the ids of the input fragments folded into this
	// contig, sorted. Origins are disjoint across live contigs and
	// together cover every input fragment exactly once.
	Origins []int
}

// ID implements gonum's graph.Node.
func (c *Contig) ID() int64 { return c.id }

// edgeKey orders edges for the max-edge index. Ascending weight, and
// within a weight descending (source, target), so that the tree's Max
// is the heaviest edge with the lowest (source, target) pair. That
// makes Max the deterministic greedy pick.
type edgeKey struct {
	Weight int
	Source int64
	Target int64
}

func lessEdgeKey(a, b edgeKey) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.Source != b.Source {
		return a.Source > b.Source
	}
	return a.Target > b.Target
}

// Graph is the weighted directed overlap graph. An edge (u, v, w)
// means the last w characters of u.Seq equal the first w characters
// of v.Seq, w >= 1. There are no self edges and at most one edge per
// ordered pair (the maximal overlap is kept by construction).
//
// Contig ids are allocated from a counter and never reused, so a
// retired contig's id stays dead for the lifetime of the graph.
// Adjacency lives in a gonum directed graph, and a btree keyed by
// (weight, source, target) indexes the edges for max-edge selection.
type Graph struct {
	dg      *simple.WeightedDirectedGraph
	contigs map[int64]*Contig
	edges   *btree.BTreeG[edgeKey]
	nextID  int64
}

// NewGraph returns an empty overlap graph.
func NewGraph() *Graph {
	return &Graph{
		dg:      simple.NewWeightedDirectedGraph(0, 0),
		contigs: make(map[int64]*Contig),
		edges:   btree.NewBTreeG(lessEdgeKey),
		nextID:  1,
	}
}

// Build constructs the overlap graph from the oriented fragment set:
// one contig per fragment and, for every ordered pair with a non-zero
// overlap, a weighted edge.
//
// The O(n^2) pairwise scoring is fanned out across workers. Each score
// is a pure function of two immutable sequences, so only the edge
// insertion is serialized.
func Build(frags []Fragment) (*Graph, error) {
	if len(frags) == 0 {
		return nil, fmt.Errorf("no fragments to assemble")
	}

	g := NewGraph()
	ids := make([]int64, len(frags))
	for i, f := range frags {
		if f.Seq == "" {
			return nil, fmt.Errorf("fragment %d: empty sequence", f.ID)
		}
		ids[i] = g.addContig(f.Seq, []int{f.ID}).id
	}

	type pair struct{ src, dst int64 }
	type scored struct {
		src, dst int64
		weight   int
	}

	pairs := make(chan pair)
	results := make(chan scored)

	var wg sync.WaitGroup
	for w := 0; w < runtime.GOMAXPROCS(0); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range pairs {
				weight := Overlap(g.contigs[p.src].Seq, g.contigs[p.dst].Seq)
				if weight > 0 {
					results <- scored{p.src, p.dst, weight}
				}
			}
		}()
	}

	go func() {
		for _, src := range ids {
			for _, dst := range ids {
				if src != dst {
					pairs <- pair{src, dst}
				}
			}
		}
		close(pairs)
		wg.Wait()
		close(results)
	}()

	for s := range results {
		g.setEdge(g.contigs[s.src], g.contigs[s.dst], s.weight)
	}

	return g, nil
}

// addContig allocates a contig with a fresh id and adds it to the
// live node set.
func (g *Graph) addContig(seq string, origins []int) *Contig {
	sorted := append([]int(nil), origins...)
	sort.Ints(sorted)

	c := &Contig{id: g.nextID, Seq: seq, Origins: sorted}
	g.nextID++

	g.contigs[c.id] = c
	g.dg.AddNode(c)
	return c
}

// setEdge inserts or replaces the edge from u to v.
func (g *Graph) setEdge(u, v *Contig, weight int) {
	if prev := g.dg.WeightedEdge(u.id, v.id); prev != nil {
		g.edges.Delete(edgeKey{Weight: int(prev.Weight()), Source: u.id, Target: v.id})
	}
	g.dg.SetWeightedEdge(g.dg.NewWeightedEdge(u, v, float64(weight)))
	g.edges.Set(edgeKey{Weight: weight, Source: u.id, Target: v.id})
}

// removeContig retires a contig, dropping every edge that references it.
func (g *Graph) removeContig(id int64) {
	to := g.dg.From(id)
	for to.Next() {
		e := g.dg.WeightedEdge(id, to.Node().ID())
		g.edges.Delete(edgeKey{Weight: int(e.Weight()), Source: id, Target: to.Node().ID()})
	}

	from := g.dg.To(id)
	for from.Next() {
		e := g.dg.WeightedEdge(from.Node().ID(), id)
		g.edges.Delete(edgeKey{Weight: int(e.Weight()), Source: from.Node().ID(), Target: id})
	}

	g.dg.RemoveNode(id)
	delete(g.contigs, id)
}

// Contig returns the live contig with the given id.
func (g *Graph) Contig(id int64) (*Contig, bool) {
	c, ok := g.contigs[id]
	return c, ok
}

// ContigIDs returns the ids of all live contigs in ascending order.
func (g *Graph) ContigIDs() []int64 {
	ids := make([]int64, 0, len(g.contigs))
	for id := range g.contigs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NumContigs returns the number of live contigs.
func (g *Graph) NumContigs() int { return len(g.contigs) }

// NumEdges returns the number of edges between live contigs.
func (g *Graph) NumEdges() int { return g.edges.Len() }

// Weight returns the overlap length of the edge from src to dst.
func (g *Graph) Weight(src, dst int64) (int, bool) {
	e := g.dg.WeightedEdge(src, dst)
	if e == nil {
		return 0, false
	}
	return int(e.Weight()), true
}

// Successors returns the edges leaving the given contig, sorted by
// ascending target id.
func (g *Graph) Successors(id int64) []Edge {
	var out []Edge

	to := g.dg.From(id)
	for to.Next() {
		e := g.dg.WeightedEdge(id, to.Node().ID())
		out = append(out, Edge{Source: id, Target: to.Node().ID(), Weight: int(e.Weight())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}

// MaxEdge returns the heaviest edge in the graph. Among edges sharing
// the maximum weight it is the one with the lowest (source, target)
// pair, which is the deterministic greedy pick.
func (g *Graph) MaxEdge() (Edge, bool) {
	k, ok := g.edges.Max()
	if !ok {
		return Edge{}, false
	}
	return Edge{Source: k.Source, Target: k.Target, Weight: k.Weight}, true
}

// MaxEdges returns every edge sharing the maximum weight, in ascending
// (source, target) order. Used for randomized tie-breaking.
func (g *Graph) MaxEdges() []Edge {
	max, ok := g.edges.Max()
	if !ok {
		return nil
	}

	var ties []Edge
	g.edges.Descend(max, func(k edgeKey) bool {
		if k.Weight != max.Weight {
			return false
		}
		ties = append(ties, Edge{Source: k.Source, Target: k.Target, Weight: k.Weight})
		return true
	})
	return ties
}

// Merge consumes the edge from src to dst: both contigs are retired
// and a fresh contig is allocated with sequence src.Seq + dst.Seq
// minus their overlapping region, and with the union of their origin
// sets. Every edge between the new contig and each remaining contig is
// recomputed from the sequences, in both directions; edges are never
// patched from stale weights.
//
// Merge returns an InvalidMergeError when either id is not live or no
// edge joins the pair.
func (g *Graph) Merge(srcID, dstID int64) (*Contig, error) {
	src, ok := g.contigs[srcID]
	if !ok {
		return nil, &InvalidMergeError{Source: srcID, Target: dstID, Reason: fmt.Sprintf("contig %d is not live", srcID)}
	}
	dst, ok := g.contigs[dstID]
	if !ok {
		return nil, &InvalidMergeError{Source: srcID, Target: dstID, Reason: fmt.Sprintf("contig %d is not live", dstID)}
	}

	weight, ok := g.Weight(srcID, dstID)
	if !ok {
		return nil, &InvalidMergeError{Source: srcID, Target: dstID, Reason: "no edge between the pair"}
	}

	seq := src.Seq + dst.Seq[weight:]
	origins := append(append([]int(nil), src.Origins...), dst.Origins...)

	g.removeContig(srcID)
	g.removeContig(dstID)

	merged := g.addContig(seq, origins)
	for id, other := range g.contigs {
		if id == merged.id {
			continue
		}
		if w := Overlap(merged.Seq, other.Seq); w > 0 {
			g.setEdge(merged, other, w)
		}
		if w := Overlap(other.Seq, merged.Seq); w > 0 {
			g.setEdge(other, merged, w)
		}
	}

	return merged, nil
}
