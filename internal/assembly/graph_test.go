package assembly

import (
	"errors"
	"reflect"
	"testing"
)

func testFragments(seqs ...string) []Fragment {
	frags := make([]Fragment, len(seqs))
	for i, s := range seqs {
		frags[i] = Fragment{ID: i, Seq: s}
	}
	return frags
}

func Test_Build(t *testing.T) {
	g, err := Build(testFragments("ACCGT", "CGTAC", "TACGG"))
	if err != nil {
		t.Fatal(err)
	}

	if g.NumContigs() != 3 {
		t.Errorf("Build() contigs = %d, want 3", g.NumContigs())
	}

	wantWeights := map[[2]int64]int{
		{1, 2}: 3, // ACCGT -> CGTAC
		{2, 3}: 3, // CGTAC -> TACGG
		{2, 1}: 2, // CGTAC -> ACCGT
		{1, 3}: 1, // ACCGT -> TACGG
	}
	for pair, want := range wantWeights {
		got, ok := g.Weight(pair[0], pair[1])
		if !ok {
			t.Errorf("Build() missing edge %d -> %d", pair[0], pair[1])
			continue
		}
		if got != want {
			t.Errorf("Build() weight %d -> %d = %d, want %d", pair[0], pair[1], got, want)
		}
	}

	// no self edges and nothing for non-overlapping pairs
	if _, ok := g.Weight(1, 1); ok {
		t.Error("Build() created a self edge")
	}
	if _, ok := g.Weight(3, 1); ok {
		t.Error("Build() created an edge for a zero overlap")
	}
	if g.NumEdges() != len(wantWeights) {
		t.Errorf("Build() edges = %d, want %d", g.NumEdges(), len(wantWeights))
	}
}

func Test_Build_rejects_empty(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Error("Build() accepted an empty fragment set")
	}
	if _, err := Build([]Fragment{{ID: 0, Seq: ""}}); err == nil {
		t.Error("Build() accepted an empty fragment")
	}
}

func Test_Graph_MaxEdge(t *testing.T) {
	g, err := Build(testFragments("ACCGT", "CGTAC", "TACGG"))
	if err != nil {
		t.Fatal(err)
	}

	// two edges share the max weight 3, the lower (source, target)
	// pair wins
	max, ok := g.MaxEdge()
	if !ok {
		t.Fatal("MaxEdge() found nothing")
	}
	if max.Source != 1 || max.Target != 2 || max.Weight != 3 {
		t.Errorf("MaxEdge() = %+v, want 1 -> 2 (3)", max)
	}

	ties := g.MaxEdges()
	want := []Edge{{Source: 1, Target: 2, Weight: 3}, {Source: 2, Target: 3, Weight: 3}}
	if !reflect.DeepEqual(ties, want) {
		t.Errorf("MaxEdges() = %+v, want %+v", ties, want)
	}
}

func Test_Graph_Merge(t *testing.T) {
	g, err := Build(testFragments("ACCGT", "CGTAC", "TACGG"))
	if err != nil {
		t.Fatal(err)
	}

	merged, err := g.Merge(1, 2)
	if err != nil {
		t.Fatal(err)
	}

	if merged.Seq != "ACCGTAC" {
		t.Errorf("Merge() seq = %v, want ACCGTAC", merged.Seq)
	}
	if !reflect.DeepEqual(merged.Origins, []int{0, 1}) {
		t.Errorf("Merge() origins = %v, want [0 1]", merged.Origins)
	}
	if merged.ID() != 4 {
		t.Errorf("Merge() id = %d, want a fresh id 4", merged.ID())
	}

	// the retired contigs are gone along with their edges
	if _, live := g.Contig(1); live {
		t.Error("Merge() left the source contig live")
	}
	if _, live := g.Contig(2); live {
		t.Error("Merge() left the target contig live")
	}

	// the merged contig's edges are recomputed from its sequence
	if w, ok := g.Weight(4, 3); !ok || w != 3 {
		t.Errorf("Merge() recomputed weight 4 -> 3 = %d (%v), want 3", w, ok)
	}
}

func Test_Graph_Merge_invalid(t *testing.T) {
	g, err := Build(testFragments("ACCGT", "CGTAC", "TACGG"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  int64
		dst  int64
	}{
		{"dead source", 99, 2},
		{"dead target", 1, 99},
		{"no edge between pair", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Merge(tt.src, tt.dst)

			var merr *InvalidMergeError
			if !errors.As(err, &merr) {
				t.Errorf("Merge(%d, %d) error = %v, want InvalidMergeError", tt.src, tt.dst, err)
			}
		})
	}
}

// after every merge the origin sets still partition the input
// fragments, and the total sequence length never grows
func Test_Graph_Merge_invariants(t *testing.T) {
	frags := testFragments("ACGTACG", "TACGGAT", "GGATCCA", "TTTT")
	g, err := Build(frags)
	if err != nil {
		t.Fatal(err)
	}

	totalLen := 0
	for _, f := range frags {
		totalLen += len(f.Seq)
	}

	for g.NumEdges() > 0 {
		max, _ := g.MaxEdge()
		if _, err := g.Merge(max.Source, max.Target); err != nil {
			t.Fatal(err)
		}

		seen := map[int]bool{}
		seqLen := 0
		for _, id := range g.ContigIDs() {
			c, _ := g.Contig(id)
			if len(c.Origins) == 0 {
				t.Fatalf("contig %d has no origins", id)
			}
			for _, o := range c.Origins {
				if seen[o] {
					t.Fatalf("origin %d appears in two live contigs", o)
				}
				seen[o] = true
			}
			seqLen += len(c.Seq)
		}

		if len(seen) != len(frags) {
			t.Fatalf("%d origins across live contigs, want %d", len(seen), len(frags))
		}
		if seqLen > totalLen {
			t.Fatalf("total sequence length grew: %d > %d", seqLen, totalLen)
		}
	}
}

func Test_Graph_Snapshot(t *testing.T) {
	g, err := Build(testFragments("ACCGT", "CGTAC"))
	if err != nil {
		t.Fatal(err)
	}

	s := g.Snapshot()
	if len(s.Nodes) != 2 {
		t.Fatalf("Snapshot() nodes = %d, want 2", len(s.Nodes))
	}

	// mutating the snapshot must not touch the graph
	s.Nodes[0].Origins[0] = 99
	c, _ := g.Contig(s.Nodes[0].ID)
	if c.Origins[0] == 99 {
		t.Error("Snapshot() shares origin storage with the graph")
	}
}
