package assembly

import (
	"context"
)

// Hamilton searches for a path visiting every contig exactly once with
// the maximum summed edge weight, then merges the path's contigs in
// order (first into second, result into third, and so on).
//
// The search is a backtracking DFS from every candidate start contig
// with branch-and-bound pruning on partial sums. It is exponential in
// the worst case, so it runs under a context deadline and an optional
// step budget; on cutoff it returns the best path found so far instead
// of blocking indefinitely.
type Hamilton struct {
	// MaxSteps caps the number of search nodes visited. 0 is unbounded.
	MaxSteps int

	// CheckOrientation re-checks fragment orientation for each
	// candidate path extension. The exact reconciliation rule for
	// complementary fragments during path search is a known
	// incomplete feature: an extension u -> v is rejected, and
	// reported, when v's reverse-complement would strictly
	// out-overlap v's chosen orientation against u. Rejected
	// candidates are skipped, never silently assembled.
	CheckOrientation bool

	// Observer, when non-nil, receives a snapshot before each path
	// merge and a final snapshot when assembly halts
	Observer Observer
}

// hamiltonSearch holds the mutable state of one path search.
type hamiltonSearch struct {
	g        *Graph
	h        *Hamilton
	ctx      context.Context
	maxOut   map[int64]int
	steps    int
	stopped  bool
	skips    int
	best     []int64
	bestSum  int
	bestFull bool
}

// Assemble searches for the maximum-weight Hamiltonian path and merges
// along it. When no full path exists, or the search is cut off, the
// best-scoring partial path found is merged instead and the run is
// reported incomplete.
func (a *Hamilton) Assemble(ctx context.Context, g *Graph) (*Result, error) {
	s := &hamiltonSearch{
		g:      g,
		h:      a,
		ctx:    ctx,
		maxOut: make(map[int64]int, g.NumContigs()),
	}

	ids := g.ContigIDs()
	for _, id := range ids {
		for _, e := range g.Successors(id) {
			if e.Weight > s.maxOut[id] {
				s.maxOut[id] = e.Weight
			}
		}
	}

	for _, start := range ids {
		if s.stopped {
			break
		}
		visited := map[int64]bool{start: true}
		s.walk(start, []int64{start}, visited, 0)
	}

	// merge the best path in order: first into second, the merged
	// contig into third, and so on
	steps := 0
	cur := int64(0)
	if len(s.best) > 0 {
		cur = s.best[0]
	}
	for i := 1; i < len(s.best); i++ {
		if a.Observer != nil {
			a.Observer(g.Snapshot())
		}

		merged, err := g.Merge(cur, s.best[i])
		if err != nil {
			return nil, err
		}
		cur = merged.id
		steps++
	}

	final := g.Snapshot()
	if a.Observer != nil {
		a.Observer(final)
	}

	return &Result{
		Contigs:          final.Nodes,
		Complete:         len(final.Nodes) == 1,
		Steps:            steps,
		DeadlineExceeded: s.stopped,
		OrientationSkips: s.skips,
	}, nil
}

// walk extends the path from contig u. Returns false when the search
// was cut off and the whole traversal should unwind.
func (s *hamiltonSearch) walk(u int64, path []int64, visited map[int64]bool, sum int) bool {
	s.steps++
	if s.ctx.Err() != nil || (s.h.MaxSteps > 0 && s.steps > s.h.MaxSteps) {
		s.stopped = true
		return false
	}

	// longer paths beat heavier ones: a cut-off or disconnected
	// search still reports the path covering the most contigs
	if len(path) > len(s.best) || (len(path) == len(s.best) && sum > s.bestSum) {
		s.best = append(s.best[:0], path...)
		s.bestSum = sum
		s.bestFull = len(path) == s.g.NumContigs()
	}

	if len(path) == s.g.NumContigs() {
		return true
	}

	// bound: even with every unvisited contig joined by its heaviest
	// outgoing edge this branch cannot beat a known full path
	if s.bestFull {
		bound := sum + s.maxOut[u]
		for id := range s.maxOut {
			if !visited[id] && id != u {
				bound += s.maxOut[id]
			}
		}
		if bound <= s.bestSum {
			return true
		}
	}

	for _, e := range s.g.Successors(u) {
		if visited[e.Target] {
			continue
		}

		if s.h.CheckOrientation && !s.orientationOK(u, e.Target) {
			s.skips++
			continue
		}

		visited[e.Target] = true
		ok := s.walk(e.Target, append(path, e.Target), visited, sum+e.Weight)
		delete(visited, e.Target)

		if !ok {
			return false
		}
	}
	return true
}

// orientationOK is the per-extension orientation check: the chosen
// orientation of the next contig must overlap the current one at least
// as well as its reverse-complement would.
func (s *hamiltonSearch) orientationOK(u, v int64) bool {
	cu, _ := s.g.Contig(u)
	cv, _ := s.g.Contig(v)
	return Overlap(cu.Seq, cv.Seq) >= Overlap(cu.Seq, ReverseComplement(cv.Seq))
}
