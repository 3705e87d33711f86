package assembly

// Observer receives a read-only snapshot of the graph before each
// merge and once more when assembly halts.
type Observer func(Snapshot)

// Result is the terminal state of one assembly run.
type Result struct {
	// Contigs left in the graph when assembly halted, sorted by id.
	// A complete assembly has exactly one.
	Contigs []Node

	// Complete is whether every fragment was folded into one contig
	Complete bool

	// Steps is the number of merges applied
	Steps int

	// DeadlineExceeded is whether the Hamiltonian search was cut off
	// by its deadline or step budget and fell back to the best path
	// found so far
	DeadlineExceeded bool

	// OrientationSkips counts the candidate path extensions the
	// Hamiltonian search rejected because fragment orientation could
	// not be reconciled
	OrientationSkips int
}

// Sequence returns the assembled sequence when the run was complete.
func (r *Result) Sequence() (string, bool) {
	if !r.Complete || len(r.Contigs) != 1 {
		return "", false
	}
	return r.Contigs[0].Seq, true
}

// Conditions returns the recoverable conditions hit during the run.
// An empty slice means a clean, complete assembly.
func (r *Result) Conditions() []error {
	var conds []error
	if r.DeadlineExceeded {
		conds = append(conds, ErrSearchDeadline)
	}
	if r.OrientationSkips > 0 {
		conds = append(conds, ErrUnsupportedOrientation)
	}
	if !r.Complete {
		conds = append(conds, ErrAssemblyIncomplete)
	}
	return conds
}
