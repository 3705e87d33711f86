package assembly

import (
	"errors"
	"fmt"
)

var (
	// ErrAssemblyIncomplete is reported when the terminal graph holds
	// more than one contig: the fragments do not chain into a single
	// sequence. It is a legitimate result state, not a failure.
	ErrAssemblyIncomplete = errors.New("assembly incomplete: fragments do not chain into a single contig")

	// ErrSearchDeadline is reported when the Hamiltonian search hit
	// its deadline or step budget and returned the best path found
	// so far.
	ErrSearchDeadline = errors.New("search deadline exceeded: returning best path found")

	// ErrUnsupportedOrientation is reported when the Hamiltonian
	// search could not reconcile complementary-fragment orientation
	// for one or more candidate paths and skipped them.
	ErrUnsupportedOrientation = errors.New("unsupported orientation configuration for candidate path")
)

// InvalidMergeError is returned when a merge is requested for a pair
// of contigs that are not adjacent or not live. It signals a broken
// internal invariant and is fatal to the current run.
type InvalidMergeError struct {
	Source int64
	Target int64
	Reason string
}

func (e *InvalidMergeError) Error() string {
	return fmt.Sprintf("invalid merge %d -> %d: %s", e.Source, e.Target, e.Reason)
}
