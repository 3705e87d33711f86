// Package assembly reconstructs a target sequence from overlapping
// fragments (reads) by building a weighted overlap graph and merging
// its nodes, greedily or along a maximum-weight Hamiltonian path.
package assembly

import (
	"fmt"
	"strings"
)

// complements maps each base to its pairing base. Only ACGT is
// recognized, fragments with other characters are rejected up front.
var complements = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
}

// Fragment is a single input read with the orientation it will be
// assembled in. The orientation is fixed once, by Orient, before the
// overlap graph is built.
type Fragment struct {
	// ID is the index of the fragment in the input file
	ID int

	// Seq is the fragment's sequence in its assembly orientation
	Seq string

	// RevComp is whether Seq is the reverse-complement of the
	// fragment as it was read in
	RevComp bool
}

// NewFragment validates and creates a Fragment from an input read.
// The sequence is upper-cased. Empty reads and reads with characters
// outside ACGT are rejected here, before any graph is built.
func NewFragment(id int, seq string) (Fragment, error) {
	seq = strings.ToUpper(strings.TrimSpace(seq))
	if seq == "" {
		return Fragment{}, fmt.Errorf("fragment %d: empty sequence", id)
	}

	for i := 0; i < len(seq); i++ {
		if _, ok := complements[seq[i]]; !ok {
			return Fragment{}, fmt.Errorf("fragment %d: unrecognized character %q at index %d", id, seq[i], i)
		}
	}

	return Fragment{ID: id, Seq: seq}, nil
}

// ReverseComplement returns the fragment read backward with each base
// replaced by its pairing base.
func ReverseComplement(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[len(seq)-1-i] = complements[seq[i]]
	}
	return string(rc)
}
