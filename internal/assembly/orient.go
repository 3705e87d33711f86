package assembly

// Orient fixes each fragment's orientation, forward or
// reverse-complement, before the overlap graph is built.
//
// The choice is made per fragment: the best overlap the fragment's
// forward form achieves against every other fragment (in its currently
// assumed orientation) is compared against the best overlap its
// reverse-complement achieves, and the orientation with the larger
// best score is kept. Ties keep the forward orientation.
//
// This is a local heuristic, not a guaranteed global optimum. A
// fragment decided early is scored against later fragments that may
// themselves flip afterward.
func Orient(frags []Fragment) []Fragment {
	oriented := make([]Fragment, len(frags))
	copy(oriented, frags)

	for i := range oriented {
		fwd := oriented[i].Seq
		rev := ReverseComplement(fwd)

		bestFwd, bestRev := 0, 0
		for j := range oriented {
			if j == i {
				// a fragment is never scored against its own complement
				continue
			}

			if s := pairOverlap(fwd, oriented[j].Seq); s > bestFwd {
				bestFwd = s
			}
			if s := pairOverlap(rev, oriented[j].Seq); s > bestRev {
				bestRev = s
			}
		}

		if bestRev > bestFwd {
			oriented[i].Seq = rev
			oriented[i].RevComp = true
		}
	}

	return oriented
}
