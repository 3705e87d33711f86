package assembly

// Overlap returns the length of the longest suffix of a that is also a
// prefix of b: the largest k >= 1 where a[len(a)-k:] == b[:k], matched
// exactly with no mismatches or gaps. It returns 0 when no such k
// exists or when either string is empty.
//
// k is scanned from min(len(a), len(b)) down to 1 and the first hit is
// returned, so the result is maximal by construction. Excluding a
// node's overlap with itself is the caller's job: the graph never
// creates self edges.
func Overlap(a, b string) int {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}

	for k := max; k > 0; k-- {
		if a[len(a)-k:] == b[:k] {
			return k
		}
	}
	return 0
}

// pairOverlap returns the best overlap between a and b in either
// direction: a's suffix against b's prefix or b's suffix against a's
// prefix, whichever is longer.
func pairOverlap(a, b string) int {
	ab := Overlap(a, b)
	ba := Overlap(b, a)
	if ba > ab {
		return ba
	}
	return ab
}
