package algorithms

import "math/bits"

// Chan computes the convex hull of points into dst using Chan's
// output-sensitive algorithm. The input is reordered in place (each
// partition is hulled by GrahamScan); dst must hold at least
// len(points) entries. The hull is written counter-clockwise starting
// from the bottommost point (ties to the greatest x) and the written
// length is returned.
//
// The algorithm guesses the hull size m, partitions the input into
// groups of at most m points, hulls each group, then wraps around the
// group hulls for at most m steps. A wrap that fails to close means
// the guess was too small, and the guess grows as 2^(2^t), so the
// total work over all attempts stays O(n log h).
func Chan[T Coord](points, dst []Point[T]) int {
	n := len(points)
	if n == 0 {
		return 0
	}

	buf := make([]Point[T], n)
	for t := 1; ; t++ {
		m := guessHullSize(t, n)
		if count, ok := partialHull(points, buf, m); ok {
			return copy(dst, buf[:count])
		}
		// Once m reaches n there is a single partition and the wrap
		// is a plain Jarvis March, which always closes, so the retry
		// loop cannot run forever.
	}
}

// guessHullSize returns min(2^(2^t), n). The exponents are clamped
// before any shift happens, so the exponential term cannot overflow
// even for absurd t.
func guessHullSize(t, n int) int {
	if t >= bits.UintSize-1 || 1<<t >= bits.UintSize-1 {
		return n
	}
	if m := 1 << (1 << t); m < n {
		return m
	}
	return n
}

// partialHull runs a single attempt with hull size guess m, writing
// at most m vertices to dst. It reports whether the wrap closed; when
// it did not, the partial output is meaningless and the caller must
// retry with a larger guess.
func partialHull[T Coord](points, dst []Point[T], m int) (int, bool) {
	n := len(points)
	r := (n + m - 1) / m

	// Hull each contiguous group of at most m points in place. ends
	// remembers where each group's hull prefix stops.
	ends := make([]int, r)
	for i := 0; i < r; i++ {
		lo, hi := i*m, (i+1)*m
		if hi > n {
			hi = n
		}
		ends[i] = lo + GrahamScan(points[lo:hi])
	}

	// The bottommost point (ties to the right) anchors the wrap. It
	// is on every group's hull already, so the grouping above did not
	// move it out of reach.
	start := points[0]
	for _, p := range points[1:] {
		if p.Y < start.Y || (Equal(p.Y, start.Y) && p.X > start.X) {
			start = p
		}
	}

	candidates := make([]Point[T], r)
	onHull := start
	count := 0
	for k := 0; k < m; k++ {
		dst[count] = onHull
		count++

		// Each group nominates its best next vertex from its hull
		// prefix; the winner among the nominees is the next vertex of
		// the full hull.
		for i := 0; i < r; i++ {
			candidates[i] = nextHullPoint(points[i*m:ends[i]], onHull)
		}
		next := nextHullPoint(candidates, onHull)

		if next.Equals(start) {
			return count, true
		}
		onHull = next
	}

	// m steps without closing the loop: the guess was too small.
	return 0, false
}
