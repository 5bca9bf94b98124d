package algorithms

// JarvisMarch computes the convex hull of points into dst by gift
// wrapping. The input is read-only; dst must hold at least as many
// entries as the hull has vertices (len(points) always suffices). The
// hull is written counter-clockwise starting from the leftmost point
// (ties to the lowest y) and the written length is returned.
//
// O(n*h) time where h is the number of hull vertices, so it beats the
// sorting algorithms when the hull is small.
func JarvisMarch[T Coord](points, dst []Point[T]) int {
	n := len(points)
	if n <= 1 {
		return copy(dst, points)
	}

	start := points[0]
	for _, p := range points[1:] {
		if p.X < start.X || (Equal(p.X, start.X) && p.Y < start.Y) {
			start = p
		}
	}

	onHull := start
	i := 0
	for {
		dst[i] = onHull
		i++
		onHull = nextHullPoint(points, onHull)
		if onHull.Equals(dst[0]) {
			return i
		}
	}
}

// nextHullPoint returns the vertex that follows onHull on a
// counter-clockwise wrap of points: the candidate whose supporting
// edge from onHull keeps every other point on its left. Collinear
// candidates resolve to the farthest, so an edge running through
// interior points still advances to the true next extreme vertex.
// Duplicates of onHull are harmless: they reset the candidate, and a
// later point always displaces them.
func nextHullPoint[T Coord](points []Point[T], onHull Point[T]) Point[T] {
	var zero T
	endpoint := onHull
	for _, p := range points {
		if endpoint.Equals(onHull) {
			endpoint = p
			continue
		}
		c := Cross(onHull, endpoint, p)
		switch {
		case Equal(c, zero):
			if p.Sub(onHull).SquareNorm() > endpoint.Sub(onHull).SquareNorm() {
				endpoint = p
			}
		case c < 0:
			// p lies right of the candidate edge: the wrap must turn
			// further clockwise to reach it, so p is the better next
			// vertex.
			endpoint = p
		}
	}
	return endpoint
}
