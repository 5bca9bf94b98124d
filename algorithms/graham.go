package algorithms

import "sort"

// GrahamScan computes the convex hull of points in place: it reorders
// the slice so the hull vertices occupy the leading sub-range, in
// counter-clockwise order starting from the point with the lowest y
// coordinate (ties to the lowest x), and returns the length of that
// sub-range.
//
// O(n log n) time, dominated by the angular sort.
func GrahamScan[T Coord](points []Point[T]) int {
	sortByPolarAngles(points)
	if len(points) <= 3 {
		return reduceDegenerate(points)
	}
	m := grahamSweep(points)
	// An input of many copies of one point survives the sweep as a
	// coincident pair; a single distinct point has a hull of one.
	if m == 2 && points[0].Equals(points[1]) {
		return 1
	}
	return m
}

// reduceDegenerate handles inputs of up to three points, which the
// sweep never sees: coincident points collapse, and the middle of
// three collinear points is dropped, so only extreme vertices remain.
// The points are already sorted by angle and then distance, which
// puts duplicates next to each other and interior points in the
// middle.
func reduceDegenerate[T Coord](points []Point[T]) int {
	var zero T
	n := 0
	for i := range points {
		if n > 0 && points[i].Equals(points[n-1]) {
			continue
		}
		points[n] = points[i]
		n++
	}
	if n == 3 && Equal(Cross(points[0], points[1], points[2]), zero) {
		points[1] = points[2]
		n = 2
	}
	return n
}

// sortByPolarAngles swaps the pivot (lowest y, then lowest x) into
// points[0] and sorts the rest by polar angle around it, angle ties
// closest first.
func sortByPolarAngles[T Coord](points []Point[T]) {
	if len(points) < 2 {
		return
	}
	lowest := 0
	for i, p := range points {
		q := points[lowest]
		if p.Y < q.Y || (Equal(p.Y, q.Y) && p.X < q.X) {
			lowest = i
		}
	}
	points[0], points[lowest] = points[lowest], points[0]

	origin := points[0]
	rest := points[1:]
	sort.Slice(rest, func(i, j int) bool {
		return CompareAngles(rest[i], rest[j], origin)
	})
}

// grahamSweep runs the monotone selection pass over points already
// sorted by polar angle. It keeps the classic formulation's cyclic
// indexing: pt(0) aliases pt(n), so the last point acts as a sentinel
// below the pivot and the pop loop never needs a bounds check there.
func grahamSweep[T Coord](points []Point[T]) int {
	n := len(points)
	pt := func(i int) *Point[T] {
		if i == 0 {
			return &points[n-1]
		}
		return &points[i-1]
	}

	// m counts the hull vertices accepted so far, pt(1)..pt(m).
	m := 1
	for i := 2; i <= n; i++ {
		// Pop until the last two accepted vertices and the candidate
		// make a strict left turn.
		for Cross(*pt(m-1), *pt(m), *pt(i)) <= 0 {
			if m > 1 {
				m--
			} else if i == n {
				// All points are collinear; the scan degenerates to
				// the two extreme endpoints.
				break
			} else {
				i++
			}
		}
		m++
		*pt(m), *pt(i) = *pt(i), *pt(m)
	}
	return m
}
