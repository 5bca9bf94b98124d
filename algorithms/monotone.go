package algorithms

import "sort"

// MonotoneChain computes the convex hull of points into dst, which
// must hold at least 2*len(points) entries. The input is sorted in
// place by x (ties by y); the hull is written as the lower chain
// followed by the upper chain, counter-clockwise starting from the
// lowest-x point, and the written length is returned.
//
// O(n log n) time, dominated by the coordinate sort.
func MonotoneChain[T Coord](points, dst []Point[T]) int {
	sort.Slice(points, func(i, j int) bool {
		p, q := points[i], points[j]
		return p.X < q.X || (Equal(p.X, q.X) && p.Y < q.Y)
	})

	n := len(points)
	if n <= 1 {
		return copy(dst, points)
	}

	k := 0
	// The pop test must be cross <= 0, not < 0: a collinear candidate
	// extends the last edge, and keeping the midpoint would leave a
	// non-extreme vertex on the chain.
	notCounterClockwise := func(i int) bool {
		return Cross(dst[k-2], dst[k-1], points[i]) <= 0
	}

	// Lower chain, left to right.
	for i := 0; i < n; i++ {
		for k >= 2 && notCounterClockwise(i) {
			k--
		}
		dst[k] = points[i]
		k++
	}

	// Upper chain, right to left, stacked on top of the lower chain.
	// The threshold t keeps the pops from eating into the lower chain.
	t := k + 1
	for i := n - 2; i >= 0; i-- {
		for k >= t && notCounterClockwise(i) {
			k--
		}
		dst[k] = points[i]
		k++
	}

	// The chains share their first point; count it once.
	end := k - 1
	// An input with a single distinct point builds two one-point
	// chains; its hull is that one point.
	if end == 2 && dst[0].Equals(dst[1]) {
		return 1
	}
	return end
}
