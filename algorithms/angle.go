package algorithms

import "math"

// Polar angle comparison for the Graham Scan sort. The fast
// comparator avoids trigonometry entirely; the atan2-based helpers
// are slow and exist to validate it in tests.

// AngleWithJ returns the signed angle between the unit vector (1, 0)
// and the vector from origin to p, in the range [-pi, pi]. It calls
// atan2 and should not be used on a hot path.
func AngleWithJ[T Coord](p, origin Point[T]) float64 {
	return math.Atan2(float64(p.Y-origin.Y), float64(p.X-origin.X))
}

// SlowCompareAngles reports whether p1 has a smaller polar angle than
// p2 around origin, computing the actual angles. Ties resolve to the
// point closer to origin. Test reference for CompareAngles.
func SlowCompareAngles[T Coord](p1, p2, origin Point[T]) bool {
	a1 := AngleWithJ(p1, origin)
	a2 := AngleWithJ(p2, origin)
	if Equal(a1, a2) {
		return p1.Sub(origin).SquareNorm() < p2.Sub(origin).SquareNorm()
	}
	return a1 < a2
}

// CompareAngles reports whether p1 has a smaller polar angle than p2
// around origin, without trigonometric calls. Angle ties resolve to
// the point closer to origin.
//
// The comparison is only meaningful when both translated points have
// y >= 0, which the Graham Scan pivot guarantees (the pivot has the
// lowest y of the whole set). On the y == 0 boundary the ordering is:
// points on the positive x axis sort before every point with y > 0,
// which sort before points on the negative x axis. The x >= 0 test
// polarity is load-bearing: flipping it reorders only axis-aligned
// inputs, which is exactly the kind of bug broad random tests miss.
func CompareAngles[T Coord](p1, p2, origin Point[T]) bool {
	return compareTranslatedAngles(p1.Sub(origin), p2.Sub(origin))
}

func compareTranslatedAngles[T Coord](p1, p2 Point[T]) bool {
	var zero T
	switch {
	case Equal(p1.Y, zero):
		if Equal(p2.Y, zero) {
			// Both on the x axis. The positive side sorts first; on a
			// shared side the closer point wins, which keeps the
			// farthest collinear point last for the scan's sentinel.
			if (p1.X >= 0) != (p2.X >= 0) {
				return p1.X >= 0
			}
			return p1.SquareNorm() < p2.SquareNorm()
		}
		return p1.X >= 0
	case Equal(p2.Y, zero):
		return p2.X < 0
	default:
		// -x/y grows monotonically with the polar angle on the upper
		// half plane. Integral coordinates are promoted before the
		// division.
		div1 := -float64(p1.X) / float64(p1.Y)
		div2 := -float64(p2.X) / float64(p2.Y)
		if Equal(div1, div2) {
			return p1.SquareNorm() < p2.SquareNorm()
		}
		return div1 < div2
	}
}
