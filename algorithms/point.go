package algorithms

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coord is the set of usable coordinate types. Unsigned integers are
// excluded because point subtraction must not wrap around zero.
type Coord interface {
	constraints.Signed | constraints.Float
}

// Point is a 2D point. Both coordinates share a single numeric type;
// a point has no identity beyond its coordinates, and duplicates are
// legal everywhere in this package.
type Point[T Coord] struct {
	X, Y T
}

// Tolerance bounds the error accepted when comparing floating point
// coordinates. If we compare exactly instead, nearly collinear points
// flip orientation on rounding noise and the scans retain (or drop)
// the wrong vertices.
const Tolerance = 1e-9

// integral reports whether T truncates fractional values. Conversion
// does the detection, so integer coordinates get exact comparisons
// without any reflection.
func integral[T Coord]() bool {
	half := 0.5
	return T(half) == T(0)
}

// Equal compares two coordinates: exactly for integral types,
// tolerance-based for floating point types.
func Equal[T Coord](a, b T) bool {
	if integral[T]() {
		return a == b
	}
	return math.Abs(float64(a)-float64(b)) <= Tolerance
}

// Equals is componentwise coordinate equality.
func (p Point[T]) Equals(q Point[T]) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Sub translates p by -q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// SquareNorm is the squared distance from the origin to p. All
// distance tie-breaks in this package compare squared distances, so
// no square root is ever taken.
func (p Point[T]) SquareNorm() T {
	return p.X*p.X + p.Y*p.Y
}

// Cross is twice the signed area of the triangle p1 p2 p3, i.e. the
// cross product of (p2-p1) and (p3-p1). Positive means p1 p2 p3 is a
// counter-clockwise turn, negative a clockwise turn, zero collinear.
// Every orientation decision in this package routes through here.
func Cross[T Coord](p1, p2, p3 Point[T]) T {
	return (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
}
