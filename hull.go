// A 2D convex hull package for Go.
//
// This package computes the convex hull (and axis-aligned bounding
// box) of a finite set of points using one of four classical
// algorithms: Graham Scan, Monotone Chain, Jarvis March, or Chan's
// algorithm. Coordinates are generic over signed integer and floating
// point types; equality is exact for integers and tolerance-based for
// floats.
//
// The functions here copy their input, so callers keep their slices
// unchanged. The algorithms package underneath exposes the in-place
// variants for callers that want to avoid the copies.
package hull

import "github.com/osuushi/hull/algorithms"

type Coord = algorithms.Coord
type Point[T Coord] = algorithms.Point[T]
type Algorithm = algorithms.Algorithm

const (
	GrahamScan    = algorithms.AlgorithmGrahamScan
	MonotoneChain = algorithms.AlgorithmMonotoneChain
	JarvisMarch   = algorithms.AlgorithmJarvisMarch
	Chan          = algorithms.AlgorithmChan

	// DefaultAlgorithm is Graham Scan: Chan's algorithm has the
	// better worst-case bound, but Graham's constant wins on
	// realistic inputs.
	DefaultAlgorithm = GrahamScan
)

// ParseAlgorithm maps an algorithm name to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	return algorithms.ParseAlgorithm(name)
}

// ConvexHull returns the convex hull of points, counter-clockwise,
// computed with the default algorithm, along with the algorithm used.
// Empty input yields an empty hull; a single distinct point yields
// itself; a fully collinear input yields the two extreme endpoints.
func ConvexHull[T Coord](points []Point[T]) ([]Point[T], Algorithm) {
	return ConvexHullWith(DefaultAlgorithm, points), DefaultAlgorithm
}

// ConvexHullWith returns the convex hull of points, counter-clockwise,
// computed with the given algorithm. The input is not modified.
func ConvexHullWith[T Coord](algorithm Algorithm, points []Point[T]) []Point[T] {
	scratch := make([]Point[T], len(points))
	copy(scratch, points)
	dst := make([]Point[T], 2*len(points))
	end := algorithms.ComputeConvexHull(algorithm, scratch, dst)
	return dst[:end:end]
}

// BoundingBox returns the four corners of the axis-aligned bounding
// box of points, counter-clockwise from the bottom-left corner, or an
// empty slice for empty input. The input is not modified.
func BoundingBox[T Coord](points []Point[T]) []Point[T] {
	dst := make([]Point[T], 4)
	end := algorithms.BoundingBox(points, dst)
	return dst[:end:end]
}
