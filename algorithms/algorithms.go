// Package algorithms implements convex hull computation over 2D
// points with generic numeric coordinates. Four classical algorithms
// are provided with different asymptotic trade-offs, plus an
// axis-aligned bounding box which shares the same conventions.
//
// Every algorithm returns its result as a count of points written to
// the leading sub-range of a slice, and all of them emit hull
// vertices in counter-clockwise order. GrahamScan, MonotoneChain and
// Chan reorder their input in place; callers that need the original
// ordering must copy first. JarvisMarch and BoundingBox leave the
// input untouched.
package algorithms

import "github.com/pkg/errors"

// Algorithm selects one of the convex hull implementations.
type Algorithm int

const (
	// AlgorithmGrahamScan is the default: O(n log n) with a lower
	// practical constant than Chan's algorithm.
	AlgorithmGrahamScan Algorithm = iota
	// AlgorithmMonotoneChain is O(n log n) with a simpler sort.
	AlgorithmMonotoneChain
	// AlgorithmJarvisMarch is O(n*h), best for tiny hulls.
	AlgorithmJarvisMarch
	// AlgorithmChan is O(n log h), asymptotically the best of the lot.
	AlgorithmChan
)

var algorithmNames = map[Algorithm]string{
	AlgorithmGrahamScan:    "graham_scan",
	AlgorithmMonotoneChain: "monotone_chain",
	AlgorithmJarvisMarch:   "jarvis_march",
	AlgorithmChan:          "chan",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm maps an algorithm name ("graham_scan",
// "monotone_chain", "jarvis_march" or "chan") to its Algorithm value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown convex hull algorithm %q", name)
}

// ComputeConvexHull routes to the selected algorithm and writes the
// hull to dst, returning the number of vertices written. dst must
// hold at least 2*len(points) entries (MonotoneChain needs the full
// headroom; the others need at most len(points)). points is reordered
// in place except under AlgorithmJarvisMarch.
//
// An Algorithm value outside the enumeration is a programming error
// and panics.
func ComputeConvexHull[T Coord](algorithm Algorithm, points, dst []Point[T]) int {
	switch algorithm {
	case AlgorithmGrahamScan:
		end := GrahamScan(points)
		return copy(dst, points[:end])
	case AlgorithmMonotoneChain:
		return MonotoneChain(points, dst)
	case AlgorithmJarvisMarch:
		return JarvisMarch(points, dst)
	case AlgorithmChan:
		return Chan(points, dst)
	}
	panic(errors.Errorf("convex hull algorithm out of range: %d", int(algorithm)))
}
