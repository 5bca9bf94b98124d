package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrahamScan(t *testing.T) {
	t.Run("canonical ten point cloud", func(t *testing.T) {
		points := []Point[float64]{
			{13, 5}, {12, 8}, {10, 3}, {7, 7},
			{9, 6}, {4, 0}, {7, 1}, {7, 4},
			{3, 3}, {1, 1},
		}
		expected := []Point[float64]{
			{4, 0}, {7, 1}, {13, 5},
			{12, 8}, {7, 7}, {1, 1},
		}

		end := GrahamScan(points)

		require.Equal(t, len(expected), end)
		assert.Equal(t, expected, points[:end])
	})

	t.Run("integer coordinates", func(t *testing.T) {
		points := []Point[int]{
			{13, 5}, {12, 8}, {10, 3}, {7, 7},
			{9, 6}, {4, 0}, {7, 1}, {7, 4},
			{3, 3}, {1, 1},
		}
		expected := []Point[int]{
			{4, 0}, {7, 1}, {13, 5},
			{12, 8}, {7, 7}, {1, 1},
		}

		end := GrahamScan(points)

		require.Equal(t, len(expected), end)
		assert.Equal(t, expected, points[:end])
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0, GrahamScan([]Point[float64]{}))
	})

	t.Run("single point", func(t *testing.T) {
		points := []Point[float64]{{2, 3}}
		assert.Equal(t, 1, GrahamScan(points))
		assert.Equal(t, Point[float64]{2, 3}, points[0])
	})

	t.Run("two points", func(t *testing.T) {
		points := []Point[float64]{{5, 5}, {1, 1}}
		end := GrahamScan(points)
		require.Equal(t, 2, end)
		// Reordered so the pivot comes first.
		assert.Equal(t, []Point[float64]{{1, 1}, {5, 5}}, points)
	})

	t.Run("three points come back sorted around the pivot", func(t *testing.T) {
		points := []Point[float64]{{0, 1}, {1, 0}, {0, 0}}
		end := GrahamScan(points)
		require.Equal(t, 3, end)
		assert.Equal(t, []Point[float64]{{0, 0}, {1, 0}, {0, 1}}, points)
	})

	t.Run("coincident points collapse to one", func(t *testing.T) {
		points := []Point[float64]{{2, 2}, {2, 2}, {2, 2}, {2, 2}, {2, 2}}
		end := GrahamScan(points)
		require.Equal(t, 1, end)
		assert.Equal(t, Point[float64]{2, 2}, points[0])
	})

	t.Run("three collinear points keep only the endpoints", func(t *testing.T) {
		points := []Point[float64]{{2, 2}, {1, 1}, {3, 3}}
		end := GrahamScan(points)
		require.Equal(t, 2, end)
		assert.Equal(t, []Point[float64]{{1, 1}, {3, 3}}, points[:end])
	})

	t.Run("fully collinear input degenerates to the endpoints", func(t *testing.T) {
		points := []Point[float64]{{1, 1}, {-3, 1}, {-10, 1}, {10, 1}}
		end := GrahamScan(points)
		require.Equal(t, 2, end)
		assert.Equal(t, []Point[float64]{{-10, 1}, {10, 1}}, points[:end])
	})

	t.Run("collinear through the interior", func(t *testing.T) {
		// (5, 5) sits on the hull edge between (0, 0) and (10, 10).
		points := []Point[float64]{{0, 0}, {5, 5}, {10, 10}, {0, 10}, {7, 2}}
		end := GrahamScan(points)
		assertHullSet(t, []Point[float64]{{0, 0}, {7, 2}, {10, 10}, {0, 10}}, points[:end])
	})

	t.Run("duplicate pivot points do not corrupt the scan", func(t *testing.T) {
		points := []Point[float64]{
			{4, 0}, {13, 5}, {4, 0}, {12, 8},
			{4, 0}, {1, 1}, {7, 7},
		}
		end := GrahamScan(points)
		assertHullSet(t, []Point[float64]{{4, 0}, {13, 5}, {12, 8}, {7, 7}, {1, 1}}, points[:end])
	})

	t.Run("square with collinear edge midpoints", func(t *testing.T) {
		points := []Point[float64]{
			{0, 0}, {5, 0}, {10, 0}, {10, 5},
			{10, 10}, {5, 10}, {0, 10}, {0, 5},
		}
		end := GrahamScan(points)
		assertHullSet(t, []Point[float64]{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, points[:end])
	})
}

// assertHullSet asserts that the hull contains exactly the expected
// vertices, regardless of which one it starts from.
func assertHullSet[T Coord](t *testing.T, expected, hull []Point[T]) {
	t.Helper()
	require.Equal(t, len(expected), len(hull))
	for _, want := range expected {
		found := false
		for _, got := range hull {
			if got.Equals(want) {
				found = true
				break
			}
		}
		assert.True(t, found, "expected hull vertex %v missing from %v", want, hull)
	}
}
