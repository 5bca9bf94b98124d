package algorithms

// BoundingBox writes the four corners of the axis-aligned bounding
// box of points to dst, counter-clockwise from the bottom-left
// corner, and returns the number of points written: 4, or 0 for an
// empty input, which leaves dst untouched. The input is read-only.
func BoundingBox[T Coord](points, dst []Point[T]) int {
	if len(points) == 0 {
		return 0
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	dst[0] = Point[T]{minX, minY}
	dst[1] = Point[T]{maxX, minY}
	dst[2] = Point[T]{maxX, maxY}
	dst[3] = Point[T]{minX, maxY}
	return 4
}
