package hull

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/osuushi/hull/dbg"
)

// Debug rendering of a point cloud and its hull. This exists for
// eyeballing results while developing, not for production output.

const drawPadding = 16

// DrawOptions controls RenderPNG.
type DrawOptions struct {
	// Scale in pixels per coordinate unit. Zero means 1.
	Scale float64
	// Labels annotates each hull vertex with a readable debug name.
	Labels bool
}

// RenderPNG renders points and the polygon through hullPoints to a
// PNG file, with the y axis pointing up the image.
func RenderPNG(points, hullPoints []Point[float64], path string, opts DrawOptions) error {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Input cloud
	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	// Hull outline and vertices
	if len(hullPoints) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(hullPoints[0].X, hullPoints[0].Y)
		for _, p := range hullPoints[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()

		c.SetRGB(0, 1, 0)
		for i := range hullPoints {
			p := hullPoints[i]
			c.DrawCircle(p.X, p.Y, 3/scale)
			c.Fill()
			if opts.Labels {
				// Labels are drawn unflipped or they come out
				// mirrored.
				c.Push()
				c.Identity()
				x := drawPadding + scale*(p.X-minX)
				y := float64(height) - (drawPadding + scale*(p.Y-minY))
				c.DrawString(dbg.Name(&hullPoints[i]), x+4, y-4)
				c.Pop()
			}
		}
	}

	return c.SavePNG(path)
}
