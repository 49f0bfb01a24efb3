package city

// displayExtent is the half-width of the display square produced by Normalize.
// A small margin keeps points off the viewport border.
const displayExtent = 0.975

// Point is a display-space coordinate in [-displayExtent, displayExtent].
type Point struct {
	X, Y float64
}

// Normalize maps every city into the display square, independently per axis.
// An axis with zero span is treated as span 1 so a degenerate input (one
// city, or collinear cities) still lands inside the square.
//
// The result is for renderers only; distances for optimization must come
// from the original coordinates.
//
// Complexity: O(n).
func Normalize(cities []City) []Point {
	if len(cities) == 0 {
		return nil
	}
	var (
		minX, maxX = cities[0].X, cities[0].X
		minY, maxY = cities[0].Y, cities[0].Y
		c          City
	)
	for _, c = range cities {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}

	out := make([]Point, len(cities))
	var i int
	for i, c = range cities {
		out[i] = Point{
			X: (c.X-minX)/dx*2*displayExtent - displayExtent,
			Y: (c.Y-minY)/dy*2*displayExtent - displayExtent,
		}
	}

	return out
}
