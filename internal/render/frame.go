package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/tsp"
)

// ErrInvalidOptions is returned for non-positive frame dimensions.
var ErrInvalidOptions = errors.New("render: invalid frame options")

// Options sizes a frame in pixels.
type Options struct {
	Width       int
	Height      int
	PointRadius float64
	LineWidth   float64
}

// DefaultOptions matches the [render] defaults of the config file.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, PointRadius: 5, LineWidth: 2}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.PointRadius <= 0 || o.LineWidth <= 0 {
		return fmt.Errorf("%w: %dx%d radius %g line %g", ErrInvalidOptions, o.Width, o.Height, o.PointRadius, o.LineWidth)
	}

	return nil
}

// rgb is a color with channels in [0,1].
type rgb struct{ r, g, b float64 }

// Subtour colors cycle green, red, yellow, magenta, cyan.
var palette = []rgb{
	{0, 1, 0},
	{1, 0, 0},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.r*255), int(c.g*255), int(c.b*255))
}

// segment is one drawn link in normalized display space.
type segment struct {
	from, to city.Point
	color    rgb
}

// layout projects cities and colors every subtour link. Links whose
// endpoints are not cities are skipped.
func layout(cities []city.City, step tsp.Step) ([]city.Point, []segment) {
	pts := city.Normalize(cities)

	var segs []segment
	for i, s := range step.Subtours {
		col := palette[i%len(palette)]
		for _, e := range s.Edges() {
			if e.From < 0 || e.To < 0 || e.From >= len(pts) || e.To >= len(pts) || e.From == e.To {
				continue
			}
			segs = append(segs, segment{from: pts[e.From], to: pts[e.To], color: col})
		}
	}

	return pts, segs
}

// toPixel maps a display point to image coordinates (y grows downward).
func toPixel(p city.Point, o Options) (float64, float64) {
	return (p.X + 1) / 2 * float64(o.Width), (1 - p.Y) / 2 * float64(o.Height)
}
