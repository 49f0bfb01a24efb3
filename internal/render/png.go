package render

import (
	"io"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/tsp"
)

// PNG draws step over cities on a black canvas and encodes it to w.
// Subtour links use the cycling palette; cities are white dots.
func PNG(w io.Writer, cities []city.City, step tsp.Step, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}
	pts, segs := layout(cities, step)

	dc := gg.NewContext(o.Width, o.Height)
	defer dc.Close()

	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, float64(o.Width), float64(o.Height))
	dc.Fill()

	dc.SetLineWidth(o.LineWidth)
	for _, s := range segs {
		x1, y1 := toPixel(s.from, o)
		x2, y2 := toPixel(s.to, o)
		dc.SetRGB(s.color.r, s.color.g, s.color.b)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetRGB(1, 1, 1)
	for _, p := range pts {
		x, y := toPixel(p, o)
		dc.DrawCircle(x, y, o.PointRadius)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
