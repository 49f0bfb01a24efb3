package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/tsp"
)

// pointsPerUnit scales Graphviz positions (points) from pixels.
const pointsPerUnit = 72.0

// DOT returns a Graphviz digraph with every city pinned at its normalized
// position and one colored edge per subtour link.
func DOT(cities []city.City, step tsp.Step, o Options) string {
	pts, _ := layout(cities, step)

	var b strings.Builder
	b.WriteString("digraph step {\n")
	fmt.Fprintf(&b, "  label=%q;\n", step.Description)
	b.WriteString("  bgcolor=black; fontcolor=white;\n")
	b.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=8, width=0.25, fixedsize=true];\n")
	fmt.Fprintf(&b, "  edge [arrowsize=0.5, penwidth=%g];\n", o.LineWidth)

	for i, p := range pts {
		x, y := toPixel(p, o)
		fmt.Fprintf(&b, "  n%d [label=%q, pos=\"%.2f,%.2f!\"];\n", i, cities[i].Label(fmt.Sprint(i)), x/pointsPerUnit, (float64(o.Height)-y)/pointsPerUnit)
	}
	for i, s := range step.Subtours {
		col := palette[i%len(palette)].hex()
		for _, e := range s.Edges() {
			if e.From < 0 || e.To < 0 || e.From >= len(pts) || e.To >= len(pts) || e.From == e.To {
				continue
			}
			fmt.Fprintf(&b, "  n%d -> n%d [color=%q];\n", e.From, e.To, col)
		}
	}
	b.WriteString("}\n")

	return b.String()
}

// SVG renders DOT with the neato engine, honoring the pinned positions.
func SVG(ctx context.Context, w io.Writer, cities []city.City, step tsp.Step, o Options) error {
	if err := o.validate(); err != nil {
		return err
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(DOT(cities, step, o)))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = w.Write(buf.Bytes())

	return err
}
