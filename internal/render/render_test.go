package render_test

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/internal/render"
	"github.com/katalvlaran/subtour/subtour"
	"github.com/katalvlaran/subtour/tsp"
)

func squareSteps(t *testing.T) ([]city.City, []tsp.Step) {
	t.Helper()
	cities := []city.City{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	res, err := tsp.NewController(tsp.Options{}).Solve(cities)
	require.NoError(t, err)
	require.Len(t, res.Steps, 2)

	return cities, res.Steps
}

func texts(lines []render.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}

	return out
}

func TestLinesIntermediate(t *testing.T) {
	cities, steps := squareSteps(t)

	assert.Equal(t, []string{
		"Assignment Matrix - Iteration 0",
		"Subtours detected: 2",
		"  Subtour 0 (size 2): 0->1",
		"  Subtour 1 (size 2): 2->3",
		"Assignment Edges:",
		"  0->1(10) | 1->0(10) | 2->3(10)",
		"  3->2(10)",
		"STATUS: Patching subtours...",
	}, texts(render.Lines(cities, steps[0])))
}

func TestLinesFinal(t *testing.T) {
	cities, steps := squareSteps(t)
	lines := render.Lines(cities, steps[1])

	assert.Equal(t, "  Subtour 0 (size 4): 0->3->2->1", lines[2].Text)
	assert.Equal(t, render.KindStatus, lines[len(lines)-1].Kind)
	assert.Equal(t, "STATUS: COMPLETE TOUR FOUND!", lines[len(lines)-1].Text)
}

// TestLinesTruncation covers the 8-city and 12-edge limits.
func TestLinesTruncation(t *testing.T) {
	cities, err := city.Random(14, 3, 100, 100)
	require.NoError(t, err)

	cycle := make([]int, 14)
	next := make([]int, 14)
	for i := range cycle {
		cycle[i] = i
		next[i] = (i + 1) % 14
	}
	step := tsp.Step{Assignment: next, Subtours: []subtour.Subtour{cycle}, IsFinalTour: true}

	got := texts(render.Lines(cities, step))
	assert.Equal(t, "  Subtour 0 (size 14): 0->1->2->3->4->5->6->7->...", got[2])

	var edgeRows []string
	for _, l := range render.Lines(cities, step) {
		if l.Kind == render.KindEdges {
			edgeRows = append(edgeRows, l.Text)
		}
	}
	require.Len(t, edgeRows, 5)
	assert.Equal(t, "  ...", edgeRows[4])
	assert.Equal(t, 3, strings.Count(edgeRows[3], "->"))
}

func TestPanelContainsText(t *testing.T) {
	cities, steps := squareSteps(t)
	out := render.Panel(cities, steps[1])
	assert.Contains(t, out, "Assignment Matrix - Iteration 1")
	assert.Contains(t, out, "COMPLETE TOUR FOUND")
}

func TestPNG(t *testing.T) {
	cities, steps := squareSteps(t)
	o := render.Options{Width: 120, Height: 90, PointRadius: 3, LineWidth: 1}

	var buf bytes.Buffer
	require.NoError(t, render.PNG(&buf, cities, steps[0], o))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	require.ErrorIs(t, render.PNG(&buf, cities, steps[0], render.Options{}), render.ErrInvalidOptions)
}

func TestDOT(t *testing.T) {
	cities, steps := squareSteps(t)
	dot := render.DOT(cities, steps[0], render.DefaultOptions())

	assert.True(t, strings.HasPrefix(dot, "digraph step {"))
	assert.Contains(t, dot, `n0 [label="0", pos="0.14,0.14!"];`)
	assert.Contains(t, dot, `n0 -> n1 [color="#00ff00"];`)
	assert.Contains(t, dot, `n2 -> n3 [color="#ff0000"];`)
	assert.Equal(t, 4, strings.Count(dot, " -> "))
}

func TestSVG(t *testing.T) {
	cities, steps := squareSteps(t)

	var buf bytes.Buffer
	require.NoError(t, render.SVG(context.Background(), &buf, cities, steps[1], render.DefaultOptions()))
	assert.Contains(t, buf.String(), "<svg")
}
