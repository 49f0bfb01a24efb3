package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/tsp"
)

const (
	maxSubtourCities = 8
	maxPanelEdges    = 12
	edgesPerLine     = 3

	statusFinal    = "STATUS: COMPLETE TOUR FOUND!"
	statusPatching = "STATUS: Patching subtours..."
)

// LineKind classifies a panel line for styling.
type LineKind int

const (
	KindTitle LineKind = iota
	KindInfo
	KindSubtour
	KindHeading
	KindEdges
	KindStatus
)

// Line is one panel row. Index is the subtour ordinal for KindSubtour.
type Line struct {
	Kind  LineKind
	Index int
	Text  string
}

// Lines lays out the step panel. Subtours list at most 8 cities, assignment
// edges at most 12 (3 per row) with distances rounded to whole units.
func Lines(cities []city.City, step tsp.Step) []Line {
	out := []Line{
		{Kind: KindTitle, Text: fmt.Sprintf("Assignment Matrix - Iteration %d", step.Iteration)},
		{Kind: KindInfo, Text: fmt.Sprintf("Subtours detected: %d", len(step.Subtours))},
	}

	var b strings.Builder
	for i, s := range step.Subtours {
		b.Reset()
		fmt.Fprintf(&b, "  Subtour %d (size %d): ", i, len(s))
		for j := 0; j < len(s) && j < maxSubtourCities; j++ {
			fmt.Fprintf(&b, "%d", s[j])
			if j < len(s)-1 {
				b.WriteString("->")
			}
		}
		if len(s) > maxSubtourCities {
			b.WriteString("...")
		}
		out = append(out, Line{Kind: KindSubtour, Index: i, Text: b.String()})
	}

	out = append(out, Line{Kind: KindHeading, Text: "Assignment Edges:"})
	var (
		row   []string
		pairs = step.Pairs()
	)
	for k, p := range pairs {
		if k == maxPanelEdges {
			break
		}
		row = append(row, fmt.Sprintf("%d->%d(%s)", p.From, p.To, edgeDistance(cities, p.From, p.To)))
		if len(row) == edgesPerLine {
			out = append(out, Line{Kind: KindEdges, Text: "  " + strings.Join(row, " | ")})
			row = row[:0]
		}
	}
	if len(row) > 0 {
		out = append(out, Line{Kind: KindEdges, Text: "  " + strings.Join(row, " | ")})
	}
	if len(pairs) > maxPanelEdges {
		out = append(out, Line{Kind: KindEdges, Text: "  ..."})
	}

	status := statusPatching
	if step.IsFinalTour {
		status = statusFinal
	}

	return append(out, Line{Kind: KindStatus, Text: status})
}

// edgeDistance formats the original-coordinate distance, or "?" when the
// indices do not address cities (a step from SolveMatrix).
func edgeDistance(cities []city.City, from, to int) string {
	if from < 0 || to < 0 || from >= len(cities) || to >= len(cities) {
		return "?"
	}

	return fmt.Sprintf("%.0f", math.Round(city.Distance(cities[from], cities[to])))
}

var (
	subtourColors = []lipgloss.Color{
		lipgloss.Color("35"),  // green
		lipgloss.Color("167"), // red
		lipgloss.Color("220"), // yellow
		lipgloss.Color("170"), // magenta
		lipgloss.Color("36"),  // cyan
	}

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("147"))
	styleHeading  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleEdges    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleFinal    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	stylePatching = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Panel renders Lines as a bordered, colored block.
func Panel(cities []city.City, step tsp.Step) string {
	lines := Lines(cities, step)
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = styleFor(l, step.IsFinalTour).Render(l.Text)
	}

	return styleBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func styleFor(l Line, final bool) lipgloss.Style {
	switch l.Kind {
	case KindTitle:
		return styleTitle
	case KindInfo:
		return styleInfo
	case KindSubtour:
		return lipgloss.NewStyle().Foreground(subtourColors[l.Index%len(subtourColors)])
	case KindHeading:
		return styleHeading
	case KindStatus:
		if final {
			return styleFinal
		}
		return stylePatching
	default:
		return styleEdges
	}
}
