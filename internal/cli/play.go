package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/internal/render"
	"github.com/katalvlaran/subtour/tsp"
)

var playHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// PlayModel is the bubbletea model for stepping through a solve history.
type PlayModel struct {
	Cities []city.City
	Steps  []tsp.Step
	State  tsp.State
	Cursor int
}

// NewPlayModel starts playback at the first step.
func NewPlayModel(cities []city.City, res tsp.Result) PlayModel {
	return PlayModel{Cities: cities, Steps: res.Steps, State: res.State}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l":
		if m.Cursor < len(m.Steps)-1 {
			m.Cursor++
		}
	case "left", "h":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		if len(m.Steps) > 0 {
			m.Cursor = len(m.Steps) - 1
		}
	}

	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Step %d/%d", m.Cursor+1, len(m.Steps))))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.State.String()))
	b.WriteString("\n")
	if len(m.Steps) == 0 {
		b.WriteString(StyleWarning.Render("no steps recorded"))
	} else {
		step := m.Steps[m.Cursor]
		b.WriteString(StyleValue.Render(step.Description))
		b.WriteString("\n")
		b.WriteString(render.Panel(m.Cities, step))
	}
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("←/→ step  home/end jump  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (c *CLI) playCommand() *cobra.Command {
	var o solveOpts

	cmd := &cobra.Command{
		Use:   "play <cities>",
		Short: "Step through a solve interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.solve(cmd, args[0], o)
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				NewPlayModel(s.cities, s.result),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()

			return err
		},
	}
	o.register(cmd)

	return cmd
}
