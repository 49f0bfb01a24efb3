// Package cli implements the subtour command-line interface.
//
// # Commands
//
//   - solve: run the heuristic on a city file and print the step history
//   - play: step through the history interactively
//   - render: write one PNG or SVG frame per step
//   - generate: write a random city file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Without it the
// level comes from the [log] section of the config file. Every solve is
// tagged with a fresh run ID.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subtour/internal/config"
)

const appName = "subtour"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Subtour solves small TSP instances by assignment and subtour patching",
		Long:         `Subtour repeatedly solves a minimum-cost assignment over the city distance matrix, forbids one edge of every subtour it finds, and records each iteration until a single tour emerges.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// loadConfig reads path and applies its log level unless --verbose won.
func (c *CLI) loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if !c.verbose {
		lvl, _ := cfg.LogLevel()
		c.SetLogLevel(lvl)
	}
	c.Logger.Debug("config loaded", "path", path, "max_iterations", cfg.Solver.MaxIterations)

	return cfg, nil
}
