package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/internal/config"
	"github.com/katalvlaran/subtour/internal/metrics"
	"github.com/katalvlaran/subtour/tsp"
)

// Output formats for the solve command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// solveOpts holds flags shared by every command that runs the solver.
type solveOpts struct {
	configPath    string
	maxIterations int
	metricsFile   string
}

func (o *solveOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "TOML config file")
	cmd.Flags().IntVar(&o.maxIterations, "max-iterations", 0, "iteration cap (overrides config)")
}

// solved bundles one run's inputs and outputs.
type solved struct {
	cfg    config.Config
	cities []city.City
	result tsp.Result
	runID  string
}

// solve loads config and cities, runs the controller and exports metrics.
// Exhaustion is reported as a warning, never as an error.
func (c *CLI) solve(cmd *cobra.Command, path string, o solveOpts) (solved, error) {
	var out solved

	cfg, err := c.loadConfig(o.configPath)
	if err != nil {
		return out, err
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.Solver.MaxIterations = o.maxIterations
	}
	if o.metricsFile != "" {
		cfg.Metrics.Textfile = o.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return out, err
	}

	cities, err := city.LoadFile(path)
	if err != nil {
		return out, err
	}
	if err = cmd.Context().Err(); err != nil {
		return out, err
	}

	logger, runID := runLogger(c.Logger)
	var (
		hooks tsp.Hooks
		rec   *metrics.Recorder
	)
	if cfg.Metrics.Textfile != "" {
		rec = metrics.NewRecorder(true)
		hooks = rec
	}

	prog := newProgress(logger)
	ctrl := tsp.NewController(tsp.Options{
		MaxIterations: cfg.Solver.MaxIterations,
		Logger:        logger,
		Hooks:         hooks,
	})
	res, err := ctrl.Solve(cities)
	switch {
	case errors.Is(err, tsp.ErrIterationLimit):
		printWarning(cmd.ErrOrStderr(), "no single tour after %d iterations", len(res.Steps))
	case err != nil:
		return out, err
	default:
		prog.done(fmt.Sprintf("Solved %d cities in %d iterations", len(cities), len(res.Steps)))
	}

	if rec != nil {
		if err = rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return out, fmt.Errorf("write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.Metrics.Textfile)
	}

	return solved{cfg: cfg, cities: cities, result: res, runID: runID}, nil
}

func (c *CLI) solveCommand() *cobra.Command {
	var (
		o      solveOpts
		format string
	)

	cmd := &cobra.Command{
		Use:   "solve <cities>",
		Short: "Solve a city file and print the iteration history",
		Long: `Solve runs the assignment/subtour-patching loop on a JSON or YAML city
file and prints every iteration. Reaching the iteration cap is a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTable, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
			}
			s, err := c.solve(cmd, args[0], o)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), s, format)
		},
	}
	o.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, yaml")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-textfile", "", "write Prometheus metrics to this file")

	return cmd
}

// exportDoc is the JSON/YAML shape of a solve.
type exportDoc struct {
	tsp.Result `yaml:",inline"`

	Run    string      `json:"run" yaml:"run"`
	Cities []city.City `json:"cities" yaml:"cities"`
}

func writeResult(w io.Writer, s solved, format string) error {
	doc := exportDoc{Run: s.runID, Cities: s.cities, Result: s.result}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeTable(w, s)
		return nil
	}
}

// writeTable prints one row per step followed by a summary.
func writeTable(w io.Writer, s solved) {
	rows := make([][]string, 0, len(s.result.Steps))
	for _, st := range s.result.Steps {
		forbidden := make([]string, len(st.Forbidden))
		for i, e := range st.Forbidden {
			forbidden[i] = e.String()
		}
		rows = append(rows, []string{
			fmt.Sprint(st.Iteration),
			fmt.Sprint(len(st.Subtours)),
			strings.Join(forbidden, " "),
			st.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Iter", "Subtours", "Forbidden", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row < len(s.result.Steps) && s.result.Steps[row].IsFinalTour {
				return StyleSuccess
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, StyleTitle.Render("Subtour elimination"))
	fmt.Fprintln(w, t.Render())
	printKeyValue(w, "Run", s.runID)
	printKeyValue(w, "Cities", fmt.Sprint(len(s.cities)))
	printKeyValue(w, "State", s.result.State.String())
	printKeyValue(w, "Iterations", fmt.Sprint(len(s.result.Steps)))
	if final, ok := s.result.Final(); ok {
		printKeyValue(w, "Length", StyleNumber.Render(fmt.Sprintf("%.4f", s.result.TourLength)))
		if tour, err := final.Tour(); err == nil {
			printKeyValue(w, "Tour", fmt.Sprint(tour))
		}
		printSuccess(w, "complete tour found")
	}
}
