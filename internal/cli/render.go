package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subtour/internal/render"
	"github.com/katalvlaran/subtour/tsp"
)

// Frame formats for the render command.
const (
	frameFormatPNG = "png"
	frameFormatSVG = "svg"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		o      solveOpts
		outDir string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <cities>",
		Short: "Write one image per solve step",
		Long: `Render solves the city file and writes step-000.png, step-001.png, ...
(or .svg) into the output directory, one frame per iteration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != frameFormatPNG && format != frameFormatSVG {
				return fmt.Errorf("unknown format %q (want png or svg)", format)
			}
			s, err := c.solve(cmd, args[0], o)
			if err != nil {
				return err
			}
			if err = os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			opts := render.Options{
				Width:       s.cfg.Render.Width,
				Height:      s.cfg.Render.Height,
				PointRadius: s.cfg.Render.PointRadius,
				LineWidth:   s.cfg.Render.LineWidth,
			}
			prog := newProgress(c.Logger)
			for _, step := range s.result.Steps {
				if err = cmd.Context().Err(); err != nil {
					return err
				}
				path := filepath.Join(outDir, fmt.Sprintf("step-%03d.%s", step.Iteration, format))
				if err = writeFrame(cmd, path, format, s, step, opts); err != nil {
					return err
				}
				printFile(cmd.OutOrStdout(), path)
			}
			prog.done(fmt.Sprintf("Rendered %d frames", len(s.result.Steps)))

			return nil
		},
	}
	o.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", frameFormatPNG, "frame format: png, svg")

	return cmd
}

func writeFrame(cmd *cobra.Command, path, format string, s solved, step tsp.Step, opts render.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == frameFormatSVG {
		return render.SVG(cmd.Context(), f, s.cities, step, opts)
	}

	return render.PNG(f, s.cities, step, opts)
}
