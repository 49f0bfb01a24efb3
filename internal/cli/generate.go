package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subtour/city"
)

func (c *CLI) generateCommand() *cobra.Command {
	var (
		count         int
		instances     int
		seed          int64
		width, height float64
		out           string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random city files",
		Long: `Generate writes count uniformly random cities in [0,width)x[0,height).
The format follows the output extension (.json, .yaml, .yml). The same seed
always yields the same file.

With --instances k > 1 it writes k independent files named after the output
path with a -000, -001, ... suffix. Raising k never changes earlier files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instances < 1 {
				return fmt.Errorf("%w: --instances must be at least 1", city.ErrCount)
			}

			var (
				batch [][]city.City
				paths []string
				err   error
			)
			if instances == 1 {
				var cities []city.City
				if cities, err = city.Random(count, seed, width, height); err != nil {
					return err
				}
				batch, paths = [][]city.City{cities}, []string{out}
			} else {
				if batch, err = city.RandomBatch(instances, count, seed, width, height); err != nil {
					return err
				}
				paths = instancePaths(out, instances)
			}

			for k, cities := range batch {
				if err = writeCities(paths[k], cities); err != nil {
					return err
				}
			}
			c.Logger.Debug("cities generated", "count", count, "instances", instances, "seed", seed)
			printSuccess(cmd.OutOrStdout(), "wrote %d cities to %d file(s)", count, len(paths))
			for _, p := range paths {
				printFile(cmd.OutOrStdout(), p)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of cities")
	cmd.Flags().IntVar(&instances, "instances", 1, "number of independent files")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 selects the default seed)")
	cmd.Flags().Float64Var(&width, "width", 100, "extent along x")
	cmd.Flags().Float64Var(&height, "height", 100, "extent along y")
	cmd.Flags().StringVarP(&out, "out", "o", "cities.json", "output file")

	return cmd
}

// instancePaths derives "base-000.ext", "base-001.ext", ... from out.
func instancePaths(out string, k int) []string {
	ext := filepath.Ext(out)
	base := strings.TrimSuffix(out, ext)
	paths := make([]string, k)
	for i := range paths {
		paths[i] = fmt.Sprintf("%s-%03d%s", base, i, ext)
	}

	return paths
}

func writeCities(path string, cities []city.City) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return city.Save(f, cities, city.FormatFromPath(path))
}
