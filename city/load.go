package city

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a city list.
type Format string

const (
	// JSON is a JSON array of city objects.
	JSON Format = "json"
	// YAML is a YAML sequence of city mappings.
	YAML Format = "yaml"
)

// FormatFromPath picks a Format from a file extension. Anything that is not
// .yaml/.yml is treated as JSON, matching the loader's historical default.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Load decodes a city list from r.
//
// Errors:
//   - ErrFormat for an unknown format, a decode failure, or a non-finite coordinate.
//   - ErrEmpty when the list has no records.
func Load(r io.Reader, format Format) ([]City, error) {
	var (
		cities []City
		err    error
	)
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&cities)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&cities)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrFormat, format)
	}
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(cities) == 0 {
		return nil, ErrEmpty
	}

	var i int
	for i = range cities {
		if !finite(cities[i].X) || !finite(cities[i].Y) {
			return nil, fmt.Errorf("%w: city %d has a non-finite coordinate", ErrFormat, i)
		}
	}

	return cities, nil
}

// LoadFile opens path and decodes it with the format implied by its extension.
func LoadFile(path string) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cities, err := Load(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return cities, nil
}

// Save encodes cities to w in the requested format.
func Save(w io.Writer, cities []City, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cities)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cities); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: format %q", ErrFormat, format)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
