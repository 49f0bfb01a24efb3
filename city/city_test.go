package city_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subtour/city"
)

func TestDistance(t *testing.T) {
	a := city.City{X: 0, Y: 0}
	b := city.City{X: 3, Y: 4}
	assert.Equal(t, 5.0, city.Distance(a, b))
	assert.Equal(t, city.Distance(a, b), city.Distance(b, a))
	assert.Equal(t, 0.0, city.Distance(a, a))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "depot", city.City{Name: "depot"}.Label("0"))
	assert.Equal(t, "7", city.City{}.Label("7"))
}

func TestLoadJSON(t *testing.T) {
	in := `[{"x": 1.5, "y": 2}, {"x": -3, "y": 0, "name": "west"}]`
	cities, err := city.Load(strings.NewReader(in), city.JSON)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, city.City{X: 1.5, Y: 2}, cities[0])
	assert.Equal(t, "west", cities[1].Name)
}

func TestLoadYAML(t *testing.T) {
	in := "- x: 0\n  y: 0\n- x: 10\n  y: 0\n  name: east\n"
	cities, err := city.Load(strings.NewReader(in), city.YAML)
	require.NoError(t, err)
	assert.Equal(t, []city.City{{X: 0, Y: 0}, {X: 10, Y: 0, Name: "east"}}, cities)
}

func TestLoadErrors(t *testing.T) {
	_, err := city.Load(strings.NewReader(`[]`), city.JSON)
	assert.ErrorIs(t, err, city.ErrEmpty)

	_, err = city.Load(strings.NewReader(``), city.JSON)
	assert.ErrorIs(t, err, city.ErrEmpty)

	_, err = city.Load(strings.NewReader(`{"x": 1}`), city.JSON)
	assert.ErrorIs(t, err, city.ErrFormat)

	_, err = city.Load(strings.NewReader(`[]`), city.Format("csv"))
	assert.ErrorIs(t, err, city.ErrFormat)
}

func TestSaveRoundTripFile(t *testing.T) {
	cities := []city.City{{X: 1, Y: 2, Name: "a"}, {X: 3, Y: 4}}
	dir := t.TempDir()

	for _, name := range []string{"cities.json", "cities.yaml"} {
		path := filepath.Join(dir, name)
		var buf bytes.Buffer
		require.NoError(t, city.Save(&buf, cities, city.FormatFromPath(path)))
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

		got, err := city.LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, cities, got, name)
	}

	_, err := city.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, city.YAML, city.FormatFromPath("a/b.YML"))
	assert.Equal(t, city.YAML, city.FormatFromPath("b.yaml"))
	assert.Equal(t, city.JSON, city.FormatFromPath("b.json"))
	assert.Equal(t, city.JSON, city.FormatFromPath("noext"))
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, city.Normalize(nil))

	pts := city.Normalize([]city.City{{X: 0, Y: 100}, {X: 50, Y: 150}, {X: 100, Y: 200}})
	require.Len(t, pts, 3)
	assert.InDelta(t, -0.975, pts[0].X, 1e-12)
	assert.InDelta(t, -0.975, pts[0].Y, 1e-12)
	assert.InDelta(t, 0.0, pts[1].X, 1e-12)
	assert.InDelta(t, 0.975, pts[2].X, 1e-12)
	assert.InDelta(t, 0.975, pts[2].Y, 1e-12)

	// Zero span on an axis keeps every point inside the display square.
	flat := city.Normalize([]city.City{{X: 5, Y: 1}, {X: 5, Y: 3}})
	for _, p := range flat {
		assert.LessOrEqual(t, math.Abs(p.X), 0.975)
		assert.LessOrEqual(t, math.Abs(p.Y), 0.975)
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, err := city.Random(20, 7, 100, 50)
	require.NoError(t, err)
	b, err := city.Random(20, 7, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for _, c := range a {
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.Less(t, c.X, 100.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.Less(t, c.Y, 50.0)
	}
	assert.Equal(t, "c19", a[19].Name)

	zero, err := city.Random(5, 0, 1, 1)
	require.NoError(t, err)
	one, err := city.Random(5, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, one, zero, "seed 0 selects the default seed")
}

func TestRandomErrors(t *testing.T) {
	_, err := city.Random(-1, 1, 1, 1)
	assert.ErrorIs(t, err, city.ErrCount)
	_, err = city.Random(3, 1, 0, 1)
	assert.ErrorIs(t, err, city.ErrFormat)
	_, err = city.RandomBatch(-2, 3, 1, 1, 1)
	assert.ErrorIs(t, err, city.ErrCount)
}

func TestRandomBatchPrefixStable(t *testing.T) {
	small, err := city.RandomBatch(2, 6, 9, 10, 10)
	require.NoError(t, err)
	large, err := city.RandomBatch(4, 6, 9, 10, 10)
	require.NoError(t, err)
	require.Len(t, large, 4)
	assert.Equal(t, small, large[:2])
	assert.NotEqual(t, large[0], large[1])
}
