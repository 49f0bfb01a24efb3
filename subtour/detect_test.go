package subtour_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subtour/subtour"
)

func TestDetect_SingleCycle(t *testing.T) {
	got, err := subtour.Detect([]int{2, 0, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []subtour.Subtour{{0, 2, 3, 1}}, got)
	require.NoError(t, subtour.CheckPartition(got, 4))
}

func TestDetect_DiscoveryOrder(t *testing.T) {
	// 0↔3, 1 fixed, 2→4→5→2
	got, err := subtour.Detect([]int{3, 1, 4, 0, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, []subtour.Subtour{{0, 3}, {1}, {2, 4, 5}}, got)
	require.NoError(t, subtour.CheckPartition(got, 6))
}

func TestDetect_Empty(t *testing.T) {
	got, err := subtour.Detect(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDetect_BrokenChainContinues(t *testing.T) {
	// 0→1→(missing); 2↔3 is intact and must still be found.
	got, err := subtour.Detect([]int{1, -1, 3, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, subtour.ErrBrokenChain)

	var ce *subtour.ChainError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, subtour.ChainError{Start: 0, At: 1, Next: -1}, *ce)

	assert.Equal(t, []subtour.Subtour{{0, 1}, {2, 3}}, got)
	assert.NoError(t, subtour.CheckPartition(got, 4), "partial walk still claims its cities")
}

func TestDetect_MergeIntoEarlierCycle(t *testing.T) {
	// 2→0 points into the already-closed cycle {0,1}.
	got, err := subtour.Detect([]int{1, 0, 0})
	assert.ErrorIs(t, err, subtour.ErrBrokenChain)
	assert.Equal(t, []subtour.Subtour{{0, 1}, {2}}, got)
	assert.Contains(t, err.Error(), "walk from 2 stopped at 2 (successor 0)")
}

func TestDetect_OutOfRangeSuccessor(t *testing.T) {
	got, err := subtour.Detect([]int{5, 1})
	assert.ErrorIs(t, err, subtour.ErrBrokenChain)
	assert.Equal(t, []subtour.Subtour{{0}, {1}}, got)
}

func TestCheckPartition(t *testing.T) {
	assert.NoError(t, subtour.CheckPartition([]subtour.Subtour{{1, 0}, {2}}, 3))
	assert.ErrorIs(t, subtour.CheckPartition([]subtour.Subtour{{0, 1}}, 3), subtour.ErrNotPartition)
	assert.ErrorIs(t, subtour.CheckPartition([]subtour.Subtour{{0, 1}, {1, 2}}, 3), subtour.ErrNotPartition)
	assert.ErrorIs(t, subtour.CheckPartition([]subtour.Subtour{{0, 3}}, 2), subtour.ErrNotPartition)
	assert.ErrorIs(t, subtour.CheckPartition([]subtour.Subtour{{0, 1}, {}}, 2), subtour.ErrNotPartition)
}

func TestSubtourEdges(t *testing.T) {
	assert.Equal(t, []subtour.Edge{{From: 4, To: 4}}, subtour.Subtour{4}.Edges())
	assert.Equal(t,
		[]subtour.Edge{{From: 0, To: 2}, {From: 2, To: 1}, {From: 1, To: 0}},
		subtour.Subtour{0, 2, 1}.Edges())
	assert.Equal(t, "3->7", subtour.Edge{From: 3, To: 7}.String())
	assert.Equal(t, 3, subtour.Subtour{0, 2, 1}.Len())
}
