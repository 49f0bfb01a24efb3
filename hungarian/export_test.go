package hungarian

// Test bridge: exposes the destructive kernel and the mark reader to
// hungarian_test without widening the production API.
var (
	MinimizeInPlace = minimize
	ExtractMarked   = extract
)

const (
	MarkAssigned = markAssigned
	MarkFree     = markFree
)
