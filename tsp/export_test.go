package tsp

// CostSnapshot exposes the persistent cost matrix. Call it from a hook or
// after Solve returns; it does not take the controller lock.
func (c *Controller) CostSnapshot() [][]float64 {
	if c.cost == nil {
		return nil
	}

	return c.cost.ToRows()
}
