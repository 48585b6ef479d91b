package core

import "math"

// Limits are the work-size ceilings callers configure to keep the
// polynomial-but-large solvers tractable. A zero field disables that check.
type Limits struct {
	// MaxKnapsackCells bounds (items+1)·(capacity+1), the DP table size.
	MaxKnapsackCells int `mapstructure:"max_knapsack_cells" json:"max_knapsack_cells"`

	// MaxFlowNodes bounds the side of the capacity matrix.
	MaxFlowNodes int `mapstructure:"max_flow_nodes" json:"max_flow_nodes"`

	// MaxMSTEdges bounds the edge list handed to Kruskal.
	MaxMSTEdges int `mapstructure:"max_mst_edges" json:"max_mst_edges"`
}

// DefaultLimits keeps a knapsack table under ~80 MiB of float64 and a
// flow matrix pair under ~64 MiB.
func DefaultLimits() Limits {
	return Limits{
		MaxKnapsackCells: 10_000_000,
		MaxFlowNodes:     2_000,
		MaxMSTEdges:      1_000_000,
	}
}

// CheckCells reports a LimitError when rows·cols exceeds limit.
// The product is never formed, so huge capacities cannot overflow.
func CheckCells(what string, rows, cols, limit int) error {
	if limit <= 0 || rows <= 0 || cols <= 0 {
		return nil
	}
	if cols > limit/rows {
		size := math.MaxInt
		if cols <= math.MaxInt/rows {
			size = rows * cols
		}
		return LimitError{What: what, Size: size, Limit: limit}
	}

	return nil
}

// CheckSize reports a LimitError when size exceeds limit.
func CheckSize(what string, size, limit int) error {
	if limit > 0 && size > limit {
		return LimitError{What: what, Size: size, Limit: limit}
	}

	return nil
}
