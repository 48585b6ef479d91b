// Package knapsack solves the 0/1 knapsack problem by dynamic programming
// and uses it to allocate whole region needs under a depot capacity.
//
// # Table
//
// dp[i][w] is the best value reachable with the first i items and weight
// budget w:
//
//	dp[i][w] = dp[i-1][w]                                        if weight[i-1] > w
//	dp[i][w] = max(dp[i-1][w], value[i-1] + dp[i-1][w-weight[i-1]])  otherwise
//
// The table is one flat []float64 of (n+1)·(W+1) cells, row-major.
//
// # Reconstruction and tie-break
//
// The chosen set is recovered by walking i from n down to 1 with w = W,
// taking item i-1 whenever dp[i][w] != dp[i-1][w] and subtracting its
// weight. When several subsets reach the optimum this backward scan is the
// canonical tie-break: it prefers leaving out later items. The returned set
// is one optimal selection, not "the" optimum.
//
// # Limits
//
// Time and memory are O(n·W). Options.MaxCells (see core.Limits) bounds
// the table, and MaxTableCells bounds it even when MaxCells is 0; a larger
// instance fails with core.ErrResourceExceeded before anything is allocated.
//
// Errors:
//
//	ErrNegativeWeight   - an item weight below zero.
//	ErrNegativeCapacity - capacity below zero.
//	ErrBadValue         - NaN or infinite value.
//	core.LimitError     - table larger than MaxCells or MaxTableCells.
package knapsack
