package knapsack

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

// Optimize selects the subset of items with the highest total value whose
// total weight fits in capacity.
//
// Steps:
//  1. Validate weights, values and capacity; check the table ceiling.
//  2. Fill the flat (n+1)×(capacity+1) table row by row.
//  3. Walk it backward from dp[n][capacity] to recover Chosen.
//
// Items are never mutated. Zero capacity or an empty item list yield a
// zero-value result, not an error.
//
// Complexity: O(n·W) time and memory.
func Optimize(items []Item, capacity int, opts ...Option) (Result, error) {
	// 1) Validate before sizing anything
	if err := validate(items, capacity); err != nil {
		return Result{}, err
	}
	o := buildOptions(opts)
	if err := checkTable(len(items), capacity, o.MaxCells); err != nil {
		return Result{}, err
	}

	// 2) Fill and walk the table
	res := solve(items, capacity)
	o.Logger.Debug("knapsack solved",
		zap.Int("items", len(items)),
		zap.Int("capacity", capacity),
		zap.Float64("max_value", res.MaxValue),
		zap.Ints("chosen", res.Chosen),
	)

	return res, nil
}

// AllocateRegions treats each region as an item (weight = need,
// value = urgency) and grants chosen regions their full need.
// Regions left out are listed with 0.
func AllocateRegions(regions []core.Region, capacity int, opts ...Option) (Allocation, error) {
	if err := core.ValidateRegions(regions); err != nil {
		return Allocation{}, err
	}
	items := make([]Item, len(regions))
	for i, r := range regions {
		items[i] = Item{Weight: r.Need, Value: float64(r.Urgency)}
	}

	res, err := Optimize(items, capacity, opts...)
	if err != nil {
		return Allocation{}, err
	}

	out := Allocation{
		Method:            Method,
		Allocation:        make(map[string]int, len(regions)),
		Chosen:            make([]string, 0, len(res.Chosen)),
		TotalValue:        res.MaxValue,
		RemainingCapacity: res.RemainingCapacity,
	}
	for _, r := range regions {
		out.Allocation[r.Name] = 0
	}
	for _, idx := range res.Chosen {
		r := regions[idx]
		out.Allocation[r.Name] = r.Need
		out.Chosen = append(out.Chosen, r.Name)
	}

	return out, nil
}

func validate(items []Item, capacity int) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	for i, it := range items {
		if it.Weight < 0 {
			return fmt.Errorf("%w: items[%d] weight %d", ErrNegativeWeight, i, it.Weight)
		}
		if !core.Finite(it.Value) {
			return fmt.Errorf("%w: items[%d] value %g", ErrBadValue, i, it.Value)
		}
	}

	return nil
}

// MaxTableCells is the hard ceiling on (n+1)·(capacity+1). It applies when
// Options.MaxCells is zero or larger; 2³¹-1 float64 cells is 16 GiB.
const MaxTableCells = math.MaxInt32

// checkTable guards (n+1)·(capacity+1) without overflowing capacity+1.
func checkTable(n, capacity, maxCells int) error {
	if maxCells <= 0 || maxCells > MaxTableCells {
		maxCells = MaxTableCells
	}
	cols := math.MaxInt
	if capacity < math.MaxInt {
		cols = capacity + 1
	}
	if err := core.CheckCells("knapsack table", n+1, cols, maxCells); err != nil {
		return fmt.Errorf("knapsack: %w", err)
	}

	return nil
}

func solve(items []Item, capacity int) Result {
	n := len(items)
	width := capacity + 1
	dp := make([]float64, (n+1)*width)

	// Row i uses items[0..i-1]; row 0 stays zero.
	for i := 1; i <= n; i++ {
		wt, val := items[i-1].Weight, items[i-1].Value
		prev := dp[(i-1)*width : i*width]
		row := dp[i*width : (i+1)*width]
		for w := 0; w < width; w++ {
			best := prev[w]
			if wt <= w {
				// Strict > keeps the item out on ties.
				if cand := val + prev[w-wt]; cand > best {
					best = cand
				}
			}
			row[w] = best
		}
	}

	// Backward scan: a row that differs from the one above took its item.
	chosen := make([]int, 0)
	w := capacity
	for i := n; i > 0; i-- {
		if dp[i*width+w] != dp[(i-1)*width+w] {
			chosen = append(chosen, i-1)
			w -= items[i-1].Weight
		}
	}
	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}

	return Result{
		MaxValue:          dp[n*width+capacity],
		Chosen:            chosen,
		RemainingCapacity: w,
	}
}
