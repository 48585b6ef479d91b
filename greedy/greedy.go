package greedy

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

// Allocate distributes supply across regions, most urgent first.
//
// Steps:
//  1. Reject negative supply, negative need/urgency and duplicate names.
//  2. Stable-sort a copy of the region indices by urgency descending.
//  3. Grant min(need, remaining) to each region in that order.
//
// The sum of grants equals min(sum(need), supply) and no grant exceeds its
// region's need.
func Allocate(regions []core.Region, supply int, opts ...Option) (Result, error) {
	if supply < 0 {
		return Result{}, ErrNegativeSupply
	}
	if err := core.ValidateRegions(regions); err != nil {
		return Result{}, err
	}
	o := buildOptions(opts)

	// Sort indices, not regions, so the caller's slice is never reordered.
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return regions[order[a]].Urgency > regions[order[b]].Urgency
	})

	res := Result{
		Method:     Method,
		Allocation: make(map[string]int, len(regions)),
		Order:      make([]string, 0, len(regions)),
	}
	remaining := supply
	for _, idx := range order {
		r := regions[idx]
		grant := r.Need
		if grant > remaining {
			grant = remaining
		}
		remaining -= grant
		res.Allocation[r.Name] = grant
		res.Order = append(res.Order, r.Name)
		o.Logger.Debug("greedy grant",
			zap.String("region", r.Name),
			zap.Int("urgency", r.Urgency),
			zap.Int("need", r.Need),
			zap.Int("granted", grant),
			zap.Int("remaining", remaining),
		)
	}
	res.RemainingSupply = remaining

	return res, nil
}
