// Package greedy allocates a single depot's supply across regions by urgency.
//
// Regions are ranked by urgency (highest first, ties kept in input order)
// and each receives min(need, remaining supply) in turn. Once the supply is
// exhausted every later region is still listed with a zero grant, so the
// result always has exactly one entry per input region.
//
//	regions := []core.Region{
//	    {Name: "coast", Need: 40, Urgency: 9},
//	    {Name: "valley", Need: 30, Urgency: 5},
//	}
//	res, err := greedy.Allocate(regions, 50)
//	// res.Allocation == map[coast:40 valley:10], res.RemainingSupply == 0
//
// Errors:
//
//	ErrNegativeSupply        - supply < 0.
//	core.ErrInvalidInput     - negative need or urgency (core.InputError),
//	                           duplicate names (core.ErrDuplicateRegion).
//
// The supply argument and the regions slice are read-only; the function is
// pure and safe to call from many goroutines.
//
// Complexity: O(n log n) time for the stable sort, O(n) memory.
package greedy
