package core

import (
	"fmt"
	"math"
)

// Region is a demand point: how much it needs and how urgently.
// Regions are values; solvers never mutate them.
type Region struct {
	Name    string `json:"name"`
	Need    int    `json:"need"`
	Urgency int    `json:"urgency"`
}

// ValidateRegions checks that every need and urgency is non-negative and
// that names are unique. The first offending region is reported.
func ValidateRegions(regions []Region) error {
	seen := make(map[string]int, len(regions))
	for i, r := range regions {
		if r.Need < 0 {
			return Invalid(fmt.Sprintf("regions[%d].need", i), "negative need %d for %q", r.Need, r.Name)
		}
		if r.Urgency < 0 {
			return Invalid(fmt.Sprintf("regions[%d].urgency", i), "negative urgency %d for %q", r.Urgency, r.Name)
		}
		if j, dup := seen[r.Name]; dup {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateRegion, r.Name, j, i)
		}
		seen[r.Name] = i
	}

	return nil
}

// Finite reports whether x is neither NaN nor ±Inf.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
