package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/reliefplan/core"
	"github.com/katalvlaran/reliefplan/greedy"
)

// ExampleAllocate serves the most urgent region first; the last region in
// line only gets what is left.
func ExampleAllocate() {
	regions := []core.Region{
		{Name: "valley", Need: 30, Urgency: 5},
		{Name: "coast", Need: 40, Urgency: 9},
		{Name: "hills", Need: 20, Urgency: 7},
	}

	res, err := greedy.Allocate(regions, 70)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, name := range res.Order {
		fmt.Printf("%s=%d ", name, res.Allocation[name])
	}
	fmt.Println("remaining:", res.RemainingSupply)
	// Output: coast=40 hills=20 valley=10 remaining: 0
}
