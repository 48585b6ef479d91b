package knapsack

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

// Method is the tag stamped on region allocations.
const Method = "knapsack_dp"

var (
	// ErrNegativeWeight is returned for an item with weight < 0.
	ErrNegativeWeight = fmt.Errorf("knapsack: %w: negative weight", core.ErrInvalidInput)

	// ErrNegativeCapacity is returned for capacity < 0.
	ErrNegativeCapacity = fmt.Errorf("knapsack: %w: negative capacity", core.ErrInvalidInput)

	// ErrBadValue is returned for a NaN or infinite item value.
	ErrBadValue = fmt.Errorf("knapsack: %w: value must be finite", core.ErrInvalidInput)
)

// Item is one indivisible candidate.
type Item struct {
	Weight int     `json:"weight"`
	Value  float64 `json:"value"`
}

// Result is the outcome of Optimize.
type Result struct {
	// MaxValue is dp[n][capacity].
	MaxValue float64 `json:"max_value"`

	// Chosen holds the selected item indices in ascending order.
	Chosen []int `json:"chosen"`

	// RemainingCapacity is capacity minus the weight of Chosen.
	RemainingCapacity int `json:"remaining_capacity"`
}

// Allocation is the outcome of AllocateRegions.
type Allocation struct {
	Method string `json:"method"`

	// Allocation maps every region to its full need if chosen, else 0.
	Allocation map[string]int `json:"allocation"`

	// Chosen lists the selected region names in input order.
	Chosen []string `json:"chosen"`

	// TotalValue is the summed urgency of the chosen regions.
	TotalValue float64 `json:"total_value"`

	RemainingCapacity int `json:"remaining_capacity"`
}

// Options configures Optimize and AllocateRegions.
type Options struct {
	// MaxCells caps (n+1)·(capacity+1). Zero, or anything above
	// MaxTableCells, means MaxTableCells.
	MaxCells int

	// Logger receives a Debug summary per solve. Nil means zap.NewNop().
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxCells sets the DP table ceiling.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		o.MaxCells = n
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions uses core.DefaultLimits().MaxKnapsackCells and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxCells: core.DefaultLimits().MaxKnapsackCells,
		Logger:   zap.NewNop(),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}
