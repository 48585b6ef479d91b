package greedy

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

// Method is the tag stamped on every greedy Result.
const Method = "greedy"

// ErrNegativeSupply is returned when the depot supply is below zero.
var ErrNegativeSupply = fmt.Errorf("greedy: %w: negative supply", core.ErrInvalidInput)

// Result is the outcome of Allocate.
type Result struct {
	// Method is always "greedy".
	Method string `json:"method"`

	// Allocation maps each region name to the quantity granted.
	Allocation map[string]int `json:"allocation"`

	// Order lists region names in the order they were served.
	Order []string `json:"order"`

	// RemainingSupply is what is left after every region was served.
	RemainingSupply int `json:"remaining_supply"`
}

// Allocated sums all grants.
func (r Result) Allocated() int {
	var sum int
	for _, q := range r.Allocation {
		sum += q
	}

	return sum
}

// Options configures Allocate.
type Options struct {
	// Logger receives one Debug event per grant. Nil means zap.NewNop().
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger attaches a logger for per-grant tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) Options {
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}
