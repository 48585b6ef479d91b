package mst

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

var (
	// ErrUnknownNode is returned when an edge endpoint is not a listed node.
	ErrUnknownNode = fmt.Errorf("mst: %w: edge references unknown node", core.ErrInvalidInput)

	// ErrBadWeight is returned for a NaN or infinite edge weight.
	ErrBadWeight = fmt.Errorf("mst: %w: weight must be finite", core.ErrInvalidInput)
)

// Edge is an undirected weighted edge. Negative weights are allowed.
type Edge[T comparable] struct {
	U      T       `json:"u"`
	V      T       `json:"v"`
	Weight float64 `json:"weight"`
}

// Result is a minimum spanning forest.
type Result[T comparable] struct {
	// Edges are the accepted edges in acceptance (ascending weight) order.
	Edges []Edge[T] `json:"mst_edges"`

	// TotalCost is the sum of accepted weights.
	TotalCost float64 `json:"total_cost"`

	// Forest is true when the graph had more than one component.
	Forest bool `json:"forest"`

	// Components is the number of trees, isolated nodes included.
	Components int `json:"components"`
}

// Options configures Kruskal.
type Options struct {
	// MaxEdges caps the input edge count. Zero disables the cap.
	MaxEdges int

	// Logger receives a Debug event per accepted edge.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMaxEdges sets the edge ceiling.
func WithMaxEdges(n int) Option {
	return func(o *Options) {
		o.MaxEdges = n
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions uses core.DefaultLimits().MaxMSTEdges and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxEdges: core.DefaultLimits().MaxMSTEdges,
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
