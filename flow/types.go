package flow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

var (
	// ErrEmptyNetwork is returned for a matrix with no nodes.
	ErrEmptyNetwork = fmt.Errorf("flow: %w: empty capacity matrix", core.ErrInvalidInput)

	// ErrNonSquare is returned when some row length differs from the row count.
	ErrNonSquare = fmt.Errorf("flow: %w: capacity matrix is not square", core.ErrInvalidInput)

	// ErrSourceOutOfRange is returned when source is not a node index.
	ErrSourceOutOfRange = fmt.Errorf("flow: %w: source index out of range", core.ErrInvalidInput)

	// ErrSinkOutOfRange is returned when sink is not a node index.
	ErrSinkOutOfRange = fmt.Errorf("flow: %w: sink index out of range", core.ErrInvalidInput)

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = fmt.Errorf("flow: %w: source equals sink", core.ErrInvalidInput)
)

// EdgeError is returned when an edge has a negative or non-finite capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Unwrap classifies EdgeError as core.ErrInvalidInput.
func (e EdgeError) Unwrap() error { return core.ErrInvalidInput }

// Defaults used when FlowOptions fields are left zero.
const (
	DefaultEpsilon   = 1e-9
	DefaultPrecision = 6
)

// FlowOptions configures both solvers.
//   - Epsilon:   residual capacity ≤ Epsilon counts as exhausted; also the
//     integer-snapping tolerance of Round (default 1e-9).
//   - Precision: decimal digits kept by Round (default 6).
//   - MaxNodes:  reject matrices with more nodes (0 disables).
//   - Logger:    Debug event per augmentation (default no-op).
type FlowOptions struct {
	Epsilon   float64
	Precision int
	MaxNodes  int
	Logger    *zap.Logger
}

// DefaultOptions returns production-safe defaults, including the
// core.DefaultLimits node ceiling.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Epsilon:   DefaultEpsilon,
		Precision: DefaultPrecision,
		MaxNodes:  core.DefaultLimits().MaxFlowNodes,
		Logger:    zap.NewNop(),
	}
}

func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

func resolve(opts *FlowOptions) FlowOptions {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.normalize()

	return o
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// MaxFlow is the total value sent from source to sink.
	MaxFlow float64 `json:"max_flow"`

	// Flow is the n×n net flow matrix.
	Flow [][]float64 `json:"flow_matrix"`

	// N is the node count.
	N int `json:"n"`

	// SourceSide lists, ascending, the nodes still reachable from the
	// source in the final residual graph: the source half of a minimum cut.
	SourceSide []int `json:"source_side"`
}

// NetOutflow is Σ_v Flow[node][v]. It is zero at every node but source
// and sink, MaxFlow at the source and -MaxFlow at the sink.
func (r Result) NetOutflow(node int) float64 {
	var sum float64
	for _, f := range r.Flow[node] {
		sum += f
	}

	return sum
}
