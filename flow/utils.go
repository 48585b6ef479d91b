package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reliefplan/core"
)

// validateNetwork checks, in order: emptiness, the node ceiling, shape,
// source/sink indices, then every capacity. Nothing is allocated.
func validateNetwork(capacity [][]float64, source, sink, maxNodes int) error {
	n := len(capacity)
	if n == 0 {
		return ErrEmptyNetwork
	}
	if err := core.CheckSize("flow nodes", n, maxNodes); err != nil {
		return fmt.Errorf("flow: %w", err)
	}
	for u, row := range capacity {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, u, len(row), n)
		}
	}
	if source < 0 || source >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if sink < 0 || sink >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSinkOutOfRange, sink, n)
	}
	if source == sink {
		return ErrSourceIsSink
	}
	for u, row := range capacity {
		for v, c := range row {
			if c < 0 || !core.Finite(c) {
				return EdgeError{From: u, To: v, Cap: c}
			}
		}
	}

	return nil
}

// cloneMatrix returns a deep copy backed by one contiguous slice.
func cloneMatrix(m [][]float64) [][]float64 {
	n := len(m)
	out := newMatrix(n)
	for i := range m {
		copy(out[i], m[i])
	}

	return out
}

// newMatrix allocates an n×n zero matrix with rows sharing one backing array.
func newMatrix(n int) [][]float64 {
	backing := make([]float64, n*n)
	out := make([][]float64, n)
	for i := range out {
		out[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}

	return out
}

// Round presents a computed value: within eps of an integer it snaps to
// that integer, otherwise it is rounded to precision decimal digits.
// Negative zero is normalized to zero.
func Round(x float64, precision int, eps float64) float64 {
	if r := math.Round(x); math.Abs(x-r) < eps {
		x = r
	} else {
		p := math.Pow10(precision)
		x = math.Round(x*p) / p
	}
	if x == 0 {
		return 0
	}

	return x
}

// finalize rounds the raw totals into a Result.
func finalize(total float64, flow [][]float64, reachable []bool, o FlowOptions) Result {
	for _, row := range flow {
		for v := range row {
			row[v] = Round(row[v], o.Precision, o.Epsilon)
		}
	}
	side := make([]int, 0, len(reachable))
	for v, ok := range reachable {
		if ok {
			side = append(side, v)
		}
	}

	return Result{
		MaxFlow:    Round(total, o.Precision, o.Epsilon),
		Flow:       flow,
		N:          len(flow),
		SourceSide: side,
	}
}

// pathOf rebuilds source→sink from a predecessor array.
func pathOf(parent []int, source, sink int) []int {
	path := []int{sink}
	for v := sink; v != source; v = parent[v] {
		path = append(path, parent[v])
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
