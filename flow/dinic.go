package flow

import (
	"math"

	"go.uber.org/zap"
)

// Dinic computes the same Result as EdmondsKarp using level graphs and
// blocking flows. The flow value always agrees with EdmondsKarp; the flow
// matrix may be a different optimal decomposition.
//
// Steps:
//  1. Validate exactly as EdmondsKarp.
//  2. BFS levels from source over residual edges > Epsilon; stop when the
//     sink is unreachable.
//  3. Keep only level-increasing edges (next lists, ascending index).
//  4. Push blocking flow by DFS, advancing a per-node edge cursor.
//  5. Net flow is capacity minus final residual.
//
// Complexity: O(V²·E) time, O(V²) memory.
func Dinic(capacity [][]float64, source, sink int, opts *FlowOptions) (Result, error) {
	o := resolve(opts)
	if err := validateNetwork(capacity, source, sink, o.MaxNodes); err != nil {
		return Result{}, err
	}

	n := len(capacity)
	residual := cloneMatrix(capacity)
	level := make([]int, n)
	iter := make([]int, n)
	next := make([][]int, n)
	queue := make([]int, 0, n)

	var total float64
	for round := 1; ; round++ {
		if !buildLevels(residual, source, sink, o.Epsilon, level, queue) {
			break
		}
		for u := range next {
			next[u] = next[u][:0]
			iter[u] = 0
			if level[u] < 0 {
				continue
			}
			for v, c := range residual[u] {
				if c > o.Epsilon && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}
		for {
			pushed := dinicPush(residual, next, iter, source, sink, math.Inf(1), o.Epsilon)
			if pushed == 0 {
				break
			}
			total += pushed
			o.Logger.Debug("blocking flow push",
				zap.String("solver", "dinic"),
				zap.Int("round", round),
				zap.Float64("pushed", pushed),
				zap.Float64("total", total),
			)
		}
	}

	flow := newMatrix(n)
	for u := range flow {
		for v := range flow[u] {
			if u != v {
				flow[u][v] = capacity[u][v] - residual[u][v]
			}
		}
	}
	reachable := make([]bool, n)
	for v, l := range level {
		reachable[v] = l >= 0
	}

	return finalize(total, flow, reachable, o), nil
}

// buildLevels fills level with BFS distances from source (-1 when
// unreachable) and reports whether sink is reachable.
func buildLevels(residual [][]float64, source, sink int, eps float64, level, queue []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue = append(queue[:0], source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for v, c := range residual[u] {
			if c > eps && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// dinicPush sends up to available along one level-graph path and returns
// the amount actually sent. A saturated or dead-end edge advances iter[u].
func dinicPush(residual [][]float64, next [][]int, iter []int, u, sink int, available, eps float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := residual[u][v]
		if c <= eps {
			continue
		}
		if pushed := dinicPush(residual, next, iter, v, sink, math.Min(available, c), eps); pushed > 0 {
			residual[u][v] -= pushed
			residual[v][u] += pushed

			return pushed
		}
	}

	return 0
}
