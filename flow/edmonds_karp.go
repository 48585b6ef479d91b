package flow

import (
	"math"

	"go.uber.org/zap"
)

// EdmondsKarp computes the maximum flow from source to sink using
// breadth-first augmenting paths.
//
// Steps:
//  1. Validate shape, indices and capacities (nothing allocated on failure).
//  2. Copy capacity into a private residual matrix; zero the flow matrix.
//  3. BFS from source over residual edges > Epsilon, recording parents.
//  4. If the sink is unreached, stop: the accumulated flow is maximal.
//  5. Otherwise find the path bottleneck, subtract it from each forward
//     residual, add it to each reverse residual (so later phases can cancel
//     it), and record flow[u][v] += b, flow[v][u] -= b. Go to 3.
//  6. Round the flow matrix and total for presentation.
//
// opts may be nil for DefaultOptions().
//
// Complexity: O(V·E²) phases bound; O(V²) per BFS on a dense matrix.
func EdmondsKarp(capacity [][]float64, source, sink int, opts *FlowOptions) (Result, error) {
	// 1) Resolve options and validate; nothing is allocated on failure
	o := resolve(opts)
	if err := validateNetwork(capacity, source, sink, o.MaxNodes); err != nil {
		return Result{}, err
	}

	// 2) Private residual copy and zero flow matrix
	n := len(capacity)
	residual := cloneMatrix(capacity)
	flow := newMatrix(n)
	st := newBFSState(n)

	// 3) Main loop: one BFS per phase until the sink is unreachable
	var total float64
	for phase := 1; st.augmentingPath(residual, source, sink, o.Epsilon); phase++ {
		// 4) Bottleneck along the parent chain
		bottleneck := math.Inf(1)
		for v := sink; v != source; v = st.parent[v] {
			if c := residual[st.parent[v]][v]; c < bottleneck {
				bottleneck = c
			}
		}
		// 5) Augment; the reverse residual lets later phases cancel this flow
		for v := sink; v != source; v = st.parent[v] {
			u := st.parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
			flow[u][v] += bottleneck
			flow[v][u] -= bottleneck
		}
		total += bottleneck

		if ce := o.Logger.Check(zap.DebugLevel, "augmenting path"); ce != nil {
			ce.Write(
				zap.String("solver", "edmonds-karp"),
				zap.Int("phase", phase),
				zap.Ints("path", pathOf(st.parent, source, sink)),
				zap.Float64("bottleneck", bottleneck),
				zap.Float64("total", total),
			)
		}
	}

	// 6) Round for presentation; visited is the source side of the min cut
	return finalize(total, flow, st.visited, o), nil
}

// bfsState holds the per-call BFS buffers so phases do not reallocate.
type bfsState struct {
	parent  []int
	visited []bool
	queue   []int
}

func newBFSState(n int) *bfsState {
	return &bfsState{
		parent:  make([]int, n),
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
	}
}

// augmentingPath runs one BFS and reports whether sink was reached.
// After a failed search, visited marks the source side of a minimum cut.
func (s *bfsState) augmentingPath(residual [][]float64, source, sink int, eps float64) bool {
	for i := range s.parent {
		s.parent[i] = -1
		s.visited[i] = false
	}
	s.queue = append(s.queue[:0], source)
	s.visited[source] = true

	for head := 0; head < len(s.queue); head++ {
		u := s.queue[head]
		for v, c := range residual[u] {
			if s.visited[v] || c <= eps {
				continue
			}
			s.visited[v] = true
			s.parent[v] = u
			if v == sink {
				return true
			}
			s.queue = append(s.queue, v)
		}
	}

	return false
}
