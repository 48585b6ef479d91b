package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reliefplan/flow"
)

const tol = 1e-6

// assertFlowInvariants checks antisymmetry, capacity, conservation and
// max-flow = min-cut for a solved instance.
func assertFlowInvariants(t testing.TB, c [][]float64, source, sink int, res flow.Result) {
	t.Helper()
	n := len(c)
	require.Len(t, res.Flow, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			require.InDelta(t, -res.Flow[v][u], res.Flow[u][v], tol, "antisymmetry %d,%d", u, v)
			if u != v {
				require.LessOrEqual(t, res.Flow[u][v], c[u][v]+tol, "capacity %d→%d", u, v)
			}
		}
	}
	for v := 0; v < n; v++ {
		switch v {
		case source:
			require.InDelta(t, res.MaxFlow, res.NetOutflow(v), tol)
		case sink:
			require.InDelta(t, -res.MaxFlow, res.NetOutflow(v), tol)
		default:
			require.InDelta(t, 0, res.NetOutflow(v), tol, "conservation at %d", v)
		}
	}

	inSource := make([]bool, n)
	for _, v := range res.SourceSide {
		inSource[v] = true
	}
	require.True(t, inSource[source])
	require.False(t, inSource[sink])
	var cut float64
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if inSource[u] && !inSource[v] {
				cut += c[u][v]
			}
		}
	}
	require.InDelta(t, res.MaxFlow, cut, tol, "max-flow min-cut")
}

// randomNetwork builds an n-node matrix where each ordered pair carries an
// edge with probability p and capacity in [1, maxCap].
func randomNetwork(n int, p, maxCap float64, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	c := make([][]float64, n)
	for u := range c {
		c[u] = make([]float64, n)
		for v := range c[u] {
			if u != v && r.Float64() < p {
				c[u][v] = 1 + float64(r.Intn(int(maxCap)))
			}
		}
	}

	return c
}
