package mst

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/reliefplan/core"
)

// Kruskal computes a minimum spanning forest of the undirected graph
// (nodes, edges).
//
// Steps:
//  1. Check the edge ceiling, index distinct nodes, resolve and validate
//     every edge endpoint and weight. Nothing else runs on failure.
//  2. Stable-sort edge positions by weight.
//  3. Accept each edge joining two components until n-1 are accepted.
//
// The input slices are not modified.
func Kruskal[T comparable](nodes []T, edges []Edge[T], opts ...Option) (Result[T], error) {
	// 1) Ceiling, node index, edge validation
	o := buildOptions(opts)
	if err := core.CheckSize("mst edges", len(edges), o.MaxEdges); err != nil {
		return Result[T]{}, fmt.Errorf("mst: %w", err)
	}

	index := make(map[T]int, len(nodes))
	for _, v := range nodes {
		if _, ok := index[v]; !ok {
			index[v] = len(index)
		}
	}

	ends := make([][2]int, len(edges))
	for i, e := range edges {
		u, ok := index[e.U]
		if !ok {
			return Result[T]{}, fmt.Errorf("%w: edges[%d].u = %v", ErrUnknownNode, i, e.U)
		}
		v, ok := index[e.V]
		if !ok {
			return Result[T]{}, fmt.Errorf("%w: edges[%d].v = %v", ErrUnknownNode, i, e.V)
		}
		if !core.Finite(e.Weight) {
			return Result[T]{}, fmt.Errorf("%w: edges[%d] weight %g", ErrBadWeight, i, e.Weight)
		}
		ends[i] = [2]int{u, v}
	}

	// 2) Stable sort by weight; equal weights keep input order
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Weight < edges[order[b]].Weight
	})

	// 3) Accept edges joining two components, stopping at n-1
	n := len(index)
	ds := newDisjointSet(n)
	res := Result[T]{Edges: make([]Edge[T], 0, max(n-1, 0))}
	for _, i := range order {
		if len(res.Edges) >= n-1 {
			break
		}
		u, v := ends[i][0], ends[i][1]
		if u == v || !ds.union(u, v) {
			continue
		}
		e := edges[i]
		res.Edges = append(res.Edges, e)
		res.TotalCost += e.Weight
		o.Logger.Debug("mst edge accepted",
			zap.Any("u", e.U),
			zap.Any("v", e.V),
			zap.Float64("weight", e.Weight),
			zap.Int("accepted", len(res.Edges)),
		)
	}
	// 4) More than one remaining component means a forest
	res.Components = ds.count
	res.Forest = res.Components > 1

	return res, nil
}
