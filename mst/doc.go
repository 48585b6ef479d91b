// Package mst builds minimum spanning forests with Kruskal's algorithm.
//
// Nodes may be any comparable label (strings, ints, small structs). The
// node list is treated as a set; edges are undirected (u, v, weight) and
// every endpoint must be a listed node.
//
// Algorithm
//
//  1. Index each distinct node 0..n-1.
//  2. Stable-sort edge positions by weight ascending.
//  3. Walk the sorted edges, skipping self-loops and edges whose endpoints
//     already share a component; accept the rest and union their components.
//  4. Stop as soon as n-1 edges are accepted.
//
// The union-find is array backed (parent and rank slices indexed by node
// position) with iterative full path compression and union by rank.
//
// # Tie-break
//
// Equal-weight edges are considered in input order. This decides which of
// several equal-cost trees is returned; all of them share TotalCost. Tests
// against golden edge lists therefore depend on input order.
//
// # Disconnected graphs
//
// A graph with more than one component is not an error: the result is a
// minimum spanning forest with Forest set and Components counting the trees
// (isolated nodes included). An empty node set yields an empty result.
//
// Errors:
//
//	ErrUnknownNode  - an edge endpoint is not in nodes.
//	ErrBadWeight    - NaN or infinite weight.
//	core.LimitError - more edges than Options.MaxEdges.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
package mst
