package plan

import "github.com/katalvlaran/reliefplan/mst"

// SampleNetwork returns a fresh copy of the four-node demonstration
// network (source 0, sink defaulting to 3).
func SampleNetwork() *Network {
	return &Network{
		Capacity: [][]float64{
			{0, 16, 13, 0},
			{0, 0, 10, 12},
			{0, 4, 0, 14},
			{0, 0, 0, 0},
		},
	}
}

// SampleGraph returns a fresh copy of the five-depot demonstration graph.
func SampleGraph() *Graph {
	return &Graph{
		Nodes: []string{"A", "B", "C", "D", "E"},
		Edges: []mst.Edge[string]{
			{U: "A", V: "B", Weight: 4},
			{U: "A", V: "C", Weight: 2},
			{U: "B", V: "C", Weight: 1},
			{U: "B", V: "D", Weight: 5},
			{U: "C", V: "D", Weight: 8},
			{U: "C", V: "E", Weight: 10},
			{U: "D", V: "E", Weight: 2},
		},
	}
}
