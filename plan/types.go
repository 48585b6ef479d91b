package plan

import (
	"github.com/katalvlaran/reliefplan/core"
	"github.com/katalvlaran/reliefplan/flow"
	"github.com/katalvlaran/reliefplan/greedy"
	"github.com/katalvlaran/reliefplan/knapsack"
	"github.com/katalvlaran/reliefplan/mst"
)

// Component names used in logs, metrics and wrapped errors.
const (
	ComponentGreedy   = "greedy"
	ComponentKnapsack = "knapsack"
	ComponentMaxFlow  = "maxflow"
	ComponentMST      = "mst"
)

// Network is a capacity matrix with its terminals.
type Network struct {
	Capacity [][]float64
	Source   int
	// Sink defaults to the last node when nil.
	Sink *int
}

// Graph is the undirected road network between depots.
type Graph struct {
	Nodes []string
	Edges []mst.Edge[string]
}

// Scenario is one planning request.
type Scenario struct {
	// ID tags logs; a random UUID is assigned when empty.
	ID string

	Regions []core.Region
	Supply  int

	// Capacity bounds the knapsack allocation. When nil the planner's
	// default capacity (50 unless configured) is used, or Supply if the
	// configured default is zero.
	Capacity *int

	Network *Network
	Graph   *Graph
}

// Report gathers the four results of a scenario.
type Report struct {
	ScenarioID string              `json:"scenario_id"`
	Greedy     greedy.Result       `json:"greedy"`
	Knapsack   knapsack.Allocation `json:"knapsack"`
	MaxFlow    flow.Result         `json:"maxflow"`
	MST        mst.Result[string]  `json:"mst"`
}

// Outcome is one RunBatch entry.
type Outcome struct {
	Report Report
	Err    error
}
