// Package plan runs a complete relief-planning scenario: greedy and
// knapsack allocation of depot supply, maximum deliverable flow over the
// transport network, and the cheapest road set linking all depots.
//
// The four solvers stay pure; plan adds what a serving layer needs around
// them: configuration-driven limits, a scenario ID on every log line,
// prometheus metrics per component, concurrent execution of one scenario's
// components, and a bounded worker pool for batches.
//
//	cfg, _ := config.Load("relief.yaml")
//	log, _ := logger.New(cfg.Log)
//	p, _ := plan.New(cfg, log, prometheus.DefaultRegisterer)
//	rep, err := p.Run(ctx, plan.Scenario{Regions: regions, Supply: 120})
//
// A scenario without a Network or Graph falls back to SampleNetwork and
// SampleGraph; a Network without a Sink uses its last node.
package plan
