package plan

import "github.com/prometheus/client_golang/prometheus"

// Test bridge: exposes metric children and the outcome mapper to plan_test
// without widening the production API.

// RunsCounter_TestOnly returns the runs counter child for labels.
func (m *Metrics) RunsCounter_TestOnly(component, outcome string) prometheus.Counter {
	return m.runs.WithLabelValues(component, outcome)
}

// Metrics_TestOnly returns the planner's collectors.
func (p *Planner) Metrics_TestOnly() *Metrics { return p.metrics }

// OutcomeOf_TestOnly exposes outcomeOf.
func OutcomeOf_TestOnly(err error) string { return outcomeOf(err) }
