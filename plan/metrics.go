package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/reliefplan/core"
)

// Outcome labels.
const (
	OutcomeOK               = "ok"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeResourceExceeded = "resource_exceeded"
	OutcomeCanceled         = "canceled"
	OutcomeError            = "error"
)

// Metrics counts and times component runs.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg when reg is
// non-nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reliefplan",
			Name:      "component_runs_total",
			Help:      "Solver invocations by component and outcome.",
		}, []string{"component", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reliefplan",
			Name:      "component_duration_seconds",
			Help:      "Solver wall time by component.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"component"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("plan: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(component string, err error, d time.Duration) {
	m.runs.WithLabelValues(component, outcomeOf(err)).Inc()
	m.duration.WithLabelValues(component).Observe(d.Seconds())
}

// outcomeOf maps the error taxonomy onto a metric label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, core.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, core.ErrResourceExceeded):
		return OutcomeResourceExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}
