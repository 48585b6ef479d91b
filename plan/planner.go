package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/reliefplan/config"
	"github.com/katalvlaran/reliefplan/flow"
	"github.com/katalvlaran/reliefplan/greedy"
	"github.com/katalvlaran/reliefplan/knapsack"
	"github.com/katalvlaran/reliefplan/mst"
)

// Planner executes scenarios under one configuration.
// It is safe for concurrent use.
type Planner struct {
	cfg     config.Config
	log     *zap.Logger
	metrics *Metrics
}

// New validates cfg and wires the logger (nil for no-op) and metrics
// registerer (nil to skip registration).
func New(cfg config.Config, log *zap.Logger, reg prometheus.Registerer) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	m, err := NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &Planner{cfg: cfg, log: log, metrics: m}, nil
}

// Run solves the four components of sc concurrently. The first component
// error is returned wrapped with its component name; errors.Is still
// matches core.ErrInvalidInput / core.ErrResourceExceeded.
func (p *Planner) Run(ctx context.Context, sc Scenario) (Report, error) {
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	log := p.log.With(zap.String("scenario", sc.ID))
	rep := Report{ScenarioID: sc.ID}

	capacity := sc.Supply
	switch {
	case sc.Capacity != nil:
		capacity = *sc.Capacity
	case p.cfg.Planner.DefaultCapacity > 0:
		capacity = p.cfg.Planner.DefaultCapacity
	}
	network := sc.Network
	if network == nil {
		network = SampleNetwork()
	}
	sink := len(network.Capacity) - 1
	if network.Sink != nil {
		sink = *network.Sink
	}
	graph := sc.Graph
	if graph == nil {
		graph = SampleGraph()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.observe(ctx, log, ComponentGreedy, func() (err error) {
			rep.Greedy, err = greedy.Allocate(sc.Regions, sc.Supply, greedy.WithLogger(log))
			return err
		})
	})
	g.Go(func() error {
		return p.observe(ctx, log, ComponentKnapsack, func() (err error) {
			rep.Knapsack, err = knapsack.AllocateRegions(sc.Regions, capacity,
				knapsack.WithMaxCells(p.cfg.Limits.MaxKnapsackCells),
				knapsack.WithLogger(log),
			)
			return err
		})
	})
	g.Go(func() error {
		return p.observe(ctx, log, ComponentMaxFlow, func() (err error) {
			rep.MaxFlow, err = flow.EdmondsKarp(network.Capacity, network.Source, sink, &flow.FlowOptions{
				Epsilon:   p.cfg.Flow.Epsilon,
				Precision: p.cfg.Flow.Precision,
				MaxNodes:  p.cfg.Limits.MaxFlowNodes,
				Logger:    log,
			})
			return err
		})
	})
	g.Go(func() error {
		return p.observe(ctx, log, ComponentMST, func() (err error) {
			rep.MST, err = mst.Kruskal(graph.Nodes, graph.Edges,
				mst.WithMaxEdges(p.cfg.Limits.MaxMSTEdges),
				mst.WithLogger(log),
			)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	log.Info("scenario planned",
		zap.Int("allocated", rep.Greedy.Allocated()),
		zap.Float64("max_flow", rep.MaxFlow.MaxFlow),
		zap.Float64("mst_cost", rep.MST.TotalCost),
		zap.Bool("forest", rep.MST.Forest),
	)

	return rep, nil
}

// RunBatch plans every scenario on Planner.Workers goroutines and returns
// outcomes in input order. Once ctx is done, remaining scenarios fail with
// its error without running.
func (p *Planner) RunBatch(ctx context.Context, scenarios []Scenario) []Outcome {
	type job struct {
		idx int
		sc  Scenario
	}
	type done struct {
		idx int
		out Outcome
	}

	pool := newWorkerPool[job, done](p.cfg.Planner.Workers, len(scenarios))
	pool.start(func(j job) done {
		rep, err := p.Run(ctx, j.sc)
		return done{idx: j.idx, out: Outcome{Report: rep, Err: err}}
	})
	for i, sc := range scenarios {
		pool.addJob(job{idx: i, sc: sc})
	}
	pool.close()
	pool.wait()

	outcomes := make([]Outcome, len(scenarios))
	for d := range pool.collect() {
		outcomes[d.idx] = d.out
	}

	return outcomes
}

// observe runs one component, records its metrics and logs failures.
func (p *Planner) observe(ctx context.Context, log *zap.Logger, component string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		p.metrics.observe(component, err, 0)
		return fmt.Errorf("plan: %s: %w", component, err)
	}
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	p.metrics.observe(component, err, elapsed)
	if err != nil {
		log.Warn("component failed",
			zap.String("component", component),
			zap.String("outcome", outcomeOf(err)),
			zap.Error(err),
		)
		return fmt.Errorf("plan: %s: %w", component, err)
	}
	log.Debug("component done", zap.String("component", component), zap.Duration("elapsed", elapsed))

	return nil
}
