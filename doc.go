// Package reliefplan computes supply plans for disaster-relief logistics:
// who gets the pallets, how many can move per night, and which roads to
// clear first.
//
// 🚀 What is in reliefplan?
//
//	Four deterministic solvers plus the plumbing to serve them:
//		• greedy   – urgency-ordered allocation of a fixed supply
//		• knapsack – exact 0/1 selection maximizing urgency under a capacity
//		• flow     – maximum flow (Edmonds–Karp, Dinic) with min-cut side
//		• mst      – Kruskal minimum spanning tree/forest over depots
//		• plan     – runs all four for a scenario, with metrics and batching
//
// ✨ Guarantees
//
//   - Pure functions: inputs are never mutated, equal inputs give equal output
//   - One error taxonomy: every failure matches core.ErrInvalidInput or
//     core.ErrResourceExceeded under errors.Is
//   - Configurable ceilings guard the quadratic and pseudo-polynomial tables
//
// Layout:
//
//	core/     — Region, Limits and the error taxonomy
//	greedy/   — Allocate
//	knapsack/ — Optimize, AllocateRegions
//	flow/     — EdmondsKarp, Dinic, Round
//	mst/      — Kruskal
//	config/   — viper-backed settings (file + RELIEF_* env)
//	logger/   — zap logger construction
//	plan/     — Planner.Run, Planner.RunBatch
//	examples/ — runnable scenarios
//
//	go get github.com/katalvlaran/reliefplan
package reliefplan
