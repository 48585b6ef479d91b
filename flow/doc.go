// Package flow computes maximum flow on a capacitated directed network
// given as a dense capacity matrix.
//
// capacity[u][v] is the capacity of the edge u→v; 0 means "no edge". A
// true zero-capacity edge and a missing edge are indistinguishable here on
// purpose: both leave zero residual capacity and never carry flow.
//
// Two solvers share one contract and one Result:
//
//	EdmondsKarp  Method: Ford–Fulkerson with breadth-first (shortest) augmenting paths.
//	             Time:   O(V · E²), which on a dense matrix is O(V⁵) worst case.
//	             Memory: O(V²) for the residual and flow matrices.
//	             The reference solver.
//
//	Dinic        Method: BFS level graph + DFS blocking flow.
//	             Time:   O(V² · E).
//	             Memory: O(V²) plus the level-graph adjacency lists.
//	             Cross-checks EdmondsKarp; faster on large dense instances.
//
// # Determinism
//
// BFS scans neighbours in ascending index order, so the augmenting path
// chosen in every phase, and therefore the returned flow matrix, is a pure
// function of the input.
//
// # Output
//
// Result.Flow is the net flow per ordered pair: Flow[u][v] == -Flow[v][u],
// conservation holds at every node except source and sink, and
// Flow[u][v] <= capacity[u][v]. Values are presented through Round: a value
// within Epsilon of an integer is snapped to it, anything else is rounded
// to Precision decimal digits. This is formatting only.
//
// # Errors
//
//	ErrEmptyNetwork     - zero-node matrix.
//	ErrNonSquare        - ragged or non-square matrix.
//	ErrSourceOutOfRange - source outside [0, n).
//	ErrSinkOutOfRange   - sink outside [0, n).
//	ErrSourceIsSink     - source == sink.
//	EdgeError           - negative, NaN or infinite capacity.
//	core.LimitError     - n above FlowOptions.MaxNodes.
//
// All of these are detected before any working matrix is allocated; the
// input matrix is never written.
package flow
