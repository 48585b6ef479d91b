// Package core holds the vocabulary shared by every reliefplan solver:
// the Region demand record, the two-kind error taxonomy, and the
// tractability Limits that guard the expensive algorithms.
//
// Nothing here computes anything. The solvers (greedy, knapsack, flow,
// mst) never call each other; they only agree on these types.
//
// Errors:
//
//	ErrInvalidInput     - malformed shape, out-of-range index, negative value
//	                      where non-negative is required, unknown node.
//	ErrResourceExceeded - the instance is larger than the configured Limits.
//
// Every package-level error in reliefplan wraps exactly one of the two, so a
// boundary layer can classify any failure with errors.Is.
package core
