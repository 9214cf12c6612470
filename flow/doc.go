// Package flow provides maximum-flow (Dinic, EdmondsKarp, FordFulkerson)
// and minimum-cost-flow solvers over an integer-capacitated residual
// network.
//
// All three max-flow solvers share one residual representation: a Network
// holding paired forward/backward arcs at indices 2k and 2k+1, so arcs[i^1]
// is always the reverse of arcs[i]. Capacities, costs, and flows are int64
// throughout, with overflow detection (ErrOverflow) on every accumulation.
//
// MinCostFlow solves the demand form of the problem: per-node supplies and
// sinks, per-arc [lower, upper] bounds and unit costs. It runs successive
// shortest augmenting paths on the residual graph with node potentials:
// a Bellman-Ford seed (input costs may be negative), then Dijkstra over
// reduced costs on every later iteration. Lower bounds are eliminated up
// front by shifting flow and demands, and restored in the reported
// per-arc flows.
//
// Every operation here runs synchronously to completion; there is no
// cancellation, no goroutines, and no retained state between calls.
//
// Errors:
//
//	ErrNegativeCapacity - an arc's bounds are negative or inverted.
//	ErrOverflow         - an accumulated flow or cost would overflow int64.
//	ErrBadNode          - an arc or endpoint references a node out of range.
//	ErrBadDemands       - the demand vector length does not match NodeCount.
//
// An infeasible but well-formed MinCostFlow problem is not an error: the
// Result reports Feasible=false and callers decide what to do.
package flow
