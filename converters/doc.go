// Package converters adapts core.Graph to external graph libraries, so
// callers can hand a TopoLoom graph to the wider ecosystem's analysis
// tooling without re-describing it edge by edge.
//
// The one adapter currently shipped is ToGonum, targeting
// gonum.org/v1/gonum/graph/simple.
package converters
