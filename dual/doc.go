// Package dual builds the dual graph of a half-edge mesh and routes edges
// across a fixed embedding by shortest-path search over dual faces.
//
// RouteEdgeFixedEmbedding is an unweighted breadth-first search seeded
// from every face incident to u and terminating at any face incident to
// v, walking faces instead of vertices.
package dual
