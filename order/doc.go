// Package order computes vertex orderings used by the vertex-ordering
// minimum-cut algorithms: maximum-adjacency (KW), tight (MW), and
// Queyranne (Q, the combination of both). All three share the same
// skeleton — repeatedly pick the "tightest" unordered vertex and update
// tightness — and differ only in how a newly ordered vertex updates the
// keys of the vertices not yet ordered.
package order
