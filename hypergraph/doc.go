// Package hypergraph provides the core hypergraph store and the contraction
// primitive that every min-k-cut algorithm in this module is built on.
//
// A Hypergraph is a finite vertex set together with a multiset of
// hyperedges, each hyperedge a subset of at least two vertices. Edges carry
// a positive weight; an "unweighted" hypergraph is simply one where every
// edge weight is 1 — there is no separate type, only a convention at
// construction time (see New vs NewWeighted).
//
// Vertex and edge ids are opaque, non-contiguous integers minted by two
// monotonic counters. Contraction never reuses an id: the certificate
// builder and several callers key off a stable ordering of ids, and
// reusing ids after a contraction would make that ordering ambiguous.
//
// The type is not safe for concurrent mutation. Spec and practice agree:
// every algorithm here either owns a Hypergraph exclusively or works from
// an immutable snapshot it copies itself (see Clone). No code in this
// module shares a Hypergraph between goroutines: the monitor goroutine of
// contraction.RunCutoff reads only the best cut value, never the working
// hypergraph.
package hypergraph
