// Package hyperkcut implements hypergraph minimum-k-cut algorithms: exact
// vertex-ordering cuts for k=2 (KW, MW, Q), randomized contraction
// algorithms for general k (CXY, FPZ, KK), a (2+epsilon)-approximate cut
// (CX), and a k-trimmed certificate usable both standalone and as an
// accelerator for the exact algorithms.
//
// Subpackages:
//
//	hypergraph/   the vertex/hyperedge store and its contraction primitive
//	pq/           priority structures backing the ordering engine
//	order/        maximum-adjacency, tight, and Queyranne vertex orderings
//	mincut/       Cut type, one-vertex-cut, cut validation, KW/MW/Q
//	certificate/  k-trimmed certificate and certificate-accelerated mincut
//	contraction/  CXY/FPZ/KK and their shared repeat-loop runner
//	approx/       CX(epsilon) approximate min-cut
//	hio/          hMETIS-like and cut text formats
//	selector/     algorithm-name parameter-contract validation
//	cmd/hcut/     a CLI front end wiring selector, hio, and the algorithms
//
// This package itself holds no code; it exists to give the module root a
// documentation entry point.
package hyperkcut
