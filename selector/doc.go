// Package selector validates the parameter combinations accepted by the
// nine external algorithm names the CLI front end dispatches on: CXY, FPZ,
// KK, KW, MW, Q, CX, apxCX, apxCertCX. It does not run any algorithm
// itself; Validate only decides whether a requested (name, params) pair is
// well-formed, so a front end can reject a bad invocation before touching
// a hypergraph.
package selector
