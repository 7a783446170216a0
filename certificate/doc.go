// Package certificate builds k-trimmed certificates of a hypergraph: a
// subhypergraph, built once in O(p) and queried in O(kn) per k, that
// preserves every cut of value at most k. Certificates accelerate exact
// minimum-cut search via an exponential doubling search over k.
package certificate
