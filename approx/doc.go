// Package approx implements the CX'18 (2+epsilon)-approximate minimum cut:
// a recursive algorithm that repeatedly takes the cheapest one-vertex cut
// as a candidate, then contracts every alpha-tight group of a Queyranne
// ordering (alpha scaled to that candidate and epsilon) before recursing
// on the contracted hypergraph.
package approx
