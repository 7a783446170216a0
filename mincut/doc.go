// Package mincut defines the Cut result type shared by every min-k-cut
// algorithm in this module, the one-vertex-cut primitive, cut validation,
// and the deterministic vertex-ordering minimum-cut algorithms (KW, MW,
// Q) built from the order package's orderings.
package mincut
