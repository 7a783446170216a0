// Package contraction implements the randomized hypergraph minimum-k-cut
// algorithms CXY, FPZ, and KK, each built on the shared repeat-loop runner
// in runner.go: copy the input hypergraph, run one algorithm-specific
// trial, fold the trial's cut into a running best, and stop once a
// discovery value is reached or a run cap is exhausted.
//
// Every algorithm here is a Monte Carlo procedure: run often enough (the
// per-algorithm default run caps give a high-probability guarantee of
// finding the true minimum k-cut), but any single run may return a worse
// value. A trial never mutates the hypergraph passed to its exported entry
// point; it always operates on its own clone.
package contraction
