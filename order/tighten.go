package order

import "github.com/katalvlaran/hyperkcut/hypergraph"

// tighten is the hook invoked with a vertex v the instant it is added to
// the ordering; it updates ctx so the tightness heap reflects v's new
// influence on the vertices not yet ordered.
type tighten func(h *hypergraph.Hypergraph, ctx *Context, v int) error

// maximumAdjacencyTighten implements the KW'96 rule: tightness of an
// unordered vertex u is the number (or total weight) of edges incident on
// both u and the ordering so far. Each edge incident on v is only ever
// processed once, the first time any of its endpoints is ordered.
func maximumAdjacencyTighten(h *hypergraph.Hypergraph, ctx *Context, v int) error {
	incident, err := h.EdgesIncidentOn(v)
	if err != nil {
		return err
	}
	for _, e := range incident {
		if ctx.edgeUsed(e) {
			continue
		}
		vs, err := h.Edge(e)
		if err != nil {
			return err
		}
		weight, err := h.EdgeWeight(e)
		if err != nil {
			return err
		}
		for _, u := range vs {
			if ctx.vertexUsed(u) {
				continue
			}
			if err := ctx.heap.Increment(u, weight); err != nil {
				return err
			}
		}
		ctx.usedEdges[e] = struct{}{}
	}
	return nil
}

// tightOrderingTighten implements the MW'00 rule: tightness of an
// unordered vertex u only rises when an edge incident on u becomes "tight"
// — every other endpoint of that edge is already in the ordering, i.e. u
// is its last remaining outside vertex.
func tightOrderingTighten(h *hypergraph.Hypergraph, ctx *Context, v int) error {
	incident, err := h.EdgesIncidentOn(v)
	if err != nil {
		return err
	}
	for _, e := range incident {
		ctx.edgeRemaining[e]--
		if ctx.edgeRemaining[e] != 1 {
			continue
		}
		vs, err := h.Edge(e)
		if err != nil {
			return err
		}
		weight, err := h.EdgeWeight(e)
		if err != nil {
			return err
		}
		for _, u := range vs {
			if ctx.vertexUsed(u) {
				continue
			}
			if err := ctx.heap.Increment(u, weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// queyranneTighten implements the Q'98 rule, the sum of the KW and MW
// rules. ordering() halves the accumulated key back out when reporting
// tightness, since both rules increment the same heap.
func queyranneTighten(h *hypergraph.Hypergraph, ctx *Context, v int) error {
	if err := maximumAdjacencyTighten(h, ctx, v); err != nil {
		return err
	}
	return tightOrderingTighten(h, ctx, v)
}
