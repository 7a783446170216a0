package order

import "github.com/katalvlaran/hyperkcut/hypergraph"

// Context accumulates the bookkeeping a tighten rule needs: which vertices
// and edges have already been folded into the ordering, and (for the
// tight-ordering component of MW and Q) how many not-yet-ordered vertices
// each edge still has.
type Context struct {
	heap tightnessHeap

	// edgeRemaining[e] counts the vertices of edge e that are not yet in
	// the ordering. Used by the tight-ordering rule.
	edgeRemaining map[int]int

	usedVertices map[int]struct{}
	usedEdges    map[int]struct{}
}

func newContext(h *hypergraph.Hypergraph, vertices []int, capacity int) (*Context, error) {
	heap, err := newTightnessHeap(h, vertices, capacity)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		heap:          heap,
		edgeRemaining: make(map[int]int, h.NumEdges()),
		usedVertices:  make(map[int]struct{}, h.NumVertices()),
		usedEdges:     make(map[int]struct{}, h.NumEdges()),
	}
	for _, e := range h.EdgeIDs() {
		vs, _ := h.Edge(e)
		ctx.edgeRemaining[e] = len(vs)
	}
	return ctx, nil
}

func (ctx *Context) markVertexUsed(v int) {
	ctx.usedVertices[v] = struct{}{}
}

func (ctx *Context) vertexUsed(v int) bool {
	_, ok := ctx.usedVertices[v]
	return ok
}

func (ctx *Context) edgeUsed(e int) bool {
	_, ok := ctx.usedEdges[e]
	return ok
}
