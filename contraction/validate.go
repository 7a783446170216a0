package contraction

import "github.com/katalvlaran/hyperkcut/hypergraph"

func validateK(h *hypergraph.Hypergraph, k int) error {
	if k < 2 || k > h.NumVertices() {
		return ErrBadK
	}
	return nil
}
