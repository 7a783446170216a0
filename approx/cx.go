package approx

import (
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
	"github.com/katalvlaran/hyperkcut/order"
)

// CX returns a (2+epsilon)-approximate minimum cut of h, following [CX'18].
// h is not modified. Returns ErrBadEpsilon if epsilon is not positive.
//
// Complexity: O(p/epsilon), where p is the size of h.
func CX(h *hypergraph.Hypergraph, epsilon float64) (mincut.Cut, error) {
	if epsilon <= 0 {
		return mincut.Cut{}, ErrBadEpsilon
	}
	return approximateMinimizer(h, epsilon)
}

func approximateMinimizer(h *hypergraph.Hypergraph, epsilon float64) (mincut.Cut, error) {
	if h.NumVertices() == 1 {
		return mincut.Max(), nil
	}

	delta := mincut.Max()
	for _, v := range h.Vertices() {
		cut, err := mincut.OneVertexCut(h, v)
		if err != nil {
			return mincut.Cut{}, err
		}
		if cut.Less(delta) {
			delta = cut
		}
	}
	if delta.Value == 0 {
		return delta, nil
	}

	alpha := delta.Value / (2.0 + epsilon)

	ord, tightness, err := order.QueyranneOrderingWithTightness(h, h.Vertices()[0])
	if err != nil {
		return mincut.Cut{}, err
	}

	groups := alphaTightGroups(ord, tightness, alpha)

	temp := h.Clone()
	for _, g := range groups {
		if err := temp.ContractSetInPlace(g); err != nil {
			return mincut.Cut{}, err
		}
	}

	rest, err := approximateMinimizer(temp, epsilon)
	if err != nil {
		return mincut.Cut{}, err
	}
	if rest.Less(delta) {
		return rest, nil
	}
	return delta, nil
}

// alphaTightGroups splits ord into maximal runs whose members all have
// tightness at least alpha, discarding the single vertex straddling each
// split point (it belongs to neither neighboring run) and discarding any
// run of length 1 (contracting a single vertex is a no-op).
func alphaTightGroups(ord []int, tightness []float64, alpha float64) [][]int {
	var groups [][]int
	begin := 0
	for i := 0; i < len(ord)-1; i++ {
		if tightness[i+1] < alpha {
			if i-begin > 1 {
				groups = append(groups, append([]int(nil), ord[begin:i]...))
			}
			begin = i + 1
		}
	}
	if len(ord)-begin > 1 {
		groups = append(groups, append([]int(nil), ord[begin:]...))
	}
	return groups
}
