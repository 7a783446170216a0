package certificate

import (
	"github.com/katalvlaran/hyperkcut/approx"
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

// MinCutFunc is the shape of any exact minimum-cut algorithm this package
// can accelerate with a certificate: mincut.KWMinCut, mincut.MWMinCut, and
// mincut.QMinCut all satisfy it.
type MinCutFunc func(h *hypergraph.Hypergraph) (mincut.Cut, error)

// MinimumCut finds the exact minimum cut of h by exponential doubling
// search over k: build the k-trimmed certificate, run minCut on it, and
// accept the result once its value is provably below k (at which point
// the certificate is guaranteed to have preserved it exactly).
//
// Complexity: O(p + cn^2), where p is the size of h, c is the value of the
// minimum cut, and n is the number of vertices.
func MinimumCut(h *hypergraph.Hypergraph, minCut MinCutFunc) (mincut.Cut, error) {
	idx, err := NewIndex(h)
	if err != nil {
		return mincut.Cut{}, err
	}

	for k := 1; ; k *= 2 {
		cert, err := idx.Certificate(k)
		if err != nil {
			return mincut.Cut{}, err
		}
		cut, err := minCut(cert)
		if err != nil {
			return mincut.Cut{}, err
		}
		if cut.Value < float64(k) {
			return cut, nil
		}
	}
}

// ApproxThenCertify combines the (2+epsilon)-approximation with the
// certificate search: it runs CX(epsilon) once to get an upper bound on
// the minimum cut, builds a certificate trimmed to that bound, and runs
// minCut on the (usually much smaller) certificate. This is an
// optimization over MinimumCut's doubling search when a good bound is
// cheap to obtain; it does not change the returned cut's exactness.
func ApproxThenCertify(h *hypergraph.Hypergraph, epsilon float64, minCut MinCutFunc) (mincut.Cut, error) {
	bound, err := approx.CX(h, epsilon)
	if err != nil {
		return mincut.Cut{}, err
	}

	idx, err := NewIndex(h)
	if err != nil {
		return mincut.Cut{}, err
	}

	cert, err := idx.Certificate(int(bound.Value))
	if err != nil {
		return mincut.Cut{}, err
	}
	return minCut(cert)
}
