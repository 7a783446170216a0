package selector

import "fmt"

// contract describes which of {k, epsilon, runs, discovery, seed} an
// algorithm accepts, and whether each is required. Verbosity is accepted
// by every algorithm and is not part of the table.
type contract struct {
	acceptsK, requiresK           bool
	fixedKAtTwo                   bool
	acceptsEpsilon, requiresEps   bool
	acceptsRuns                   bool
	acceptsDiscovery              bool
	acceptsSeed                   bool
}

var contracts = map[Name]contract{
	// Randomized contraction algorithms: k is free in [2, n], runs/
	// discovery/seed tune the repeat-loop runner, epsilon is meaningless.
	CXY: {acceptsK: true, requiresK: true, acceptsRuns: true, acceptsDiscovery: true, acceptsSeed: true},
	FPZ: {acceptsK: true, requiresK: true, acceptsRuns: true, acceptsDiscovery: true, acceptsSeed: true},
	KK:  {acceptsK: true, requiresK: true, acceptsRuns: true, acceptsDiscovery: true, acceptsSeed: true},

	// Deterministic vertex-ordering min-2-cut algorithms: k is fixed at 2
	// and nothing else applies.
	KW: {acceptsK: true, fixedKAtTwo: true},
	MW: {acceptsK: true, fixedKAtTwo: true},
	Q:  {acceptsK: true, fixedKAtTwo: true},

	// Approximate min-cut: k is fixed at 2, epsilon is mandatory.
	CX:    {acceptsK: true, fixedKAtTwo: true, acceptsEpsilon: true, requiresEps: true},
	ApxCX: {acceptsK: true, fixedKAtTwo: true, acceptsEpsilon: true, requiresEps: true},

	// Certificate-accelerated exact min-cut: the exact algorithm it
	// accelerates (KW/MW/Q) only computes a 2-cut, so like CX this fixes
	// k at 2. Epsilon is mandatory: it controls the CX(ε) upper bound
	// used to size the certificate, in place of the doubling search that
	// certificate.MinimumCut runs.
	ApxCertCX: {acceptsK: true, fixedKAtTwo: true, acceptsEpsilon: true, requiresEps: true},
}

// Validate checks that the parameters supplied via opts form a legal
// invocation of the named algorithm, per the table above. On success it
// returns the resolved Params with every field the algorithm accepts
// populated (verbosity defaults to 0, runs/discovery/seed default to
// their zero values meaning "use the algorithm's own default").
func Validate(name Name, opts ...Option) (Params, error) {
	c, ok := contracts[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	p := resolveParams(opts)

	if p.hasK {
		if !c.acceptsK {
			return Params{}, fmt.Errorf("%w: k not accepted by %s", ErrForbiddenParam, name)
		}
		if c.fixedKAtTwo && p.K != 2 {
			return Params{}, fmt.Errorf("%w: %s requires k=2, got %d", ErrBadK, name, p.K)
		}
		if p.K < 2 {
			return Params{}, fmt.Errorf("%w: k=%d", ErrBadK, p.K)
		}
	} else if c.requiresK {
		return Params{}, fmt.Errorf("%w: k required by %s", ErrMissingParam, name)
	} else if c.fixedKAtTwo {
		p.K = 2
	}

	if p.hasEpsilon {
		if !c.acceptsEpsilon {
			return Params{}, fmt.Errorf("%w: epsilon not accepted by %s", ErrForbiddenParam, name)
		}
		if p.Epsilon <= 0 {
			return Params{}, fmt.Errorf("%w: epsilon=%g", ErrBadEpsilon, p.Epsilon)
		}
	} else if c.requiresEps {
		return Params{}, fmt.Errorf("%w: epsilon required by %s", ErrMissingParam, name)
	}

	if p.hasRuns && !c.acceptsRuns {
		return Params{}, fmt.Errorf("%w: runs not accepted by %s", ErrForbiddenParam, name)
	}
	if p.hasDiscovery && !c.acceptsDiscovery {
		return Params{}, fmt.Errorf("%w: discovery not accepted by %s", ErrForbiddenParam, name)
	}
	if p.hasSeed && !c.acceptsSeed {
		return Params{}, fmt.Errorf("%w: seed not accepted by %s", ErrForbiddenParam, name)
	}

	return p, nil
}
