// Command hcut is a thin CLI front end over the core packages: it reads a
// hypergraph in hMETIS-like text format, dispatches to one of the nine
// named algorithms via the selector package's parameter validation, and
// writes the resulting cut in the cut text format.
//
// Usage:
//
//	hcut -algo CXY -in graph.hgr -k 3 -out cut.txt
//	hcut -algo CX -in graph.hgr -epsilon 0.5 -out cut.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/hyperkcut/approx"
	"github.com/katalvlaran/hyperkcut/certificate"
	"github.com/katalvlaran/hyperkcut/contraction"
	"github.com/katalvlaran/hyperkcut/hio"
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
	"github.com/katalvlaran/hyperkcut/selector"
)

func main() {
	algo := flag.String("algo", "", "algorithm name: CXY, FPZ, KK, KW, MW, Q, CX, apxCX, apxCertCX")
	inPath := flag.String("in", "", "input hypergraph file, hMETIS-like text format")
	outPath := flag.String("out", "", "output cut file (cut text format); stdout if empty")
	k := flag.Int("k", 0, "target number of partitions")
	epsilon := flag.Float64("epsilon", 0, "approximation slack for CX-family algorithms")
	runs := flag.Int("runs", 0, "run cap override for contraction algorithms")
	discovery := flag.Float64("discovery", 0, "early-stop discovery value for contraction algorithms")
	seed := flag.Int64("seed", 0, "RNG seed for contraction algorithms")
	verbosity := flag.Int("verbosity", 0, "log verbosity")
	adapter := flag.Bool("adapter", false, "write the experiment-store adapter cut format instead")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *algo == "" || *inPath == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -algo NAME -in FILE [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	var opts []selector.Option
	if set["k"] {
		opts = append(opts, selector.WithK(*k))
	}
	if set["epsilon"] {
		opts = append(opts, selector.WithEpsilon(*epsilon))
	}
	if set["runs"] {
		opts = append(opts, selector.WithRuns(*runs))
	}
	if set["discovery"] {
		opts = append(opts, selector.WithDiscovery(*discovery))
	}
	if set["seed"] {
		opts = append(opts, selector.WithSeed(*seed))
	}
	if set["verbosity"] {
		opts = append(opts, selector.WithVerbosity(*verbosity))
	}

	params, err := selector.Validate(selector.Name(*algo), opts...)
	if err != nil {
		log.Fatalf("bad invocation of %s: %v", *algo, err)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("opening %s: %v", *inPath, err)
	}
	defer in.Close()

	h, err := hio.ReadHMETIS(in)
	if err != nil {
		log.Fatalf("reading %s: %v", *inPath, err)
	}

	cut, err := run(selector.Name(*algo), h, params)
	if err != nil {
		log.Fatalf("running %s: %v", *algo, err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("creating %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	if *adapter {
		err = hio.WriteCutAdapter(out, cut)
	} else {
		err = hio.WriteCut(out, cut)
	}
	if err != nil {
		log.Fatalf("writing cut: %v", err)
	}
}

// run dispatches to the algorithm package matching name, having already
// had its parameters validated by selector.Validate.
func run(name selector.Name, h *hypergraph.Hypergraph, p selector.Params) (mincut.Cut, error) {
	switch name {
	case selector.CXY:
		return runContraction(h, p, contraction.CXYMinCut)
	case selector.FPZ:
		return runContraction(h, p, contraction.FPZMinCut)
	case selector.KK:
		return runContraction(h, p, contraction.KKMinCut)
	case selector.KW:
		return mincut.KWMinCut(h)
	case selector.MW:
		return mincut.MWMinCut(h)
	case selector.Q:
		return mincut.QMinCut(h)
	case selector.CX, selector.ApxCX:
		return approx.CX(h, p.Epsilon)
	case selector.ApxCertCX:
		return certificate.ApproxThenCertify(h, p.Epsilon, mincut.KWMinCut)
	default:
		return mincut.Cut{}, fmt.Errorf("hcut: unreachable algorithm name %q", name)
	}
}

type contractionFunc func(h *hypergraph.Hypergraph, k int, opts ...contraction.Option) (mincut.Cut, contraction.Stats, error)

func runContraction(h *hypergraph.Hypergraph, p selector.Params, algo contractionFunc) (mincut.Cut, error) {
	var opts []contraction.Option
	if p.Runs > 0 {
		opts = append(opts, contraction.WithMaxRuns(p.Runs))
	}
	if p.Discovery > 0 {
		opts = append(opts, contraction.WithDiscoveryValue(p.Discovery))
	}
	if p.Seed != 0 {
		opts = append(opts, contraction.WithSeed(p.Seed))
	}
	if p.Verbosity > 0 {
		opts = append(opts, contraction.WithVerbosity(p.Verbosity))
	}
	cut, _, err := algo(h, p.K, opts...)
	return cut, err
}
