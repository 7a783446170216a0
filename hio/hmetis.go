package hio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperkcut/hypergraph"
)

// DetectWeighted reports whether an hMETIS header line declares a weighted
// file: "m n" is unweighted, "m n 1" is weighted. Returns ErrMalformedHeader
// for anything else.
func DetectWeighted(headerLine string) (bool, error) {
	fields := strings.Fields(headerLine)
	switch len(fields) {
	case 2:
		return false, nil
	case 3:
		if fields[2] != "1" {
			return false, ErrMalformedHeader
		}
		return true, nil
	default:
		return false, ErrMalformedHeader
	}
}

// ReadHMETIS parses an hMETIS-like hypergraph file: a header line "m n" or
// "m n 1" giving the edge and vertex counts, followed by m lines each
// listing the vertices of one hyperedge (weighted files prefix each line
// with the edge's weight). Vertices are numbered 0..n-1 regardless of
// whether every id appears in some edge.
func ReadHMETIS(r io.Reader) (*hypergraph.Hypergraph, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	if !scanner.Scan() {
		return nil, ErrEmptyInput
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 && len(header) != 3 {
		return nil, ErrMalformedHeader
	}
	weighted, err := DetectWeighted(scanner.Text())
	if err != nil {
		return nil, err
	}

	numEdges, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad edge count %q", ErrMalformedHeader, header[0])
	}
	numVertices, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad vertex count %q", ErrMalformedHeader, header[1])
	}

	edges := make([][]int, 0, numEdges)
	weights := make([]float64, 0, numEdges)

	for i := 0; i < numEdges; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: wanted %d edges, got %d", ErrTruncatedBody, numEdges, i)
		}
		fields := strings.Fields(scanner.Text())

		weight := 1.0
		start := 0
		if weighted {
			if len(fields) == 0 {
				return nil, fmt.Errorf("%w: edge %d has no weight token", ErrMalformedLine, i)
			}
			weight, err = strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: edge %d weight %q", ErrMalformedLine, i, fields[0])
			}
			if weight <= 0 {
				return nil, fmt.Errorf("%w: edge %d", ErrNonPositiveWeight, i)
			}
			start = 1
		}

		edge := make([]int, 0, len(fields)-start)
		for _, tok := range fields[start:] {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: edge %d vertex %q", ErrMalformedLine, i, tok)
			}
			edge = append(edge, v)
		}
		edges = append(edges, edge)
		weights = append(weights, weight)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	vertices := make([]int, numVertices)
	for v := 0; v < numVertices; v++ {
		vertices[v] = v
	}

	return hypergraph.NewWeighted(vertices, edges, weights)
}

// WriteHMETIS writes h in the hMETIS-like format. When weighted is true the
// header carries the trailing "1" flag and every edge line is prefixed with
// its weight; when false the weights are omitted (the caller is expected to
// only pass weighted=false for a hypergraph whose edges are all weight 1).
// Edges are emitted in ascending edge-id order for a deterministic output.
func WriteHMETIS(w io.Writer, h *hypergraph.Hypergraph, weighted bool) error {
	ids := h.EdgeIDs()
	sort.Ints(ids)

	if weighted {
		if _, err := fmt.Fprintf(w, "%d %d 1\n", len(ids), h.NumVertices()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%d %d\n", len(ids), h.NumVertices()); err != nil {
			return err
		}
	}

	for _, id := range ids {
		vs, err := h.Edge(id)
		if err != nil {
			return err
		}
		sorted := append([]int(nil), vs...)
		sort.Ints(sorted)

		var line strings.Builder
		if weighted {
			wt, err := h.EdgeWeight(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(&line, "%s", strconv.FormatFloat(wt, 'g', -1, 64))
		}
		for _, v := range sorted {
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			fmt.Fprintf(&line, "%d", v)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
