// Package hio reads and writes the two text formats the core hands off to
// external collaborators: an hMETIS-like hypergraph format and a cut
// format. Neither format is part of the core's own contract; callers such
// as a CLI front end or a benchmark harness use this package to get a
// *hypergraph.Hypergraph in and a mincut.Cut out of plain text.
package hio
