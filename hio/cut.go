package hio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperkcut/mincut"
)

// WriteCut writes c in the cut text format: the value on the first line,
// then one "PARTITION i:" line per partition followed by its sorted,
// space-separated vertex ids.
func WriteCut(w io.Writer, c mincut.Cut) error {
	if _, err := fmt.Fprintf(w, "%s\n", strconv.FormatFloat(c.Value, 'g', -1, 64)); err != nil {
		return err
	}
	for i, part := range c.Partitions {
		sorted := append([]int(nil), part...)
		sort.Ints(sorted)

		var line strings.Builder
		fmt.Fprintf(&line, "PARTITION %d:", i)
		for _, v := range sorted {
			fmt.Fprintf(&line, " %d", v)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// ReadCut parses the cut text format written by WriteCut.
func ReadCut(r io.Reader) (mincut.Cut, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return mincut.Cut{}, ErrEmptyInput
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil {
		return mincut.Cut{}, fmt.Errorf("%w: value line %q", ErrMalformedLine, scanner.Text())
	}

	var partitions [][]int
	for scanner.Scan() {
		line := scanner.Text()
		rest, ok := cutPartitionLine(line)
		if !ok {
			return mincut.Cut{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		part, err := parseIntFields(rest)
		if err != nil {
			return mincut.Cut{}, err
		}
		partitions = append(partitions, part)
	}
	if err := scanner.Err(); err != nil {
		return mincut.Cut{}, err
	}

	return mincut.Cut{Value: value, Partitions: partitions}, nil
}

// cutPartitionLine strips the "PARTITION i:" prefix from line and returns
// the remainder, or ok=false if line does not carry that prefix.
func cutPartitionLine(line string) (rest string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 || !strings.HasPrefix(line, "PARTITION ") {
		return "", false
	}
	return line[idx+1:], true
}

func parseIntFields(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex id %q", ErrMalformedLine, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteCutAdapter writes c in the experiment-store adapter format: the
// partition count, then the value, then one space-separated partition line
// per partition (no "PARTITION i:" label).
func WriteCutAdapter(w io.Writer, c mincut.Cut) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n", len(c.Partitions), strconv.FormatFloat(c.Value, 'g', -1, 64)); err != nil {
		return err
	}
	for _, part := range c.Partitions {
		sorted := append([]int(nil), part...)
		sort.Ints(sorted)

		strs := make([]string, len(sorted))
		for i, v := range sorted {
			strs[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return nil
}

// ReadCutAdapter parses the experiment-store adapter format written by
// WriteCutAdapter.
func ReadCutAdapter(r io.Reader) (mincut.Cut, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return mincut.Cut{}, ErrEmptyInput
	}
	k, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return mincut.Cut{}, fmt.Errorf("%w: partition count %q", ErrMalformedLine, scanner.Text())
	}

	if !scanner.Scan() {
		return mincut.Cut{}, fmt.Errorf("%w: missing value line", ErrTruncatedBody)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil {
		return mincut.Cut{}, fmt.Errorf("%w: value line %q", ErrMalformedLine, scanner.Text())
	}

	partitions := make([][]int, 0, k)
	for i := 0; i < k; i++ {
		if !scanner.Scan() {
			return mincut.Cut{}, fmt.Errorf("%w: wanted %d partitions, got %d", ErrTruncatedBody, k, i)
		}
		part, err := parseIntFields(scanner.Text())
		if err != nil {
			return mincut.Cut{}, err
		}
		partitions = append(partitions, part)
	}
	if err := scanner.Err(); err != nil {
		return mincut.Cut{}, err
	}

	return mincut.Cut{Value: value, Partitions: partitions}, nil
}
