// core/confusion/matrix.go

// Package confusion builds per-subsample confusion matrices from a pair of
// parsed classification lists.
package confusion

import (
	"bufio"
	"fmt"
	"io"

	"aprt-core/classlist"
	"aprt-core/vocab"
)

// Matrix is a square count matrix over the class vocabulary, indexed
// [machine][expert]. All cells start at zero and only ever grow.
type Matrix struct {
	cells [vocab.Size][vocab.Size]int64
}

// Side returns the matrix dimension (the vocabulary size).
func (m *Matrix) Side() int { return vocab.Size }

// At returns the count at (machine, expert).
func (m *Matrix) At(machine, expert int) int64 { return m.cells[machine][expert] }

// Inc adds one to the cell at (machine, expert).
func (m *Matrix) Inc(machine, expert int) { m.cells[machine][expert]++ }

// Build walks the chosen subsample (one-based) of both lists in lock-step and
// counts label agreement: rows are the machine classification, columns the
// expert one, both mapped through the shared vocabulary. Items past the end
// of the shorter subsample are ignored. A subsample number out of range for
// either list is an error; an all-zero matrix is never substituted for bad
// input.
func Build(machine, expert *classlist.ClassificationList, subsample int) (*Matrix, error) {
	mrecs, err := machine.Subsample(subsample)
	if err != nil {
		return nil, fmt.Errorf("confusion: machine list: %w", err)
	}
	erecs, err := expert.Subsample(subsample)
	if err != nil {
		return nil, fmt.Errorf("confusion: expert list: %w", err)
	}

	n := len(mrecs)
	if len(erecs) < n {
		n = len(erecs)
	}

	m := &Matrix{}
	for i := 0; i < n; i++ {
		mi := vocab.Index(mrecs[i].Classification)
		ei := vocab.Index(erecs[i].Classification)
		m.Inc(mi, ei)
	}
	return m, nil
}

// WriteTo serializes the matrix as rows of tab-separated counts, one row per
// machine-class index, every cell followed by a tab and every row by a
// newline. Implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i := 0; i < vocab.Size; i++ {
		for j := 0; j < vocab.Size; j++ {
			k, err := fmt.Fprintf(bw, "%d\t", m.cells[i][j])
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
		k, err := fmt.Fprintln(bw)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
