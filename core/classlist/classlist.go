// core/classlist/classlist.go
package classlist

import "fmt"

// SentinelNone is the label recorded for a patch whose classification field
// was present but empty. It maps to the vocabulary catch-all slot.
const SentinelNone = "NONE"

// PatchClassification is the classification of a single patch. Records are
// created at parse time and never mutated afterwards.
type PatchClassification struct {
	SubsampleNumber uint32 // one-based subsample number
	PatchIndex      uint32 // zero-based within the subsample
	Classification  string // machine- or expert-assigned class
}

// ClassificationList holds the classifications for every patch in a
// multi-subsample runfile, in stream order. It is built once by Parse and
// read-only from then on.
type ClassificationList struct {
	subsamples [][]PatchClassification
}

// Len returns the number of subsamples.
func (l *ClassificationList) Len() int { return len(l.subsamples) }

// Subsamples returns all subsamples in appearance order.
func (l *ClassificationList) Subsamples() [][]PatchClassification {
	return l.subsamples
}

// Subsample returns the records of the n-th subsample (one-based). Asking
// for a subsample the stream never contained is a caller error and is
// reported explicitly rather than answered with an empty slice.
func (l *ClassificationList) Subsample(n int) ([]PatchClassification, error) {
	if n < 1 || n > len(l.subsamples) {
		return nil, fmt.Errorf("classlist: subsample %d out of range (have %d)", n, len(l.subsamples))
	}
	return l.subsamples[n-1], nil
}
