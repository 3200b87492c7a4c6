// core/vocab/vocab.go

// Package vocab holds the fixed particle-class vocabulary shared by the
// machine and expert classification axes of a confusion matrix. The table is
// the single source of truth for label ordering; both axes must index through
// it, never through a second copy.
package vocab

// labels lists the known particle classes in matrix order. NONE is last and
// doubles as the catch-all for unrecognized labels.
var labels = [...]string{
	"RBC",
	"DRBC",
	"RBCC",
	"WBC",
	"WBCC",
	"BACT",
	"SQEP",
	"NSE",
	"TREP",
	"REEP",
	"CAOX",
	"URIC",
	"TPO4",
	"CAPH",
	"CYST",
	"LEUC",
	"AMOR",
	"CELL",
	"GRAN",
	"MUCS",
	"SPRM",
	"BYST",
	"HYST",
	"TRCH",
	"BUBB",
	"NONE",
}

// Size is the vocabulary size, i.e. the confusion matrix side.
const Size = len(labels)

// CatchAll is the index any unmatched label maps to (the NONE slot).
const CatchAll = Size - 1

var index = func() map[string]int {
	m := make(map[string]int, Size)
	for i, s := range labels {
		m[s] = i
	}
	return m
}()

// Index maps a classification label to its vocabulary slot. Matching is
// exact (case-sensitive, no trimming); anything unknown lands on CatchAll.
// Total and deterministic for every input string.
func Index(label string) int {
	if i, ok := index[label]; ok {
		return i
	}
	return CatchAll
}

// Label returns the label at slot i. Panics if i is out of range, like any
// slice access; callers index with values produced by Index.
func Label(i int) string { return labels[i] }

// Labels returns a copy of the vocabulary in index order.
func Labels() []string {
	out := make([]string, Size)
	copy(out, labels[:])
	return out
}
