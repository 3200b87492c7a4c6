package vocab

import "testing"

func TestIndex_KnownLabels(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"RBC", 0},
		{"DRBC", 1},
		{"WBC", 3},
		{"BACT", 5},
		{"CAOX", 10},
		{"BUBB", 24},
		{"NONE", 25},
	}
	for _, tc := range cases {
		if got := Index(tc.label); got != tc.want {
			t.Errorf("Index(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestIndex_UnknownFallsToCatchAll(t *testing.T) {
	for _, s := range []string{"", "rbc", " RBC", "RBC ", "XYZZY", "NONE2"} {
		if got := Index(s); got != CatchAll {
			t.Errorf("Index(%q) = %d, want catch-all %d", s, got, CatchAll)
		}
	}
}

func TestIndex_TotalAndDeterministic(t *testing.T) {
	for _, s := range append(Labels(), "garbage", "") {
		first := Index(s)
		if first < 0 || first >= Size {
			t.Fatalf("Index(%q) = %d outside [0,%d)", s, first, Size)
		}
		if again := Index(s); again != first {
			t.Fatalf("Index(%q) not deterministic: %d then %d", s, first, again)
		}
	}
}

func TestVocabularyShape(t *testing.T) {
	if Size != 26 {
		t.Fatalf("Size = %d, want 26", Size)
	}
	if Label(CatchAll) != "NONE" {
		t.Fatalf("last slot = %q, want NONE", Label(CatchAll))
	}
	seen := map[string]bool{}
	for _, s := range Labels() {
		if seen[s] {
			t.Fatalf("duplicate label %q", s)
		}
		seen[s] = true
	}
}
