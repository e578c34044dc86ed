package morph_test

import (
	"testing"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/ending"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/morph"
)

func mustStore(t *testing.T) *dict.Store {
	t.Helper()
	s, err := dict.LoadDefault()
	if err != nil {
		t.Fatalf("dict.LoadDefault() error = %v", err)
	}
	return s
}

func analyzeWord(t *testing.T, store *dict.Store, w string) ([]string, bool) {
	t.Helper()
	m := ending.Strip(w, ending.DefaultMinRootLen)
	stem := ending.Stem(w, m)
	segs, ok := morph.Analyze(store, stem, m.Length > 0, m.Pos, dict.DefaultRarityThreshold, ending.DefaultMinRootLen)
	if !ok {
		return nil, false
	}
	if m.Length > 0 {
		segs = append(append([]string{}, segs...), w[len(w)-byteLenOfRunes(w, m.Length):])
	}
	return segs, true
}

// byteLenOfRunes returns the byte length of the last n runes of w.
func byteLenOfRunes(w string, n int) int {
	runes := []rune(w)
	return len(string(runes[len(runes)-n:]))
}

func TestAnalyzeWorkedExamples(t *testing.T) {
	store := mustStore(t)
	tests := []struct {
		word string
		want string
	}{
		{"forgesitaj", "forges.it.aj"},
		{"n-rojn", "n-r.ojn"},
		{"abateco", "abat.ec.o"},
		{"aerodinamiko", "aer.o.dinamik.o"},
		{"misliterumita", "mis.liter.um.it.a"},
		{"ĉiutage", "ĉiu.tag.e"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			segs, ok := analyzeWord(t, store, tt.word)
			if !ok {
				t.Fatalf("Analyze(%q) failed, want success", tt.word)
			}
			got := joinDot(segs)
			if got != tt.want {
				t.Errorf("Analyze(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestAnalyzeRejectsIllegalDoubledVowel(t *testing.T) {
	store := mustStore(t)
	// The seed dictionary has the suffix "ist" but no root "kurac", so
	// "kuraciisto" has no analysis here; this checks the seed dictionary
	// end to end and does not reach the fusion-vowel gate itself.
	if _, ok := analyzeWord(t, store, "kuraciisto"); ok {
		t.Error("Analyze(\"kuraciisto\") succeeded, want failure (illegal doubled i)")
	}
}

func TestAnalyzeAffixPlacement(t *testing.T) {
	store := mustStore(t)
	// "mis" is AFFIX_PREFIX / PREFIX_ONLY: the single-morpheme check must
	// not accept it as a whole word with a noun ending.
	stem := "mis"
	if _, ok := morph.SingleMorpheme(store, stem, true, dict.NOUN); ok {
		t.Error("bare prefix accepted as a single morpheme with a noun ending")
	}
}

func joinDot(segs []string) string {
	out := segs[0]
	for _, s := range segs[1:] {
		out += "." + s
	}
	return out
}
