package literumilo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/config"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/ending"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/fallback"
)

func mustAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	d, err := dict.LoadDefault()
	if err != nil {
		t.Fatalf("dict.LoadDefault() error = %v", err)
	}
	f, err := fallback.LoadDefault()
	if err != nil {
		t.Fatalf("fallback.LoadDefault() error = %v", err)
	}
	return New(d, f)
}

func TestAnalyzeWordWorkedExamples(t *testing.T) {
	a := mustAnalyzer(t)
	tests := []struct {
		word string
		want string
	}{
		{"forgesitaj", "forges.it.aj"},
		{"n-rojn", "n-r.ojn"},
		{"abateco", "abat.ec.o"},
		{"aerodinamiko", "aer.o.dinamik.o"},
		{"aviadinte", "aviad.int.e"},
		{"aboliciiĝos", "abolici.iĝ.os"},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got := a.AnalyzeWord(tc.word)
			if !got.Valid {
				t.Fatalf("AnalyzeWord(%q).Valid = false, want true", tc.word)
			}
			if got.Text != tc.want {
				t.Errorf("AnalyzeWord(%q) = %q, want %q", tc.word, got.Text, tc.want)
			}
		})
	}
}

func TestAnalyzeWordRejectsIllegalDoubledVowel(t *testing.T) {
	a := mustAnalyzer(t)
	got := a.AnalyzeWord("kuraciisto")
	if got.Valid {
		t.Fatalf("AnalyzeWord(kuraciisto).Valid = true, want false (illegal doubled i)")
	}
	if got.Text != "kuraciisto" {
		t.Errorf("AnalyzeWord(kuraciisto).Text = %q, want original surface", got.Text)
	}
}

func TestAnalyzeWordRejectsInvalidCharacters(t *testing.T) {
	a := mustAnalyzer(t)
	got := a.AnalyzeWord("tag3")
	if got.Valid {
		t.Error("AnalyzeWord should reject a word containing a digit")
	}
	if got.Text != "tag3" {
		t.Errorf("Text = %q, want original surface preserved", got.Text)
	}
}

func TestAnalyzeWordRoundTrip(t *testing.T) {
	a := mustAnalyzer(t)
	words := []string{"forgesitaj", "n-rojn", "abateco", "aerodinamiko"}
	for _, w := range words {
		result := a.AnalyzeWord(w)
		if !result.Valid {
			t.Fatalf("AnalyzeWord(%q) unexpectedly invalid", w)
		}
		rebuilt := ""
		for _, seg := range splitDots(result.Text) {
			rebuilt += seg
		}
		if rebuilt != w {
			t.Errorf("removing dots from %q = %q, want %q", result.Text, rebuilt, w)
		}
	}
}

func splitDots(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func TestAnalyzeWordFallbackIndependence(t *testing.T) {
	d, err := dict.LoadDefault()
	if err != nil {
		t.Fatalf("dict.LoadDefault() error = %v", err)
	}
	withFallback := mustAnalyzer(t)
	withoutFallback := New(d, nil)

	words := []string{"forgesitaj", "n-rojn", "abateco", "aerodinamiko"}
	for _, w := range words {
		got1 := withFallback.AnalyzeWord(w)
		got2 := withoutFallback.AnalyzeWord(w)
		if got1 != got2 {
			t.Errorf("AnalyzeWord(%q) differs with fallback on/off: %+v vs %+v", w, got1, got2)
		}
	}
}

func TestNewUsesDefaultRarityAndMinRootLen(t *testing.T) {
	a := mustAnalyzer(t)
	if a.rarityThreshold != dict.DefaultRarityThreshold {
		t.Errorf("New() rarityThreshold = %d, want %d", a.rarityThreshold, dict.DefaultRarityThreshold)
	}
	if a.minRootLen != ending.DefaultMinRootLen {
		t.Errorf("New() minRootLen = %d, want %d", a.minRootLen, ending.DefaultMinRootLen)
	}
}

func TestNewFromConfigWiresRarityAndMinRootLen(t *testing.T) {
	cfg := config.Default()
	cfg.RarityThreshold = 1
	cfg.MinRootLen = 3
	a, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if a.rarityThreshold != 1 {
		t.Errorf("NewFromConfig() rarityThreshold = %d, want 1", a.rarityThreshold)
	}
	if a.minRootLen != 3 {
		t.Errorf("NewFromConfig() minRootLen = %d, want 3", a.minRootLen)
	}
}

func TestAnalyzeWordRarityThresholdPrefersCommonAnalysis(t *testing.T) {
	data := `
ab	NOUN	rare alternative root (fixture)	∅	N	KF	NONE	4	R
abcd	NOUN	common root (fixture)	∅	N	KF	NONE	0	R
xyz	NOUN	common root (fixture)	∅	N	KF	SUFFIX_ONLY	0	R
`
	d, err := dict.LoadReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("dict.LoadReader() error = %v", err)
	}
	a := New(d, nil)
	got := a.AnalyzeWord("abcdxyzo")
	if !got.Valid || got.Text != "abcd.xyz.o" {
		t.Errorf("AnalyzeWord(abcdxyzo) = %+v, want the common analysis abcd.xyz.o", got)
	}
}

func TestAnalyzeWordSingleMorphemeInvariance(t *testing.T) {
	a := mustAnalyzer(t)
	got := a.AnalyzeWord("sed")
	if !got.Valid || got.Text != "sed" {
		t.Errorf("AnalyzeWord(sed) = %+v, want (true, sed) unchanged", got)
	}
}

func TestAnalyzeTextMorphemeMode(t *testing.T) {
	a := mustAnalyzer(t)
	got := a.AnalyzeText("La abateco kaj xyzfoo.", true)
	want := "La abat.ec.o kaj xyzfoo."
	if got != want {
		t.Errorf("AnalyzeText(morpheme) = %q, want %q", got, want)
	}
}

func TestAnalyzeTextSpellcheckMode(t *testing.T) {
	a := mustAnalyzer(t)
	got := a.AnalyzeText("La abateco kaj xyzfoo.", false)
	want := "La\nkaj\nxyzfoo\n"
	if got != want {
		t.Errorf("AnalyzeText(spellcheck) = %q, want %q", got, want)
	}
}

func TestAnalyzeTextConvertsXNotation(t *testing.T) {
	a := mustAnalyzer(t)
	got := a.AnalyzeText("cxiu tago forgesas.", false)
	if got != "" {
		t.Errorf("AnalyzeText(spellcheck) = %q, want empty (all words valid after cx conversion)", got)
	}
}

func TestAnalyzeFile(t *testing.T) {
	a := mustAnalyzer(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("abateco"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	n, err := a.AnalyzeFile(in, out, true)
	if err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(out): %v", err)
	}
	if string(data) != "abat.ec.o" {
		t.Errorf("AnalyzeFile output = %q, want %q", data, "abat.ec.o")
	}
	if n != len(data) {
		t.Errorf("AnalyzeFile returned %d bytes, want %d", n, len(data))
	}
}

func TestAnalyzeFileMissingInput(t *testing.T) {
	a := mustAnalyzer(t)
	if _, err := a.AnalyzeFile("/nonexistent/in.txt", "/tmp/out.txt", true); err == nil {
		t.Error("AnalyzeFile should error on a missing input file")
	}
}
