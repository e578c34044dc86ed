// Package fallback implements the §4.6 second-chance lookup: a read-only
// map of word to dotted segmentation built from an externally
// pre-segmented lexicon (PEJVO-style), plus on-the-fly derivation of
// inflected forms the lexicon only lists in their base form.
//
// Like package dict, the Store is built once at startup and never
// mutated; LookupInflected is a pure read safe for concurrent use.
package fallback

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/ending"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/orthography"
)

//go:embed data/pejvo_sample.txt
var embeddedLexicon []byte

// participleSuffixes is the peel order for step 3 of §4.6: at most one of
// these, innermost (closest to the ending) last.
var participleSuffixes = []string{"ant", "int", "ont", "at", "it", "ot"}

// canonicalSuffix is the vowel appended to a bare stem to reach the map's
// citation form for the given (forced) part of speech.
var canonicalSuffix = map[dict.POS]string{
	dict.NOUN: "o",
	dict.ADJ:  "a",
	dict.ADV:  "e",
	dict.VERB: "i",
}

// Store is the loaded word -> dotted-segmentation map.
type Store struct {
	entries map[string]string
}

// LoadDefault builds a Store from the lexicon embedded in the binary.
func LoadDefault() (*Store, error) {
	return loadReader(strings.NewReader(string(embeddedLexicon)))
}

// Load builds a Store from the pre-segmented lexicon file at path. A
// missing file is reported as the error from os.Open; literumilo's
// NewFromConfig returns that error rather than running without the
// fallback layer.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadReader(f)
}

// LoadReader builds a Store from an arbitrary reader of lexicon lines.
func LoadReader(r io.Reader) (*Store, error) {
	return loadReader(r)
}

func loadReader(r io.Reader) (*Store, error) {
	entries := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		word, segmentation, ok := normalizeEntry(line[:idx])
		if !ok {
			continue
		}
		// First occurrence wins, matching the original loader's
		// dict.setdefault behavior.
		if _, exists := entries[word]; !exists {
			entries[word] = segmentation
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Store{entries: entries}, nil
}

// normalizeEntry converts one raw "word/with/slashes" headword into its
// lowercase word form and dotted segmentation, per §4.6's loading rules:
// caret to accented, lowercased, reject non-alphabetic, require >= 2
// segments.
func normalizeEntry(raw string) (word, segmentation string, ok bool) {
	cleaned := strings.ToLower(strings.TrimSpace(orthography.ToAccented(raw)))
	if !strings.Contains(cleaned, "/") {
		return "", "", false
	}
	var segments []string
	for _, seg := range strings.Split(cleaned, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) < 2 {
		return "", "", false
	}
	word = strings.Join(segments, "")
	for _, r := range word {
		if !orthography.IsLetter(r) {
			return "", "", false
		}
	}
	return word, strings.Join(segments, "."), true
}

// LookupInflected implements the §4.6 fallback operation. w must already
// be lowercase and NFC-normalized. minRootLen is forwarded to
// ending.Strip; callers without a configured value should pass
// ending.DefaultMinRootLen.
func (s *Store) LookupInflected(w string, minRootLen int) ([]string, bool) {
	if seg, ok := s.entries[w]; ok {
		return strings.Split(seg, "."), true
	}

	m := ending.Strip(w, minRootLen)
	if m.Length == 0 {
		return nil, false
	}
	base := ending.Stem(w, m)
	if base == "" {
		return nil, false
	}

	stem, derived, derivesFromVerb := extractDerivationalSuffixes(base)

	canonicalPos := m.Pos
	if derivesFromVerb {
		canonicalPos = dict.VERB
	} else if _, ok := canonicalSuffix[canonicalPos]; !ok {
		return nil, false
	}

	canonicalTokens, ok := s.lookupCanonicalTokens(stem, canonicalPos)
	if !ok {
		return nil, false
	}

	final := make([]string, 0, len(canonicalTokens)+len(derived)+1)
	final = append(final, canonicalTokens...)
	final = append(final, derived...)
	final = append(final, endingSurface(w, m))
	return final, true
}

// extractDerivationalSuffixes peels, in order, at most one trailing
// participle and then zero or more trailing ig/iĝ, innermost last. Each
// peel forces the verb reading.
func extractDerivationalSuffixes(stem string) (base string, suffixTokens []string, derivesFromVerb bool) {
	base = stem
	for _, part := range participleSuffixes {
		if strings.HasSuffix(base, part) {
			base = strings.TrimSuffix(base, part)
			suffixTokens = append([]string{part}, suffixTokens...)
			derivesFromVerb = true
			break
		}
	}
	for {
		switch {
		case strings.HasSuffix(base, "iĝ"):
			base = strings.TrimSuffix(base, "iĝ")
			suffixTokens = append([]string{"iĝ"}, suffixTokens...)
			derivesFromVerb = true
			continue
		case strings.HasSuffix(base, "ig"):
			base = strings.TrimSuffix(base, "ig")
			suffixTokens = append([]string{"ig"}, suffixTokens...)
			derivesFromVerb = true
			continue
		}
		break
	}
	return base, suffixTokens, derivesFromVerb
}

// lookupCanonicalTokens tries the bare base and then base+canonical-suffix
// against the lexicon and uses the first hit, stripping its final token
// when that token is the canonical suffix.
func (s *Store) lookupCanonicalTokens(base string, pos dict.POS) ([]string, bool) {
	if base == "" {
		return nil, false
	}
	suffix := canonicalSuffix[pos]
	candidates := []string{base}
	if suffix != "" {
		candidates = append(candidates, base+suffix)
	}
	for _, candidate := range candidates {
		seg, ok := s.entries[candidate]
		if !ok {
			continue
		}
		tokens := strings.Split(seg, ".")
		if suffix != "" && len(tokens) > 1 && tokens[len(tokens)-1] == suffix {
			tokens = tokens[:len(tokens)-1]
		}
		return tokens, true
	}
	return nil, false
}

// endingSurface returns the literal trailing runes the ending.Match m covers.
func endingSurface(w string, m ending.Match) string {
	runes := []rune(w)
	return string(runes[len(runes)-m.Length:])
}
