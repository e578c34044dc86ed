// Package literumilo composes the orthography, dict, ending, morph,
// fallback, and tokenizer packages behind a single public API: the word
// driver of §4.7 and the text driver of §4.8.
//
// An Analyzer holds the loaded dictionary and fallback lexicon as
// explicit fields — there is no ambient mutable singleton, so a test (or
// a host embedding this package) can build several independently
// configured analyzers side by side.
package literumilo

import (
	"fmt"
	"os"
	"strings"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/config"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/ending"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/fallback"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/morph"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/orthography"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/tokenizer"
)

// AnalysisResult is the (valid, text) pair of §3: when Valid, Text is the
// dotted morpheme segmentation; otherwise Text is the original surface.
type AnalysisResult struct {
	Valid bool
	Text  string
}

// Analyzer is the composed word decomposition engine. Build one with New
// or NewFromConfig; it is safe for concurrent use once built.
type Analyzer struct {
	dictStore       *dict.Store
	fallbackStore   *fallback.Store
	fallbackOn      bool
	rarityThreshold int
	minRootLen      int
}

// New builds an Analyzer from an already-loaded dictionary and
// (optional, may be nil) fallback lexicon, using the default rarity
// threshold and minimum root length. Use NewFromConfig to override
// either.
func New(dictStore *dict.Store, fallbackStore *fallback.Store) *Analyzer {
	return &Analyzer{
		dictStore:       dictStore,
		fallbackStore:   fallbackStore,
		fallbackOn:      fallbackStore != nil,
		rarityThreshold: dict.DefaultRarityThreshold,
		minRootLen:      ending.DefaultMinRootLen,
	}
}

// NewFromConfig builds an Analyzer per cfg: the embedded dictionary and
// lexicon unless cfg names override paths, the fallback layer disabled
// entirely when cfg.FallbackEnabled is false, and the rarity threshold
// and minimum root length the splitter uses taken from cfg.
func NewFromConfig(cfg *config.Config) (*Analyzer, error) {
	dictStore, err := loadDict(cfg.DictPath)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		dictStore:       dictStore,
		rarityThreshold: cfg.RarityThreshold,
		minRootLen:      cfg.MinRootLen,
	}
	if !cfg.FallbackEnabled {
		return a, nil
	}

	fallbackStore, err := loadFallback(cfg.FallbackPath)
	if err != nil {
		return nil, fmt.Errorf("literumilo: loading fallback lexicon: %w", err)
	}
	a.fallbackStore = fallbackStore
	a.fallbackOn = true
	return a, nil
}

func loadDict(path string) (*dict.Store, error) {
	if path == "" {
		return dict.LoadDefault()
	}
	return dict.Load(path)
}

func loadFallback(path string) (*fallback.Store, error) {
	if path == "" {
		return fallback.LoadDefault()
	}
	return fallback.Load(path)
}

// AnalyzeWord implements the §4.7 word driver. w must already be
// lowercase, NFC-normalized, and have its x/caret digraphs converted to
// accented letters — AnalyzeText performs that conversion for callers
// working from running text.
func (a *Analyzer) AnalyzeWord(w string) AnalysisResult {
	if !validWordCharacters(w) {
		return AnalysisResult{Valid: false, Text: w}
	}

	// A word listed whole as a standalone entry is returned unchanged, even
	// when its tail also reads as an ending (ĉiu ends in the verb ending u).
	if segs, ok := morph.SingleMorpheme(a.dictStore, w, false, dict.NONE); ok {
		return AnalysisResult{Valid: true, Text: strings.Join(segs, ".")}
	}

	m := ending.Strip(w, a.minRootLen)
	stem := ending.Stem(w, m)
	hasEnding := m.Length > 0

	if segs, ok := morph.Analyze(a.dictStore, stem, hasEnding, m.Pos, a.rarityThreshold, a.minRootLen); ok {
		return AnalysisResult{Valid: true, Text: joinSegments(segs, w, m)}
	}

	if a.fallbackOn {
		if segs, ok := a.fallbackStore.LookupInflected(w, a.minRootLen); ok {
			return AnalysisResult{Valid: true, Text: strings.Join(segs, ".")}
		}
	}

	return AnalysisResult{Valid: false, Text: w}
}

// joinSegments appends the ending's literal surface to the morpheme
// segments morph.Analyze returned, unless the word had no ending (k=0),
// in which case the segments already cover the whole word.
func joinSegments(segs []string, w string, m ending.Match) string {
	if m.Length == 0 {
		return strings.Join(segs, ".")
	}
	runes := []rune(w)
	endingText := string(runes[len(runes)-m.Length:])
	return strings.Join(segs, ".") + "." + endingText
}

// validWordCharacters rejects a token containing any character that is
// neither a letter nor '-', per §4.7 step 1.
func validWordCharacters(w string) bool {
	for _, r := range w {
		if !orthography.IsLetter(r) && r != '-' {
			return false
		}
	}
	return w != ""
}

// prepareWord converts x/caret digraphs to accented letters, lowercases,
// and NFC-normalizes a raw token prior to AnalyzeWord.
func prepareWord(raw string) string {
	return strings.ToLower(orthography.NormalizeNFC(orthography.ToAccented(raw)))
}

// AnalyzeText implements the §4.8 text driver. When morphemeMode is
// true, every valid word in s is replaced by its dotted segmentation and
// the rest of the text (whitespace, punctuation, invalid words) is
// preserved verbatim. When false (spell-check mode), the output is only
// the invalid words, one per line, in the order they occur.
func (a *Analyzer) AnalyzeText(s string, morphemeMode bool) string {
	tokens := tokenizer.WordTokens(s)
	if morphemeMode {
		return a.analyzeTextMorpheme(tokens)
	}
	return a.analyzeTextSpellcheck(tokens)
}

func (a *Analyzer) analyzeTextMorpheme(tokens []tokenizer.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Type != tokenizer.Word {
			b.WriteString(t.Text)
			continue
		}
		result := a.AnalyzeWord(prepareWord(t.Text))
		if result.Valid {
			b.WriteString(result.Text)
		} else {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

func (a *Analyzer) analyzeTextSpellcheck(tokens []tokenizer.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Type != tokenizer.Word {
			continue
		}
		result := a.AnalyzeWord(prepareWord(t.Text))
		if !result.Valid {
			b.WriteString(t.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// AnalyzeFile reads path, applies AnalyzeText, writes the result to
// outPath, and returns the number of bytes written.
func (a *Analyzer) AnalyzeFile(path, outPath string, morphemeMode bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("literumilo: reading %s: %w", path, err)
	}
	out := a.AnalyzeText(string(data), morphemeMode)
	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		return 0, fmt.Errorf("literumilo: writing %s: %w", outPath, err)
	}
	return len(out), nil
}
