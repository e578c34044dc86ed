// Package morph decomposes an Esperanto stem (a word with its grammatical
// ending already removed by package ending) into a sequence of dictionary
// morphemes.
//
// Two strategies are tried in order: SingleMorpheme, a direct dictionary
// lookup of the whole stem (§4.4), and Split, the backtracking compound
// splitter that partitions the stem into one or more morphemes (§4.5).
// Analyze runs both and is the entry point callers should use; the two
// are exported separately mainly for testing.
//
// Every function here is a pure read against an immutable *dict.Store
// and is safe for concurrent use by multiple goroutines.
package morph

import "github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"

// Analyze returns the morpheme sequence for stem, trying the
// single-morpheme check before falling back to the compound splitter.
// It does not consult the fallback lexicon; that is a further fallback
// the caller (package literumilo) applies on failure here. threshold and
// minRootLen are forwarded to Split; callers without configured values
// should pass dict.DefaultRarityThreshold and ending.DefaultMinRootLen.
func Analyze(store *dict.Store, stem string, hasEnding bool, endPos dict.POS, threshold, minRootLen int) ([]string, bool) {
	if segs, ok := SingleMorpheme(store, stem, hasEnding, endPos); ok {
		return segs, true
	}
	return Split(store, stem, hasEnding, endPos, threshold, minRootLen)
}
