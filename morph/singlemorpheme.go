package morph

import "github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"

// SingleMorpheme implements the §4.4 check: is stem, taken whole, a
// single known morpheme usable with the given ending?
//
// hasEnding is false for a zero-length ending match (k=0 in §4.4), in
// which case stem is the entire word and must be a complete, standalone
// entry rather than a bound root awaiting a grammatical ending.
func SingleMorpheme(store *dict.Store, stem string, hasEnding bool, endPos dict.POS) ([]string, bool) {
	entry, found := store.Lookup(stem)
	if !found || entry.Flag == dict.EXCLUDED {
		return nil, false
	}
	if hasEnding {
		if !compatibleStrict(entry.POS, endPos) {
			return nil, false
		}
		return []string{stem}, true
	}
	if entry.Standalone && !entry.NeedsEnding && entry.Flag != dict.COMPOUND_ONLY {
		return []string{stem}, true
	}
	return nil, false
}
