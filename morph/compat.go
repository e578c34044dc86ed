package morph

import "github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"

// endingCompat is the §4.4 POS compatibility table: which morpheme POS
// values a given ending POS accepts.
var endingCompat = map[dict.POS][]dict.POS{
	dict.NOUN: {dict.NOUN, dict.NOUN_OR_VERB},
	dict.ADJ:  {dict.ADJ},
	dict.ADV:  {dict.ADV},
	dict.VERB: {dict.VERB, dict.NOUN_OR_VERB},
	dict.NUM:  {dict.NUM},
	dict.PRON: {dict.PRON},
}

// compatibleStrict reports whether a morpheme's pos may carry endPos,
// exactly per the §4.4 table. This is the rule for the single-morpheme
// check, and compatibleForLast falls back to it for morphemes that are
// not content roots. The splitter's FIRST and INTERNAL roles make no POS
// check at all.
func compatibleStrict(pos, endPos dict.POS) bool {
	for _, p := range endingCompat[endPos] {
		if p == pos {
			return true
		}
	}
	return false
}

// isContentRoot reports whether pos is one of the open lexical categories
// a root is ordinarily cited under.
func isContentRoot(pos dict.POS) bool {
	switch pos {
	case dict.NOUN, dict.ADJ, dict.ADV, dict.VERB, dict.NOUN_OR_VERB:
		return true
	default:
		return false
	}
}

// compatibleForLast reports whether a morpheme is an acceptable final
// element of a compound whose word carries endPos.
//
// Esperanto roots freely convert across the open categories depending on
// which ending is attached to the finished word (tago "a day" vs. tage
// "by day" vs. taga "daily" are all built from the same root tag). The
// dictionary's pos column records a root's citation category, not an
// exhaustive restriction, so for content roots this check accepts any
// open-category endPos rather than only the root's own listed pos. Fixed
// grammatical categories (pronouns, numerals, particles, affixes) keep
// the strict §4.4 table, since their endings are not a free choice.
// See DESIGN.md, Open Question: compound last-morpheme POS compatibility.
func compatibleForLast(pos, endPos dict.POS) bool {
	if isContentRoot(pos) && endPos != dict.NONE {
		_, ok := endingCompat[endPos]
		return ok
	}
	return compatibleStrict(pos, endPos)
}
