// Compound splitter: the depth-first, left-to-right backtracking search of
// §4.5. This is the heart of the analyzer — most Esperanto words that
// aren't a bare root-plus-ending are compounds, and this search is what
// tells a legal compound from an illegal run of look-alike syllables.
//
// The shape of the search (shortest candidate first, backtrack on
// failure, optionally insert a single fusion character between two
// roots) mirrors the vowel-drop restoration the Azerbaijani analyzer used
// for contracted stems: try an insertion, check the dictionary, keep the
// first match that lets the rest of the search succeed.
package morph

import (
	"unicode/utf8"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
)

// role classifies a candidate's position in the compound being built.
type role int

const (
	roleFirst role = iota
	roleInternal
	roleLast
)

// linkingVowels is the fusion-vowel set of §4.5.
var linkingVowels = map[rune]bool{'o': true, 'a': true, 'e': true, 'i': true}

// Split tries to partition stem into a legal sequence of dictionary
// morphemes per §4.5 and returns the morpheme keys (and any fusion
// vowels) in order. endPos is the part of speech implied by the word's
// grammatical ending, if any; hasEnding is false for a zero-length
// ending match, in which case the last morpheme must itself be a
// complete standalone word. minRootLen is the shortest candidate the
// search will try at any position; callers without a configured value
// should pass ending.DefaultMinRootLen.
//
// Rarity gating runs the search first at threshold and, only on
// failure, retries once with every rarity admitted.
func Split(store *dict.Store, stem string, hasEnding bool, endPos dict.POS, threshold, minRootLen int) ([]string, bool) {
	if segs, ok := trySplit(store, stem, nil, true, false, threshold, hasEnding, endPos, minRootLen); ok {
		return segs, true
	}
	if threshold >= dict.MaxRarity {
		return nil, false
	}
	return trySplit(store, stem, nil, true, false, dict.MaxRarity, hasEnding, endPos, minRootLen)
}

// trySplit is one recursive search frame. r is the remaining unconsumed
// suffix of the stem; trail is the sequence of morpheme keys and fusion
// vowels chosen so far; isFirst marks the very first morpheme of the
// compound (role FIRST); afterLinkingVowel marks that the candidate
// about to be chosen immediately follows an inserted fusion vowel.
func trySplit(store *dict.Store, r string, trail []string, isFirst, afterLinkingVowel bool, threshold int, hasEnding bool, endPos dict.POS, minRootLen int) ([]string, bool) {
	runes := []rune(r)
	n := len(runes)

	for i := minRootLen; i <= n; i++ {
		candidate := string(runes[:i])
		entry, found := store.Lookup(candidate)
		if !found {
			continue
		}
		remaining := string(runes[i:])
		isLast := remaining == ""

		var rl role
		switch {
		case isLast:
			rl = roleLast
		case isFirst:
			rl = roleFirst
		default:
			rl = roleInternal
		}

		isOnlyMorpheme := isFirst && isLast
		if !admissible(entry, rl, afterLinkingVowel, isOnlyMorpheme, hasEnding, endPos) {
			continue
		}
		if entry.Rarity > threshold {
			continue
		}

		newTrail := appendCopy(trail, candidate)
		if isLast {
			return newTrail, true
		}

		if segs, ok := trySplit(store, remaining, newTrail, false, false, threshold, hasEnding, endPos, minRootLen); ok {
			return segs, true
		}

		if entry.CompoundLimit == dict.LimitNone {
			if segs, ok := tryWithLinkingVowel(store, remaining, newTrail, threshold, hasEnding, endPos, minRootLen); ok {
				return segs, true
			}
		}
	}
	return nil, false
}

// tryWithLinkingVowel attempts to consume one fusion vowel at the start
// of remaining and continue the search past it. A fusion vowel may only
// join two roots, so the morpheme that follows it is constrained (via
// afterLinkingVowel) to compound_limit NONE as well — this is what keeps
// an affix like a profession suffix from being glued on through an
// inserted vowel (e.g. rejecting a doubled-vowel misspelling that would
// otherwise look like root + fusion vowel + suffix).
func tryWithLinkingVowel(store *dict.Store, remaining string, trail []string, threshold int, hasEnding bool, endPos dict.POS, minRootLen int) ([]string, bool) {
	first, size := utf8.DecodeRuneInString(remaining)
	if first == utf8.RuneError || !linkingVowels[first] {
		return nil, false
	}
	vowelTrail := appendCopy(trail, string(first))
	return trySplit(store, remaining[size:], vowelTrail, false, true, threshold, hasEnding, endPos, minRootLen)
}

// admissible applies the §4.5 role rules plus the flag and fusion-vowel
// restrictions.
func admissible(entry dict.MorphemeEntry, rl role, afterLinkingVowel, isOnlyMorpheme, hasEnding bool, endPos dict.POS) bool {
	if entry.Flag == dict.EXCLUDED {
		return false
	}
	if entry.Flag == dict.COMPOUND_ONLY && isOnlyMorpheme {
		return false
	}
	if afterLinkingVowel && entry.CompoundLimit != dict.LimitNone {
		return false
	}

	switch rl {
	case roleFirst:
		return entry.CompoundLimit != dict.SuffixOnly
	case roleInternal:
		switch entry.CompoundLimit {
		case dict.PrefixOnly, dict.SuffixOnly, dict.BothPrefixAndSuffix:
			return false
		}
		return true
	case roleLast:
		if entry.CompoundLimit == dict.PrefixOnly {
			return false
		}
		if hasEnding {
			return compatibleForLast(entry.POS, endPos)
		}
		return entry.Standalone && !entry.NeedsEnding
	default:
		return false
	}
}

func appendCopy(trail []string, s string) []string {
	out := make([]string, len(trail)+1)
	copy(out, trail)
	out[len(trail)] = s
	return out
}
