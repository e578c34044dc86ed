// Package ending implements the grammatical ending recognizer of §4.3: the
// finite, prefix-free table of Esperanto noun, adjective, adverb, and verb
// endings, matched longest-first against the tail of a word.
package ending

import (
	"unicode/utf8"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
)

// Match is the (length, pos) pair the recognizer returns: length is the
// number of runes consumed from the end of the word, and pos is the part
// of speech that ending implies. A word with no recognized ending has
// Length 0 and Pos dict.NONE.
type Match struct {
	Length int
	Pos    dict.POS
}

// endingTable maps every recognized ending to its pos. It is a map and
// has no order; Strip gets "longest wins" by looking up the word's last
// 3, 2, and then 1 runes in turn.
var endingTable = map[string]dict.POS{
	"ojn": dict.NOUN,
	"oj":  dict.NOUN,
	"on":  dict.NOUN,
	"o":   dict.NOUN,
	"ajn": dict.ADJ,
	"aj":  dict.ADJ,
	"an":  dict.ADJ,
	"a":   dict.ADJ,
	"aŭ":  dict.ADV,
	"en":  dict.ADV,
	"e":   dict.ADV,
	"as":  dict.VERB,
	"is":  dict.VERB,
	"os":  dict.VERB,
	"us":  dict.VERB,
	"i":   dict.VERB,
	"u":   dict.VERB,
}

// DefaultMinRootLen is the min_root_len used when the caller has no
// configured override; see §4.3 "words shorter than min_root_len + 1 get
// only a zero-length match".
const DefaultMinRootLen = 2

// Strip examines the trailing 1-3 runes of w and returns the longest
// recognized ending, or Match{Length: 0, Pos: dict.NONE} if none applies.
// w must already be lowercase and NFC-normalized. minRootLen gates on the
// length of the whole word: a word of fewer than minRootLen+1 runes gets
// no ending. Past that gate an ending only has to leave at least one rune
// of stem, so the stem can be shorter than minRootLen ("kaj" gives stem
// "k" and ending "aj"). Callers without a configured value should pass
// DefaultMinRootLen.
func Strip(w string, minRootLen int) Match {
	runes := []rune(w)
	if len(runes) < minRootLen+1 {
		return Match{Pos: dict.NONE}
	}
	for length := 3; length >= 1; length-- {
		if len(runes) <= length {
			continue
		}
		candidate := string(runes[len(runes)-length:])
		if pos, ok := endingTable[candidate]; ok {
			return Match{Length: length, Pos: pos}
		}
	}
	return Match{Pos: dict.NONE}
}

// Stem returns the rune-safe prefix of w with the ending's Length runes
// removed.
func Stem(w string, m Match) string {
	if m.Length == 0 {
		return w
	}
	runes := []rune(w)
	return string(runes[:len(runes)-m.Length])
}

// RuneLen is a small helper so callers working with byte-oriented Go
// strings don't reach for len() by mistake; §9 calls out byte-length as a
// common pitfall in this domain.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
