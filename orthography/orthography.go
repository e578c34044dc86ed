// Package orthography provides the pure-function Unicode and orthography
// helpers every other package builds on: NFC normalization, conversion
// between the ASCII surrogate notations (cx, c^) and the accented
// Esperanto letters (ĉĝĥĵŝŭ), and character-class predicates.
//
// All functions are safe for concurrent use by multiple goroutines.
package orthography

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// xDigraphs maps the x-notation digraph to its accented letter, longest
// (and case-sensitive) forms first so a Replacer built from this table
// never partially matches a longer pair.
var xDigraphs = []string{
	"cx", "ĉ", "Cx", "Ĉ", "CX", "Ĉ",
	"gx", "ĝ", "Gx", "Ĝ", "GX", "Ĝ",
	"hx", "ĥ", "Hx", "Ĥ", "HX", "Ĥ",
	"jx", "ĵ", "Jx", "Ĵ", "JX", "Ĵ",
	"sx", "ŝ", "Sx", "Ŝ", "SX", "Ŝ",
	"ux", "ŭ", "Ux", "Ŭ", "UX", "Ŭ",
}

// caretDigraphs maps the ^-notation digraph to its accented letter.
var caretDigraphs = []string{
	"c^", "ĉ", "C^", "Ĉ",
	"g^", "ĝ", "G^", "Ĝ",
	"h^", "ĥ", "H^", "Ĥ",
	"j^", "ĵ", "J^", "Ĵ",
	"s^", "ŝ", "S^", "Ŝ",
	"u^", "ŭ", "U^", "Ŭ",
}

var xReplacer = strings.NewReplacer(xDigraphs...)
var caretReplacer = strings.NewReplacer(caretDigraphs...)

// ToAccented converts both x-notation (cx, Cx, CX, ...) and ^-notation
// (c^, C^, ...) digraphs in s to their accented Esperanto letter.
// Characters that are not part of either notation pass through unchanged.
// Both notations may be mixed in the same input; each is applied in a
// single left-to-right pass so neither rewrite can interact with the
// other's output.
func ToAccented(s string) string {
	s = xReplacer.Replace(s)
	s = caretReplacer.Replace(s)
	return s
}

// NormalizeNFC returns s in Unicode Normalization Form C. Downstream
// dictionary lookups assume their input is already NFC; callers that
// accept raw external text should normalize at the boundary.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// IsLetter reports whether r is a Latin letter, including the six
// supersigned Esperanto letters (ĉĝĥĵŝŭ), which fall in the Latin script
// range.
func IsLetter(r rune) bool {
	return unicode.Is(unicode.Latin, r)
}

// IsWordChar reports whether r may appear inside a word token for the
// text driver: a letter, a hyphen, or an apostrophe.
func IsWordChar(r rune) bool {
	return IsLetter(r) || r == '-' || r == '\'' || r == '’'
}
