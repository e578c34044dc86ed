// Package tokenizer splits Esperanto text into maximal word runs and the
// non-word runs between them, per §4.8.
//
// The package provides two API layers:
//
//   - Structured: WordTokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs s exactly —
//     the text driver relies on this to splice analyzed words back into
//     their original surrounding punctuation and whitespace.
//
//   - Convenience: Words returns only the word-run texts.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - There is no sentence-level splitting; the analyzer operates word by
//     word and treats everything between words as an opaque separator.
//   - A token's word/non-word classification depends only on
//     orthography.IsWordChar; it does not distinguish numbers, URLs, or
//     other token kinds the way a general-purpose tokenizer would.
package tokenizer

import (
	"fmt"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/orthography"
)

// TokenType classifies a token.
type TokenType int

const (
	Word  TokenType = iota // a maximal run of letters, '-', or '\''
	Other                  // everything between word runs, preserved verbatim
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Other:
		return "Other"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a run of text with its position and classification.
type Token struct {
	Text  string
	Start int // byte offset in the original string (inclusive)
	End   int // byte offset in the original string (exclusive)
	Type  TokenType
}

// String returns a debug representation, e.g. Word("ĉiutage")[0:8].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits s into alternating Word and Other runs. The byte
// offset invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating every token's Text reconstructs s exactly.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns only the Word-run texts from s, discarding the
// separators and their positions. For round-trip reconstruction use
// WordTokens instead.
func Words(s string) []string {
	tokens := WordTokens(s)
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
