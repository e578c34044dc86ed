package tokenizer

import (
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/orthography"
)

// scan performs the single left-to-right pass that builds WordTokens'
// result: accumulate runs of orthography.IsWordChar as Word tokens and
// everything else as Other tokens, switching type only at a class
// boundary.
func scan(s string) []Token {
	var tokens []Token
	start := 0
	curType := TokenType(-1)

	for i, r := range s {
		t := Other
		if orthography.IsWordChar(r) {
			t = Word
		}
		if curType == TokenType(-1) {
			curType = t
		} else if t != curType {
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: curType})
			start = i
			curType = t
		}
	}
	if curType != TokenType(-1) {
		tokens = append(tokens, Token{Text: s[start:], Start: start, End: len(s), Type: curType})
	}
	return tokens
}
