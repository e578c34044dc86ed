// Package dict holds the morpheme dictionary: the tagged-enumeration data
// model of §3 and a Store that loads, validates, and freezes the
// tab-separated dictionary table of §4.2.
//
// The Store is built once at process start and never mutated afterwards;
// concurrent readers need no locking.
package dict

import "fmt"

// POS classifies a morpheme's grammatical category.
type POS int

const (
	POSUnknown POS = iota
	NOUN
	ADJ
	ADV
	VERB
	NUM
	PRON
	PREP
	CONJ
	INTERJ
	PARTICLE
	NOUN_OR_VERB
	AFFIX_PREFIX
	AFFIX_SUFFIX
	LETTER
	// NONE is the part of speech reported by the ending recognizer for a
	// word with no recognized grammatical ending. It is never the POS of
	// a dictionary entry.
	NONE
)

var posNames = map[POS]string{
	POSUnknown:   "",
	NOUN:         "NOUN",
	ADJ:          "ADJ",
	ADV:          "ADV",
	VERB:         "VERB",
	NUM:          "NUM",
	PRON:         "PRON",
	PREP:         "PREP",
	CONJ:         "CONJ",
	INTERJ:       "INTERJ",
	PARTICLE:     "PARTICLE",
	NOUN_OR_VERB: "NOUN_OR_VERB",
	AFFIX_PREFIX: "AFFIX_PREFIX",
	AFFIX_SUFFIX: "AFFIX_SUFFIX",
	LETTER:       "LETTER",
	NONE:         "NONE",
}

var posFromName = func() map[string]POS {
	m := make(map[string]POS, len(posNames))
	for k, v := range posNames {
		m[v] = k
	}
	return m
}()

// String returns the canonical name used in the TSV dictionary column.
func (p POS) String() string {
	if name, ok := posNames[p]; ok {
		return name
	}
	return fmt.Sprintf("POS(%d)", int(p))
}

// ParsePOS parses the TSV column value for pos. ok is false for an
// unrecognized label.
func ParsePOS(s string) (POS, bool) {
	p, ok := posFromName[s]
	return p, ok
}

// Transitivity classifies a verb morpheme's transitivity, or is the zero
// value for morphemes where transitivity does not apply.
type Transitivity int

const (
	TransitivityNone Transitivity = iota // "∅" — not applicable
	Transitive                           // "T"
	Intransitive                         // "N"
	EitherTransitivity                   // "X"
)

var transitivityFromName = map[string]Transitivity{
	"":  TransitivityNone,
	"∅": TransitivityNone,
	"T": Transitive,
	"N": Intransitive,
	"X": EitherTransitivity,
}

// ParseTransitivity parses the TSV column value for transitivity.
func ParseTransitivity(s string) (Transitivity, bool) {
	t, ok := transitivityFromName[s]
	return t, ok
}

// CompoundLimit restricts the positions a morpheme may occupy inside a
// compound.
type CompoundLimit int

const (
	LimitNone CompoundLimit = iota // may appear anywhere
	PrefixOnly
	SuffixOnly
	BothPrefixAndSuffix
	LimitParticle
)

var compoundLimitFromName = map[string]CompoundLimit{
	"NONE":                   LimitNone,
	"PREFIX_ONLY":            PrefixOnly,
	"SUFFIX_ONLY":            SuffixOnly,
	"BOTH_PREFIX_AND_SUFFIX": BothPrefixAndSuffix,
	"PARTICLE":               LimitParticle,
}

// ParseCompoundLimit parses the TSV column value for compound_limit.
func ParseCompoundLimit(s string) (CompoundLimit, bool) {
	c, ok := compoundLimitFromName[s]
	return c, ok
}

// Flag controls whether a morpheme may be returned as a standalone
// analysis, only appears inside compounds, or is disabled entirely.
//
// The single-letter TSV labels are ambiguous across the maintenance
// scripts inherited from the original project; we follow the
// interpretation most consistent with the test fixtures: R=regular,
// K=compound-only, X=excluded (see DESIGN.md, Open Question).
type Flag int

const (
	REGULAR Flag = iota
	COMPOUND_ONLY
	EXCLUDED
)

var flagFromName = map[string]Flag{
	"R": REGULAR,
	"K": COMPOUND_ONLY,
	"X": EXCLUDED,
}

// ParseFlag parses the TSV column value for flag.
func ParseFlag(s string) (Flag, bool) {
	f, ok := flagFromName[s]
	return f, ok
}

// MaxRarity is the highest admissible rarity value (inclusive).
const MaxRarity = 4

// DefaultRarityThreshold (τ) bounds the rarity of morphemes admitted
// without evidence that no lower-rarity analysis exists.
const DefaultRarityThreshold = 2

// MorphemeEntry is one row of the dictionary, immutable after load.
type MorphemeEntry struct {
	Key           string // canonical morpheme surface, no final grammatical vowel
	POS           POS
	Meaning       string
	Transitivity  Transitivity
	Standalone    bool // "SF" vs "N": may appear as a whole word without an ending
	NeedsEnding   bool // "KF" vs "N": requires a grammatical ending when used as a word
	CompoundLimit CompoundLimit
	Rarity        int // 0..MaxRarity
	Flag          Flag
}
