package dict

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

// columnCount is the number of semantic TSV columns a row must have;
// further columns (free comments) are ignored.
const columnCount = 9

// scannerBufSize bounds the line buffer for very long dictionary lines.
const scannerBufSize = 1 << 20

//go:embed data/vortaro.tsv
var embeddedVortaro []byte

// ErrDictionaryNotFound is returned by Load when the given path does not
// exist. Dictionary load failure is fatal per spec §7 — callers are
// expected to abort initialization on this error.
var ErrDictionaryNotFound = errors.New("dict: dictionary file not found")

// Store is an immutable, in-memory morpheme dictionary.
type Store struct {
	entries map[string]MorphemeEntry
}

// Lookup returns the entry for key, if any. key is compared exactly as
// given; callers are responsible for lowercasing.
func (s *Store) Lookup(key string) (MorphemeEntry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Len returns the number of entries in the store, including EXCLUDED ones.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns every parsed entry, including EXCLUDED ones, in unspecified
// order. It backs the CLI --lint diagnostics path.
func (s *Store) All() []MorphemeEntry {
	out := make([]MorphemeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// suspiciousFinalVowel maps a POS to the grammatical vowel its own
// canonical ending would add onto a bare root.
var suspiciousFinalVowel = map[POS]rune{
	NOUN: 'o',
	ADJ:  'a',
	ADV:  'e',
	VERB: 'i',
}

// Lint reports keys worth a maintainer's second look: an entry whose key
// ends with the grammatical vowel its own part of speech would add,
// which usually means the vowel was left on the row by mistake rather
// than stripped to the bare root. This is a heuristic inherited from the
// original project's lint_vortaro_morphemes.py, not a correctness check
// — legitimate short roots and abbreviations can still trigger it.
func Lint(s *Store) []string {
	var warnings []string
	for _, e := range s.All() {
		vowel, ok := suspiciousFinalVowel[e.POS]
		if !ok {
			continue
		}
		runes := []rune(e.Key)
		if len(runes) > 0 && runes[len(runes)-1] == vowel {
			warnings = append(warnings, fmt.Sprintf("%s (%s): ends with its own grammatical vowel %q", e.Key, e.POS, string(vowel)))
		}
	}
	sort.Strings(warnings)
	return warnings
}

// LoadDefault builds a Store from the dictionary embedded in the binary.
// It is used when no configured dictionary path is available.
func LoadDefault() (*Store, error) {
	return load(strings.NewReader(string(embeddedVortaro)), "<embedded>")
}

// LoadReader builds a Store from an arbitrary tab-separated source. It is
// the common path behind LoadDefault and Load, exported so callers (and
// tests, including those of other packages) can build a Store from data
// that isn't a file on disk.
func LoadReader(r io.Reader) (*Store, error) {
	return load(r, "<reader>")
}

// Load builds a Store from the tab-separated dictionary file at path.
// A missing file is a fatal error (ErrDictionaryNotFound, wrapped); a
// malformed row is logged and skipped, it never aborts the load.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("dict: open %s: %w", path, err)
	}
	defer f.Close()
	return load(f, path)
}

func load(r io.Reader, source string) (*Store, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, scannerBufSize)

	entries := make(map[string]MorphemeEntry)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, ok := parseRow(line)
		if !ok {
			log.Printf("dict: %s:%d: skipping malformed row: %q", source, lineNo, line)
			continue
		}
		// Last write wins on a duplicate key.
		entries[entry.Key] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dict: reading %s: %w", source, err)
	}
	return &Store{entries: entries}, nil
}

// parseRow parses one non-blank, non-comment TSV line into a
// MorphemeEntry. ok is false when the row is structurally malformed or
// any enum-valued column falls outside the tables of §3.
func parseRow(line string) (MorphemeEntry, bool) {
	cols := strings.Split(line, "\t")
	if len(cols) < columnCount {
		return MorphemeEntry{}, false
	}

	key := strings.ToLower(strings.TrimSpace(cols[0]))
	if key == "" || !isValidKey(key) {
		return MorphemeEntry{}, false
	}

	pos, ok := ParsePOS(strings.TrimSpace(cols[1]))
	if !ok {
		return MorphemeEntry{}, false
	}

	transitivity, ok := ParseTransitivity(strings.TrimSpace(cols[3]))
	if !ok {
		return MorphemeEntry{}, false
	}

	standalone, ok := parseSFKF(strings.TrimSpace(cols[4]), "SF")
	if !ok {
		return MorphemeEntry{}, false
	}
	needsEnding, ok := parseSFKF(strings.TrimSpace(cols[5]), "KF")
	if !ok {
		return MorphemeEntry{}, false
	}

	limit, ok := ParseCompoundLimit(strings.TrimSpace(cols[6]))
	if !ok {
		return MorphemeEntry{}, false
	}

	rarity, err := strconv.Atoi(strings.TrimSpace(cols[7]))
	if err != nil || rarity < 0 || rarity > MaxRarity {
		return MorphemeEntry{}, false
	}

	flag, ok := ParseFlag(strings.TrimSpace(cols[8]))
	if !ok {
		return MorphemeEntry{}, false
	}

	if needsEnding && standalone {
		// Invariant (§3): a morpheme with needs_ending=true never matches
		// as a full word on its own, so standalone=true is meaningless
		// (and self-contradictory) when needs_ending is also true.
		return MorphemeEntry{}, false
	}

	return MorphemeEntry{
		Key:           key,
		POS:           pos,
		Meaning:       strings.TrimSpace(cols[2]),
		Transitivity:  transitivity,
		Standalone:    standalone,
		NeedsEnding:   needsEnding,
		CompoundLimit: limit,
		Rarity:        rarity,
		Flag:          flag,
	}, true
}

// parseSFKF parses a boolean TSV column whose "true" label is trueLabel
// (either "SF" or "KF") and whose "false" label is "N".
func parseSFKF(s, trueLabel string) (bool, bool) {
	switch s {
	case trueLabel:
		return true, true
	case "N":
		return false, true
	default:
		return false, false
	}
}

// isValidKey reports whether key matches [a-zĉĝĥĵŝŭ\-]+.
func isValidKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '-':
		case strings.ContainsRune("ĉĝĥĵŝŭ", r):
		default:
			return false
		}
	}
	return true
}
