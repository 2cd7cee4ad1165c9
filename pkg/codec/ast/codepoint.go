package ast

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Codepoint is an operand leaf holding a single Unicode scalar value.
// Codepoints are totally ordered by ordinal.
type Codepoint struct {
	r rune
}

// NewCodepoint creates a codepoint node from a rune.
func NewCodepoint(r rune) *Codepoint {
	return &Codepoint{r: r}
}

// NewCodepointNamed creates a codepoint node from a Unicode character name,
// e.g. "LATIN SMALL LETTER A". Lookup is case-insensitive.
func NewCodepointNamed(name string) (*Codepoint, error) {
	r, ok := lookupRuneName(name)
	if !ok {
		return nil, fmt.Errorf("no code point named %q", name)
	}
	return &Codepoint{r: r}, nil
}

// Kind implements Node.
func (c *Codepoint) Kind() Kind { return KindCodepoint }

// Children implements Node. Codepoints are leaves.
func (c *Codepoint) Children() []Node { return nil }

// Rune returns the codepoint's scalar value.
func (c *Codepoint) Rune() rune { return c.r }

// Ord returns the codepoint's ordinal value as an int.
func (c *Codepoint) Ord() int { return int(c.r) }

// Equal reports whether two codepoints denote the same scalar value.
// A codepoint written as a literal character, a 4-digit escape, or a
// zero-padded 6-digit escape compares equal by ordinal.
func (c *Codepoint) Equal(other *Codepoint) bool { return c.r == other.r }

// Less reports whether c orders strictly before other by ordinal.
func (c *Codepoint) Less(other *Codepoint) bool { return c.r < other.r }

func (c *Codepoint) operandNode() {}

// runeNameIndex is the lazily built reverse index from Unicode character
// name to rune, used by NewCodepointNamed. Building it scans all assigned
// code points once.
var (
	runeNameOnce  sync.Once
	runeNameIndex map[string]rune
)

func lookupRuneName(name string) (rune, bool) {
	runeNameOnce.Do(func() {
		runeNameIndex = make(map[string]rune)
		for r := rune(0); r <= unicode.MaxRune; r++ {
			if unicode.Is(unicode.Cs, r) {
				continue
			}
			n := runenames.Name(r)
			if n == "" || strings.HasPrefix(n, "<") {
				continue
			}
			runeNameIndex[n] = r
		}
	})
	r, ok := runeNameIndex[strings.ToUpper(strings.TrimSpace(name))]
	return r, ok
}
