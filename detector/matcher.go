package detector

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Matcher tests decoded text for characters from a literal set.
type Matcher struct {
	table *unicode.RangeTable
	chars string
}

// NewMatcher builds a matcher over the characters of chars. Every rune is
// taken literally; there is no pattern syntax.
func NewMatcher(chars string) *Matcher {
	return &Matcher{
		table: rangetable.New([]rune(chars)...),
		chars: chars,
	}
}

// Contains reports whether r is in the set.
func (m *Matcher) Contains(r rune) bool {
	return unicode.Is(m.table, r)
}

// Chars returns the characters the matcher was built from.
func (m *Matcher) Chars() string { return m.chars }

// IndexFrom returns the byte offset of the first match in text at or after
// from, or -1.
func (m *Matcher) IndexFrom(text []byte, from int) int {
	for i := from; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if m.Contains(r) {
			return i
		}
		i += size
	}
	return -1
}

// Count returns the number of matches in text. After each match the scan
// resumes one character past the match start, not past its end.
//
// TODO: with single-rune matches both policies agree; revisit if Matcher ever
// grows multi-rune sequences.
func (m *Matcher) Count(text []byte) int {
	count := 0
	for from := 0; ; {
		i := m.IndexFrom(text, from)
		if i < 0 {
			return count
		}
		count++
		_, size := utf8.DecodeRune(text[i:])
		from = i + size
	}
}
