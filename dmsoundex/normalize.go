package dmsoundex

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lowerCaser = cases.Lower(xlanguage.Und)

// splitParts runs the D-M local normalizer: diacritic fold, lowercase, then
// strip every non-letter character except comma, slash, and space, which
// instead split the input into parts.
//
// Diacritic folding NFD-decomposes the input and drops combining marks
// rather than using a hand-built fold table: D-M Soundex only needs
// ASCII-letter equivalence classes, not a literal transliteration table, so
// NFD decomposition is the smallest faithful building block.
func splitParts(s string) []string {
	folded := foldAndLower(s)

	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, r := range folded {
		switch {
		case r == ',' || r == '/' || r == ' ':
			flush()
		case unicode.IsLetter(r):
			cur.WriteRune(r)
		}
	}
	flush()
	return parts
}

func foldAndLower(s string) string {
	lowered := lowerCaser.String(s)
	decomposed := norm.NFD.String(lowered)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
