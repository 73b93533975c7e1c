// Package dmsoundex implements the Daitch–Mokotoff Soundex encoder: a
// longest-match pattern engine over a private rule table that produces
// fixed-length, branching, deduplicated numeric codes.
package dmsoundex

// NoCode is the sentinel column value meaning "emit nothing this step and
// reset lastCode".
const NoCode = "999"

// vowels is the set of runes treated as a vowel for the before-vowel
// column test.
const vowels = "aeioujy"

// alternateSet is the fixed set of patterns that carry a second, branching
// code in addition to their primary one.
var alternateSet = map[string]bool{
	"rz": true,
	"ch": true,
	"ck": true,
	"c":  true,
	"j":  true,
}

// Rule is one row of the D-M Soundex table: a literal pattern plus its
// code under each of the three positional columns, and an optional
// alternate column triple for patterns in alternateSet.
type Rule struct {
	Pattern string

	AtStart     string
	BeforeVowel string
	Else        string

	AltAtStart     string
	AltBeforeVowel string
	AltElse        string
}

// HasAlternate reports whether r fires a second, branching code in
// addition to its primary one.
func (r Rule) HasAlternate() bool {
	return alternateSet[r.Pattern]
}

// codeFor selects r's column for a match that is at the start of the part
// (atStart) and is followed by nextRune, or by no rune (hasNext false) if
// the pattern runs to the end of the part.
func (r Rule) codeFor(atStart bool, nextRune rune, hasNext bool) string {
	if atStart {
		return r.AtStart
	}
	if hasNext && isVowel(nextRune) {
		return r.BeforeVowel
	}
	return r.Else
}

func (r Rule) altCodeFor(atStart bool, nextRune rune, hasNext bool) string {
	if atStart {
		return r.AltAtStart
	}
	if hasNext && isVowel(nextRune) {
		return r.AltBeforeVowel
	}
	return r.AltElse
}

func isVowel(r rune) bool {
	for _, v := range vowels {
		if r == v {
			return true
		}
	}
	return false
}

// Table is an ordered set of rules. Unlike rule.Table, order is not
// first-match-wins: Encode always selects the longest pattern matching at
// a position, breaking ties by table order.
type Table struct {
	Rules []Rule
}
