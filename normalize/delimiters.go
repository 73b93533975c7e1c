package normalize

import "strings"

// RemoveLeadingPrefixes collapses a leading phrase: if s begins with
// "phrase " for one of phrases (tried in order), that phrase's internal
// spaces are removed but the separator before the rest of s is kept, so
// "van der berg" becomes "vander berg".
func RemoveLeadingPrefixes(s string, phrases []string) string {
	for _, phrase := range phrases {
		withSpace := phrase + " "
		if strings.HasPrefix(s, withSpace) {
			collapsed := strings.ReplaceAll(phrase, " ", "")
			return collapsed + " " + s[len(withSpace):]
		}
	}
	return s
}

// delimiterOrder is the fixed scan order CanonicalizeDelimiters applies.
var delimiterOrder = []byte{'\'', '-', ' '}

// canonicalSpace is a placeholder for a space already contributed by an
// earlier delimiter kind. Using a byte distinct from ' ' keeps a later
// delimiter kind's scan (in particular the ' ' kind itself) from mistaking
// an already-canonicalized space for one of its own occurrences.
const canonicalSpace = '\x00'

// CanonicalizeDelimiters reduces the apostrophes, hyphens, and spaces in s
// to at most one canonical space per delimiter kind: for each delimiter in
// delimiterOrder, the first occurrence's position is kept as a single
// space and every occurrence (including that first one) is otherwise
// removed. At most one space per delimiter kind survives, so a name with
// both a hyphen and a space keeps two separate canonical spaces — unless
// they sit back to back with nothing between them, in which case the run
// they form collapses to the single space separating the two words.
func CanonicalizeDelimiters(s string) string {
	for _, d := range delimiterOrder {
		s = canonicalizeOne(s, d)
	}
	s = squeezeConsecutive(s, canonicalSpace)
	return strings.ReplaceAll(s, string(canonicalSpace), " ")
}

func canonicalizeOne(s string, d byte) string {
	idx := strings.IndexByte(s, d)
	if idx == -1 {
		return s
	}
	prefix := s[:idx]
	suffix := strings.ReplaceAll(s[idx+1:], string(d), "")
	return prefix + string(canonicalSpace) + suffix
}

// squeezeConsecutive collapses every run of adjacent b bytes in s to one.
func squeezeConsecutive(s string, b byte) string {
	var out strings.Builder
	prevWasB := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == b {
			if prevWasB {
				continue
			}
			prevWasB = true
		} else {
			prevWasB = false
		}
		out.WriteByte(c)
	}
	return out.String()
}

// StripApostrophes removes every apostrophe from s. Callers apply this
// before CanonicalizeDelimiters for the Generic/Ashkenazic name-types;
// Sephardic skips it so the apostrophe survives as a phonetic marker and
// participates in CanonicalizeDelimiters as an ordinary delimiter.
func StripApostrophes(s string) string {
	return strings.ReplaceAll(s, "'", "")
}
