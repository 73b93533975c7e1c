// Package compose implements multi-word name composition: split a
// normalized input on its first space, then merge encodings of the
// surname alone, the whole compound, and (for non-prefix first words) the
// first word alone.
package compose

import (
	"strings"

	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/phonetic"
)

// Encoder is the subset of the core API compose needs: encode one
// already-normalized word under a language mask, and detect a word's
// language mask. Modeled as an interface, rather than importing the core
// encoder directly, so the two packages stay decoupled from any one
// concrete representation.
type Encoder interface {
	Encode(word string, mask language.Mask) string
	Detect(word string) language.Mask
}

// Compose merges the phonetic encodings of a two-word name. exact selects
// the Exact-accuracy path (word1++word2 encoded as one word); otherwise the
// Approximate path applies, branching on whether word1 is in prefixes.
func Compose(word1, word2 string, exact bool, prefixes map[string]bool, enc Encoder) string {
	combined := word1 + word2

	if exact {
		return enc.Encode(combined, enc.Detect(combined))
	}

	lang2 := enc.Detect(word2)
	langCombined := enc.Detect(combined)
	y := enc.Encode(word2, lang2)
	xy := enc.Encode(combined, langCombined)

	if prefixes[strings.ToLower(word1)] {
		return phonetic.Merge(y, xy)
	}

	lang1 := enc.Detect(word1)
	x := enc.Encode(word1, lang1)
	return phonetic.Merge(phonetic.Merge(x, y), xy)
}

// SplitFirstSpace splits s on its first space into word1, word2, ok. ok is
// false if s has no space.
func SplitFirstSpace(s string) (word1, word2 string, ok bool) {
	idx := strings.IndexByte(s, ' ')
	if idx == -1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
