package engine

import (
	"unicode/utf8"

	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/rule"
)

// MainPass scans s left to right. At each position it tries table's rules
// in order until one both matches and produces a mask-compatible
// concatenation, then advances by the fired rule's pattern length;
// otherwise it advances by one codepoint and silently skips. This is a
// small state machine: scanning tries the next candidate rule; a match
// advances on a compatible concat, or falls back to scanning on an
// incompatible one; no firing rule at all is a skip.
func MainPass(s string, table *rule.Table, ctxMask language.Mask) string {
	if table.Empty() {
		return ""
	}

	p := ""
	i := 0
	for i < len(s) {
		matched := false
		for _, r := range table.Rules {
			if !r.Matches(s, i, ctxMask) {
				continue
			}
			cand, ok := ConcatCompatible(p, r.Phonetic, ctxMask)
			if !ok {
				continue
			}
			p = cand
			i += len(r.Pattern)
			matched = true
			break
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			if size == 0 {
				size = 1
			}
			i += size
		}
	}
	return p
}
