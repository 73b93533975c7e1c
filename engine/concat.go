// Package engine implements the phonetic rewrite engine: a main pass and
// two chained final-rules passes, each a position scan that fires the
// first matching rule in a table and accumulates a phonetic output string,
// pruning alternatives that become incompatible with the active language
// mask as they are produced.
//
// The position-advancing, first-match-wins loop is a stateful cursor that
// consumes its input left to right and either advances or reports why it
// couldn't, the same shape as a streaming transform reduced to a bounded,
// in-memory string — see DESIGN.md.
package engine

import (
	"fmt"

	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/phonetic"
)

// ConcatCompatible appends q to p, pruning any resulting alternative that
// is incompatible with mask. It returns ok=false if every alternative is
// pruned.
func ConcatCompatible(p, q string, mask language.Mask) (string, bool) {
	combined := p + q
	if !containsByte(combined, '[') {
		return combined, true
	}

	alts := phonetic.Expand(combined)
	seen := make(map[string]bool, len(alts))
	survivors := make([]string, 0, len(alts))
	for _, alt := range alts {
		a := alt
		if mask != language.Any {
			a = fmt.Sprintf("%s[%d]", a, mask)
		}
		a = phonetic.NormalizeAttrs(a, false)
		if phonetic.IsDead(a) {
			continue
		}
		if !seen[a] {
			seen[a] = true
			survivors = append(survivors, a)
		}
	}
	if len(survivors) == 0 {
		return "", false
	}
	return phonetic.Collapse(survivors), true
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
