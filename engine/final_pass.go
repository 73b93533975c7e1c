package engine

import (
	"fmt"
	"strings"

	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/phonetic"
	"github.com/beidermorse/bmpm/rule"
)

// FinalPass runs one of the two chained final-rules passes (the common
// final table, then the language-specific final table) over an
// intermediate phonetic string p.
//
// Each alternative of p already carries its language attribute, if any, as
// a single trailing "[N]" (NormalizeAttrs's canonical form — see
// phonetic.SplitTrailingAttr). So rather than have the position scanner
// special-case skipping embedded "[...]" runs mid-string, this pass splits
// each alternative into its literal content and trailing attribute first,
// reruns the position scan (the same first-match loop as MainPass) over
// just the content, and folds the original attribute back in through
// ConcatCompatible afterward. That is a restatement, not a behavior change:
// the scanner never sees a "[" either way, because the canonical form never
// puts one anywhere but the end.
func FinalPass(p string, table *rule.Table, strip bool, ctxMask language.Mask) string {
	if table.Empty() {
		return p
	}

	normalized := phonetic.NormalizeAttrs(p, false)

	var alts []string
	switch {
	case strings.Contains(normalized, "("):
		alts = phonetic.Expand(normalized)
	case strings.Contains(normalized, "|"):
		alts = strings.Split(normalized, "|")
	default:
		alts = []string{normalized}
	}

	seen := make(map[string]bool, len(alts))
	survivors := make([]string, 0, len(alts))
	for _, alt := range alts {
		content, mask, hasAttr := phonetic.SplitTrailingAttr(alt)
		rewritten := MainPass(content, table, ctxMask)

		out := rewritten
		if hasAttr {
			cand, ok := ConcatCompatible(rewritten, fmt.Sprintf("[%d]", mask), ctxMask)
			if !ok {
				continue
			}
			out = cand
		}
		if phonetic.IsDead(out) {
			continue
		}
		if strip {
			out = phonetic.Strip(out)
		}
		if !seen[out] {
			seen[out] = true
			survivors = append(survivors, out)
		}
	}

	return phonetic.Collapse(survivors)
}
