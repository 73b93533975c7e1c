// Package phonetic implements the phonetic-algebra string operations:
// expanding and collapsing the `(a|b)` alternative grammar, normalizing
// (AND-ing) the bracketed `[N]` language-attribute annotations, and
// merging two phonetic strings.
//
// A phonetic-algebra string is a sequence of literal characters,
// parenthesized disjunctions, and bracketed integer attributes. None of the
// operations here allocate more than is needed to hold their result; the
// grammar is small enough that a hand-written scanner is simpler than
// pulling in a parser-combinator dependency for it.
package phonetic

import (
	"strconv"
	"strings"

	"github.com/beidermorse/bmpm/language"
)

// Expand recursively replaces the leftmost `(...)` group with each of its
// alternatives, drops empty alternatives and any alternative equal to the
// literal string "[0]", and dedupes while preserving first-occurrence order.
func Expand(p string) []string {
	raw := expandRaw(p)
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		if a == "" || a == "[0]" {
			continue
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func expandRaw(p string) []string {
	start, end, ok := findTopLevelParens(p)
	if !ok {
		return []string{p}
	}
	prefix, inner, suffix := p[:start], p[start+1:end], p[end+1:]
	var out []string
	for _, part := range splitTopLevelAlts(inner) {
		out = append(out, expandRaw(prefix+part+suffix)...)
	}
	return out
}

// findTopLevelParens finds the first '(' in p and its matching ')'. If the
// parens are unbalanced, ok is false and p is treated as a plain literal.
func findTopLevelParens(p string) (start, end int, ok bool) {
	start = strings.IndexByte(p, '(')
	if start == -1 {
		return 0, 0, false
	}
	depth := 0
	for i := start; i < len(p); i++ {
		switch p[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return start, i, true
			}
		}
	}
	return 0, 0, false
}

func splitTopLevelAlts(s string) []string {
	var parts []string
	depth, last := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, s[last:])
}

// Collapse dedupes alts and joins them: "" for none, the bare element for
// one, else "(a1|a2|...)".
func Collapse(alts []string) string {
	seen := make(map[string]bool, len(alts))
	deduped := make([]string, 0, len(alts))
	for _, a := range alts {
		if !seen[a] {
			seen[a] = true
			deduped = append(deduped, a)
		}
	}
	switch len(deduped) {
	case 0:
		return ""
	case 1:
		return deduped[0]
	default:
		return "(" + strings.Join(deduped, "|") + ")"
	}
}

// NormalizeAttrs scans p left to right, removing every `[n]` attribute and
// AND-ing the numeric ones into a running accumulator. Non-numeric bracket
// contents are dropped without affecting the accumulator. An unclosed `[`
// terminates the scan; everything from that point on is left intact. If
// strip is true, or no numeric attribute was ever seen, the cleaned string
// is returned as-is; otherwise the accumulated mask is appended once, at the
// end, as "[N]".
func NormalizeAttrs(p string, strip bool) string {
	var out strings.Builder
	var acc uint64
	changed := false

	i := 0
	for i < len(p) {
		if p[i] != '[' {
			out.WriteByte(p[i])
			i++
			continue
		}
		rest := p[i+1:]
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			out.WriteString(p[i:])
			break
		}
		content := rest[:j]
		if n, ok := parseUintStrict(content); ok {
			if changed {
				acc &= n
			} else {
				acc = n
			}
			changed = true
		}
		i += 1 + j + 1
	}

	if strip || !changed {
		return out.String()
	}
	return out.String() + "[" + strconv.FormatUint(acc, 10) + "]"
}

func parseUintStrict(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Strip removes every bracketed attribute from p, equivalent to
// NormalizeAttrs(p, true). Callers use this to compare alternatives after
// stripping attributes, for dedup.
func Strip(p string) string {
	return NormalizeAttrs(p, true)
}

// SplitTrailingAttr reports the literal content and language mask of a
// canonical phonetic string whose only attribute, if any, sits at the very
// end ("text[N]"), as NormalizeAttrs always emits it. ok is false if p has
// no trailing bracket.
func SplitTrailingAttr(p string) (content string, mask language.Mask, ok bool) {
	if !strings.HasSuffix(p, "]") {
		return p, 0, false
	}
	idx := strings.LastIndexByte(p, '[')
	if idx == -1 {
		return p, 0, false
	}
	n, okNum := parseUintStrict(p[idx+1 : len(p)-1])
	if !okNum {
		return p, 0, false
	}
	return p[:idx], language.Mask(n), true
}

// IsDead reports whether p's trailing attribute is the degenerate [0] mask,
// meaning this alternative must be discarded.
func IsDead(p string) bool {
	_, mask, ok := SplitTrailingAttr(p)
	return ok && mask == 0
}

// Merge concatenates a and b with sep (defaulting to "-"); if either side is
// empty, the other is returned unchanged.
func Merge(a, b string, sep ...string) string {
	s := "-"
	if len(sep) > 0 {
		s = sep[0]
	}
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + s + b
}
