package dmsoundex

import "strings"

// branch tracks one code-under-construction and the last code digit group
// appended to it, so a repeated code in a row is suppressed rather than
// appended twice.
type branch struct {
	code string
	last string
}

func (b branch) apply(code string) branch {
	if code == NoCode {
		return branch{code: b.code, last: ""}
	}
	if code == b.last {
		return branch{code: b.code, last: code}
	}
	return branch{code: b.code + code, last: code}
}

// Encode normalizes s into parts, encodes each part independently into one
// or more 6-digit codes, and returns the space-joined, globally
// deduplicated list. Empty input yields "".
func Encode(s string, table *Table) string {
	parts := splitParts(s)

	seen := make(map[string]bool)
	var codes []string
	for _, part := range parts {
		for _, code := range encodePart(part, table) {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return strings.Join(codes, " ")
}

func encodePart(part string, table *Table) []string {
	runes := []rune(part)
	branches := []branch{{}}

	pos := 0
	for pos < len(runes) {
		rule, matched := longestMatch(runes, pos, table)
		if !matched {
			pos++
			continue
		}

		patLen := len([]rune(rule.Pattern))
		atStart := pos == 0
		nextPos := pos + patLen
		var nextRune rune
		hasNext := nextPos < len(runes)
		if hasNext {
			nextRune = runes[nextPos]
		}

		code := rule.codeFor(atStart, nextRune, hasNext)
		next := make([]branch, 0, len(branches)*2)
		for _, b := range branches {
			next = append(next, b.apply(code))
		}
		if rule.HasAlternate() {
			altCode := rule.altCodeFor(atStart, nextRune, hasNext)
			for _, b := range branches {
				next = append(next, b.apply(altCode))
			}
		}
		branches = next
		pos = nextPos
	}

	seen := make(map[string]bool, len(branches))
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		code := finalize(b.code)
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	return out
}

func finalize(code string) string {
	if len(code) > 6 {
		return code[:6]
	}
	for len(code) < 6 {
		code += "0"
	}
	return code
}

// longestMatch returns the rule whose pattern matches runes at pos and is
// longest among all matching rules, breaking ties by table order.
func longestMatch(runes []rune, pos int, table *Table) (Rule, bool) {
	var best Rule
	bestLen := -1
	for _, r := range table.Rules {
		pr := []rune(r.Pattern)
		if pos+len(pr) > len(runes) || len(pr) <= bestLen {
			continue
		}
		if runesEqual(runes[pos:pos+len(pr)], pr) {
			best = r
			bestLen = len(pr)
		}
	}
	return best, bestLen >= 0
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
