// Package langdetect implements the language detector: a running bitmask,
// progressively narrowed by an ordered list of accept/reject pattern
// rules.
package langdetect

import (
	"regexp"

	"github.com/beidermorse/bmpm/language"
)

// Rule is one language-detect rule: if Regex matches the normalized input,
// the running mask is narrowed by Languages, in the direction Accept
// indicates.
type Rule struct {
	Regex     *regexp.Regexp
	Languages language.Mask
	Accept    bool
}

// Table is an ordered list of detect rules for one name-type.
type Table struct {
	Rules []Rule
}

// Detect narrows catalog's universe by applying t's rules in order:
//   - accept: remaining &= rule.Languages
//   - reject: remaining &= ^rule.Languages (masked back to the universe)
//
// If every bit is cleared, the result is language.Any (value 1).
func Detect(input string, catalog language.Catalog, t Table) language.Mask {
	universe := catalog.Universe()
	remaining := universe
	for _, r := range t.Rules {
		if r.Regex == nil || !r.Regex.MatchString(input) {
			continue
		}
		if r.Accept {
			remaining &= r.Languages
		} else {
			remaining &= ^r.Languages & universe
		}
	}
	if remaining == 0 {
		return language.Any
	}
	return remaining
}

// DetectLanguages is Detect decoded to the matching catalog entries.
func DetectLanguages(input string, catalog language.Catalog, t Table) []language.Language {
	return catalog.Decode(Detect(input, catalog, t))
}

// DetectPrimary returns the first non-Any language bit set in Detect's
// result, or Any's catalog entry if none remain.
func DetectPrimary(input string, catalog language.Catalog, t Table) language.Language {
	return catalog.Primary(Detect(input, catalog, t))
}
