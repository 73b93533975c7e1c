// Package rule implements the immutable rule records (Rule, Table) and the
// four predicates the rewrite engine tests a rule against at a given
// position.
package rule

import (
	"fmt"
	"regexp"

	"github.com/beidermorse/bmpm/language"
)

// LogicalOp controls how a rule's language mask is tested against the
// detector's context mask.
type LogicalOp int

const (
	// ANY fires the rule if the context mask shares any bit with the
	// rule's language mask.
	ANY LogicalOp = iota
	// ALL fires the rule only if the context mask has every bit of the
	// rule's language mask set.
	ALL
)

func (op LogicalOp) String() string {
	if op == ALL {
		return "ALL"
	}
	return "ANY"
}

// Rule is an immutable 6-tuple: a literal pattern, its left/right context,
// the phonetic replacement it fires, and the language predicate it applies
// under. LeftContext and RightContext regexes are compiled once, at
// construction, and cached on the record for the lifetime of the process —
// regex compilation never happens on the hot rewrite path.
type Rule struct {
	Pattern      string
	LeftContext  string
	RightContext string
	Phonetic     string
	LanguageMask *language.Mask
	LogicalOp    LogicalOp

	leftRe  *regexp.Regexp
	rightRe *regexp.Regexp
}

// New compiles a Rule's context regexes and returns it. Go's regexp package
// operates on Unicode codepoints by default — there is no separate "Unicode
// flag" to force the way there would be in a PCRE-style engine, so
// always-on Unicode matching requires no extra work here.
func New(pattern, leftContext, rightContext, phonetic string, languageMask *language.Mask, op LogicalOp) (*Rule, error) {
	r := &Rule{
		Pattern:      pattern,
		LeftContext:  leftContext,
		RightContext: rightContext,
		Phonetic:     phonetic,
		LanguageMask: languageMask,
		LogicalOp:    op,
	}
	if leftContext != "" {
		re, err := regexp.Compile(leftContext + "$")
		if err != nil {
			return nil, fmt.Errorf("rule: invalid leftContext %q: %w", leftContext, err)
		}
		r.leftRe = re
	}
	if rightContext != "" {
		re, err := regexp.Compile("^(?:" + rightContext + ")")
		if err != nil {
			return nil, fmt.Errorf("rule: invalid rightContext %q: %w", rightContext, err)
		}
		r.rightRe = re
	}
	return r, nil
}

// MatchesPattern reports whether r's pattern occurs, byte-exact, at pos in
// s (the normalized, lowercased input).
func (r *Rule) MatchesPattern(s string, pos int) bool {
	end := pos + len(r.Pattern)
	if end > len(s) {
		return false
	}
	return s[pos:end] == r.Pattern
}

// MatchesLeftContext reports whether r's left-context regex matches the
// text to the left of pos; an empty LeftContext always matches.
func (r *Rule) MatchesLeftContext(s string, pos int) bool {
	if r.leftRe == nil {
		return true
	}
	return r.leftRe.MatchString(s[:pos])
}

// MatchesRightContext reports whether r's right-context regex matches the
// text starting right after the pattern; an empty RightContext always
// matches.
func (r *Rule) MatchesRightContext(s string, pos int) bool {
	if r.rightRe == nil {
		return true
	}
	end := pos + len(r.Pattern)
	if end > len(s) {
		end = len(s)
	}
	return r.rightRe.MatchString(s[end:])
}

// AppliesToLanguage reports whether r's language predicate holds for mask.
// A nil LanguageMask always applies.
func (r *Rule) AppliesToLanguage(mask language.Mask) bool {
	if r.LanguageMask == nil {
		return true
	}
	lm := *r.LanguageMask
	if r.LogicalOp == ALL {
		return mask&lm == lm
	}
	return mask&lm != 0
}

// Matches reports whether every predicate holds for r firing at pos in s
// under ctxMask.
func (r *Rule) Matches(s string, pos int, ctxMask language.Mask) bool {
	return r.MatchesPattern(s, pos) &&
		r.MatchesLeftContext(s, pos) &&
		r.MatchesRightContext(s, pos) &&
		r.AppliesToLanguage(ctxMask)
}

// Table is an ordered, named sequence of rules. Ordering is significant:
// the first rule whose predicates hold fires.
type Table struct {
	Name  string
	Rules []*Rule
}

// Empty reports whether t has no rules, meaning a pass over it is a no-op.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rules) == 0
}
