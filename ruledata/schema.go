// Package ruledata implements a JSON rule-data format: per-language rule
// files and language-detect files, and their loaders into rule.Table /
// langdetect.Table. This is the external loader collaborator: load errors
// originate here, never in the rewrite engine.
package ruledata

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/beidermorse/bmpm/bmpmerr"
	"github.com/beidermorse/bmpm/langdetect"
	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/rule"
)

// RuleRecord is one entry of a rule file's "rules" array.
type RuleRecord struct {
	Pattern      string `json:"pattern"`
	Phonetic     string `json:"phonetic"`
	LeftContext  string `json:"leftContext,omitempty"`
	RightContext string `json:"rightContext,omitempty"`
	LanguageMask *int64 `json:"languageMask,omitempty"`
	LogicalOp    string `json:"logicalOp,omitempty"`
}

// RuleFile is the top-level shape of rules/approx/exact/common JSON files.
type RuleFile struct {
	Name  string       `json:"name"`
	Rules []RuleRecord `json:"rules"`
}

// LangDetectRecord is one entry of a language_rules.json file.
type LangDetectRecord struct {
	Pattern   string `json:"pattern"`
	Languages int64  `json:"languages"`
	Accept    bool   `json:"accept"`
}

// LangDetectFile is the top-level shape of language_rules.json.
type LangDetectFile struct {
	Rules []LangDetectRecord `json:"rules"`
}

// ParseRuleFile decodes a rule file, failing with ErrRuleInvalidFormat on
// malformed JSON and ErrRuleMissingField if "rules" is absent.
func ParseRuleFile(name string, data []byte) (*RuleFile, error) {
	var f RuleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", bmpmerr.ErrRuleInvalidFormat, name, err)
	}
	if f.Rules == nil {
		return nil, bmpmerr.MissingField(name, "rules")
	}
	for i, r := range f.Rules {
		if r.Pattern == "" {
			return nil, bmpmerr.MissingField(name, fmt.Sprintf("rules[%d].pattern", i))
		}
		if r.Phonetic == "" {
			return nil, bmpmerr.MissingField(name, fmt.Sprintf("rules[%d].phonetic", i))
		}
	}
	return &f, nil
}

// ToTable compiles f into a rule.Table, compiling every rule's context
// regexes once up front.
func (f *RuleFile) ToTable() (*rule.Table, error) {
	t := &rule.Table{Name: f.Name, Rules: make([]*rule.Rule, 0, len(f.Rules))}
	for _, rec := range f.Rules {
		op := rule.ANY
		if strings.EqualFold(rec.LogicalOp, "ALL") {
			op = rule.ALL
		}
		var mask *language.Mask
		if rec.LanguageMask != nil {
			m := language.Mask(*rec.LanguageMask)
			mask = &m
		}
		r, err := rule.New(rec.Pattern, rec.LeftContext, rec.RightContext, rec.Phonetic, mask, op)
		if err != nil {
			return nil, fmt.Errorf("ruledata: %s: %w", f.Name, err)
		}
		t.Rules = append(t.Rules, r)
	}
	return t, nil
}

// ParseLangDetectFile decodes a language_rules.json file.
func ParseLangDetectFile(name string, data []byte) (*LangDetectFile, error) {
	var f LangDetectFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", bmpmerr.ErrRuleInvalidFormat, name, err)
	}
	if f.Rules == nil {
		return nil, bmpmerr.MissingField(name, "rules")
	}
	return &f, nil
}

// delimitedPattern splits a "/regex/flags" pattern into its regex body and
// flag letters. A pattern with no trailing flags delimiter is treated as
// having none.
func delimitedPattern(s string) (body, flags string) {
	if len(s) < 2 || s[0] != '/' {
		return s, ""
	}
	end := strings.LastIndexByte(s, '/')
	if end <= 0 {
		return s, ""
	}
	return s[1:end], s[end+1:]
}

// compileDetectPattern compiles a delimited language-detect regex, forcing
// case-insensitive matching via Go's inline flag syntax when the "i" flag
// is present. Go's regexp engine is already Unicode-aware by default.
func compileDetectPattern(s string) (*regexp.Regexp, error) {
	body, flags := delimitedPattern(s)
	goFlags := ""
	if strings.ContainsRune(flags, 'i') {
		goFlags += "i"
	}
	expr := body
	if goFlags != "" {
		expr = "(?" + goFlags + ")" + body
	}
	return regexp.Compile(expr)
}

// ToTable compiles f into a langdetect.Table.
func (f *LangDetectFile) ToTable() (*langdetect.Table, error) {
	t := &langdetect.Table{Rules: make([]langdetect.Rule, 0, len(f.Rules))}
	for _, rec := range f.Rules {
		re, err := compileDetectPattern(rec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("ruledata: invalid language-detect pattern %q: %w", rec.Pattern, err)
		}
		t.Rules = append(t.Rules, langdetect.Rule{
			Regex:     re,
			Languages: language.Mask(rec.Languages),
			Accept:    rec.Accept,
		})
	}
	return t, nil
}
