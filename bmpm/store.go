package bmpm

import (
	"errors"
	"io/fs"
	"path"

	"github.com/beidermorse/bmpm/bmpmerr"
	"github.com/beidermorse/bmpm/langdetect"
	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/rule"
	"github.com/beidermorse/bmpm/ruledata"
)

// TableKind tags which rule-table family a Store lookup wants: the main
// rewrite table, the common final-pass table, or a language's own
// final-pass table. An explicit enum replaces dynamic dispatch over
// string-keyed table names.
type TableKind int

const (
	// KindMain is the main-pass table for (name-type, language); it does
	// not vary by accuracy.
	KindMain TableKind = iota
	// KindCommonFinal is the common final table for (name-type, accuracy);
	// lang is ignored.
	KindCommonFinal
	// KindLanguageFinal is the language-specific final table for
	// (name-type, language, accuracy).
	KindLanguageFinal
)

// Store is the external rule-table collaborator: load errors belong to it,
// never to the rewrite engine.
type Store interface {
	LangDetect(nt language.NameType) (*langdetect.Table, error)
	Table(kind TableKind, nt language.NameType, lang string, accuracy Accuracy) (*rule.Table, error)
}

// FSStore implements Store over an on-disk rule tree laid out as
// Data/<NameTypeDir>/<prefix>_<name>.json. The common and language-specific
// final-pass tables are legitimately optional (a missing file is an empty
// no-op table, not an error); a missing main table for a requested language
// is not, since the main pass is the only rewrite step that actually
// produces a name's phonetic spelling, and returns
// bmpmerr.ErrRuleFileNotFound. JSON-parse failures and missing required
// fields always propagate regardless of table kind.
type FSStore struct {
	FS fs.FS
}

func nameTypeDir(nt language.NameType) string {
	switch nt {
	case language.Ashkenazic:
		return "Ashkenazic"
	case language.Sephardic:
		return "Sephardic"
	default:
		return "Generic"
	}
}

func accuracyPrefix(accuracy Accuracy) string {
	if accuracy == Exact {
		return "exact"
	}
	return "approx"
}

func (s *FSStore) tablePath(kind TableKind, nt language.NameType, lang string, accuracy Accuracy) string {
	dir := nameTypeDir(nt)
	switch kind {
	case KindCommonFinal:
		return path.Join("Data", dir, accuracyPrefix(accuracy)+"_common.json")
	case KindLanguageFinal:
		return path.Join("Data", dir, accuracyPrefix(accuracy)+"_"+lang+".json")
	default:
		return path.Join("Data", dir, "rules_"+lang+".json")
	}
}

func (s *FSStore) Table(kind TableKind, nt language.NameType, lang string, accuracy Accuracy) (*rule.Table, error) {
	p := s.tablePath(kind, nt, lang, accuracy)
	data, err := fs.ReadFile(s.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if kind == KindMain {
				return nil, bmpmerr.FileNotFound(p)
			}
			return &rule.Table{}, nil
		}
		return nil, err
	}
	rf, err := ruledata.ParseRuleFile(p, data)
	if err != nil {
		return nil, err
	}
	return rf.ToTable()
}

func (s *FSStore) LangDetect(nt language.NameType) (*langdetect.Table, error) {
	p := path.Join("Data", nameTypeDir(nt), "language_rules.json")
	data, err := fs.ReadFile(s.FS, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &langdetect.Table{}, nil
		}
		return nil, err
	}
	ldf, err := ruledata.ParseLangDetectFile(p, data)
	if err != nil {
		return nil, err
	}
	return ldf.ToTable()
}
