package bmpm

import (
	"strings"

	"github.com/beidermorse/bmpm/compose"
	"github.com/beidermorse/bmpm/dmsoundex"
	"github.com/beidermorse/bmpm/engine"
	"github.com/beidermorse/bmpm/langdata"
	"github.com/beidermorse/bmpm/langdetect"
	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/normalize"
	"github.com/beidermorse/bmpm/phonetic"
)

// Encoder is the core's top-level entry point: a Store wrapped in a
// memoizing Cache, a normalization Policy, and a D-M Soundex table. The
// zero value is not usable; construct with New.
type Encoder struct {
	cache   *Cache
	policy  normalize.Policy
	dmTable *dmsoundex.Table
}

// New builds an Encoder over store. A nil dmTable uses
// dmsoundex.DefaultTable.
func New(store Store, policy normalize.Policy, dmTable *dmsoundex.Table) *Encoder {
	if dmTable == nil {
		dmTable = dmsoundex.DefaultTable()
	}
	return &Encoder{cache: NewCache(store), policy: policy, dmTable: dmTable}
}

// ClearCache empties the Encoder's memoizing table cache.
func (e *Encoder) ClearCache() {
	e.cache.Clear()
}

// Encode normalizes s and rewrites it into its phonetic alternatives,
// expressed as a single parenthesized-alternation string. Empty or
// whitespace-only input returns "", nil rather than propagating
// bmpmerr.ErrEmptyInput: an empty name encodes to an empty result, not an
// error.
func (e *Encoder) Encode(s string, nt language.NameType, accuracy Accuracy, mask *language.Mask) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	normalized, err := normalize.Pipeline(s, nt, langdata.LeadingPhrases, e.policy)
	if err != nil {
		return "", err
	}
	if normalized == "" {
		return "", nil
	}

	word1, word2, ok := compose.SplitFirstSpace(normalized)
	if !ok {
		return e.encodeWord(word1, nt, accuracy, mask)
	}

	adapter := wordEncoder{enc: e, nt: nt, accuracy: accuracy}
	prefixes := langdata.Prefixes(nt)
	return compose.Compose(word1, word2, accuracy == Exact, prefixes, adapter), nil
}

// EncodeToArray expands Encode's result into its plain phonetic
// alternatives.
func (e *Encoder) EncodeToArray(s string, nt language.NameType, accuracy Accuracy, mask *language.Mask) ([]string, error) {
	p, err := e.Encode(s, nt, accuracy, mask)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, nil
	}
	return phonetic.Expand(p), nil
}

// Detect normalizes s and returns the mask of languages its spelling is
// plausibly written in.
func (e *Encoder) Detect(s string, nt language.NameType) (language.Mask, error) {
	normalized, err := normalize.Pipeline(s, nt, langdata.LeadingPhrases, e.policy)
	if err != nil {
		return 0, err
	}
	return e.detectNormalized(normalized, nt)
}

func (e *Encoder) detectNormalized(normalized string, nt language.NameType) (language.Mask, error) {
	catalog := langdata.Catalog(nt)
	dt, err := e.cache.LangDetect(nt)
	if err != nil {
		return 0, err
	}
	return langdetect.Detect(normalized, catalog, *dt), nil
}

// DMSoundex returns s's Daitch-Mokotoff Soundex codes. There is no error
// path: invalid characters are simply skipped by the underlying part
// normalizer.
func (e *Encoder) DMSoundex(s string) string {
	return dmsoundex.Encode(s, e.dmTable)
}

// encodeWord encodes one already-normalized, space-free word: detect (or
// accept an explicit mask), run the main and two final passes per
// candidate language, then collapse and dedupe across languages.
func (e *Encoder) encodeWord(word string, nt language.NameType, accuracy Accuracy, explicitMask *language.Mask) (string, error) {
	catalog := langdata.Catalog(nt)

	mask := language.Any
	if explicitMask != nil {
		mask = *explicitMask
	} else {
		m, err := e.detectNormalized(word, nt)
		if err != nil {
			return "", err
		}
		mask = m
	}

	langs := catalog.Decode(mask)
	if len(langs) == 0 {
		langs = []language.Language{{Name: "any", Value: language.Any}}
	}

	var alts []string
	for _, lang := range langs {
		mainTable, err := e.cache.Table(KindMain, nt, lang.Name, accuracy)
		if err != nil {
			return "", err
		}
		p := engine.MainPass(word, mainTable, lang.Value)

		commonTable, err := e.cache.Table(KindCommonFinal, nt, "", accuracy)
		if err != nil {
			return "", err
		}
		p = engine.FinalPass(p, commonTable, false, lang.Value)

		langTable, err := e.cache.Table(KindLanguageFinal, nt, lang.Name, accuracy)
		if err != nil {
			return "", err
		}
		p = engine.FinalPass(p, langTable, true, lang.Value)

		if p != "" {
			alts = append(alts, phonetic.Expand(p)...)
		}
	}

	return collapseDedup(alts), nil
}

func collapseDedup(alts []string) string {
	seen := make(map[string]bool, len(alts))
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		if a == "" {
			continue
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return phonetic.Collapse(out)
}

// wordEncoder adapts Encoder to compose.Encoder, binding a fixed name-type
// and accuracy so compose.Compose can encode/detect single words without
// importing Encoder directly (which would cycle back through this package).
// Rule-load errors are swallowed here: a failed Detect yields language.Any
// and a failed Encode yields "", so Encode's multi-word path does not
// report Store errors to its caller.
type wordEncoder struct {
	enc      *Encoder
	nt       language.NameType
	accuracy Accuracy
}

func (w wordEncoder) Detect(word string) language.Mask {
	mask, err := w.enc.detectNormalized(word, w.nt)
	if err != nil {
		return language.Any
	}
	return mask
}

func (w wordEncoder) Encode(word string, mask language.Mask) string {
	p, err := w.enc.encodeWord(word, w.nt, w.accuracy, &mask)
	if err != nil {
		return ""
	}
	return p
}
