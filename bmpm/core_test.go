package bmpm

import (
	"regexp"
	"testing"

	"github.com/beidermorse/bmpm/langdata"
	"github.com/beidermorse/bmpm/langdetect"
	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/normalize"
	"github.com/beidermorse/bmpm/phonetic"
	"github.com/beidermorse/bmpm/rule"
)

// testStore is a hand-built in-memory Store exercising the same shape a
// real Data/<NameTypeDir>/*.json tree would produce, scoped to just enough
// rules to drive a handful of literal end-to-end scenarios.
type testStore struct {
	langDetect map[language.NameType]*langdetect.Table
	main       map[string]*rule.Table // key: nameType.String()+"/"+lang
}

func mainKey(nt language.NameType, lang string) string {
	return nt.String() + "/" + lang
}

func (s *testStore) LangDetect(nt language.NameType) (*langdetect.Table, error) {
	if t, ok := s.langDetect[nt]; ok {
		return t, nil
	}
	return &langdetect.Table{}, nil
}

func (s *testStore) Table(kind TableKind, nt language.NameType, lang string, accuracy Accuracy) (*rule.Table, error) {
	if kind == KindMain {
		if t, ok := s.main[mainKey(nt, lang)]; ok {
			return t, nil
		}
	}
	return &rule.Table{}, nil
}

func mustMainRule(t *testing.T, pattern, phonetic string) *rule.Rule {
	t.Helper()
	r, err := rule.New(pattern, "", "", phonetic, nil, rule.ANY)
	if err != nil {
		t.Fatalf("rule.New(%q): %v", pattern, err)
	}
	return r
}

// newTestEncoder builds an Encoder whose Generic language detector always
// narrows to exactly {english, german}, with a main table per language
// covering the handful of whole words the tests need.
func newTestEncoder(t *testing.T) *Encoder {
	t.Helper()
	catalog := langdata.Generic
	english, ok := catalog.ByName("english")
	if !ok {
		t.Fatal("catalog missing english")
	}
	german, ok := catalog.ByName("german")
	if !ok {
		t.Fatal("catalog missing german")
	}
	keep := language.Combine(english, german)
	reject := catalog.Universe() &^ keep

	everything := regexp.MustCompile(`.*`)
	store := &testStore{
		langDetect: map[language.NameType]*langdetect.Table{
			language.Generic: {Rules: []langdetect.Rule{
				{Regex: everything, Languages: reject, Accept: false},
			}},
		},
		main: map[string]*rule.Table{
			mainKey(language.Generic, "english"): {Rules: []*rule.Rule{
				mustMainRule(t, "smith", "smit"),
				mustMainRule(t, "ben", "ben"),
				mustMainRule(t, "david", "david"),
				mustMainRule(t, "bendavid", "bendavid"),
			}},
			mainKey(language.Generic, "german"): {Rules: []*rule.Rule{
				mustMainRule(t, "smith", "zmit"),
			}},
		},
	}
	return New(store, normalize.DefaultPolicy, nil)
}

func TestEncodeEmptyAndWhitespaceInputYieldEmptyString(t *testing.T) {
	enc := newTestEncoder(t)
	for _, in := range []string{"", "   "} {
		got, err := enc.Encode(in, language.Generic, Approximate, nil)
		if err != nil || got != "" {
			t.Errorf("Encode(%q) = (%q, %v), want (\"\", nil)", in, got, err)
		}
	}
}

func TestEncodeSmithProducesEnglishAndGermanAlternatives(t *testing.T) {
	enc := newTestEncoder(t)
	got, err := enc.Encode("Smith", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "(smit|zmit)"
	if got != want {
		t.Errorf("Encode(Smith) = %q, want %q", got, want)
	}
}

func TestEncodeToArrayExpandsAlternatives(t *testing.T) {
	enc := newTestEncoder(t)
	got, err := enc.EncodeToArray("Smith", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("EncodeToArray: %v", err)
	}
	want := []string{"smit", "zmit"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("EncodeToArray(Smith) = %v, want %v", got, want)
	}
}

func TestEncodeMultiWordPrefixLaw(t *testing.T) {
	enc := newTestEncoder(t)
	got, err := enc.Encode("Ben David", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	david, err := enc.Encode("David", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("Encode(David): %v", err)
	}
	bendavid, err := enc.Encode("BenDavid", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("Encode(BenDavid): %v", err)
	}
	want := phonetic.Merge(david, bendavid)
	if got != want {
		t.Errorf("Encode(Ben David) = %q, want %q (prefix law)", got, want)
	}
}

func TestEncodeExactMultiWordEqualsConcatenation(t *testing.T) {
	enc := newTestEncoder(t)
	spaced, err := enc.Encode("Ben David", language.Generic, Exact, nil)
	if err != nil {
		t.Fatalf("Encode(spaced): %v", err)
	}
	joined, err := enc.Encode("BenDavid", language.Generic, Exact, nil)
	if err != nil {
		t.Fatalf("Encode(joined): %v", err)
	}
	if spaced != joined {
		t.Errorf("Exact accuracy: Encode(\"Ben David\") = %q, Encode(\"BenDavid\") = %q, want equal", spaced, joined)
	}
}

func TestEncodeApostrophePolicyGenericEqualsStripped(t *testing.T) {
	enc := newTestEncoder(t)
	withApos, err := enc.Encode("O'Brien", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("Encode(O'Brien): %v", err)
	}
	stripped, err := enc.Encode("OBrien", language.Generic, Approximate, nil)
	if err != nil {
		t.Fatalf("Encode(OBrien): %v", err)
	}
	if withApos != stripped {
		t.Errorf("Encode(O'Brien) = %q, Encode(OBrien) = %q, want equal under Generic", withApos, stripped)
	}
}

func TestDetectNarrowsToEnglishAndGerman(t *testing.T) {
	enc := newTestEncoder(t)
	mask, err := enc.Detect("Smith", language.Generic)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	catalog := langdata.Generic
	english, _ := catalog.ByName("english")
	german, _ := catalog.ByName("german")
	french, _ := catalog.ByName("french")
	if mask&english.Value == 0 || mask&german.Value == 0 {
		t.Errorf("Detect(Smith) = %d, want english and german bits set", mask)
	}
	if mask&french.Value != 0 {
		t.Errorf("Detect(Smith) = %d, want french bit cleared", mask)
	}
}

func TestDMSoundexDelegatesToDefaultTable(t *testing.T) {
	enc := New(&testStore{}, normalize.DefaultPolicy, nil)
	got := enc.DMSoundex("Cohen")
	if got == "" {
		t.Error("DMSoundex(Cohen) = \"\", want a non-empty code list")
	}
}
