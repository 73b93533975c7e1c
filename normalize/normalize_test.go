package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/beidermorse/bmpm/bmpmerr"
	"github.com/beidermorse/bmpm/language"
)

func TestNormalizeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Normalize(in, DefaultPolicy); !errors.Is(err, bmpmerr.ErrEmptyInput) {
			t.Errorf("Normalize(%q) err = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	a, err := Normalize("JOHN", DefaultPolicy)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	b, err := Normalize("john", DefaultPolicy)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if a != b {
		t.Errorf("Normalize(JOHN) = %q, Normalize(john) = %q, want equal", a, b)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once, err := Normalize("  José O'Brien  ", DefaultPolicy)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	twice, err := Normalize(once, DefaultPolicy)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if once != twice {
		t.Errorf("Normalize not idempotent: %q vs %q", once, twice)
	}
}

func TestNormalizeDecodesEntities(t *testing.T) {
	got, err := Normalize("O&#039;Brien", DefaultPolicy)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !strings.Contains(got, "'") {
		t.Errorf("Normalize(O&#039;Brien) = %q, want it to contain an apostrophe", got)
	}
}

func TestNormalizeInputTooLong(t *testing.T) {
	long := strings.Repeat("a", 5)
	_, err := Normalize(long, Policy{MaxLength: 4})
	if !errors.Is(err, bmpmerr.ErrInputTooLong) {
		t.Errorf("Normalize err = %v, want ErrInputTooLong", err)
	}
}

func TestNormalizeWindows1252SmartQuote(t *testing.T) {
	// 0x93/0x94 are Windows-1252 smart quotes, invalid as standalone UTF-8.
	raw := "\x93hi\x94"
	got, err := Normalize(raw, DefaultPolicy)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !strings.Contains(got, "hi") {
		t.Errorf("Normalize(%q) = %q, want it to contain hi", raw, got)
	}
}

func TestRemoveLeadingPrefixes(t *testing.T) {
	phrases := []string{"de la", "van der", "van den"}
	got := RemoveLeadingPrefixes("van der berg", phrases)
	if got != "vander berg" {
		t.Errorf("RemoveLeadingPrefixes = %q, want %q", got, "vander berg")
	}
	if got := RemoveLeadingPrefixes("smith", phrases); got != "smith" {
		t.Errorf("RemoveLeadingPrefixes(smith) = %q, want unchanged", got)
	}
}

func TestCanonicalizeDelimitersSingleSpacePerKind(t *testing.T) {
	got := CanonicalizeDelimiters("mary -- jane's")
	if strings.Count(got, " ") != 2 {
		t.Errorf("CanonicalizeDelimiters(%q) = %q, want exactly 2 spaces", "mary -- jane's", got)
	}
}

func TestCanonicalizeDelimitersFirstOccurrencePosition(t *testing.T) {
	got := CanonicalizeDelimiters("a-b-c")
	if got != "a bc" {
		t.Errorf("CanonicalizeDelimiters(a-b-c) = %q, want %q", got, "a bc")
	}
}

func TestPipelineApostrophePolicy(t *testing.T) {
	withApostrophe := "O'Brien"
	withoutApostrophe := "OBrien"

	generic, err := Pipeline(withApostrophe, language.Generic, nil, DefaultPolicy)
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	genericPlain, err := Pipeline(withoutApostrophe, language.Generic, nil, DefaultPolicy)
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	if generic != genericPlain {
		t.Errorf("Generic: Pipeline(%q) = %q, Pipeline(%q) = %q, want equal", withApostrophe, generic, withoutApostrophe, genericPlain)
	}
}

func TestPipelineCaseInsensitivePrefix(t *testing.T) {
	a, err := Pipeline("VAN Berg", language.Generic, []string{"de la", "van der", "van den"}, DefaultPolicy)
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	b, err := Pipeline("van Berg", language.Generic, []string{"de la", "van der", "van den"}, DefaultPolicy)
	if err != nil {
		t.Fatalf("Pipeline: %v", err)
	}
	if a != b {
		t.Errorf("Pipeline(VAN Berg) = %q, Pipeline(van Berg) = %q, want equal", a, b)
	}
}
