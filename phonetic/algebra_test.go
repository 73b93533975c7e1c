package phonetic

import (
	"reflect"
	"sort"
	"testing"
)

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestExpandSimple(t *testing.T) {
	got := Expand("(a|b)z")
	want := []string{"az", "bz"}
	if !reflect.DeepEqual(sorted(got), sorted(want)) {
		t.Errorf("Expand((a|b)z) = %v, want %v", got, want)
	}
}

func TestExpandDropsEmptyAndDeadAlternatives(t *testing.T) {
	got := Expand("(|a|[0])")
	want := []string{"a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpandDedupesPreservingOrder(t *testing.T) {
	got := Expand("(a|a|b)")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpandNested(t *testing.T) {
	got := Expand("(a|b(c|d))")
	want := []string{"a", "bc", "bd"}
	if !reflect.DeepEqual(sorted(got), sorted(want)) {
		t.Errorf("Expand nested = %v, want %v", got, want)
	}
}

func TestCollapseRoundTrip(t *testing.T) {
	for _, p := range []string{"smit", "(smit|zmit)"} {
		alts := Expand(p)
		if got := Collapse(alts); got != p {
			t.Errorf("Collapse(Expand(%q)) = %q, want %q", p, got, p)
		}
	}
}

func TestCollapseEmptyAndSingle(t *testing.T) {
	if got := Collapse(nil); got != "" {
		t.Errorf("Collapse(nil) = %q, want \"\"", got)
	}
	if got := Collapse([]string{"x"}); got != "x" {
		t.Errorf("Collapse([x]) = %q, want x", got)
	}
}

func TestNormalizeAttrsAnd(t *testing.T) {
	cases := []struct {
		in, want       string
		wantWhenStripped string
	}{
		{"abc[128]def[32]", "abcdef[0]", "abcdef"},
		{"abc[128]def[160]", "abcdef[128]", "abcdef"},
	}
	for _, c := range cases {
		if got := NormalizeAttrs(c.in, false); got != c.want {
			t.Errorf("NormalizeAttrs(%q, false) = %q, want %q", c.in, got, c.want)
		}
		if got := NormalizeAttrs(c.in, true); got != c.wantWhenStripped {
			t.Errorf("NormalizeAttrs(%q, true) = %q, want %q", c.in, got, c.wantWhenStripped)
		}
	}
}

func TestNormalizeAttrsNoBracketUnchanged(t *testing.T) {
	if got := NormalizeAttrs("plain", false); got != "plain" {
		t.Errorf("NormalizeAttrs(plain) = %q, want plain", got)
	}
}

func TestNormalizeAttrsNonNumericDropped(t *testing.T) {
	if got := NormalizeAttrs("a[note]b", false); got != "ab" {
		t.Errorf("NormalizeAttrs(a[note]b) = %q, want ab", got)
	}
}

func TestNormalizeAttrsMalformedBracketLeftIntact(t *testing.T) {
	if got := NormalizeAttrs("abc[12", false); got != "abc[12" {
		t.Errorf("NormalizeAttrs(abc[12) = %q, want abc[12", got)
	}
}

func TestNormalizeAttrsIdempotent(t *testing.T) {
	p := "abc[128]def[32]"
	once := NormalizeAttrs(p, false)
	twice := NormalizeAttrs(once, false)
	if once != twice {
		t.Errorf("NormalizeAttrs not idempotent: %q vs %q", once, twice)
	}
}

func TestSplitTrailingAttr(t *testing.T) {
	content, mask, ok := SplitTrailingAttr("smit[128]")
	if !ok || content != "smit" || mask != 128 {
		t.Errorf("SplitTrailingAttr = (%q, %d, %v), want (smit, 128, true)", content, mask, ok)
	}
	if _, _, ok := SplitTrailingAttr("smit"); ok {
		t.Errorf("SplitTrailingAttr(smit) ok = true, want false")
	}
}

func TestIsDead(t *testing.T) {
	if !IsDead("smit[0]") {
		t.Errorf("IsDead(smit[0]) = false, want true")
	}
	if IsDead("smit[1]") {
		t.Errorf("IsDead(smit[1]) = true, want false")
	}
}

func TestMerge(t *testing.T) {
	if got := Merge("", "b"); got != "b" {
		t.Errorf("Merge(\"\", b) = %q, want b", got)
	}
	if got := Merge("a", ""); got != "a" {
		t.Errorf("Merge(a, \"\") = %q, want a", got)
	}
	if got := Merge("a", "b"); got != "a-b" {
		t.Errorf("Merge(a, b) = %q, want a-b", got)
	}
}
