// Package normalize implements the input normalizer: trimming, HTML-entity
// decoding, legacy-encoding detection/conversion, length capping, and
// Unicode lowercasing, followed by leading-prefix removal and delimiter
// canonicalization.
//
// Encoding conversion follows the same shape as
// `Encoding.NewDecoder() transform.Transformer`, but against whole
// in-memory strings rather than an io.Reader/io.Writer pipeline: personal
// names are capped at 1000 codepoints by default (see Policy), so there is no
// streaming short-buffer-retry protocol to carry over for a case that never
// streams.
package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/beidermorse/bmpm/bmpmerr"
)

// Policy bounds normalization behavior. The zero value behaves like
// DefaultPolicy.
type Policy struct {
	// MaxLength is the maximum normalized codepoint length. Zero means
	// DefaultPolicy.MaxLength.
	MaxLength int
}

// DefaultPolicy is a generous bound for personal names.
var DefaultPolicy = Policy{MaxLength: 1000}

func (p Policy) maxLength() int {
	if p.MaxLength > 0 {
		return p.MaxLength
	}
	return DefaultPolicy.MaxLength
}

// legacyCandidates are tried, in order, when the trimmed/entity-decoded
// input is not already valid UTF-8. Pure-ASCII input is always valid UTF-8
// and never reaches this list, so ASCII needs no separate candidate here.
var legacyCandidates = []struct {
	name string
	enc  encoding.Encoding
}{
	{"iso-8859-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
}

// Normalize trims raw, fails on empty, decodes HTML entities, detects and
// converts its legacy encoding if needed, enforces the length cap, and
// Unicode-lowercases the result — in that order.
func Normalize(raw string, policy Policy) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", bmpmerr.ErrEmptyInput
	}

	decoded := trimmed
	if strings.ContainsRune(decoded, '&') {
		decoded = html.UnescapeString(decoded)
	}

	utf8Text, err := toUTF8(decoded)
	if err != nil {
		return "", err
	}

	if n := utf8.RuneCountInString(utf8Text); n > policy.maxLength() {
		return "", bmpmerr.TooLong(n, policy.maxLength())
	}

	return lowercase(utf8Text), nil
}

func toUTF8(s string) (string, error) {
	if utf8.ValidString(s) {
		return s, nil
	}
	tried := make([]string, 0, len(legacyCandidates))
	for _, c := range legacyCandidates {
		tried = append(tried, c.name)
		out, _, err := transform.String(c.enc.NewDecoder(), s)
		if err == nil && utf8.ValidString(out) {
			return out, nil
		}
	}
	return "", bmpmerr.InvalidEncoding(tried)
}

var lowerCaser = cases.Lower(xlanguage.Und)

func lowercase(s string) string {
	return lowerCaser.String(s)
}
