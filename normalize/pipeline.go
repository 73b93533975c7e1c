package normalize

import "github.com/beidermorse/bmpm/language"

// Pipeline runs the full input-normalization chain for one name-type:
// Normalize, RemoveLeadingPrefixes, the Sephardic apostrophe carve-out,
// then CanonicalizeDelimiters.
func Pipeline(raw string, nt language.NameType, leadingPhrases []string, policy Policy) (string, error) {
	s, err := Normalize(raw, policy)
	if err != nil {
		return "", err
	}
	s = RemoveLeadingPrefixes(s, leadingPhrases)
	if nt != language.Sephardic {
		s = StripApostrophes(s)
	}
	s = CanonicalizeDelimiters(s)
	return s, nil
}
