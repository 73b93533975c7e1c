package langdata

import "github.com/beidermorse/bmpm/language"

// LeadingPhrases are the name-type-independent phrases
// RemoveLeadingPrefixes collapses: "de la" -> "dela", etc.
var LeadingPhrases = []string{"de la", "van der", "van den"}

// ashkenazicPrefixes and sephardicPrefixes are the multi-word prefix sets
// per name-type; genericPrefixes is their union, since the Generic set is
// the superset of both in practice.
var ashkenazicPrefixes = []string{"ben", "bar", "bin"}
var sephardicPrefixes = []string{"de", "da", "des", "van", "von"}

func union(sets ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, set := range sets {
		for _, s := range set {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

var genericPrefixes = union(ashkenazicPrefixes, sephardicPrefixes)

// Prefixes returns the multi-word prefix set for the given name-type, as a
// lookup set.
func Prefixes(nt language.NameType) map[string]bool {
	var list []string
	switch nt {
	case language.Ashkenazic:
		list = ashkenazicPrefixes
	case language.Sephardic:
		list = sephardicPrefixes
	default:
		list = genericPrefixes
	}
	set := make(map[string]bool, len(list))
	for _, p := range list {
		set[p] = true
	}
	return set
}
