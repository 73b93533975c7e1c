// Package langdata supplies the language catalogs and prefix tables the core
// is parametric over. Rule content is data, not code: this package is an
// illustrative, intentionally small data set sufficient to drive every
// operation end-to-end, not a claim of parity with the production BMPM
// rule corpus.
package langdata

import "github.com/beidermorse/bmpm/language"

func buildCatalog(nt language.NameType, names ...string) language.Catalog {
	langs := make([]language.Language, 0, len(names)+1)
	langs = append(langs, language.Language{Name: "any", Value: language.Any})
	bit := language.Mask(2)
	for _, n := range names {
		langs = append(langs, language.Language{Name: n, Value: bit})
		bit <<= 1
	}
	return language.Catalog{NameType: nt, Languages: langs}
}

// Generic is the language catalog for the Generic name-type.
var Generic = buildCatalog(language.Generic,
	"english", "french", "german", "hebrew", "hungarian", "italian",
	"polish", "portuguese", "romanian", "russian", "spanish", "turkish",
	"greek", "cyrillic",
)

// Ashkenazic is the language catalog for the Ashkenazic name-type.
var Ashkenazic = buildCatalog(language.Ashkenazic,
	"english", "french", "german", "hebrew", "hungarian", "polish",
	"romanian", "russian", "spanish", "yiddish",
)

// Sephardic is the language catalog for the Sephardic name-type.
var Sephardic = buildCatalog(language.Sephardic,
	"english", "french", "hebrew", "italian", "portuguese", "spanish",
	"turkish", "greek",
)

// Catalog returns the catalog for the given name-type.
func Catalog(nt language.NameType) language.Catalog {
	switch nt {
	case language.Ashkenazic:
		return Ashkenazic
	case language.Sephardic:
		return Sephardic
	default:
		return Generic
	}
}
