package dmsoundex

// DefaultTable returns a small built-in D-M Soundex rule table covering the
// common Latin-alphabet letters and digraphs, including every pattern in
// alternateSet. It is illustrative, not a byte-for-byte reproduction of any
// published Daitch-Mokotoff code table. bmpm.New accepts a caller-built
// *Table in place of this default; nothing in this module loads a D-M
// table from disk.
func DefaultTable() *Table {
	return &Table{Rules: []Rule{
		// Vowels: coded 0 at the start of a word, silent elsewhere.
		{Pattern: "a", AtStart: "0", BeforeVowel: NoCode, Else: NoCode},
		{Pattern: "e", AtStart: "0", BeforeVowel: NoCode, Else: NoCode},
		{Pattern: "i", AtStart: "0", BeforeVowel: NoCode, Else: NoCode},
		{Pattern: "o", AtStart: "0", BeforeVowel: NoCode, Else: NoCode},
		{Pattern: "u", AtStart: "0", BeforeVowel: NoCode, Else: NoCode},
		{Pattern: "y", AtStart: "0", BeforeVowel: NoCode, Else: NoCode},

		// Multi-letter patterns must precede their single-letter prefixes
		// in longest-match precedence, which Encode enforces by length, not
		// table order — but grouping them together keeps the table
		// readable.
		{Pattern: "ch", AtStart: "4", BeforeVowel: "4", Else: "4",
			AltAtStart: "5", AltBeforeVowel: "5", AltElse: "5"},
		{Pattern: "ck", AtStart: "5", BeforeVowel: "5", Else: "5",
			AltAtStart: "45", AltBeforeVowel: "45", AltElse: "45"},
		{Pattern: "rz", AtStart: "4", BeforeVowel: "4", Else: "4",
			AltAtStart: "94", AltBeforeVowel: "94", AltElse: "94"},
		{Pattern: "sh", AtStart: "4", BeforeVowel: "4", Else: "4"},
		{Pattern: "th", AtStart: "3", BeforeVowel: "3", Else: "3"},

		{Pattern: "b", AtStart: "1", BeforeVowel: "1", Else: "1"},
		{Pattern: "c", AtStart: "4", BeforeVowel: "4", Else: "4",
			AltAtStart: "5", AltBeforeVowel: "5", AltElse: "5"},
		{Pattern: "d", AtStart: "3", BeforeVowel: "3", Else: "3"},
		{Pattern: "f", AtStart: "1", BeforeVowel: "1", Else: "1"},
		{Pattern: "g", AtStart: "5", BeforeVowel: "5", Else: "5"},
		{Pattern: "h", AtStart: "5", BeforeVowel: "5", Else: NoCode},
		{Pattern: "j", AtStart: "4", BeforeVowel: "4", Else: "4",
			AltAtStart: "1", AltBeforeVowel: "1", AltElse: "1"},
		{Pattern: "k", AtStart: "5", BeforeVowel: "5", Else: "5"},
		{Pattern: "l", AtStart: "8", BeforeVowel: "8", Else: "8"},
		{Pattern: "m", AtStart: "6", BeforeVowel: "6", Else: "6"},
		{Pattern: "n", AtStart: "6", BeforeVowel: "6", Else: "6"},
		{Pattern: "p", AtStart: "1", BeforeVowel: "1", Else: "1"},
		{Pattern: "q", AtStart: "5", BeforeVowel: "5", Else: "5"},
		{Pattern: "r", AtStart: "9", BeforeVowel: "9", Else: "9"},
		{Pattern: "s", AtStart: "4", BeforeVowel: "4", Else: "4"},
		{Pattern: "t", AtStart: "3", BeforeVowel: "3", Else: "3"},
		{Pattern: "v", AtStart: "1", BeforeVowel: "1", Else: "1"},
		{Pattern: "w", AtStart: "7", BeforeVowel: "7", Else: "7"},
		{Pattern: "x", AtStart: "54", BeforeVowel: "54", Else: "54"},
		{Pattern: "z", AtStart: "4", BeforeVowel: "4", Else: "4"},
	}}
}
