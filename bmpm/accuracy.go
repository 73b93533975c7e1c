// Package bmpm wires name normalization, language detection, and the
// phonetic rewrite engine into encode/detect operations over personal
// names: encode, encodeToArray, detect, and dmSoundex.
package bmpm

// Accuracy selects how many alternatives a rewrite keeps: Approximate
// favors recall (more branches), Exact favors precision (fewer).
type Accuracy int

const (
	Approximate Accuracy = iota
	Exact
)

func (a Accuracy) String() string {
	if a == Exact {
		return "exact"
	}
	return "approx"
}
