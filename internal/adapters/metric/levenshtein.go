package metric

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// unitCost charges 1 for every insertion, deletion and substitution.
var unitCost = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// Levenshtein scores strings as 1 - distance/max(len(a), len(b)), counting
// insertions, deletions and substitutions at cost 1.
type Levenshtein struct{}

// NewLevenshtein creates a Levenshtein metric.
func NewLevenshtein() ports.Metric {
	return Levenshtein{}
}

// Similarity implements ports.Metric.
func (Levenshtein) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))

	distance := levenshtein.DistanceForStrings(ra, rb, unitCost)
	return 1.0 - float64(distance)/float64(maxLen)
}

// Ratio scores strings with the library's ratio: (len(a)+len(b)-distance) /
// (len(a)+len(b)), where a substitution costs 2.
type Ratio struct{}

// Similarity implements ports.Metric.
func (Ratio) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return levenshtein.RatioForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}
