// Package jaro implements the Jaro and Jaro-Winkler string similarity metrics
// over Unicode code points.
package jaro

import (
	"github.com/baditaflorin/go_header_similarity/internal/pool"
)

// Winkler defaults.
const (
	DefaultPrefixScale = 0.1
	DefaultMaxPrefix   = 4
)

var (
	runePool = pool.NewRuneBufferPool(64)
	flagPool = pool.NewSlicePool[bool](128)
)

// Similarity computes the Jaro similarity of a and b.
//
// Two empty strings score 1. Otherwise characters match when equal and no
// further apart than max(0, max(len(a), len(b))/2 - 1); with m matches and t
// half-transpositions the score is (m/len(a) + m/len(b) + (m-t)/m) / 3.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ra := runePool.GetRunes(a)
	defer runePool.Put(ra)
	rb := runePool.GetRunes(b)
	defer runePool.Put(rb)

	return similarity(*ra, *rb)
}

func similarity(a, b []rune) float64 {
	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 1.0
	}
	if la == 0 || lb == 0 {
		return 0.0
	}

	window := max(la, lb)/2 - 1
	if window < 0 {
		window = 0
	}

	flags := flagPool.GetZeroed(la + lb)
	defer flagPool.Put(flags)
	matchedA := (*flags)[:la]
	matchedB := (*flags)[la:]

	matches := 0
	for i, c := range a {
		lo := max(0, i-window)
		hi := min(lb-1, i+window)
		for j := lo; j <= hi; j++ {
			if !matchedB[j] && b[j] == c {
				matchedA[i] = true
				matchedB[j] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Count matched characters that appear in a different order.
	outOfOrder := 0
	k := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if a[i] != b[k] {
			outOfOrder++
		}
		k++
	}

	m := float64(matches)
	t := float64(outOfOrder) / 2
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// WinklerSimilarity computes the Jaro-Winkler similarity of a and b, boosting
// the Jaro score by the length of the common prefix.
func WinklerSimilarity(a, b string, prefixScale float64, maxPrefix int) float64 {
	sim := Similarity(a, b)

	prefix := 0
	rb := []rune(b)
	for i, r := range []rune(a) {
		if prefix >= maxPrefix || i >= len(rb) || rb[i] != r {
			break
		}
		prefix++
	}

	sim += float64(prefix) * prefixScale * (1 - sim)
	if sim > 1 {
		return 1
	}
	return sim
}

// Metric scores strings with plain Jaro similarity.
type Metric struct{}

// Similarity implements ports.Metric.
func (Metric) Similarity(a, b string) float64 {
	return Similarity(a, b)
}

// WinklerMetric scores strings with Jaro-Winkler similarity. The zero value
// uses DefaultPrefixScale and DefaultMaxPrefix.
type WinklerMetric struct {
	PrefixScale float64
	MaxPrefix   int
}

// Similarity implements ports.Metric.
func (w WinklerMetric) Similarity(a, b string) float64 {
	scale, prefix := w.PrefixScale, w.MaxPrefix
	if scale == 0 {
		scale = DefaultPrefixScale
	}
	if prefix == 0 {
		prefix = DefaultMaxPrefix
	}
	return WinklerSimilarity(a, b, scale, prefix)
}
