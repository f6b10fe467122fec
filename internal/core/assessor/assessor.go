// Package assessor scores a candidate string against a dictionary of
// canonical variants.
package assessor

import (
	"iter"
	"slices"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
	"github.com/baditaflorin/go_header_similarity/internal/core/jaro"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// SimpleAssessor normalizes a candidate and returns its best similarity
// against a dictionary. The zero value uses Jaro with every flag off; use
// Default for the recommended configuration.
type SimpleAssessor struct {
	Config domain.NormalizationConfig
	// Metric compares canonical strings. Nil means Jaro.
	Metric ports.Metric
}

// Default returns an assessor with the default normalization and Jaro.
func Default() SimpleAssessor {
	return SimpleAssessor{Config: domain.DefaultNormalizationConfig()}
}

// New returns an assessor for config using metric. A nil metric means Jaro.
func New(config domain.NormalizationConfig, metric ports.Metric) SimpleAssessor {
	return SimpleAssessor{Config: config, Metric: metric}
}

// Normalize returns the canonical form of value under the assessor's config.
func (a SimpleAssessor) Normalize(value string) string {
	return normalizer.Normalize(a.Config, value)
}

// WithDict returns the highest similarity between the canonical form of
// value and any dictionary entry, or 0 for an empty dictionary.
//
// Entries are trusted to be canonical already. When dictionary checks are
// enabled a malformed entry panics.
func (a SimpleAssessor) WithDict(value string, dict []string) float64 {
	return a.WithSeq(value, slices.Values(dict))
}

// WithSeq is WithDict over an arbitrary sequence of entries.
func (a SimpleAssessor) WithSeq(value string, dict iter.Seq[string]) float64 {
	canonical := a.Normalize(value)
	metric := a.metric()
	checks := DictionaryChecks()

	best := 0.0
	for variant := range dict {
		if checks {
			assertEntry(a.Config, variant)
		}
		if sim := metric.Similarity(canonical, variant); sim > best {
			best = sim
		}
	}
	return best
}

// Best returns the highest scoring entry together with its score. The index
// is -1 when the dictionary is empty or nothing scores above 0.
func (a SimpleAssessor) Best(value string, dict []string) (int, float64) {
	canonical := a.Normalize(value)
	metric := a.metric()
	checks := DictionaryChecks()

	bestIdx, best := -1, 0.0
	for i, variant := range dict {
		if checks {
			assertEntry(a.Config, variant)
		}
		if sim := metric.Similarity(canonical, variant); sim > best {
			bestIdx, best = i, sim
		}
	}
	return bestIdx, best
}

func (a SimpleAssessor) metric() ports.Metric {
	if a.Metric == nil {
		return jaro.Metric{}
	}
	return a.Metric
}
