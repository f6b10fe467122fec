// header_similarity.go
// Package headersimilarity scores how well table header labels and cell values
// match semantic column kinds, using fuzzy comparison against dictionaries of
// canonical variants.
//
// Text is first canonicalized (case folding, digit and letter run reduction)
// and then compared with Jaro similarity against every dictionary entry; the
// best score wins. Scores lie in [0, 1], where 1 is an exact canonical match.
//
// The aggregation helpers apply a set of ColumnKind implementations across a
// header row and return a matrix indexed [header position][kind position],
// ready for thresholding or an assignment algorithm.
package headersimilarity

import (
	"context"
	"iter"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/metric"
	"github.com/baditaflorin/go_header_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_header_similarity/internal/core/assessment"
	"github.com/baditaflorin/go_header_similarity/internal/core/assessor"
	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
	"github.com/baditaflorin/go_header_similarity/internal/core/jaro"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

type (
	// ColumnKind is a semantic column category able to score headers and values.
	ColumnKind = ports.ColumnKind
	// Assessment is one similarity score tied to a source position.
	Assessment = domain.Assessment
	// Matrix holds assessments indexed [position][kind].
	Matrix = assessment.Matrix
	// NormalizationConfig selects the canonicalization applied before comparison.
	NormalizationConfig = domain.NormalizationConfig
	// SimpleAssessor scores a value against a dictionary of canonical variants.
	SimpleAssessor = assessor.SimpleAssessor
	// Metric compares two canonical strings.
	Metric = ports.Metric
	// MetricFunc adapts a function to Metric.
	MetricFunc = ports.MetricFunc
)

// ErrInvalidEntry is returned for dictionary entries that are not canonical.
var ErrInvalidEntry = assessor.ErrInvalidEntry

// DefaultNormalizationConfig returns the case-insensitive, number-reduced configuration.
func DefaultNormalizationConfig() NormalizationConfig {
	return domain.DefaultNormalizationConfig()
}

// Option defines a functional option for configuring a SimpleAssessor.
type Option func(*SimpleAssessor)

// WithCaseSensitive keeps case instead of lowercasing.
func WithCaseSensitive(on bool) Option {
	return func(a *SimpleAssessor) {
		a.Config.CaseSensitive = on
	}
}

// WithDigitSensitive keeps digits instead of mapping them to '0'.
func WithDigitSensitive(on bool) Option {
	return func(a *SimpleAssessor) {
		a.Config.DigitSensitive = on
	}
}

// WithNumberReduced collapses digit runs into a single '0'.
func WithNumberReduced(on bool) Option {
	return func(a *SimpleAssessor) {
		a.Config.NumberReduced = on
	}
}

// WithAlphaReduced collapses letter runs into a single 'a'.
func WithAlphaReduced(on bool) Option {
	return func(a *SimpleAssessor) {
		a.Config.AlphaReduced = on
	}
}

// WithUnicodeFolding applies NFKC and strips combining marks before the other stages.
func WithUnicodeFolding(on bool) Option {
	return func(a *SimpleAssessor) {
		a.Config.WidthFolded = on
		a.Config.AccentsStripped = on
	}
}

// WithMetric sets the string metric. The default is Jaro.
func WithMetric(m Metric) Option {
	return func(a *SimpleAssessor) {
		a.Metric = m
	}
}

// NewAssessor creates a SimpleAssessor starting from the default configuration.
func NewAssessor(opts ...Option) SimpleAssessor {
	a := assessor.Default()
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Normalize returns the canonical form of text under config.
func Normalize(config NormalizationConfig, text string) string {
	return normalizer.Normalize(config, text)
}

// Reduce replaces every maximal run of runes satisfying pred with a single with rune.
func Reduce(text string, pred func(rune) bool, with rune) string {
	return normalizer.Reduce(text, pred, with)
}

// IsAlphabetic reports whether r is a letter.
func IsAlphabetic(r rune) bool {
	return normalizer.IsAlphabetic(r)
}

// IsDecimalDigit reports whether r is an ASCII digit.
func IsDecimalDigit(r rune) bool {
	return normalizer.IsDecimalDigit(r)
}

// Jaro returns the Jaro similarity of a and b.
func Jaro(a, b string) float64 {
	return jaro.Similarity(a, b)
}

// JaroWinklerMetric returns a Jaro-Winkler metric with the usual constants.
func JaroWinklerMetric() Metric {
	return jaro.WinklerMetric{}
}

// LevenshteinMetric returns a metric based on normalized edit distance.
func LevenshteinMetric() Metric {
	return metric.NewLevenshtein()
}

// CheckEntry reports whether entry is canonical under config.
func CheckEntry(config NormalizationConfig, entry string) error {
	return assessor.CheckEntry(config, entry)
}

// ValidateDictionary checks every entry of dict against config.
func ValidateDictionary(config NormalizationConfig, dict []string) error {
	return assessor.Validate(config, dict)
}

// MustValidateDictionary panics if an entry of dict is not canonical under config.
func MustValidateDictionary(config NormalizationConfig, dict []string) {
	assessor.MustValidate(config, dict)
}

// SetDictionaryChecks turns scoring-time dictionary assertions on or off and
// returns the previous setting.
func SetDictionaryChecks(on bool) bool {
	return assessor.SetDictionaryChecks(on)
}

// ForHeaders assesses every header against every kind.
func ForHeaders[K ColumnKind](kinds []K, headers []string) Matrix {
	return assessment.ForHeaders(kinds, headers)
}

// ForHeaderSeq is ForHeaders over a sequence of headers.
func ForHeaderSeq[K ColumnKind](kinds []K, headers iter.Seq[string]) Matrix {
	return assessment.ForHeaderSeq(kinds, headers)
}

// ForValues assesses every value against every kind.
func ForValues[K ColumnKind](kinds []K, values []string) Matrix {
	return assessment.ForValues(kinds, values)
}

// HeaderRows lazily yields one matrix per candidate header row.
func HeaderRows[K ColumnKind](kinds []K, rows iter.Seq[[]string]) iter.Seq2[int, Matrix] {
	return assessment.HeaderRows(kinds, rows)
}

// Rows adapts an in-memory table to the sequence HeaderRows expects.
func Rows(rows [][]string) iter.Seq[[]string] {
	return assessment.Rows(rows)
}

// ForHeadersParallel is ForHeaders spread across up to workers goroutines.
func ForHeadersParallel[K ColumnKind](ctx context.Context, kinds []K, headers []string, workers int) (Matrix, error) {
	return assessment.ForHeadersParallel(ctx, kinds, headers, workers)
}
