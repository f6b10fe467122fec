package metric

import (
	"github.com/baditaflorin/go_header_similarity/internal/core/jaro"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// Type names an available string metric.
type Type int

const (
	// JaroType is plain Jaro similarity.
	JaroType Type = iota
	// JaroWinklerType boosts Jaro by common prefix length.
	JaroWinklerType
	// LevenshteinType is edit distance normalized by the longer length.
	LevenshteinType
	// RatioType is the Levenshtein ratio with substitution cost 2.
	RatioType
)

var typeNames = map[Type]string{
	JaroType:        "jaro",
	JaroWinklerType: "jaro_winkler",
	LevenshteinType: "levenshtein",
	RatioType:       "ratio",
}

// String returns the metric name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "jaro"
}

// ParseType maps a metric name to its Type. The empty name selects Jaro.
func ParseType(name string) (Type, bool) {
	if name == "" {
		return JaroType, true
	}
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return JaroType, false
}

// New creates the metric of the specified type.
func New(t Type) ports.Metric {
	switch t {
	case JaroWinklerType:
		return jaro.WinklerMetric{}
	case LevenshteinType:
		return Levenshtein{}
	case RatioType:
		return Ratio{}
	default:
		return jaro.Metric{}
	}
}
