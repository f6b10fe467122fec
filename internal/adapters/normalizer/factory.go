package normalizer

import (
	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// Type names a preset normalization configuration.
type Type int

const (
	// DefaultType lowercases and collapses digit runs.
	DefaultType Type = iota
	// ExactType keeps case and digits untouched.
	ExactType
	// DigitSubstitutedType lowercases and maps every digit to '0' without collapsing.
	DigitSubstitutedType
	// AlphaReducedType collapses letter runs to 'a' and digit runs to '0'.
	AlphaReducedType
	// WidthFoldedType is DefaultType with NFKC and accent stripping in front.
	WidthFoldedType
)

// String returns the preset name.
func (t Type) String() string {
	switch t {
	case ExactType:
		return "exact"
	case DigitSubstitutedType:
		return "digit_substituted"
	case AlphaReducedType:
		return "alpha_reduced"
	case WidthFoldedType:
		return "width_folded"
	default:
		return "default"
	}
}

// ParseType maps a preset name back to its Type. Unknown names report false.
func ParseType(name string) (Type, bool) {
	for _, t := range []Type{DefaultType, ExactType, DigitSubstitutedType, AlphaReducedType, WidthFoldedType} {
		if t.String() == name {
			return t, true
		}
	}
	return DefaultType, false
}

// ConfigFor returns the configuration behind a preset.
func ConfigFor(t Type) domain.NormalizationConfig {
	cfg := domain.DefaultNormalizationConfig()
	switch t {
	case ExactType:
		cfg = domain.NormalizationConfig{CaseSensitive: true, DigitSensitive: true}
	case DigitSubstitutedType:
		cfg.NumberReduced = false
	case AlphaReducedType:
		cfg.AlphaReduced = true
	case WidthFoldedType:
		cfg.WidthFolded = true
		cfg.AccentsStripped = true
	}
	return cfg
}

// Factory creates normalizers from presets.
type Factory struct{}

// NewFactory creates a new normalizer factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create creates a normalizer of the specified preset.
func (f *Factory) Create(t Type) ports.Normalizer {
	return NewPipeline(ConfigFor(t))
}
