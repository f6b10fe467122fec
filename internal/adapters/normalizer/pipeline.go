package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// Pipeline canonicalizes text according to a NormalizationConfig.
//
// Stages run in a fixed order: Unicode pre-folding, the alphabetic stage,
// then the numeric stage. A stage that would not change its input returns
// it without copying.
type Pipeline struct {
	config domain.NormalizationConfig
}

// NewPipeline creates a pipeline for config.
func NewPipeline(config domain.NormalizationConfig) *Pipeline {
	return &Pipeline{config: config}
}

// NewDefaultPipeline creates a pipeline for the default configuration.
func NewDefaultPipeline() ports.Normalizer {
	return NewPipeline(domain.DefaultNormalizationConfig())
}

// Normalize returns the canonical form of text.
func (p *Pipeline) Normalize(text string) string {
	return Normalize(p.config, text)
}

// Normalize returns the canonical form of text under config.
func Normalize(config domain.NormalizationConfig, text string) string {
	text = preFold(config, text)
	text = alphaStage(config, text)
	return numericStage(config, text)
}

func alphaStage(config domain.NormalizationConfig, text string) string {
	switch {
	case config.AlphaReduced:
		return Reduce(text, IsAlphabetic, 'a')
	case !config.CaseSensitive:
		return Lower(text)
	default:
		return text
	}
}

func numericStage(config domain.NormalizationConfig, text string) string {
	switch {
	case config.NumberReduced:
		return Reduce(text, IsDecimalDigit, '0')
	case !config.DigitSensitive:
		return SubstituteDigits(text)
	default:
		return text
	}
}

// Lower lowercases text with full Unicode case mapping, including the
// word-final form of Greek sigma.
func Lower(text string) string {
	if isASCII(text) {
		return strings.ToLower(text)
	}
	// Casers keep state between calls and are not safe to share.
	return cases.Lower(language.Und).String(text)
}

// SubstituteDigits replaces each ASCII digit with '0', one for one.
func SubstituteDigits(text string) string {
	if strings.IndexFunc(text, isNonZeroDigit) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if IsDecimalDigit(r) {
			return '0'
		}
		return r
	}, text)
}

func isNonZeroDigit(r rune) bool {
	return r >= '1' && r <= '9'
}
