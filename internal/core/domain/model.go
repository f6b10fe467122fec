package domain

// Assessment ties a similarity score to the position of the assessed element,
// so results can be mapped back to the source table after reordering.
type Assessment struct {
	Similarity float64
	Position   int
}

// NormalizationConfig selects the canonicalization applied before comparison.
//
// NumberReduced overrides DigitSensitive and AlphaReduced overrides
// CaseSensitive when both are set.
type NormalizationConfig struct {
	// CaseSensitive keeps case as is. Otherwise the text is lowercased and
	// dictionaries are expected to be lowercase.
	CaseSensitive bool
	// DigitSensitive keeps digits as is. Otherwise every digit becomes '0'.
	DigitSensitive bool
	// NumberReduced replaces every run of digits with a single '0'.
	NumberReduced bool
	// AlphaReduced replaces every run of letters with a single 'a'.
	AlphaReduced bool

	// WidthFolded applies NFKC before any other stage, so full-width digits
	// and letters compare equal to their ASCII forms.
	WidthFolded bool
	// AccentsStripped removes combining marks before any other stage.
	AccentsStripped bool
}

// DefaultNormalizationConfig returns the case-insensitive, number-reduced configuration.
func DefaultNormalizationConfig() NormalizationConfig {
	return NormalizationConfig{
		CaseSensitive:  false,
		DigitSensitive: false,
		NumberReduced:  true,
		AlphaReduced:   false,
	}
}
