package assessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
)

func TestCheckEntry(t *testing.T) {
	def := domain.DefaultNormalizationConfig()
	exact := domain.NormalizationConfig{CaseSensitive: true, DigitSensitive: true}

	tests := []struct {
		name   string
		config domain.NormalizationConfig
		entry  string
		valid  bool
	}{
		{"default lowercase", def, "member id", true},
		{"default uppercase", def, "Member ID", false},
		{"default digit run", def, "plan 00", false},
		{"default nonzero digit", def, "plan 1", false},
		{"default reduced digits", def, "$0.0", true},
		{"alpha reduced", alphaReduced(), "a, a a", true},
		{"alpha run", alphaReduced(), "ab", false},
		{"alpha letter other than a", alphaReduced(), "b0", false},
		{"alpha uppercase a", alphaReduced(), "A", false},
		{"digit substituted keeps zero runs", digitSubstituted(), "000-00-0000", true},
		{"digit substituted nonzero", digitSubstituted(), "123", false},
		{"exact allows anything", exact, "Plan 42", true},
		{"empty", def, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEntry(tt.config, tt.entry)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEntry)
				assert.Contains(t, err.Error(), tt.entry)
			}
		})
	}
}

func TestCheckEntryWidthFolded(t *testing.T) {
	cfg := domain.DefaultNormalizationConfig()
	cfg.WidthFolded = true
	cfg.AccentsStripped = true

	assert.NoError(t, CheckEntry(cfg, "premium"))
	assert.ErrorIs(t, CheckEntry(cfg, "prémium"), ErrInvalidEntry)
}

func TestValidate(t *testing.T) {
	def := domain.DefaultNormalizationConfig()
	require.NoError(t, Validate(def, []string{"ssn", "social security number"}))

	err := Validate(def, []string{"ssn", "Social Security Number"})
	require.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestMalformedEntryPanicsDuringScoring(t *testing.T) {
	require.True(t, DictionaryChecks())

	a := Default()
	assert.PanicsWithValue(t,
		`malformed dictionary entry "Member ID": dictionary entry is not canonical: "Member ID" has an uppercase letter at byte 0`,
		func() { a.WithDict("member id", []string{"Member ID"}) },
	)
	assert.Panics(t, func() { New(alphaReduced(), nil).WithDict("x", []string{"aa"}) })
	assert.Panics(t, func() { MustValidate(digitSubstituted(), []string{"000", "12"}) })
	assert.NotPanics(t, func() { MustValidate(digitSubstituted(), []string{"000", "00-0"}) })
}

func TestChecksDisabledTrustsEntries(t *testing.T) {
	prev := SetDictionaryChecks(false)
	defer SetDictionaryChecks(prev)

	a := Default()
	assert.NotPanics(t, func() {
		score := a.WithDict("member id", []string{"Member ID"})
		assert.Less(t, score, 1.0)
	})
}
