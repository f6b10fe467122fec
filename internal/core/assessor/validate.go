package assessor

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
)

// ErrInvalidEntry is returned for dictionary entries that are not in the
// canonical form implied by their configuration.
var ErrInvalidEntry = errors.New("dictionary entry is not canonical")

var dictionaryChecks atomic.Bool

func init() {
	dictionaryChecks.Store(checksDefault)
}

// DictionaryChecks reports whether scoring validates dictionary entries.
func DictionaryChecks() bool {
	return dictionaryChecks.Load()
}

// SetDictionaryChecks switches entry validation during scoring on or off and
// returns the previous setting. Checks are on by default only in builds with
// the debug tag.
func SetDictionaryChecks(on bool) bool {
	return dictionaryChecks.Swap(on)
}

// CheckEntry reports whether entry is already canonical under config.
func CheckEntry(config domain.NormalizationConfig, entry string) error {
	if config.AlphaReduced {
		if i := normalizer.FirstRun(entry, normalizer.IsAlphabetic); i >= 0 {
			return fmt.Errorf("%w: %q has an unreduced letter run at byte %d", ErrInvalidEntry, entry, i)
		}
		if i := strings.IndexFunc(entry, func(r rune) bool { return normalizer.IsAlphabetic(r) && r != 'a' }); i >= 0 {
			return fmt.Errorf("%w: %q has a letter other than 'a' at byte %d", ErrInvalidEntry, entry, i)
		}
	} else if !config.CaseSensitive {
		if i := strings.IndexFunc(entry, unicode.IsUpper); i >= 0 {
			return fmt.Errorf("%w: %q has an uppercase letter at byte %d", ErrInvalidEntry, entry, i)
		}
	}

	if config.NumberReduced {
		if i := normalizer.FirstRun(entry, normalizer.IsDecimalDigit); i >= 0 {
			return fmt.Errorf("%w: %q has an unreduced digit run at byte %d", ErrInvalidEntry, entry, i)
		}
	}
	if config.NumberReduced || !config.DigitSensitive {
		if i := strings.IndexFunc(entry, func(r rune) bool { return r >= '1' && r <= '9' }); i >= 0 {
			return fmt.Errorf("%w: %q has a digit other than '0' at byte %d", ErrInvalidEntry, entry, i)
		}
	}

	if canonical := normalizer.Normalize(config, entry); canonical != entry {
		return fmt.Errorf("%w: %q normalizes to %q", ErrInvalidEntry, entry, canonical)
	}
	return nil
}

// Validate checks every entry of dict and returns the first violation.
func Validate(config domain.NormalizationConfig, dict []string) error {
	for i, entry := range dict {
		if err := CheckEntry(config, entry); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// MustValidate panics if any entry of dict is not canonical under config.
func MustValidate(config domain.NormalizationConfig, dict []string) {
	for _, entry := range dict {
		assertEntry(config, entry)
	}
}

func assertEntry(config domain.NormalizationConfig, entry string) {
	if err := CheckEntry(config, entry); err != nil {
		panic(fmt.Sprintf("malformed dictionary entry %q: %v", entry, err))
	}
}
