package normalizer

import (
	"strings"
	"unicode"
)

// IsAlphabetic reports whether r has the Unicode Alphabetic property: any
// letter, a letter number such as 'Ⅻ', or a dependent vowel sign.
func IsAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// IsDecimalDigit reports whether r is one of the ASCII digits 0-9.
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Reduce replaces every maximal run of runes satisfying pred with a single
// with rune. Runes not satisfying pred are copied through in order.
//
// Examples (pred = IsDecimalDigit, with = '0'):
//   - "A1b22" -> "A0b0"
//   - "2024-01-31" -> "0-0-0"
func Reduce(text string, pred func(rune) bool, with rune) string {
	if isReduced(text, pred, with) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	lastWas := false
	for _, r := range text {
		if pred(r) {
			if !lastWas {
				sb.WriteRune(with)
				lastWas = true
			}
			continue
		}
		sb.WriteRune(r)
		lastWas = false
	}

	return sb.String()
}

// isReduced reports whether Reduce would return text unchanged.
func isReduced(text string, pred func(rune) bool, with rune) bool {
	lastWas := false
	for _, r := range text {
		if !pred(r) {
			lastWas = false
			continue
		}
		if lastWas || r != with {
			return false
		}
		lastWas = true
	}
	return true
}

// FirstRun returns the byte offset of the first pair of adjacent runes that
// both satisfy pred, or -1 when there is none.
func FirstRun(text string, pred func(rune) bool) int {
	lastWas := false
	prev := 0
	for i, r := range text {
		if pred(r) {
			if lastWas {
				return prev
			}
			lastWas = true
		} else {
			lastWas = false
		}
		prev = i
	}
	return -1
}
