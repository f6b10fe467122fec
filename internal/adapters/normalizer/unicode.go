package normalizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// preFold applies the optional Unicode stages ahead of the pipeline proper.
func preFold(config domain.NormalizationConfig, text string) string {
	if config.WidthFolded {
		text = FoldWidth(text)
	}
	if config.AccentsStripped {
		text = StripAccents(text)
	}
	return text
}

// FoldWidth applies NFKC, mapping full-width and compatibility forms such as
// "ＳＳＮ１２" onto "SSN12".
func FoldWidth(text string) string {
	if isASCII(text) {
		return text
	}
	return norm.NFKC.String(text)
}

// StripAccents removes combining marks, so "Prémium" becomes "Premium".
func StripAccents(text string) string {
	if isASCII(text) {
		return text
	}
	// Chains carry internal buffers and are not safe to share.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}

func isASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
