package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/infrastructure/microcenter"
)

// RetailerDomain marks pasted product links
const RetailerDomain = microcenter.RetailerDomain

var (
	skuRegex       = regexp.MustCompile(`^\d{6}$`)
	skuPrefixRegex = regexp.MustCompile(`^(\d{6})`)
)

// Classify maps raw scanned or typed text to an Identifier. Rules are applied
// in order and the first match wins; URL detection runs before the length
// rules because links are usually longer than ten characters.
func Classify(raw string) domain.Identifier {
	text := strings.TrimSpace(stripControl(raw))
	length := utf8.RuneCountInString(text)

	switch {
	case strings.Contains(strings.ToLower(text), RetailerDomain):
		return domain.Identifier{Kind: domain.KindProductURL, Value: text}
	case skuRegex.MatchString(text):
		return domain.Identifier{Kind: domain.KindSKU, Value: text}
	case length >= 7 && length <= 10 && skuPrefixRegex.MatchString(text):
		return domain.Identifier{
			Kind:         domain.KindInternalCode,
			Value:        text,
			ExtractedSKU: skuPrefixRegex.FindString(text),
		}
	case length > 10:
		return domain.Identifier{Kind: domain.KindUPC, Value: text}
	default:
		return domain.Identifier{Kind: domain.KindFreeText, Value: text}
	}
}

// stripControl drops non-printable code points such as the terminators some
// barcode scanners append
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}
