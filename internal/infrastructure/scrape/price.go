package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	moneyPattern = `\$?\s*([\d,]+(?:\.\d{1,2})?)`

	// stated savings must carry a dollar sign so "Save 20%" is not read as $20
	dollarPattern = `\$\s*([\d,]+(?:\.\d{1,2})?)`
)

var (
	// original price followed by an explicit savings amount
	salePairRules = []rule[[2]string]{
		pairRule(regexp.MustCompile(`(?is)Original\s+price:?\s*(?:<[^>]+>\s*)*` + moneyPattern + `.{0,400}?\b(?:Save|Savings|You save):?\s*(?:<[^>]+>\s*)*` + dollarPattern)),
	}
	originalPriceRules = []rule[string]{
		regexRule(regexp.MustCompile(`(?i)Original\s+price:?\s*(?:<[^>]+>\s*)*` + moneyPattern)),
		regexRule(regexp.MustCompile(`\bdata-original-price=["']` + moneyPattern + `["']`)),
	}
	currentPriceRules = []rule[string]{
		regexRule(regexp.MustCompile(`(?i)itemprop=["']price["'][^>]*\bcontent=["']` + moneyPattern + `["']`)),
		regexRule(regexp.MustCompile(`(?i)<span[^>]*\bid=["']pricing["'][^>]*>\s*(?:<[^>]+>\s*)*` + moneyPattern)),
		regexRule(regexp.MustCompile(`["']productPrice["']\s*:\s*["']?` + moneyPattern)),
	}
)

// priceInfo carries display strings alongside cent amounts
type priceInfo struct {
	current, original, savings int64
}

func extractPrice(d *document) priceInfo {
	var p priceInfo

	if pair, ok := firstMatch(d, salePairRules); ok {
		p.original, _ = parseCents(pair[0])
		p.savings, _ = parseCents(pair[1])
	} else if v, ok := firstMatch(d, originalPriceRules); ok {
		p.original, _ = parseCents(v)
	}

	if v, ok := firstMatch(d, currentPriceRules); ok {
		p.current, _ = parseCents(v)
	}

	// Savings are derived only when both prices are known and the page did not state them
	if p.savings == 0 && p.original > 0 && p.current > 0 && p.original > p.current {
		p.savings = p.original - p.current
	}
	return p
}

// parseCents parses "1,299.99" into 129999
func parseCents(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", "")
	if s == "" {
		return 0, false
	}
	whole, frac, _ := strings.Cut(s, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	var f int64
	switch len(frac) {
	case 0:
	case 1:
		f, err = strconv.ParseInt(frac, 10, 64)
		f *= 10
	default:
		f, err = strconv.ParseInt(frac[:2], 10, 64)
	}
	if err != nil {
		return 0, false
	}
	return w*100 + f, true
}

// formatMoney renders cents as "$1,299.99"
func formatMoney(cents int64) string {
	if cents <= 0 {
		return ""
	}
	whole := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return fmt.Sprintf("$%s.%02d", b.String(), cents%100)
}

func centsToFloat(cents int64) float64 {
	return float64(cents) / 100
}
