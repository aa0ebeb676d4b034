package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/partscout/backend/internal/domain"
)

var (
	reviewPairRules = []rule[[2]string]{
		pairRule(regexp.MustCompile(`(?s)"ratingValue"\s*:\s*"?([\d.]+)"?\s*,\s*"reviewCount"\s*:\s*"?([\d,]+)`)),
		pairRule(regexp.MustCompile(`\bdata-rating=["']([\d.]+)["'][^>]*\bdata-review-count=["']([\d,]+)["']`)),
	}
	// reversed capture order: count first, then rating
	reviewPairReversedRules = []rule[[2]string]{
		pairRule(regexp.MustCompile(`(?s)"reviewCount"\s*:\s*"?([\d,]+)"?\s*,\s*"ratingValue"\s*:\s*"?([\d.]+)`)),
	}
	ratingRules = []rule[string]{
		regexRule(regexp.MustCompile(`(?i)itemprop=["']ratingValue["'][^>]*\bcontent=["']([\d.]+)["']`)),
		regexRule(regexp.MustCompile(`"ratingValue"\s*:\s*"?([\d.]+)`)),
		regexRule(regexp.MustCompile(`\bdata-rating=["']([\d.]+)["']`)),
	}
	reviewCountRules = []rule[string]{
		regexRule(regexp.MustCompile(`(?i)itemprop=["']reviewCount["'][^>]*\bcontent=["']([\d,]+)["']`)),
		regexRule(regexp.MustCompile(`"reviewCount"\s*:\s*"?([\d,]+)`)),
		regexRule(regexp.MustCompile(`(?i)\b(\d[\d,]*)\s+(?:customer\s+)?reviews?\b`)),
	}
)

func extractReviews(d *document) domain.Reviews {
	if pair, ok := firstMatch(d, reviewPairRules); ok {
		return makeReviews(pair[0], pair[1])
	}
	if pair, ok := firstMatch(d, reviewPairReversedRules); ok {
		return makeReviews(pair[1], pair[0])
	}

	rating, _ := firstMatch(d, ratingRules)
	count, _ := firstMatch(d, reviewCountRules)
	return makeReviews(rating, count)
}

func makeReviews(rating, count string) domain.Reviews {
	var r domain.Reviews
	if v, err := strconv.ParseFloat(rating, 64); err == nil {
		r.Rating = min(max(v, 0), 5)
	}
	if v, err := strconv.Atoi(strings.ReplaceAll(count, ",", "")); err == nil && v > 0 {
		r.Count = v
	}
	return r
}
