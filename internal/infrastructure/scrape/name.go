package scrape

import (
	"regexp"
	"strings"
)

var nameRules = []rule[string]{
	jsStringRule("productName"),
	regexRule(regexp.MustCompile(`(?i)<h1[^>]*>\s*<span[^>]*\bdata-name=["']([^"']+)["']`)),
	selectorTextRule("h1"),
}

var brandRules = []rule[string]{
	jsStringRule("brand"),
	regexRule(regexp.MustCompile(`\bdata-brand=["']([^"']+)["']`)),
	regexRule(regexp.MustCompile(`(?i)itemprop=["']brand["'][^>]*\bcontent=["']([^"']+)["']`)),
}

// displayName prefixes the brand unless the name already mentions it
func displayName(name, brand string) string {
	if brand == "" {
		return name
	}
	if name == "" {
		return brand
	}
	if strings.Contains(strings.ToLower(name), strings.ToLower(brand)) {
		return name
	}
	return brand + " " + name
}

func extractName(d *document) (name, brand string) {
	name, _ = firstMatch(d, nameRules)
	brand, _ = firstMatch(d, brandRules)
	return displayName(name, brand), brand
}
