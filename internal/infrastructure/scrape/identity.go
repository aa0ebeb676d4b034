package scrape

import "regexp"

// canonicalIDRules locate the retailer-internal product id on a search or product page.
// When several rules would match different ids the first rule wins; no reconciliation
// is attempted.
var canonicalIDRules = []rule[string]{
	regexRule(regexp.MustCompile(`["']productId["']\s*:\s*["']?(\d+)`)),
	regexRule(regexp.MustCompile(`\bdata-id=["'](\d+)["']`)),
	regexRule(regexp.MustCompile(`(?i)<input[^>]*\bname=["']productId["'][^>]*\bvalue=["'](\d+)["']`)),
	regexRule(regexp.MustCompile(`(?i)<input[^>]*\bvalue=["'](\d+)["'][^>]*\bname=["']productId["']`)),
}

var skuRules = []rule[string]{
	regexRule(regexp.MustCompile(`["']sku["']\s*:\s*["']?(\d{6})\b`)),
	regexRule(regexp.MustCompile(`\bdata-sku=["'](\d{6})["']`)),
	regexRule(regexp.MustCompile(`(?i)\bSKU\s*#?:?\s*(?:<[^>]+>\s*)*(\d{6})\b`)),
}

var (
	mfrPartRules = []rule[string]{
		jsStringRule("mfrPartNumber"),
		regexRule(regexp.MustCompile(`(?i)Mfr\.?\s*Part\s*#?:?\s*(?:<[^>]+>\s*)*([^<\r\n]+)`)),
	}
	upcRules = []rule[string]{
		regexRule(regexp.MustCompile(`(?i)\bUPC\s*:?\s*(?:<[^>]+>\s*)*(\d{8,14})\b`)),
	}
	productURLIDRegex = regexp.MustCompile(`/product/(\d+)`)
)

// CanonicalProductID returns the canonical product id found on a page
func CanonicalProductID(markup string) (string, bool) {
	return firstMatch(newDocument(markup), canonicalIDRules)
}

// ProductIDFromURL returns the id segment of a /product/{id}/ URL
func ProductIDFromURL(rawURL string) (string, bool) {
	m := productURLIDRegex.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// ActualSKU returns the 6-digit SKU reported by a product detail page
func ActualSKU(markup string) (string, bool) {
	return firstMatch(newDocument(markup), skuRules)
}

func extractIdentity(d *document) (mfrPart, upc string) {
	mfrPart, _ = firstMatch(d, mfrPartRules)
	upc, _ = firstMatch(d, upcRules)
	return mfrPart, upc
}
