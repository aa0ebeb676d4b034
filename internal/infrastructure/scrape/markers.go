package scrape

import "strings"

var noResultsMarkers = []string{
	"no matches found",
	"did not match any products",
	"0 items found",
}

var blockedMarkers = []string{
	"access denied",
	"attention required! | cloudflare",
	"cf-browser-verification",
	"please verify you are a human",
	"request unsuccessful. incapsula",
	"/_incapsula_resource",
}

// HasNoResults reports whether a search page carries the retailer's "no matches" marker
func HasNoResults(markup string) bool {
	return containsAny(markup, noResultsMarkers)
}

// IsBlocked reports whether a page is an access-denied or bot-challenge page
func IsBlocked(markup string) bool {
	return containsAny(markup, blockedMarkers)
}

func containsAny(markup string, markers []string) bool {
	lower := strings.ToLower(markup)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
