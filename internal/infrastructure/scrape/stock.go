package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/partscout/backend/internal/domain"
)

var (
	outOfStockRegex = regexp.MustCompile(`(?i)\b(?:sold\s+out|out\s+of\s+stock|not\s+in\s+stock)\b`)

	// "25+ NEW IN STOCK</span> at <span class="storeName">Tustin Store</span>"
	stockCountRegex = regexp.MustCompile(`(?i)\b(\d+)\s*(\+)?\s*(?:new\s+|open\s+box\s+)?in\s+stock\b(?:\s*(?:<[^>]+>\s*)*at\s+(?:<[^>]+>\s*)*([^<\r\n]+))?`)

	inStockRegex = regexp.MustCompile(`(?i)\bin\s+stock\b`)

	// "Notify me when back in stock", "Check if this is in stock at your store"
	restockPromptRegex = regexp.MustCompile(`(?i)(?:\bback|\b(?:notify|check|alert|email)\b.*)\s*$`)

	openBoxRegex = regexp.MustCompile(`(?i)open[\s_-]*box`)
)

const openBoxWindow = 120

// extractStock reads the availability block. An explicit out-of-stock marker
// wins over any count left on the page; sold-out open-box units do not count
// against new stock.
func extractStock(d *document) domain.StockInfo {
	if matchOutside(outOfStockRegex, d.markup, isOpenBoxMarker) {
		return domain.StockInfo{StockText: "Out of Stock"}
	}

	if m := stockCountRegex.FindStringSubmatch(d.markup); m != nil {
		count, err := strconv.Atoi(m[1])
		if err == nil {
			return domain.StockInfo{
				StockText:  fmt.Sprintf("%d%s in Stock", count, m[2]),
				StockCount: count,
				InStock:    count > 0,
				Store:      storeName(m[3]),
			}
		}
	}

	if matchOutside(inStockRegex, d.markup, isRestockPrompt) {
		return domain.StockInfo{StockText: "In Stock", InStock: true}
	}

	return domain.StockInfo{}
}

// matchOutside reports whether re matches anywhere skip does not reject
func matchOutside(re *regexp.Regexp, markup string, skip func(markup string, start int) bool) bool {
	for _, loc := range re.FindAllStringIndex(markup, -1) {
		if !skip(markup, loc[0]) {
			return true
		}
	}
	return false
}

// isRestockPrompt rejects "in stock" inside button or notice text asking
// about future availability
func isRestockPrompt(markup string, start int) bool {
	return restockPromptRegex.MatchString(textBefore(markup, start))
}

// isOpenBoxMarker rejects sold-out markers that belong to the open-box offer
func isOpenBoxMarker(markup string, start int) bool {
	from := start - openBoxWindow
	if from < 0 {
		from = 0
	}
	return openBoxRegex.MatchString(markup[from:start])
}

// textBefore returns the text preceding start within the same text node
func textBefore(markup string, start int) string {
	return markup[strings.LastIndex(markup[:start], ">")+1 : start]
}

func storeName(s string) string {
	s = cleanText(s)
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimSpace(strings.TrimSuffix(s, " Store"))
	return s
}
