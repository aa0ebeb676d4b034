package scrape

import (
	"regexp"

	"github.com/partscout/backend/internal/domain"
)

var (
	// offer markers pair a label with a price; the same radio option markup is
	// often repeated several times on one page
	offerRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bdata-name=["']([^"']+)["'][^>]*?\bdata-price=["']` + moneyPattern + `["']`),
		regexp.MustCompile(`(?i)\bdata-price=["']` + moneyPattern + `["'][^>]*?\bdata-name=["']([^"']+)["']`),
		regexp.MustCompile(`(?i)<label[^>]*>\s*([^<>]+?)\s*(?:-|&ndash;|–)?\s*\$([\d,]+\.\d{2})\s*</label>`),
	}
	// priceFirst marks the offer patterns whose first capture is the price
	priceFirst = map[int]bool{1: true}

	installationVocabulary = regexp.MustCompile(`(?i)\binstallation\s+service\b`)
	protectionVocabulary   = regexp.MustCompile(`(?i)\b\d+\s*-?\s*(?:year|yr)s?\b.*\bplan\b`)
)

type offerKey struct {
	name  string
	price int64
}

// extractServices collects installation and protection offers, deduplicated
// by exact (name, price)
func extractServices(d *document) (installation, protection []domain.ServiceOffer) {
	seen := make(map[offerKey]bool)

	for i, re := range offerRegexes {
		for _, m := range re.FindAllStringSubmatch(d.markup, -1) {
			name, price := m[1], m[2]
			if priceFirst[i] {
				name, price = m[2], m[1]
			}
			name = cleanText(name)
			cents, ok := parseCents(price)
			if name == "" || !ok {
				continue
			}

			key := offerKey{name: name, price: cents}
			if seen[key] {
				continue
			}

			offer := domain.ServiceOffer{Name: name, Price: centsToFloat(cents)}
			switch {
			case installationVocabulary.MatchString(name):
				installation = append(installation, offer)
			case protectionVocabulary.MatchString(name):
				protection = append(protection, offer)
			default:
				continue
			}
			seen[key] = true
		}
	}

	return installation, protection
}

// isProtectionPlanText reports whether text describes a numeric-year protection plan
func isProtectionPlanText(s string) bool {
	return protectionVocabulary.MatchString(s)
}
