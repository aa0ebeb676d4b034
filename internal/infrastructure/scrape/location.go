package scrape

import (
	"regexp"
	"strings"
)

var locationRegex = regexp.MustCompile(`(?i)located\s+in\s+aisle\s+([A-Za-z0-9-]+)(?:\s*(?:,|&amp;|&|and)\s*aisle\s+([A-Za-z0-9-]+))?`)

// extractLocation reads "located in aisle X[, aisle Y]"
func extractLocation(d *document) string {
	m := locationRegex.FindStringSubmatch(d.markup)
	if m == nil {
		return ""
	}
	parts := []string{"Aisle " + strings.ToUpper(m[1])}
	if m[2] != "" {
		parts = append(parts, "Aisle "+strings.ToUpper(m[2]))
	}
	return strings.Join(parts, ", ")
}
