package scrape

import (
	"strings"

	"github.com/partscout/backend/internal/domain"
)

const (
	ungroupedTitle      = "Specifications"
	protectionPlanTitle = "Protection Plan Details"
)

// specGroupOrder is the display priority of known group names; any other
// group follows in the order it was first seen
var specGroupOrder = []string{
	"Features",
	"General",
	"Processor",
	"Memory",
	"Graphics",
	"Storage",
	"Display",
	"Connectivity",
	"Ports",
	"Power",
	"Physical",
	"Dimensions",
	"Warranty",
}

// AssembleSpecSections groups entries for display. Entries describing a
// numeric-year protection plan go to a trailing "Protection Plan Details" block.
func AssembleSpecSections(entries []domain.SpecEntry) []domain.SpecSection {
	pool := make(map[string][]domain.SpecEntry)
	var encountered []string
	var planDetails []domain.SpecEntry

	for _, e := range entries {
		if isProtectionPlanText(e.Label + " " + e.Value) {
			planDetails = append(planDetails, e)
			continue
		}
		title := e.Group
		if title == "" {
			title = ungroupedTitle
		}
		if _, ok := pool[title]; !ok {
			encountered = append(encountered, title)
		}
		pool[title] = append(pool[title], e)
	}

	var sections []domain.SpecSection
	for _, title := range specGroupOrder {
		if group, ok := pool[title]; ok {
			sections = append(sections, domain.SpecSection{Title: title, Entries: group})
			delete(pool, title)
		}
	}
	for _, title := range encountered {
		if group, ok := pool[title]; ok {
			sections = append(sections, domain.SpecSection{Title: title, Entries: group})
		}
	}
	if len(planDetails) > 0 {
		sections = append(sections, domain.SpecSection{Title: protectionPlanTitle, Entries: planDetails})
	}
	return sections
}

// RenderSpecSections renders sections as a header line followed by bullets
func RenderSpecSections(sections []domain.SpecSection) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Title)
		b.WriteString("\n")
		for _, e := range s.Entries {
			b.WriteString("• ")
			if e.Label != featureLabel {
				b.WriteString(e.Label)
				b.WriteString(": ")
			}
			b.WriteString(e.Value)
			b.WriteString("\n")
		}
	}
	return b.String()
}
