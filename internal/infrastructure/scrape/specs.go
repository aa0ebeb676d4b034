package scrape

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/partscout/backend/internal/domain"
)

const (
	minFeatureItemLen = 25
	maxFeatureItemLen = 300
	maxTableLabelLen  = 60
	maxTableValueLen  = 200

	featureGroup = "Features"
	featureLabel = "Feature"
)

// featureBlobRules locate the structured group|feature|value blob
var featureBlobRules = []rule[string]{
	func(d *document) (string, bool) {
		doc := d.Doc()
		if doc == nil {
			return "", false
		}
		blob, ok := doc.Find("[data-features]").First().Attr("data-features")
		return blob, ok && strings.TrimSpace(blob) != ""
	},
	func(d *document) (string, bool) {
		m := featureBlobScriptRegex.FindStringSubmatch(d.markup)
		if len(m) < 2 || strings.TrimSpace(m[1]) == "" {
			return "", false
		}
		return unescapeJS(m[1]), true
	},
}

var featureBlobScriptRegex = regexp.MustCompile(`"features"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// specPass is one fallback extraction pass over a page region
type specPass func(d *document) []domain.SpecEntry

// fallbackSpecPasses all run when no feature blob exists; their results are
// concatenated since each targets a different page region
var fallbackSpecPasses = []specPass{
	twoColumnSpecs,
	listItemSpecs,
	tableSpecs,
}

func extractSpecs(d *document) []domain.SpecEntry {
	var entries []domain.SpecEntry
	if blob, ok := firstMatch(d, featureBlobRules); ok {
		entries = parseFeatureBlob(blob)
	}
	if len(entries) == 0 {
		for _, pass := range fallbackSpecPasses {
			entries = append(entries, pass(d)...)
		}
	}
	return dedupeSpecs(entries)
}

// parseFeatureBlob reads pipe-delimited group|feature|value triples.
// A trailing incomplete triple is dropped.
func parseFeatureBlob(blob string) []domain.SpecEntry {
	fields := strings.Split(blob, "|")
	entries := make([]domain.SpecEntry, 0, len(fields)/3)
	for i := 0; i+2 < len(fields); i += 3 {
		group := humanize(fields[i])
		label := humanize(fields[i+1])
		value := cleanText(fields[i+2])
		if label == "" || value == "" {
			continue
		}
		entries = append(entries, domain.SpecEntry{Label: label, Value: value, Group: group})
	}
	return entries
}

// humanize turns "memory_speed" into "Memory speed"
func humanize(s string) string {
	s = cleanText(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// twoColumnSpecs reads label/value pairs from the spec layout, tracking the
// most recent group heading
func twoColumnSpecs(d *document) []domain.SpecEntry {
	doc := d.Doc()
	if doc == nil {
		return nil
	}

	var entries []domain.SpecEntry
	group := ""
	doc.Find(".spec-group-title, .spec-body").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("spec-group-title") {
			group = humanize(s.Text())
			return
		}
		cells := s.Children()
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSuffix(cleanText(cells.Eq(0).Text()), ":")
		value := cleanText(cells.Eq(1).Text())
		if label == "" || value == "" {
			return
		}
		entries = append(entries, domain.SpecEntry{Label: label, Value: value, Group: group})
	})
	return entries
}

// listItemSpecs treats long text-only list items as feature bullets
func listItemSpecs(d *document) []domain.SpecEntry {
	doc := d.Doc()
	if doc == nil {
		return nil
	}

	var entries []domain.SpecEntry
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		text := cleanText(s.Text())
		n := utf8.RuneCountInString(text)
		if n < minFeatureItemLen || n > maxFeatureItemLen {
			return
		}
		entries = append(entries, domain.SpecEntry{Label: featureLabel, Value: text, Group: featureGroup})
	})
	return entries
}

// tableSpecs scans two-cell table rows, skipping cells too long to be a spec
func tableSpecs(d *document) []domain.SpecEntry {
	doc := d.Doc()
	if doc == nil {
		return nil
	}

	var entries []domain.SpecEntry
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("th, td")
		if cells.Length() != 2 {
			return
		}
		label := strings.TrimSuffix(cleanText(cells.Eq(0).Text()), ":")
		value := cleanText(cells.Eq(1).Text())
		if label == "" || value == "" {
			return
		}
		if utf8.RuneCountInString(label) > maxTableLabelLen || utf8.RuneCountInString(value) > maxTableValueLen {
			return
		}
		entries = append(entries, domain.SpecEntry{Label: label, Value: value})
	})
	return entries
}

// dedupeSpecs drops repeated label+value pairs within a group, keeping first occurrence order
func dedupeSpecs(entries []domain.SpecEntry) []domain.SpecEntry {
	if len(entries) == 0 {
		return nil
	}
	seen := make(map[domain.SpecEntry]bool, len(entries))
	out := make([]domain.SpecEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
