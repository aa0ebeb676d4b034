package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// document wraps page markup and parses it into a goquery tree on first use
type document struct {
	markup string
	doc    *goquery.Document
	parsed bool
}

func newDocument(markup string) *document {
	return &document{markup: markup}
}

// Doc returns the parsed tree, or nil if the markup could not be parsed
func (d *document) Doc() *goquery.Document {
	if !d.parsed {
		d.parsed = true
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(d.markup))
		if err == nil {
			d.doc = doc
		}
	}
	return d.doc
}

// rule recovers one value from a document, reporting whether it found one
type rule[T any] func(d *document) (T, bool)

// firstMatch evaluates rules in order and returns the first value found
func firstMatch[T any](d *document, rules []rule[T]) (T, bool) {
	for _, r := range rules {
		if v, ok := r(d); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// regexRule returns capture group 1 of the first match, cleaned to plain text
func regexRule(re *regexp.Regexp) rule[string] {
	return func(d *document) (string, bool) {
		m := re.FindStringSubmatch(d.markup)
		if len(m) < 2 {
			return "", false
		}
		v := cleanText(m[1])
		return v, v != ""
	}
}

// pairRule returns capture groups 1 and 2 of the first match where both are non-empty
func pairRule(re *regexp.Regexp) rule[[2]string] {
	return func(d *document) ([2]string, bool) {
		m := re.FindStringSubmatch(d.markup)
		if len(m) < 3 {
			return [2]string{}, false
		}
		a, b := cleanText(m[1]), cleanText(m[2])
		return [2]string{a, b}, a != "" && b != ""
	}
}

var (
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// cleanText strips tags, decodes entities, collapses whitespace
func cleanText(s string) string {
	s = tagRegex.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

var jsStringEscapes = strings.NewReplacer(`\"`, `"`, `\'`, `'`, `\/`, `/`, `\\`, `\`)

// unescapeJS undoes the backslash escapes found in inline script string literals
func unescapeJS(s string) string {
	return jsStringEscapes.Replace(s)
}

// jsStringRule matches `"key": "value"` or `'key': 'value'` in inline scripts
func jsStringRule(key string) rule[string] {
	double := regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	single := regexp.MustCompile(`'` + regexp.QuoteMeta(key) + `'\s*:\s*'((?:[^'\\]|\\.)*)'`)
	return func(d *document) (string, bool) {
		for _, re := range []*regexp.Regexp{double, single} {
			if m := re.FindStringSubmatch(d.markup); len(m) == 2 {
				if v := cleanText(unescapeJS(m[1])); v != "" {
					return v, true
				}
			}
		}
		return "", false
	}
}

// selectorTextRule returns the text of the first element matching selector
func selectorTextRule(selector string) rule[string] {
	return func(d *document) (string, bool) {
		doc := d.Doc()
		if doc == nil {
			return "", false
		}
		v := cleanText(doc.Find(selector).First().Text())
		return v, v != ""
	}
}
