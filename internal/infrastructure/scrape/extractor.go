package scrape

import (
	"log"

	"github.com/partscout/backend/internal/domain"
)

// Extractor turns product detail markup into product fields. Every field is
// recovered independently: a field whose rules all miss keeps its zero value
// and the others are unaffected.
type Extractor struct {
	debug bool
}

// NewExtractor creates a field extractor
func NewExtractor(debug bool) *Extractor {
	return &Extractor{debug: debug}
}

// Extract reads all product fields from detail page markup
func (e *Extractor) Extract(markup, sku string, store domain.StoreContext) domain.ProductFields {
	d := newDocument(markup)

	var f domain.ProductFields
	f.Name, f.Brand = extractName(d)

	p := extractPrice(d)
	f.Price, f.PriceValue = formatMoney(p.current), centsToFloat(p.current)
	f.OriginalPrice, f.OriginalPriceValue = formatMoney(p.original), centsToFloat(p.original)
	f.Savings, f.SavingsValue = formatMoney(p.savings), centsToFloat(p.savings)

	f.Stock = extractStock(d)
	f.Location = extractLocation(d)
	f.MfrPart, f.UPC = extractIdentity(d)
	f.Reviews = extractReviews(d)
	f.Installation, f.Protection = extractServices(d)

	f.Specs = extractSpecs(d)
	f.SpecSections = AssembleSpecSections(f.Specs)
	f.SpecDisplay = RenderSpecSections(f.SpecSections)

	if e.debug {
		log.Printf("[EXTRACT] sku=%s store=%s name=%q price=%q stock=%q specs=%d install=%d protect=%d",
			sku, store.StoreID, f.Name, f.Price, f.Stock.StockText, len(f.Specs), len(f.Installation), len(f.Protection))
	}

	return f
}
