package scrape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/partscout/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FullDetailPage(t *testing.T) {
	e := NewExtractor(false)

	f := e.Extract(detailPageFixture, "679294", domain.StoreContext{StoreID: "101"})

	assert.Equal(t, "AMD Ryzen 7 7800X3D Raphael AM5 4.2GHz 8-Core Boxed Processor", f.Name)
	assert.Equal(t, "AMD", f.Brand)
	assert.Equal(t, "$399.99", f.Price)
	assert.Equal(t, 399.99, f.PriceValue)
	assert.Equal(t, "$449.99", f.OriginalPrice)
	assert.Equal(t, "$50.00", f.Savings)
	assert.Equal(t, 50.0, f.SavingsValue)

	assert.Equal(t, domain.StockInfo{
		StockText:  "25+ in Stock",
		StockCount: 25,
		InStock:    true,
		Store:      "Tustin",
	}, f.Stock)
	assert.Equal(t, "Aisle 12, Aisle 14", f.Location)
	assert.Equal(t, "100-100000910WOF", f.MfrPart)
	assert.Equal(t, "730143314930", f.UPC)
	assert.Equal(t, domain.Reviews{Rating: 4.8, Count: 1234}, f.Reviews)

	assert.Equal(t, []domain.ServiceOffer{{Name: "CPU Installation Service", Price: 49.99}}, f.Installation)
	assert.Equal(t, []domain.ServiceOffer{
		{Name: "2 Year Replacement Plan", Price: 59.99},
		{Name: "3 Year Replacement Plan", Price: 79.99},
	}, f.Protection)

	wantSpecs := []domain.SpecEntry{
		{Label: "Brand", Value: "AMD", Group: "General"},
		{Label: "Model", Value: "Ryzen 7 7800X3D", Group: "General"},
		{Label: "Core count", Value: "8", Group: "Processor"},
		{Label: "Parts", Value: "3 years", Group: "Warranty"},
		{Label: "Plan", Value: "2 Year Replacement Plan available", Group: "Warranty"},
	}
	if diff := cmp.Diff(wantSpecs, f.Specs); diff != "" {
		t.Errorf("Specs mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, f.SpecSections, 4)
	assert.Equal(t, "General", f.SpecSections[0].Title)
	assert.Equal(t, "Processor", f.SpecSections[1].Title)
	assert.Equal(t, "Warranty", f.SpecSections[2].Title)
	assert.Equal(t, "Protection Plan Details", f.SpecSections[3].Title)
	assert.Contains(t, f.SpecDisplay, "• Core count: 8")
}

func TestExtract_EmptyMarkup(t *testing.T) {
	e := NewExtractor(false)

	f := e.Extract("", "", domain.StoreContext{})

	assert.Equal(t, domain.ProductFields{}, f)
}

func TestExtract_MalformedMarkupDegradesPerField(t *testing.T) {
	e := NewExtractor(false)
	markup := `<div><h1>Broken <b>Heading</h1><span id="pricing">$12.50</span><p>garbage <<<>>> 
		<td>unclosed`

	f := e.Extract(markup, "111111", domain.StoreContext{StoreID: "101"})

	assert.Equal(t, "Broken Heading", f.Name)
	assert.Equal(t, "$12.50", f.Price)
	assert.Equal(t, domain.StockInfo{}, f.Stock)
	assert.Equal(t, domain.Reviews{}, f.Reviews)
	assert.Empty(t, f.MfrPart)
	assert.Empty(t, f.UPC)
	assert.Empty(t, f.Protection)
}

func TestExtract_NamePrefixedWithBrand(t *testing.T) {
	e := NewExtractor(false)
	markup := `<h1><span data-name="GeForce RTX 4070 Ti" data-brand="ASUS">GeForce RTX 4070 Ti</span></h1>`

	f := e.Extract(markup, "", domain.StoreContext{})

	assert.Equal(t, "ASUS GeForce RTX 4070 Ti", f.Name)
	assert.Equal(t, "ASUS", f.Brand)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		brand string
		want  string
	}{
		{"no brand", "Example CPU", "", "Example CPU"},
		{"brand already present", "AMD Ryzen 5", "AMD", "AMD Ryzen 5"},
		{"brand present different case", "amd ryzen 5", "AMD", "amd ryzen 5"},
		{"brand missing", "Ryzen 5", "AMD", "AMD Ryzen 5"},
		{"no name", "", "AMD", "AMD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.title, tt.brand))
		})
	}
}
