package scrape

import (
	"testing"

	"github.com/partscout/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtractStock(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   domain.StockInfo
	}{
		{
			name:   "threshold count with store",
			markup: `<span class="inventoryCnt">25+ NEW IN STOCK</span> at <span class="storeName">Tustin Store</span>`,
			want:   domain.StockInfo{StockText: "25+ in Stock", StockCount: 25, InStock: true, Store: "Tustin"},
		},
		{
			name:   "exact count",
			markup: `<span>3 in stock</span>`,
			want:   domain.StockInfo{StockText: "3 in Stock", StockCount: 3, InStock: true},
		},
		{
			name:   "zero count",
			markup: `<span>0 in stock</span>`,
			want:   domain.StockInfo{StockText: "0 in Stock"},
		},
		{
			name:   "out of stock overrides stale count",
			markup: `<span class="inventoryCnt">5 IN STOCK</span><div class="status">SOLD OUT</div>`,
			want:   domain.StockInfo{StockText: "Out of Stock"},
		},
		{
			name:   "out of stock phrase",
			markup: `<p>This item is currently out of stock at your store.</p>`,
			want:   domain.StockInfo{StockText: "Out of Stock"},
		},
		{
			name:   "marker without count",
			markup: `<span class="status">In Stock</span>`,
			want:   domain.StockInfo{StockText: "In Stock", InStock: true},
		},
		{
			name:   "restock notification is not availability",
			markup: `<button class="notify">Notify me when back in stock</button>`,
			want:   domain.StockInfo{},
		},
		{
			name:   "store check link is not availability",
			markup: `<a href="/stores">Check if this item is in stock near you</a>`,
			want:   domain.StockInfo{},
		},
		{
			name:   "real marker after a restock prompt",
			markup: `<button>Email me when it's back in stock</button><span class="status">In Stock</span>`,
			want:   domain.StockInfo{StockText: "In Stock", InStock: true},
		},
		{
			name:   "sold out open box does not hide new stock",
			markup: `<span class="inventoryCnt">25+ NEW IN STOCK</span><div class="openbox"><span>Open Box:</span> <span>Sold Out</span></div>`,
			want:   domain.StockInfo{StockText: "25+ in Stock", StockCount: 25, InStock: true},
		},
		{
			name:   "sold out after open box markup class",
			markup: `<span>2 in stock</span><div class="open-box-offer"><strong>SOLD OUT</strong></div>`,
			want:   domain.StockInfo{StockText: "2 in Stock", StockCount: 2, InStock: true},
		},
		{
			name:   "nothing on page",
			markup: `<p>Call for availability</p>`,
			want:   domain.StockInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractStock(newDocument(tt.markup)))
		})
	}
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   priceInfo
	}{
		{
			name:   "current price only",
			markup: `<span id="pricing">$1,299.99</span>`,
			want:   priceInfo{current: 129999},
		},
		{
			name:   "savings derived from original and current",
			markup: `<span>Original price $449.99</span><span id="pricing">$399.99</span>`,
			want:   priceInfo{current: 39999, original: 44999, savings: 5000},
		},
		{
			name:   "explicit savings is kept",
			markup: `<span>Original price $449.99</span><span class="save">Save $60.00</span><span id="pricing">$399.99</span>`,
			want:   priceInfo{current: 39999, original: 44999, savings: 6000},
		},
		{
			name:   "percentage savings is derived instead",
			markup: `<span>Original price $500.00</span> <b>Save 20%</b> <meta itemprop="price" content="400.00">`,
			want:   priceInfo{current: 40000, original: 50000, savings: 10000},
		},
		{
			name:   "dollar savings after a percentage badge",
			markup: `<span>Original price $500.00</span> <b>Save 20%</b> <span>You save $90.00</span> <meta itemprop="price" content="400.00">`,
			want:   priceInfo{current: 40000, original: 50000, savings: 9000},
		},
		{
			name:   "original without current asserts no savings",
			markup: `<span>Original price $449.99</span>`,
			want:   priceInfo{original: 44999},
		},
		{
			name:   "script price",
			markup: `<script>var p = {"productPrice":"89.5"};</script>`,
			want:   priceInfo{current: 8950},
		},
		{
			name:   "no price",
			markup: `<p>Price not available</p>`,
			want:   priceInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPrice(newDocument(tt.markup)))
		})
	}
}

func TestSavingsDerivationIsExact(t *testing.T) {
	e := NewExtractor(false)
	f := e.Extract(`<span>Original price $249.99</span><span id="pricing">$199.98</span>`, "", domain.StoreContext{})

	assert.Equal(t, 249.99, f.OriginalPriceValue)
	assert.Equal(t, 199.98, f.PriceValue)
	assert.Equal(t, 50.01, f.SavingsValue)
	assert.Equal(t, "$50.01", f.Savings)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, ""},
		{5, "$0.05"},
		{39999, "$399.99"},
		{129999, "$1,299.99"},
		{123456789, "$1,234,567.89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(tt.cents))
	}
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"399.99", 39999, true},
		{"$1,299.99", 129999, true},
		{"89.5", 8950, true},
		{"42", 4200, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseCents(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestExtractReviews(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   domain.Reviews
	}{
		{
			name:   "structured pair",
			markup: `<script type="application/ld+json">{"aggregateRating":{"@type":"AggregateRating","ratingValue":"4.6","reviewCount":"87"}}</script>`,
			want:   domain.Reviews{Rating: 4.6, Count: 87},
		},
		{
			name:   "structured pair reversed",
			markup: `{"reviewCount": 12, "ratingValue": 3.5}`,
			want:   domain.Reviews{Rating: 3.5, Count: 12},
		},
		{
			name:   "independent rating and count",
			markup: `<meta itemprop="ratingValue" content="4.1"><a href="#reviews">1,050 Reviews</a>`,
			want:   domain.Reviews{Rating: 4.1, Count: 1050},
		},
		{
			name:   "rating clamped",
			markup: `<div data-rating="7.2"></div>`,
			want:   domain.Reviews{Rating: 5},
		},
		{
			name:   "absent",
			markup: `<p>Be the first to review</p>`,
			want:   domain.Reviews{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractReviews(newDocument(tt.markup)))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		markup string
		want   string
	}{
		{`<p>Located in aisle 12</p>`, "Aisle 12"},
		{`<p>Located in aisle 7b, aisle 8</p>`, "Aisle 7B, Aisle 8"},
		{`<p>located in Aisle 3 &amp; aisle 4</p>`, "Aisle 3, Aisle 4"},
		{`<p>Located in aisle 12 near the front</p>`, "Aisle 12"},
		{`<p>Ask an associate</p>`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractLocation(newDocument(tt.markup)), tt.markup)
	}
}

func TestExtractServices(t *testing.T) {
	t.Run("identical protection offers collapse to one", func(t *testing.T) {
		markup := `
			<input type="radio" data-name="2 Year Replacement Plan" data-price="59.99">
			<input type="radio" data-name="2 Year Replacement Plan" data-price="59.99">`

		installation, protection := extractServices(newDocument(markup))

		assert.Empty(t, installation)
		assert.Equal(t, []domain.ServiceOffer{{Name: "2 Year Replacement Plan", Price: 59.99}}, protection)
	})

	t.Run("same name different price kept", func(t *testing.T) {
		markup := `
			<input data-name="2 Year Replacement Plan" data-price="59.99">
			<input data-name="2 Year Replacement Plan" data-price="69.99">`

		_, protection := extractServices(newDocument(markup))

		assert.Len(t, protection, 2)
	})

	t.Run("label markup and attribute order", func(t *testing.T) {
		markup := `
			<input data-price="29.99" data-name="Windows Installation Service">
			<label for="p1">1-Year Protection Plan - $19.99</label>
			<input data-name="Gift Wrap" data-price="4.99">`

		installation, protection := extractServices(newDocument(markup))

		assert.Equal(t, []domain.ServiceOffer{{Name: "Windows Installation Service", Price: 29.99}}, installation)
		assert.Equal(t, []domain.ServiceOffer{{Name: "1-Year Protection Plan", Price: 19.99}}, protection)
	})
}
