package domain

import "time"

// SpecEntry is a single specification row. Group is empty when the page
// region it came from has no group heading.
type SpecEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Group string `json:"group,omitempty"`
}

// SpecSection is one display block of grouped specification entries
type SpecSection struct {
	Title   string      `json:"title"`
	Entries []SpecEntry `json:"entries"`
}

// ServiceOffer is a purchasable add-on: pro installation or a protection plan
type ServiceOffer struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// StockInfo describes in-store availability
type StockInfo struct {
	StockText  string `json:"stockText,omitempty"`
	StockCount int    `json:"stockCount"`
	InStock    bool   `json:"inStock"`
	Store      string `json:"store,omitempty"`
}

// Reviews is the aggregate customer rating
type Reviews struct {
	Rating float64 `json:"rating"` // 0-5
	Count  int     `json:"count"`
}

// ProductFields is everything the field extractor recovers from a detail page
type ProductFields struct {
	Name               string         `json:"name"`
	Brand              string         `json:"brand,omitempty"`
	Price              string         `json:"price,omitempty"`
	PriceValue         float64        `json:"priceValue,omitempty"`
	OriginalPrice      string         `json:"originalPrice,omitempty"`
	OriginalPriceValue float64        `json:"originalPriceValue,omitempty"`
	Savings            string         `json:"savings,omitempty"`
	SavingsValue       float64        `json:"savingsValue,omitempty"`
	Stock              StockInfo      `json:"stock"`
	Location           string         `json:"location,omitempty"`
	MfrPart            string         `json:"mfrPart,omitempty"`
	UPC                string         `json:"upc,omitempty"`
	Specs              []SpecEntry    `json:"specs,omitempty"`
	SpecSections       []SpecSection  `json:"specSections,omitempty"`
	SpecDisplay        string         `json:"specDisplay,omitempty"`
	Reviews            Reviews        `json:"reviews"`
	Installation       []ServiceOffer `json:"installation,omitempty"`
	Protection         []ServiceOffer `json:"protection,omitempty"`
}

// ProductRecord is the resolved product as returned to callers
type ProductRecord struct {
	SKU                string   `json:"sku"`
	CanonicalProductID string   `json:"canonicalProductId"`
	StoreID            string   `json:"storeId"`
	URL                string   `json:"url"`
	ImageURL           string   `json:"imageUrl,omitempty"`
	Images             []string `json:"images"`
	ProductFields
	CachedAt time.Time `json:"cachedAt,omitempty"`
}
