package domain

// IdentifierKind tags the variant of a classified Identifier
type IdentifierKind string

const (
	KindSKU          IdentifierKind = "sku"
	KindInternalCode IdentifierKind = "internal_code"
	KindProductURL   IdentifierKind = "product_url"
	KindUPC          IdentifierKind = "upc"
	KindFreeText     IdentifierKind = "free_text"
)

// Identifier is the classified form of a typed or scanned product reference.
// Value holds the cleaned input text for every kind; ExtractedSKU is only set
// for KindInternalCode.
type Identifier struct {
	Kind         IdentifierKind `json:"kind"`
	Value        string         `json:"value"`
	ExtractedSKU string         `json:"extractedSku,omitempty"`
}

// SearchText returns the text sent to the catalog search
func (id Identifier) SearchText() string {
	if id.Kind == KindInternalCode && id.ExtractedSKU != "" {
		return id.ExtractedSKU
	}
	return id.Value
}

// NominalSKU returns the SKU the caller expects to find, if the identifier carries one
func (id Identifier) NominalSKU() (string, bool) {
	switch id.Kind {
	case KindSKU:
		return id.Value, true
	case KindInternalCode:
		return id.ExtractedSKU, true
	}
	return "", false
}

// StoreContext selects the store whose inventory and pricing are fetched
type StoreContext struct {
	StoreID string `json:"storeId"`
}
