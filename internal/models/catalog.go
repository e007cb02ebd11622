package models

// ProductDetail is a static catalog entry. Prices are authored in the base
// currency; variants override the product price when they carry one.
type ProductDetail struct {
	ProductID   string                 `json:"product_id"`
	ProductName string                 `json:"product_name"`
	PriceNumber float64                `json:"price_number"`
	HeroImage   string                 `json:"hero_image"`
	Variants    []Variant              `json:"variants,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Variant is a purchasable configuration of a product. A zero PriceNumber
// means the variant inherits the product price.
type Variant struct {
	VariantID   string            `json:"variant_id"`
	Label       string            `json:"label"`
	PriceNumber float64           `json:"price_number"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// RitualBundle groups products under a discounted price. Items reference
// products by id; quantity defaults to 1 when omitted.
type RitualBundle struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	BundlePriceNumber float64      `json:"bundle_price_number"`
	Items             []BundleItem `json:"items"`
}

type BundleItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
}

// GiftBoxStyle is the box itself; GiftAddOn is an optional extra. Both are
// flat catalog entries looked up by id.
type GiftBoxStyle struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	PriceNumber float64 `json:"price_number"`
}

type GiftAddOn struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	PriceNumber float64 `json:"price_number"`
}
