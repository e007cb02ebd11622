package models

import "time"

// LocalOrder is a placed order. Created once at checkout completion and
// never mutated afterwards.
type LocalOrder struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []CartItem     `json:"items"`
	Totals    OrderTotals    `json:"totals"`
	Customer  CustomerInfo   `json:"customer"`
	Shipping  ShippingDetail `json:"shipping"`
	Payment   PaymentSummary `json:"payment"`
}

// CartItem is one checkout line. Exactly one of ProductID, BundleID, or
// GiftBox is meaningful depending on Type.
type CartItem struct {
	Type        string            `json:"type"` // product, bundle, gift
	ProductID   string            `json:"product_id,omitempty"`
	VariantID   string            `json:"variant_id,omitempty"`
	BundleID    string            `json:"bundle_id,omitempty"`
	Quantity    int               `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	BundleItems []BundleItem      `json:"bundle_items,omitempty"`
	GiftBox     *GiftBoxSelection `json:"gift_box,omitempty"`
}

// GiftBoxSelection captures a composed gift box line.
type GiftBoxSelection struct {
	StyleID  string        `json:"style_id"`
	Items    []GiftBoxItem `json:"items"`
	AddOnIDs []string      `json:"add_on_ids,omitempty"`
}

type GiftBoxItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
}

type OrderTotals struct {
	Subtotal      float64 `json:"subtotal"`
	DiscountTotal float64 `json:"discount_total"`
	ShippingCost  float64 `json:"shipping_cost"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type ShippingDetail struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Method  string `json:"method"`
}

type PaymentSummary struct {
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
}
