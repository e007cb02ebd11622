package pricing

import "storefront/internal/models"

// EffectiveVariant is the price and attributes a shopper actually buys after
// variant selection.
type EffectiveVariant struct {
	VariantID  string            `json:"variant_id,omitempty"`
	Label      string            `json:"label,omitempty"`
	Price      float64           `json:"price"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ResolveVariant resolves the effective price for a product and an optional
// variant id. A matching id wins; otherwise the product's first variant is
// the default. Products without variants price at their own PriceNumber.
// Unknown ids never error, they fall back to the default.
func ResolveVariant(product models.ProductDetail, variantID string) EffectiveVariant {
	if variantID != "" {
		for _, v := range product.Variants {
			if v.VariantID == variantID {
				return effectiveOf(product, v)
			}
		}
	}
	if len(product.Variants) > 0 {
		return effectiveOf(product, product.Variants[0])
	}
	return EffectiveVariant{Price: product.PriceNumber}
}

func effectiveOf(product models.ProductDetail, v models.Variant) EffectiveVariant {
	price := v.PriceNumber
	if price == 0 {
		price = product.PriceNumber
	}
	return EffectiveVariant{
		VariantID:  v.VariantID,
		Label:      v.Label,
		Price:      price,
		Attributes: v.Attributes,
	}
}
