package pricing

import (
	"math"

	"storefront/internal/models"
)

// BundlePricing reports a bundle's discounted price against the sum of its
// components bought standalone.
type BundlePricing struct {
	BundlePrice    float64 `json:"bundle_price"`
	CompareAt      float64 `json:"compare_at"`
	SavingsAmount  float64 `json:"savings_amount"`
	SavingsPercent int     `json:"savings_percent"`
}

// BundlePricing computes the compare-at total for a bundle. Items whose
// product id is not in the catalog are skipped. The compare-at sum is
// clamped to at least the bundle price so mis-authored content never shows
// negative savings.
func (c *Calculator) BundlePricing(bundle models.RitualBundle) BundlePricing {
	compareAt := 0.0
	for _, item := range bundle.Items {
		product, ok := c.catalog.Product(item.ProductID)
		if !ok {
			continue
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		compareAt += ResolveVariant(product, "").Price * float64(qty)
	}

	if compareAt < bundle.BundlePriceNumber {
		compareAt = bundle.BundlePriceNumber
	}

	savings := compareAt - bundle.BundlePriceNumber
	if savings < 0 {
		savings = 0
	}

	percent := 0
	if compareAt > 0 {
		percent = int(math.Floor(savings/compareAt*100 + 0.5))
	}

	return BundlePricing{
		BundlePrice:    bundle.BundlePriceNumber,
		CompareAt:      compareAt,
		SavingsAmount:  savings,
		SavingsPercent: percent,
	}
}
