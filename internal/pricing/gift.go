package pricing

import "storefront/internal/models"

// GiftTotal sums the box price, the resolved variant price of every selected
// product, and the catalog price of every known add-on id. Unknown add-on
// ids contribute zero. Product count bounds are enforced by the caller.
func (c *Calculator) GiftTotal(boxPrice float64, selected []models.ProductDetail, selectedVariants map[string]string, addOnIDs []string) float64 {
	total := boxPrice
	for _, p := range selected {
		total += ResolveVariant(p, selectedVariants[p.ProductID]).Price
	}
	for _, id := range addOnIDs {
		if addOn, ok := c.catalog.GiftAddOn(id); ok {
			total += addOn.PriceNumber
		}
	}
	return total
}
