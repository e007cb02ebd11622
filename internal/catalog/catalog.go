package catalog

import "storefront/internal/models"

// Catalog holds the static content the storefront serves. It is built once
// at startup and read-only afterwards.
type Catalog struct {
	products map[string]models.ProductDetail
	order    []string
	bundles  []models.RitualBundle
	styles   []models.GiftBoxStyle
	addOns   []models.GiftAddOn
}

func New(products []models.ProductDetail, bundles []models.RitualBundle, styles []models.GiftBoxStyle, addOns []models.GiftAddOn) *Catalog {
	c := &Catalog{
		products: make(map[string]models.ProductDetail, len(products)),
		bundles:  bundles,
		styles:   styles,
		addOns:   addOns,
	}
	for _, p := range products {
		c.products[p.ProductID] = p
		c.order = append(c.order, p.ProductID)
	}
	return c
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (models.ProductDetail, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []models.ProductDetail {
	out := make([]models.ProductDetail, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

func (c *Catalog) Bundles() []models.RitualBundle {
	return c.bundles
}

func (c *Catalog) Bundle(id string) (models.RitualBundle, bool) {
	for _, b := range c.bundles {
		if b.ID == id {
			return b, true
		}
	}
	return models.RitualBundle{}, false
}

func (c *Catalog) GiftBoxStyles() []models.GiftBoxStyle {
	return c.styles
}

func (c *Catalog) GiftBoxStyle(id string) (models.GiftBoxStyle, bool) {
	for _, s := range c.styles {
		if s.ID == id {
			return s, true
		}
	}
	return models.GiftBoxStyle{}, false
}

func (c *Catalog) GiftAddOns() []models.GiftAddOn {
	return c.addOns
}

func (c *Catalog) GiftAddOn(id string) (models.GiftAddOn, bool) {
	for _, a := range c.addOns {
		if a.ID == id {
			return a, true
		}
	}
	return models.GiftAddOn{}, false
}
