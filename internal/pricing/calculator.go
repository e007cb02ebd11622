package pricing

import (
	"storefront/internal/catalog"
)

// Calculator prices bundles and gift boxes against a content catalog. All
// methods are pure reads; a Calculator is safe for concurrent use.
type Calculator struct {
	catalog *catalog.Catalog
}

func New(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}
