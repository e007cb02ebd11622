package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookups(t *testing.T) {
	cat := Default()

	product, ok := cat.Product("amber-noir-candle")
	require.True(t, ok)
	assert.Equal(t, "Amber Noir Candle", product.ProductName)

	_, ok = cat.Product("no-such-product")
	assert.False(t, ok)

	bundle, ok := cat.Bundle("evening-unwind")
	require.True(t, ok)
	assert.Len(t, bundle.Items, 3)

	style, ok := cat.GiftBoxStyle("velvet-box")
	require.True(t, ok)
	assert.Equal(t, 119.99, style.PriceNumber)

	_, ok = cat.GiftAddOn("gift-card")
	assert.True(t, ok)
}

func TestBundleItemsResolve(t *testing.T) {
	cat := Default()

	// Content invariant: every authored bundle item references a real product.
	for _, bundle := range cat.Bundles() {
		for _, item := range bundle.Items {
			_, ok := cat.Product(item.ProductID)
			assert.True(t, ok, "bundle %s references %s", bundle.ID, item.ProductID)
		}
	}
}

func TestProductsPreserveCatalogOrder(t *testing.T) {
	cat := Default()

	products := cat.Products()
	require.NotEmpty(t, products)
	assert.Equal(t, "amber-noir-candle", products[0].ProductID)
}
