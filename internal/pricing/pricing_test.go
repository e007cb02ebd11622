package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

func testCatalog() *catalog.Catalog {
	return catalog.Default()
}

func TestResolveVariantByID(t *testing.T) {
	cat := testCatalog()
	product, ok := cat.Product("amber-noir-candle")
	require.True(t, ok)

	got := ResolveVariant(product, "amber-noir-400g")

	assert.Equal(t, "amber-noir-400g", got.VariantID)
	assert.Equal(t, 429.99, got.Price)
	assert.Equal(t, "400g", got.Attributes["size"])
}

func TestResolveVariantDefaultsToFirst(t *testing.T) {
	cat := testCatalog()
	product, ok := cat.Product("amber-noir-candle")
	require.True(t, ok)

	assert.Equal(t, "amber-noir-200g", ResolveVariant(product, "").VariantID)
	// Unknown ids fall back to the default, never error.
	assert.Equal(t, "amber-noir-200g", ResolveVariant(product, "no-such-variant").VariantID)
}

func TestResolveVariantWithoutVariants(t *testing.T) {
	cat := testCatalog()
	product, ok := cat.Product("rose-oud-diffuser")
	require.True(t, ok)

	got := ResolveVariant(product, "")

	assert.Empty(t, got.VariantID)
	assert.Equal(t, product.PriceNumber, got.Price)
}

func TestResolveVariantInheritsProductPrice(t *testing.T) {
	product := models.ProductDetail{
		ProductID:   "plain",
		PriceNumber: 100,
		Variants:    []models.Variant{{VariantID: "plain-std", Label: "Standard"}},
	}

	assert.Equal(t, 100.0, ResolveVariant(product, "plain-std").Price)
}

func TestGiftTotal(t *testing.T) {
	cat := testCatalog()
	calc := New(cat)

	amber, _ := cat.Product("amber-noir-candle")
	mist, _ := cat.Product("linen-room-mist")

	total := calc.GiftTotal(
		49.99,
		[]models.ProductDetail{amber, mist},
		map[string]string{"amber-noir-candle": "amber-noir-400g"},
		[]string{"gift-card", "not-a-real-add-on"},
	)

	// box + 400g variant + mist (no variant) + gift card; unknown add-on is free
	assert.InDelta(t, 49.99+429.99+152.99+19.99, total, 1e-9)
}

func TestGiftTotalEmptySelection(t *testing.T) {
	calc := New(testCatalog())

	assert.Equal(t, 119.99, calc.GiftTotal(119.99, nil, nil, nil))
}

func TestBundlePricingScenario(t *testing.T) {
	cat := testCatalog()
	calc := New(cat)
	bundle, ok := cat.Bundle("evening-unwind")
	require.True(t, ok)

	got := calc.BundlePricing(bundle)

	assert.Equal(t, 570.00, got.BundlePrice)
	assert.InDelta(t, 622.97, got.CompareAt, 0.01)
	assert.InDelta(t, 52.97, got.SavingsAmount, 0.01)
	assert.GreaterOrEqual(t, got.SavingsPercent, 1)
	assert.Equal(t, 9, got.SavingsPercent)
}

func TestBundlePricingInvariants(t *testing.T) {
	cat := testCatalog()
	calc := New(cat)

	for _, bundle := range cat.Bundles() {
		got := calc.BundlePricing(bundle)

		assert.GreaterOrEqual(t, got.CompareAt, got.BundlePrice)
		assert.Equal(t, got.SavingsAmount, got.CompareAt-got.BundlePrice)
		assert.GreaterOrEqual(t, got.SavingsPercent, 0)
		assert.LessOrEqual(t, got.SavingsPercent, 100)

		// Pure function: same inputs, same outputs.
		assert.Equal(t, got, calc.BundlePricing(bundle))
	}
}

func TestBundlePricingSkipsUnresolvableItems(t *testing.T) {
	calc := New(testCatalog())
	bundle := models.RitualBundle{
		ID:                "partial",
		BundlePriceNumber: 200,
		Items: []models.BundleItem{
			{ProductID: "linen-room-mist", Quantity: 2},
			{ProductID: "discontinued-product"},
		},
	}

	got := calc.BundlePricing(bundle)

	assert.InDelta(t, 2*152.99, got.CompareAt, 1e-9)
}

func TestBundlePricingClampsCompareAt(t *testing.T) {
	calc := New(testCatalog())
	// Mis-authored content: the sale price exceeds the raw component sum.
	bundle := models.RitualBundle{
		ID:                "overpriced",
		BundlePriceNumber: 500,
		Items:             []models.BundleItem{{ProductID: "matchstick-jar"}},
	}

	got := calc.BundlePricing(bundle)

	assert.Equal(t, 500.0, got.CompareAt)
	assert.Equal(t, 0.0, got.SavingsAmount)
	assert.Equal(t, 0, got.SavingsPercent)
}

func TestBundlePricingEmptyBundle(t *testing.T) {
	calc := New(testCatalog())

	got := calc.BundlePricing(models.RitualBundle{ID: "empty"})

	assert.Equal(t, 0.0, got.CompareAt)
	assert.Equal(t, 0, got.SavingsPercent)
}
