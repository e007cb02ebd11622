package catalog

import "storefront/internal/models"

// Default returns the seeded storefront content. Prices are authored in the
// base currency (EGP).
func Default() *Catalog {
	products := []models.ProductDetail{
		{
			ProductID:   "amber-noir-candle",
			ProductName: "Amber Noir Candle",
			PriceNumber: 249.99,
			HeroImage:   "/images/products/amber-noir.jpg",
			Variants: []models.Variant{
				{VariantID: "amber-noir-200g", Label: "200g", PriceNumber: 249.99, Attributes: map[string]string{"size": "200g"}},
				{VariantID: "amber-noir-400g", Label: "400g", PriceNumber: 429.99, Attributes: map[string]string{"size": "400g"}},
			},
		},
		{
			ProductID:   "cedar-sage-candle",
			ProductName: "Cedar & Sage Candle",
			PriceNumber: 219.99,
			HeroImage:   "/images/products/cedar-sage.jpg",
			Variants: []models.Variant{
				{VariantID: "cedar-sage-200g", Label: "200g", PriceNumber: 219.99, Attributes: map[string]string{"size": "200g"}},
				{VariantID: "cedar-sage-400g", Label: "400g", PriceNumber: 389.99, Attributes: map[string]string{"size": "400g"}},
			},
		},
		{
			ProductID:   "rose-oud-diffuser",
			ProductName: "Rose Oud Reed Diffuser",
			PriceNumber: 329.99,
			HeroImage:   "/images/products/rose-oud.jpg",
		},
		{
			ProductID:   "linen-room-mist",
			ProductName: "Linen Room Mist",
			PriceNumber: 152.99,
			HeroImage:   "/images/products/linen-mist.jpg",
		},
		{
			ProductID:   "matchstick-jar",
			ProductName: "Matchstick Jar",
			PriceNumber: 89.99,
			HeroImage:   "/images/products/matchsticks.jpg",
		},
	}

	bundles := []models.RitualBundle{
		{
			ID:                "evening-unwind",
			Name:              "Evening Unwind Ritual",
			BundlePriceNumber: 570.00,
			Items: []models.BundleItem{
				{ProductID: "amber-noir-candle"},
				{ProductID: "cedar-sage-candle"},
				{ProductID: "linen-room-mist"},
			},
		},
		{
			ID:                "fresh-home",
			Name:              "Fresh Home Ritual",
			BundlePriceNumber: 330.00,
			Items: []models.BundleItem{
				{ProductID: "cedar-sage-candle"},
				{ProductID: "linen-room-mist"},
			},
		},
	}

	styles := []models.GiftBoxStyle{
		{ID: "kraft-box", Label: "Kraft Gift Box", PriceNumber: 49.99},
		{ID: "velvet-box", Label: "Velvet Keepsake Box", PriceNumber: 119.99},
	}

	addOns := []models.GiftAddOn{
		{ID: "gift-card", Label: "Handwritten Gift Card", PriceNumber: 19.99},
		{ID: "dried-flowers", Label: "Dried Flower Bunch", PriceNumber: 59.99},
		{ID: "ribbon-wrap", Label: "Satin Ribbon Wrap", PriceNumber: 14.99},
	}

	return New(products, bundles, styles, addOns)
}
