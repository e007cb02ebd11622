package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/pricing"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	pricer  *pricing.Calculator
	logger  *logger.Logger
}

func NewCatalogHandler(cat *catalog.Catalog, pricer *pricing.Calculator, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		pricer:  pricer,
		logger:  logger,
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	currency := c.DefaultQuery("currency", pricing.BaseCurrency)

	products := h.catalog.Products()
	data := make([]gin.H, 0, len(products))
	for _, p := range products {
		effective := pricing.ResolveVariant(p, "")
		data = append(data, gin.H{
			"product":         p,
			"price":           effective.Price,
			"price_formatted": pricing.FormatCurrency(effective.Price, currency),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	currency := c.DefaultQuery("currency", pricing.BaseCurrency)
	effective := pricing.ResolveVariant(product, c.Query("variant"))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"product":         product,
			"selected":        effective,
			"price_formatted": pricing.FormatCurrency(effective.Price, currency),
		},
	})
}

func (h *CatalogHandler) ListBundles(c *gin.Context) {
	currency := c.DefaultQuery("currency", pricing.BaseCurrency)

	bundles := h.catalog.Bundles()
	data := make([]gin.H, 0, len(bundles))
	for _, b := range bundles {
		data = append(data, h.bundlePayload(b.ID, currency))
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *CatalogHandler) GetBundle(c *gin.Context) {
	bundle, ok := h.catalog.Bundle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bundle not found"})
		return
	}

	currency := c.DefaultQuery("currency", pricing.BaseCurrency)
	c.JSON(http.StatusOK, gin.H{"data": h.bundlePayload(bundle.ID, currency)})
}

func (h *CatalogHandler) bundlePayload(bundleID, currency string) gin.H {
	bundle, _ := h.catalog.Bundle(bundleID)
	quote := h.pricer.BundlePricing(bundle)

	return gin.H{
		"bundle":               bundle,
		"pricing":              quote,
		"price_formatted":      pricing.FormatCurrency(quote.BundlePrice, currency),
		"compare_at_formatted": pricing.FormatCurrency(quote.CompareAt, currency),
		"savings_formatted":    pricing.FormatCurrency(quote.SavingsAmount, currency),
	}
}
