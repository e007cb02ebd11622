package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/pricing"
)

type GiftHandler struct {
	config  *config.Config
	catalog *catalog.Catalog
	pricer  *pricing.Calculator
	logger  *logger.Logger
}

func NewGiftHandler(cfg *config.Config, cat *catalog.Catalog, pricer *pricing.Calculator, logger *logger.Logger) *GiftHandler {
	return &GiftHandler{
		config:  cfg,
		catalog: cat,
		pricer:  pricer,
		logger:  logger,
	}
}

func (h *GiftHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"styles":       h.catalog.GiftBoxStyles(),
			"add_ons":      h.catalog.GiftAddOns(),
			"min_products": h.config.GiftBoxMinProducts,
			"max_products": h.config.GiftBoxMaxProducts,
		},
	})
}

type giftQuoteRequest struct {
	StyleID  string            `json:"style_id" binding:"required"`
	Products []giftQuoteLine   `json:"products"`
	Variants map[string]string `json:"variants"`
	AddOnIDs []string          `json:"add_on_ids"`
}

type giftQuoteLine struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quote prices a composed gift box. Product count bounds are enforced here,
// not in the pricing core.
func (h *GiftHandler) Quote(c *gin.Context) {
	var req giftQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	style, ok := h.catalog.GiftBoxStyle(req.StyleID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gift box style"})
		return
	}

	if len(req.Products) < h.config.GiftBoxMinProducts || len(req.Products) > h.config.GiftBoxMaxProducts {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Gift boxes hold between %d and %d products", h.config.GiftBoxMinProducts, h.config.GiftBoxMaxProducts),
		})
		return
	}

	selected := make([]models.ProductDetail, 0, len(req.Products))
	for _, line := range req.Products {
		product, ok := h.catalog.Product(line.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product: " + line.ProductID})
			return
		}
		selected = append(selected, product)
	}

	currency := c.DefaultQuery("currency", pricing.BaseCurrency)
	total := h.pricer.GiftTotal(style.PriceNumber, selected, req.Variants, req.AddOnIDs)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"style":           style,
			"total":           total,
			"total_formatted": pricing.FormatCurrency(total, currency),
		},
	})
}
