package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/reviews"
)

type ReviewHandler struct {
	reviews *reviews.Store
	logger  *logger.Logger
}

func NewReviewHandler(reviewStore *reviews.Store, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviewStore,
		logger:  logger,
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	targetID := c.Query("target_id")
	if targetID == "" {
		c.JSON(http.StatusOK, gin.H{"data": h.reviews.List()})
		return
	}

	targetType := c.DefaultQuery("type", models.ReviewTargetProduct)
	c.JSON(http.StatusOK, gin.H{"data": h.reviews.ListFor(targetID, targetType)})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var input models.LocalReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.TargetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_id is required"})
		return
	}
	if input.Type != models.ReviewTargetProduct && input.Type != models.ReviewTargetBundle {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be product or bundle"})
		return
	}

	created := h.reviews.Add(input)

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// Verified gates the review form's verified-purchase badge.
func (h *ReviewHandler) Verified(c *gin.Context) {
	targetID := c.Query("target_id")
	if targetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_id is required"})
		return
	}
	targetType := c.DefaultQuery("type", models.ReviewTargetProduct)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"target_id": targetID,
			"type":      targetType,
			"verified":  h.reviews.IsTargetVerifiedForAnyOrder(targetID, targetType),
		},
	})
}
