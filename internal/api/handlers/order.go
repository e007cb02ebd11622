package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/logger"
	"storefront/internal/loyalty"
	"storefront/internal/models"
	"storefront/internal/orders"
)

type OrderHandler struct {
	orders  *orders.Store
	loyalty *loyalty.Program
	logger  *logger.Logger
}

func NewOrderHandler(orderStore *orders.Store, program *loyalty.Program, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders:  orderStore,
		loyalty: program,
		logger:  logger,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.orders.ReadOrders()})
}

func (h *OrderHandler) Create(c *gin.Context) {
	var order models.LocalOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
		return
	}

	created := h.orders.AddOrder(order)

	c.JSON(http.StatusCreated, gin.H{
		"data":           created,
		"loyalty_points": loyalty.PointsForOrder(created),
		"referral_code":  loyalty.ReferralCode(created.Customer.Email),
	})
}

func (h *OrderHandler) LoyaltySummary(c *gin.Context) {
	history := h.orders.ReadOrders()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"balance": h.loyalty.Balance(),
			"orders":  len(history),
		},
	})
}
