package loyalty

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/orders"
)

// Program derives loyalty points and referral codes from the order history.
type Program struct {
	orders *orders.Store
}

func New(orderStore *orders.Store) *Program {
	return &Program{orders: orderStore}
}

// PointsForOrder earns one point per whole base-currency unit spent.
// Non-finite or negative totals earn nothing.
func PointsForOrder(order models.LocalOrder) int {
	total := order.Totals.Total
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0
	}
	return int(math.Floor(total))
}

// Balance sums the points earned across the stored order history.
func (p *Program) Balance() int {
	balance := 0
	for _, order := range p.orders.ReadOrders() {
		balance += PointsForOrder(order)
	}
	return balance
}

// ReferralCode derives a stable shareable code from a customer email.
func ReferralCode(email string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("storefront:referral:"+strings.ToLower(strings.TrimSpace(email))))
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
