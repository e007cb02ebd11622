package orders

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"storefront/internal/analytics"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/storage"
)

// StorageKey holds the serialized order history, newest first.
const StorageKey = "storefront:orders"

// Store persists placed orders through the storage port. Storage failures
// never reach callers: reads degrade to an empty history and writes are
// best-effort. Concurrent writers race last-write-wins, which is accepted
// for single-shopper use.
type Store struct {
	storage storage.Store
	logger  *logger.Logger
	tracker analytics.Tracker
}

func New(st storage.Store, log *logger.Logger, tracker analytics.Tracker) *Store {
	if tracker == nil {
		tracker = analytics.Nop{}
	}
	return &Store{
		storage: st,
		logger:  log,
		tracker: tracker,
	}
}

// ReadOrders returns the stored history, newest first. Absent, unreadable,
// or malformed data reads as empty.
func (s *Store) ReadOrders() []models.LocalOrder {
	raw, ok := s.storage.Read(StorageKey)
	if !ok || raw == "" {
		return []models.LocalOrder{}
	}

	var orders []models.LocalOrder
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.logger.Debug("Discarding malformed order history: %v", err)
		return []models.LocalOrder{}
	}
	if orders == nil {
		return []models.LocalOrder{}
	}
	return orders
}

// WriteOrders persists the full history. Failures are swallowed.
func (s *Store) WriteOrders(orders []models.LocalOrder) {
	raw, err := json.Marshal(orders)
	if err != nil {
		s.logger.Error("Failed to encode order history: %v", err)
		return
	}
	if err := s.storage.Write(StorageKey, string(raw)); err != nil {
		s.logger.Debug("Order history write failed: %v", err)
	}
}

// AddOrder prepends the order to the history and persists it. The returned
// order always carries an id and timestamp; persistence may silently fail.
func (s *Store) AddOrder(order models.LocalOrder) models.LocalOrder {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	s.WriteOrders(append([]models.LocalOrder{order}, s.ReadOrders()...))

	s.tracker.Track(analytics.Event{
		Type:     "order.placed",
		TargetID: order.ID,
		Data: map[string]interface{}{
			"total":    order.Totals.Total,
			"currency": order.Totals.Currency,
			"items":    len(order.Items),
		},
	})

	return order
}

// TargetPurchased scans the order history for a review target. Bundles
// match on a line item's bundle id; products match on a line item's product
// id, any nested bundle item, or any gift-box item.
func (s *Store) TargetPurchased(targetID, targetType string) bool {
	for _, order := range s.ReadOrders() {
		for _, item := range order.Items {
			if targetType == models.ReviewTargetBundle {
				if item.BundleID == targetID {
					return true
				}
				continue
			}
			if item.ProductID == targetID {
				return true
			}
			for _, bundleItem := range item.BundleItems {
				if bundleItem.ProductID == targetID {
					return true
				}
			}
			if item.GiftBox != nil {
				for _, giftItem := range item.GiftBox.Items {
					if giftItem.ProductID == targetID {
						return true
					}
				}
			}
		}
	}
	return false
}
