package orders

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/storage"
)

// brokenStore simulates an unavailable backing store.
type brokenStore struct{}

func (brokenStore) Read(string) (string, bool) { return "", false }

func (brokenStore) Write(string, string) error { return errors.New("quota exceeded") }

func newTestStore() (*Store, *storage.Memory) {
	mem := storage.NewMemory()
	return New(mem, logger.New("error"), nil), mem
}

func TestReadOrdersEmpty(t *testing.T) {
	store, _ := newTestStore()

	assert.Empty(t, store.ReadOrders())
}

func TestReadOrdersMalformed(t *testing.T) {
	store, mem := newTestStore()

	for _, raw := range []string{"not json", `{"orders": true}`, `42`} {
		require.NoError(t, mem.Write(StorageKey, raw))
		assert.Empty(t, store.ReadOrders())
	}
}

func TestAddOrderPrepends(t *testing.T) {
	store, _ := newTestStore()

	first := store.AddOrder(models.LocalOrder{
		Items:  []models.CartItem{{Type: "product", ProductID: "amber-noir-candle", Quantity: 1}},
		Totals: models.OrderTotals{Total: 249.99, Currency: "EGP"},
	})
	before := len(store.ReadOrders())

	second := store.AddOrder(models.LocalOrder{
		Items:  []models.CartItem{{Type: "bundle", BundleID: "evening-unwind", Quantity: 1}},
		Totals: models.OrderTotals{Total: 570.00, Currency: "EGP"},
	})

	orders := store.ReadOrders()
	require.Len(t, orders, before+1)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	assert.NotEmpty(t, second.ID)
	assert.False(t, second.CreatedAt.IsZero())
}

func TestAddOrderSurvivesWriteFailure(t *testing.T) {
	store := New(brokenStore{}, logger.New("error"), nil)

	order := store.AddOrder(models.LocalOrder{
		Totals: models.OrderTotals{Total: 100, Currency: "EGP"},
	})

	// The caller still gets the composed order back even though nothing
	// was persisted.
	assert.NotEmpty(t, order.ID)
	assert.Empty(t, store.ReadOrders())
}

func TestTargetPurchased(t *testing.T) {
	store, _ := newTestStore()
	store.AddOrder(models.LocalOrder{
		Items: []models.CartItem{
			{Type: "product", ProductID: "linen-room-mist", Quantity: 1},
			{
				Type:     "bundle",
				BundleID: "evening-unwind",
				Quantity: 1,
				BundleItems: []models.BundleItem{
					{ProductID: "amber-noir-candle"},
					{ProductID: "cedar-sage-candle"},
				},
			},
			{
				Type:     "gift",
				Quantity: 1,
				GiftBox: &models.GiftBoxSelection{
					StyleID: "kraft-box",
					Items:   []models.GiftBoxItem{{ProductID: "rose-oud-diffuser"}},
				},
			},
		},
	})

	assert.True(t, store.TargetPurchased("evening-unwind", models.ReviewTargetBundle))
	assert.True(t, store.TargetPurchased("linen-room-mist", models.ReviewTargetProduct))
	// Nested bundle item and gift-box item both count as product purchases.
	assert.True(t, store.TargetPurchased("cedar-sage-candle", models.ReviewTargetProduct))
	assert.True(t, store.TargetPurchased("rose-oud-diffuser", models.ReviewTargetProduct))

	assert.False(t, store.TargetPurchased("matchstick-jar", models.ReviewTargetProduct))
	assert.False(t, store.TargetPurchased("fresh-home", models.ReviewTargetBundle))
	// A product id never matches as a bundle target.
	assert.False(t, store.TargetPurchased("linen-room-mist", models.ReviewTargetBundle))
}
