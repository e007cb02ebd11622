package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/orders"
	"storefront/internal/storage"
)

func newTestStore() (*Store, *orders.Store, *storage.Memory) {
	mem := storage.NewMemory()
	log := logger.New("error")
	orderStore := orders.New(mem, log, nil)
	return New(mem, orderStore, log, nil), orderStore, mem
}

func TestListEmptyAndCorrupted(t *testing.T) {
	store, _, mem := newTestStore()

	assert.Empty(t, store.List())

	require.NoError(t, mem.Write(StorageKey, "{broken"))
	assert.Empty(t, store.List())
}

func TestAddAndListFor(t *testing.T) {
	store, _, _ := newTestStore()

	input := models.LocalReviewInput{
		TargetID:     "amber-noir-candle",
		Type:         models.ReviewTargetProduct,
		Rating:       4,
		Title:        "Lovely scent",
		Body:         "Burns evenly, fills the whole room.",
		ReviewerName: "Nour",
	}

	created := store.Add(input)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, input.TargetID, created.TargetID)
	assert.Equal(t, input.Type, created.Type)
	assert.Equal(t, input.Rating, created.Rating)
	assert.Equal(t, input.Title, created.Title)
	assert.Equal(t, input.Body, created.Body)
	assert.Equal(t, input.ReviewerName, created.ReviewerName)

	matches := store.ListFor("amber-noir-candle", models.ReviewTargetProduct)
	require.Len(t, matches, 1)
	assert.Equal(t, created.ID, matches[0].ID)

	assert.Empty(t, store.ListFor("amber-noir-candle", models.ReviewTargetBundle))
	assert.Empty(t, store.ListFor("cedar-sage-candle", models.ReviewTargetProduct))
}

func TestListForPreservesOrder(t *testing.T) {
	store, _, _ := newTestStore()

	a := store.Add(models.LocalReviewInput{TargetID: "x", Type: models.ReviewTargetProduct, Rating: 5, Body: "first"})
	store.Add(models.LocalReviewInput{TargetID: "y", Type: models.ReviewTargetProduct, Rating: 3, Body: "other target"})
	b := store.Add(models.LocalReviewInput{TargetID: "x", Type: models.ReviewTargetProduct, Rating: 2, Body: "second"})

	matches := store.ListFor("x", models.ReviewTargetProduct)
	require.Len(t, matches, 2)
	assert.Equal(t, a.ID, matches[0].ID)
	assert.Equal(t, b.ID, matches[1].ID)
}

func TestVerifiedFlag(t *testing.T) {
	store, orderStore, _ := newTestStore()

	unverified := store.Add(models.LocalReviewInput{
		TargetID: "evening-unwind",
		Type:     models.ReviewTargetBundle,
		Rating:   5,
		Body:     "no purchase yet",
	})
	assert.False(t, unverified.Verified)

	orderStore.AddOrder(models.LocalOrder{
		Items: []models.CartItem{{Type: "bundle", BundleID: "evening-unwind", Quantity: 1}},
	})

	verified := store.Add(models.LocalReviewInput{
		TargetID: "evening-unwind",
		Type:     models.ReviewTargetBundle,
		Rating:   5,
		Body:     "bought it",
	})
	assert.True(t, verified.Verified)
	assert.True(t, store.IsTargetVerifiedForAnyOrder("evening-unwind", models.ReviewTargetBundle))
	assert.False(t, store.IsTargetVerifiedForAnyOrder("fresh-home", models.ReviewTargetBundle))
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 0.0, ClampRating(-3))
	assert.Equal(t, 0.0, ClampRating(0))
	assert.Equal(t, 4.0, ClampRating(3.6))
	assert.Equal(t, 4.0, ClampRating(4.4))
	assert.Equal(t, 5.0, ClampRating(5))
	assert.Equal(t, 5.0, ClampRating(11))
}
