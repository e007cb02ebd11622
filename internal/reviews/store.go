package reviews

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"storefront/internal/analytics"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/orders"
	"storefront/internal/storage"
)

// StorageKey holds the serialized review list in submission order.
const StorageKey = "storefront:reviews"

// Store persists reviews through the storage port with the same degraded
// failure behavior as the order store. Verified-purchase checks delegate to
// the order history.
type Store struct {
	storage storage.Store
	orders  *orders.Store
	logger  *logger.Logger
	tracker analytics.Tracker
}

func New(st storage.Store, orderStore *orders.Store, log *logger.Logger, tracker analytics.Tracker) *Store {
	if tracker == nil {
		tracker = analytics.Nop{}
	}
	return &Store{
		storage: st,
		orders:  orderStore,
		logger:  log,
		tracker: tracker,
	}
}

// List returns all stored reviews in submission order. Absent or corrupted
// storage reads as empty.
func (s *Store) List() []models.LocalReview {
	raw, ok := s.storage.Read(StorageKey)
	if !ok || raw == "" {
		return []models.LocalReview{}
	}

	var reviews []models.LocalReview
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		s.logger.Debug("Discarding malformed review data: %v", err)
		return []models.LocalReview{}
	}
	if reviews == nil {
		return []models.LocalReview{}
	}
	return reviews
}

// ListFor filters reviews by exact target id and type, preserving storage
// order.
func (s *Store) ListFor(targetID, targetType string) []models.LocalReview {
	matches := []models.LocalReview{}
	for _, review := range s.List() {
		if review.TargetID == targetID && review.Type == targetType {
			matches = append(matches, review)
		}
	}
	return matches
}

// Add appends a review built from the input, generating its id and
// timestamp and stamping the verified-purchase flag from the order history.
func (s *Store) Add(input models.LocalReviewInput) models.LocalReview {
	review := models.LocalReview{
		ID:           uuid.New().String(),
		TargetID:     input.TargetID,
		Type:         input.Type,
		Rating:       ClampRating(input.Rating),
		Body:         input.Body,
		Title:        input.Title,
		PhotoURL:     input.PhotoURL,
		ReviewerName: input.ReviewerName,
		Verified:     s.orders.TargetPurchased(input.TargetID, input.Type),
		CreatedAt:    time.Now().UTC(),
	}

	s.write(append(s.List(), review))

	s.tracker.Track(analytics.Event{
		Type:     "review.submitted",
		TargetID: review.TargetID,
		Data: map[string]interface{}{
			"rating":   review.Rating,
			"verified": review.Verified,
		},
	})

	return review
}

// IsTargetVerifiedForAnyOrder reports whether any stored order references
// the target. Recomputed on every call, no caching.
func (s *Store) IsTargetVerifiedForAnyOrder(targetID, targetType string) bool {
	return s.orders.TargetPurchased(targetID, targetType)
}

func (s *Store) write(reviews []models.LocalReview) {
	raw, err := json.Marshal(reviews)
	if err != nil {
		s.logger.Error("Failed to encode reviews: %v", err)
		return
	}
	if err := s.storage.Write(StorageKey, string(raw)); err != nil {
		s.logger.Debug("Review write failed: %v", err)
	}
}

// ClampRating rounds a rating to the nearest whole star and clamps it into
// [0, 5].
func ClampRating(rating float64) float64 {
	if math.IsNaN(rating) {
		return 0
	}
	rounded := math.Floor(rating + 0.5)
	if rounded < 0 {
		return 0
	}
	if rounded > 5 {
		return 5
	}
	return rounded
}
