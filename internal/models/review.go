package models

import "time"

// Review target types.
const (
	ReviewTargetProduct = "product"
	ReviewTargetBundle  = "bundle"
)

// LocalReview is a submitted review. Immutable once created.
type LocalReview struct {
	ID           string    `json:"id"`
	TargetID     string    `json:"target_id"`
	Type         string    `json:"type"` // product or bundle
	Rating       float64   `json:"rating"`
	Body         string    `json:"body"`
	Title        string    `json:"title,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocalReviewInput is the user-submitted portion of a review. The store
// fills in id, timestamp, and the verified flag.
type LocalReviewInput struct {
	TargetID     string  `json:"target_id"`
	Type         string  `json:"type"`
	Rating       float64 `json:"rating"`
	Body         string  `json:"body"`
	Title        string  `json:"title,omitempty"`
	PhotoURL     string  `json:"photo_url,omitempty"`
	ReviewerName string  `json:"reviewer_name,omitempty"`
}
