package domain

import "time"

// Activity is a bookable tourist activity. It shares the review/rating shape
// of Product but is not purchase-gated.
type Activity struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`

	AverageRating float64  `json:"average_rating"`
	TotalRatings  int      `json:"total_ratings"`
	Reviews       []Review `json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
