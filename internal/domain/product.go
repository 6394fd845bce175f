package domain

import "time"

type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Seller      string  `json:"seller"`
	OwnerID     uint    `json:"owner_id"`
	Archived    bool    `json:"archived"`
	Sales       int     `json:"sales"`

	AverageRating float64  `json:"average_rating"`
	TotalRatings  int      `json:"total_ratings"`
	Reviews       []Review `json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
