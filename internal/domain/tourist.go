package domain

import "time"

type WishlistItem struct {
	ID        uint    `json:"id"`
	TouristID uint    `json:"tourist_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"`

	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint    `json:"id"`
	TouristID uint    `json:"tourist_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PurchaseRecord is one line of a tourist's purchase history. It is also the
// basis of the review purchase gate.
type PurchaseRecord struct {
	ID        uint    `json:"id"`
	TouristID uint    `json:"tourist_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	TotalPaid float64 `json:"total_paid"`
	Product   Product `json:"product"`

	CreatedAt time.Time `json:"created_at"`
}
