package domain

import "time"

// TicketPrices holds the per-visitor-category entry fees of a museum.
type TicketPrices struct {
	Foreigner float64 `json:"foreigner"`
	Native    float64 `json:"native"`
	Student   float64 `json:"student"`
}

type Museum struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Pictures     []string     `json:"pictures"`
	Location     string       `json:"location"`
	OpeningHours string       `json:"opening_hours"`
	TicketPrices TicketPrices `json:"ticket_prices"`
	Tags         []string     `json:"tags"`
	Rating       float64      `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
