package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type TicketPrices struct {
	Foreigner float64 `json:"foreigner"`
	Native    float64 `json:"native"`
	Student   float64 `json:"student"`
}

type SaveMuseumRequest struct {
	Name         string       `json:"name" binding:"required"`
	Description  string       `json:"description"`
	Pictures     []string     `json:"pictures"`
	Location     string       `json:"location" binding:"required"`
	OpeningHours string       `json:"opening_hours"`
	TicketPrices TicketPrices `json:"ticket_prices"`
	Tags         []string     `json:"tags"`
	Rating       *float64     `json:"rating"`
}

func (req *SaveMuseumRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.OpeningHours, validation.Length(0, 100)),
		validation.Field(&req.Rating, validation.Min(0.0), validation.Max(5.0)),
	)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(
		&req.TicketPrices,
		validation.Field(&req.TicketPrices.Foreigner, validation.Min(0.0)),
		validation.Field(&req.TicketPrices.Native, validation.Min(0.0)),
		validation.Field(&req.TicketPrices.Student, validation.Min(0.0)),
	)
}
