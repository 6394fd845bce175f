package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateMuseumTagRequest struct {
	Type             string `json:"type" binding:"required"`
	HistoricalPeriod string `json:"historical_period"`
}

func (req *CreateMuseumTagRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required,
			validation.In("Monuments", "Museums", "Religious Sites", "Palaces/Castles")),
		validation.Field(&req.HistoricalPeriod, validation.Length(0, 100)),
	)
}

type SavePreferenceTagRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (req *SavePreferenceTagRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
