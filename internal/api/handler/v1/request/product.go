package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SaveProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Seller      string  `json:"seller"`
}

func (req *SaveProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Seller, validation.Length(0, 100)),
	)
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (req *CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 1000)),
	)
}
