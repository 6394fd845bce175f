package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type WishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func (req *WishlistRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required, validation.Min(uint(1))),
	)
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

func (req *AddToCartRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type PurchaseRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type SaveActivityRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

func (req *SaveActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.Price, validation.Min(0.0)),
	)
}
