package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CardPaymentRequest struct {
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"` // major currency units
	Currency        string  `json:"currency"`
}

func (req *CardPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PaymentMethodID, validation.Required),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&req.Currency, validation.Length(0, 3)),
	)
}
