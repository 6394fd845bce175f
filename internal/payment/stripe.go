// Package payment wraps the Stripe payment-intent API. It is a pass-through:
// no retries, no idempotency keys, no reconciliation.
package payment

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"

	"github.com/vietanh2810/tourista-api/internal/config"
)

type Client struct {
	conf *config.StripeConfig
}

func NewClient(conf *config.StripeConfig) *Client {
	stripe.Key = conf.SecretKey

	return &Client{
		conf: conf,
	}
}

// MinorUnits converts an amount in major currency units to the minor units
// Stripe expects (x100, rounded to the nearest cent).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateCardPaymentIntent charges the given payment method immediately.
// Restricting the intent to card payments keeps redirect-based methods out.
func (c *Client) CreateCardPaymentIntent(ctx context.Context, paymentMethodID string, amount float64, currency string) (*stripe.PaymentIntent, error) {
	if currency == "" {
		currency = c.conf.Currency
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(amount)),
		Currency:           stripe.String(currency),
		PaymentMethod:      stripe.String(paymentMethodID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
	}

	return paymentintent.New(params)
}
