package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v72"
)

type PaymentClient interface {
	CreateCardPaymentIntent(ctx context.Context, paymentMethodID string, amount float64, currency string) (*stripe.PaymentIntent, error)
}

type PaymentService struct {
	client PaymentClient
}

func NewPaymentService(client PaymentClient) *PaymentService {
	return &PaymentService{
		client: client,
	}
}

// PayByCard submits the payment for immediate confirmation and returns the
// processor's intent object. Failures carry the processor's error through
// unchanged; the handler surfaces its message. A double submit creates two
// charges -- there is no idempotency layer.
func (s *PaymentService) PayByCard(ctx context.Context, paymentMethodID string, amount float64, currency string) (*stripe.PaymentIntent, error) {
	intent, err := s.client.CreateCardPaymentIntent(ctx, paymentMethodID, amount, currency)
	if err != nil {
		return nil, fmt.Errorf("s.client.CreateCardPaymentIntent -> %w", err)
	}

	return intent, nil
}
