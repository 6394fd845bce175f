package response

import "github.com/stripe/stripe-go/v72"

type Auth struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CheckPurchase struct {
	Purchased bool `json:"purchased"`
}

type WishlistToggle struct {
	Wishlisted bool `json:"wishlisted"`
}

// Payment is the structured result the SPA checks explicitly.
type Payment struct {
	Success       bool                  `json:"success"`
	PaymentIntent *stripe.PaymentIntent `json:"paymentIntent,omitempty"`
	Error         string                `json:"error,omitempty"`
}
