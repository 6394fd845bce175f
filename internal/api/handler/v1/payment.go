package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v72"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
)

type PaymentService interface {
	PayByCard(ctx context.Context, paymentMethodID string, amount float64, currency string) (*stripe.PaymentIntent, error)
}

type PaymentHandler struct {
	svc  PaymentService
	uSvc UserService
}

func NewPaymentHandler(svc PaymentService, uSvc UserService) *PaymentHandler {
	return &PaymentHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCardPayment godoc
// @Summary      Charge a card
// @Description  Creates and confirms a card payment intent. Card-declined style failures come back with 200 and success=false so the client can read the processor's message.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input  body      request.CardPaymentRequest  true  "Payment method and amount in major currency units"
// @Success      200  {object}  response.Payment
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/card [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleCardPayment(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CardPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	intent, err := h.svc.PayByCard(ctx.Request.Context(), req.PaymentMethodID, req.Amount, req.Currency)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			ctx.JSON(http.StatusOK, response.Payment{
				Success: false,
				Error:   stripeErr.Msg,
			})
			return
		}

		err = fmt.Errorf("HandleCardPayment -> h.svc.PayByCard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Payment{
		Success:       true,
		PaymentIntent: intent,
	})
}
