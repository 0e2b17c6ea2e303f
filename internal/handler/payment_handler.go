package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/payment"
	"github.com/flexpass/gympass-backend-go/pkg/response"
)

// PaymentHandler handles HTTP requests for payment intents
type PaymentHandler struct {
	client *payment.Client
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(client *payment.Client) *PaymentHandler {
	return &PaymentHandler{client: client}
}

type createIntentInput struct {
	Amount int64 `json:"amount"` // cents
}

// CreateIntent handles POST /api/v1/payments/intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var input createIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payment payload", err)
		return
	}
	if input.Amount < payment.MinimumAmountCents {
		response.Error(c, http.StatusBadRequest, "Amount required (minimum 50 cents)", nil)
		return
	}

	clientSecret, err := h.client.CreatePaymentIntent(c.Request.Context(), input.Amount)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Failed to create payment intent", err)
		return
	}

	response.Success(c, gin.H{"clientSecret": clientSecret})
}
