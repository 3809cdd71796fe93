package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nftfy-api/internal/apperrors"
	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
	"nftfy-api/utils"
)

//go:generate mockgen -source=payment_handler.go -destination=mock_payment_service.go -package=handler

type PaymentServiceInterface interface {
	CompletePayment(ctx context.Context, sessionID string) (model.Settlement, error)
}

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(service PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// PaymentSuccessHandler handles GET /api/payments/success. The payment
// provider redirects the winner here after a completed checkout.
func (h *PaymentHandler) PaymentSuccessHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, apperrors.ErrInvalidInput, "missing session_id")
		return
	}

	settlement, err := h.service.CompletePayment(c.Request.Context(), sessionID)
	if err != nil {
		helpers.RespondError(c, "PaymentSuccessHandler", err, map[string]any{"session_id": sessionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSettlementResponse(settlement), "payment completed successfully")
	helpers.LogSuccess("PaymentSuccessHandler", "payment completed successfully", map[string]any{
		"settlement_id": settlement.SettlementID,
		"auction_id":    settlement.AuctionID,
	})
}

// PaymentCancelHandler handles GET /api/payments/cancel. The settlement
// stays in awaiting_payment so the winner can retry from the claim link.
func (h *PaymentHandler) PaymentCancelHandler(c *gin.Context) {
	sessionID := c.Query("session_id")

	utils.JSONResponse(c, http.StatusOK, nil, "payment cancelled")
	utils.Info("PaymentCancelHandler: payment cancelled", map[string]any{"session_id": sessionID})
}
