package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
	"nftfy-api/utils"
)

//go:generate mockgen -source=seller_handler.go -destination=mock_seller_service.go -package=handler

type SellerServiceInterface interface {
	Submit(ctx context.Context, userID, address, idPhotoURL string, dateOfBirth time.Time) (model.SellerRequest, error)
	List(ctx context.Context) ([]model.SellerRequest, error)
	GetByUser(ctx context.Context, userID string) (model.SellerRequest, error)
	Approve(ctx context.Context, requestID string) (model.SellerRequest, error)
}

type SellerHandler struct {
	service SellerServiceInterface
}

func NewSellerHandler(service SellerServiceInterface) *SellerHandler {
	return &SellerHandler{service: service}
}

// SubmitRequestHandler handles POST /api/sellers/requests
func (h *SellerHandler) SubmitRequestHandler(c *gin.Context) {
	var req helpers.SellerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitRequestHandler", err)
		return
	}

	callerID := c.GetString(helpers.CtxUserID)
	request, err := h.service.Submit(c.Request.Context(), callerID, req.Address, req.IDPhotoURL, req.DateOfBirth)
	if err != nil {
		helpers.RespondError(c, "SubmitRequestHandler", err, map[string]any{"user_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, request, "seller request submitted successfully")
	helpers.LogSuccess("SubmitRequestHandler", "seller request submitted successfully", map[string]any{
		"request_id": request.RequestID,
		"user_id":    callerID,
	})
}

// ListRequestsHandler handles GET /api/sellers/requests (admin)
func (h *SellerHandler) ListRequestsHandler(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListRequestsHandler", err, nil)
		return
	}

	if requests == nil {
		requests = []model.SellerRequest{}
	}

	utils.JSONResponse(c, http.StatusOK, requests, "seller requests retrieved successfully")
	helpers.LogSuccess("ListRequestsHandler", "seller requests retrieved successfully", map[string]any{
		"count": len(requests),
	})
}

// GetMyRequestHandler handles GET /api/sellers/requests/me
func (h *SellerHandler) GetMyRequestHandler(c *gin.Context) {
	callerID := c.GetString(helpers.CtxUserID)

	request, err := h.service.GetByUser(c.Request.Context(), callerID)
	if err != nil {
		helpers.RespondError(c, "GetMyRequestHandler", err, map[string]any{"user_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, request, "seller request retrieved successfully")
}

// ApproveRequestHandler handles PUT /api/sellers/requests/:request_id/approve (admin)
func (h *SellerHandler) ApproveRequestHandler(c *gin.Context) {
	requestID := c.Param("request_id")

	request, err := h.service.Approve(c.Request.Context(), requestID)
	if err != nil {
		helpers.RespondError(c, "ApproveRequestHandler", err, map[string]any{"request_id": requestID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, request, "seller request approved successfully")
	helpers.LogSuccess("ApproveRequestHandler", "seller request approved successfully", map[string]any{
		"request_id": request.RequestID,
		"user_id":    request.UserID,
	})
}
