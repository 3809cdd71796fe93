package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
	"nftfy-api/utils"
)

//go:generate mockgen -source=nft_handler.go -destination=mock_nft_service.go -package=handler

type NftServiceInterface interface {
	CreateNft(ctx context.Context, ownerID, title, description string, priceCents int64) (model.Nft, error)
	GetNft(ctx context.Context, nftID string) (model.Nft, error)
	ListNfts(ctx context.Context) ([]model.Nft, error)
	ListNftsByOwner(ctx context.Context, ownerID string) ([]model.Nft, error)
	UpdateNft(ctx context.Context, callerID, nftID, title, description string, priceCents int64) (model.Nft, error)
	DeleteNft(ctx context.Context, callerID, nftID string) error
	GetNftBids(ctx context.Context, nftID string) (model.NftBids, error)
}

type NftHandler struct {
	service NftServiceInterface
}

func NewNftHandler(service NftServiceInterface) *NftHandler {
	return &NftHandler{service: service}
}

// CreateNftHandler handles POST /api/nfts (seller)
func (h *NftHandler) CreateNftHandler(c *gin.Context) {
	var req helpers.CreateNftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateNftHandler", err)
		return
	}

	callerID := c.GetString(helpers.CtxUserID)
	nft, err := h.service.CreateNft(c.Request.Context(), callerID, req.Title, req.Description, req.PriceCents)
	if err != nil {
		helpers.RespondError(c, "CreateNftHandler", err, map[string]any{"owner_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nft, "nft created successfully")
	helpers.LogSuccess("CreateNftHandler", "nft created successfully", map[string]any{
		"nft_id":   nft.NftID,
		"owner_id": callerID,
	})
}

// GetNftHandler handles GET /api/nfts/:nft_id
func (h *NftHandler) GetNftHandler(c *gin.Context) {
	nftID := c.Param("nft_id")

	nft, err := h.service.GetNft(c.Request.Context(), nftID)
	if err != nil {
		helpers.RespondError(c, "GetNftHandler", err, map[string]any{"nft_id": nftID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nft, "nft retrieved successfully")
}

// ListNftsHandler handles GET /api/nfts
func (h *NftHandler) ListNftsHandler(c *gin.Context) {
	var (
		nfts []model.Nft
		err  error
	)

	if ownerID := c.Query("owner_id"); ownerID != "" {
		nfts, err = h.service.ListNftsByOwner(c.Request.Context(), ownerID)
	} else {
		nfts, err = h.service.ListNfts(c.Request.Context())
	}
	if err != nil {
		helpers.RespondError(c, "ListNftsHandler", err, nil)
		return
	}

	if nfts == nil {
		nfts = []model.Nft{}
	}

	utils.JSONResponse(c, http.StatusOK, nfts, "nfts retrieved successfully")
	helpers.LogSuccess("ListNftsHandler", "nfts retrieved successfully", map[string]any{"count": len(nfts)})
}

// UpdateNftHandler handles PUT /api/nfts/:nft_id (owner)
func (h *NftHandler) UpdateNftHandler(c *gin.Context) {
	var req helpers.UpdateNftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateNftHandler", err)
		return
	}

	nftID := c.Param("nft_id")
	callerID := c.GetString(helpers.CtxUserID)

	nft, err := h.service.UpdateNft(c.Request.Context(), callerID, nftID, req.Title, req.Description, req.PriceCents)
	if err != nil {
		helpers.RespondError(c, "UpdateNftHandler", err, map[string]any{"nft_id": nftID, "caller_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nft, "nft updated successfully")
	helpers.LogSuccess("UpdateNftHandler", "nft updated successfully", map[string]any{"nft_id": nft.NftID})
}

// DeleteNftHandler handles DELETE /api/nfts/:nft_id (owner)
func (h *NftHandler) DeleteNftHandler(c *gin.Context) {
	nftID := c.Param("nft_id")
	callerID := c.GetString(helpers.CtxUserID)

	if err := h.service.DeleteNft(c.Request.Context(), callerID, nftID); err != nil {
		helpers.RespondError(c, "DeleteNftHandler", err, map[string]any{"nft_id": nftID, "caller_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "nft deleted successfully")
	helpers.LogSuccess("DeleteNftHandler", "nft deleted successfully", map[string]any{"nft_id": nftID})
}

// GetNftBidsHandler handles GET /api/nfts/:nft_id/bids
func (h *NftHandler) GetNftBidsHandler(c *gin.Context) {
	nftID := c.Param("nft_id")

	bids, err := h.service.GetNftBids(c.Request.Context(), nftID)
	if err != nil {
		helpers.RespondError(c, "GetNftBidsHandler", err, map[string]any{"nft_id": nftID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "nft bids retrieved successfully")
	helpers.LogSuccess("GetNftBidsHandler", "nft bids retrieved successfully", map[string]any{
		"nft_id": nftID,
		"count":  len(bids.Bids),
	})
}
