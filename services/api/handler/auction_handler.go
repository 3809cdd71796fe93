package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nftfy-api/internal/apperrors"
	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
	"nftfy-api/utils"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_service.go -package=handler

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, sellerID, nftID, title, description string, startDate, endDate time.Time, startPriceCents int64) (model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	PlaceBid(ctx context.Context, auctionID, userID string, amountCents int64) (model.Bid, error)
	GetBidsForAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, auctionID string) (model.Bid, error)
	GetAuctionsByBidder(ctx context.Context, userID string) ([]model.Auction, error)
	SettleAuction(ctx context.Context, auctionID string) (model.Settlement, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /api/auctions (seller)
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	callerID := c.GetString(helpers.CtxUserID)
	auction, err := h.service.CreateAuction(c.Request.Context(), callerID, req.NftID, req.Title, req.Description,
		req.StartDate, req.EndDate, req.StartPriceCents)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{
			"nft_id":    req.NftID,
			"seller_id": callerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"nft_id":     auction.NftID,
	})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(auctions)})
}

// PlaceBidHandler handles POST /api/auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	callerID := c.GetString(helpers.CtxUserID)

	bid, err := h.service.PlaceBid(c.Request.Context(), auctionID, callerID, req.AmountCents)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    callerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":       bid.BidID,
		"auction_id":   bid.AuctionID,
		"user_id":      callerID,
		"amount_cents": bid.AmountCents,
	})
}

// GetBidsByAuctionHandler handles GET /api/auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil && !errors.Is(err, apperrors.ErrNoBids) {
		helpers.RespondError(c, "GetBidsByAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /api/auctions/:auction_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bid, err := h.service.GetWinningBid(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
	})
}

// GetMyBidAuctionsHandler handles GET /api/users/me/auctions
func (h *AuctionHandler) GetMyBidAuctionsHandler(c *gin.Context) {
	callerID := c.GetString(helpers.CtxUserID)

	auctions, err := h.service.GetAuctionsByBidder(c.Request.Context(), callerID)
	if err != nil {
		helpers.RespondError(c, "GetMyBidAuctionsHandler", err, map[string]any{"user_id": callerID})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetMyBidAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"user_id": callerID,
		"count":   len(auctions),
	})
}

// SettleAuctionHandler handles POST /api/auctions/:auction_id/settle (admin)
func (h *AuctionHandler) SettleAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	settlement, err := h.service.SettleAuction(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoBids) {
			utils.JSONResponse(c, http.StatusOK, nil, "auction closed without bids")
			utils.Info("SettleAuctionHandler: auction closed without bids", map[string]any{"auction_id": auctionID})
			return
		}
		helpers.RespondError(c, "SettleAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSettlementResponse(settlement), "auction settled successfully")
	helpers.LogSuccess("SettleAuctionHandler", "auction settled successfully", map[string]any{
		"auction_id":    auctionID,
		"settlement_id": settlement.SettlementID,
	})
}
