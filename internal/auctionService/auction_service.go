package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/models"
	"nftfy-api/internal/repository"
	"nftfy-api/utils"
)

// AuctionService manages the life of an auction from bid acceptance
// through the settlement decision
type AuctionService struct {
	auctions    repository.AuctionDB
	nfts        repository.NftDB
	settlements repository.SettlementDB
	now         func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionDB, nfts repository.NftDB, settlements repository.SettlementDB) *AuctionService {
	return &AuctionService{
		auctions:    auctions,
		nfts:        nfts,
		settlements: settlements,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateAuction lists an NFT for auction. The seller must own the NFT and
// the window must be valid (EndDate strictly after StartDate).
func (s *AuctionService) CreateAuction(ctx context.Context, sellerID, nftID, title, description string, startDate, endDate time.Time, startPriceCents int64) (models.Auction, error) {
	if sellerID == "" || nftID == "" || title == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing seller, nft or title", apperrors.ErrInvalidInput)
	}
	if !endDate.After(startDate) {
		return models.Auction{}, fmt.Errorf("service: %w - end date must be after start date", apperrors.ErrInvalidInput)
	}
	if startPriceCents <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive start price", apperrors.ErrInvalidInput)
	}

	nft, err := s.nfts.GetNftByID(ctx, nftID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load nft %s: %w", nftID, err)
	}
	if nft.OwnerID != sellerID {
		return models.Auction{}, fmt.Errorf("service: %w - nft %s is not owned by seller", apperrors.ErrForbidden, nftID)
	}

	auction := models.Auction{
		AuctionID:       utils.GenerateID(),
		NftID:           nftID,
		SellerID:        sellerID,
		Title:           title,
		Description:     description,
		StartDate:       startDate.UTC(),
		EndDate:         endDate.UTC(),
		StartPriceCents: startPriceCents,
		CreatedAt:       s.now(),
	}

	if err := s.auctions.CreateAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for nft %s: %w", nftID, err)
	}

	return auction, nil
}

// PlaceBid validates and records a user's bid on an open auction. The
// final highest-bid check happens inside the store's conditional insert,
// so a bid that loses a race is rejected even after passing the pre-check
// here.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, userID string, amountCents int64) (models.Bid, error) {
	auction, err := s.validateBid(ctx, auctionID, userID, amountCents)
	if err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:       utils.GenerateID(),
		AuctionID:   auction.AuctionID,
		UserID:      userID,
		AmountCents: amountCents,
		CreatedAt:   s.now(),
	}

	if err := s.auctions.RecordBid(ctx, bid); err != nil {
		if errors.Is(err, apperrors.ErrBidTooLow) {
			return models.Bid{}, fmt.Errorf("service: %w", err)
		}
		return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by user %s: %w", auctionID, userID, err)
	}

	return bid, nil
}

// validateBid checks input validity and business rules for bidding
func (s *AuctionService) validateBid(ctx context.Context, auctionID, userID string, amountCents int64) (models.Auction, error) {
	if auctionID == "" || userID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auctionID or userID", apperrors.ErrInvalidInput)
	}
	if amountCents <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive bid amount", apperrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load auction: %w", err)
	}

	now := s.now()
	if now.Before(auction.StartDate) || !now.Before(auction.EndDate) {
		return models.Auction{}, fmt.Errorf("service: %w - window is [%s, %s)", apperrors.ErrAuctionClosed,
			auction.StartDate.Format(time.RFC3339), auction.EndDate.Format(time.RFC3339))
	}

	if amountCents < auction.StartPriceCents {
		return models.Auction{}, fmt.Errorf("service: %w - start price is %d", apperrors.ErrBidTooLow, auction.StartPriceCents)
	}

	winningBid, err := s.auctions.GetWinningBid(ctx, auctionID)
	if err == nil {
		if amountCents <= winningBid.AmountCents {
			return models.Auction{}, fmt.Errorf("service: %w - current highest bid is %d", apperrors.ErrBidTooLow, winningBid.AmountCents)
		}
	} else if !errors.Is(err, apperrors.ErrNoBids) {
		return models.Auction{}, fmt.Errorf("service: failed to check winning bid: %w", err)
	}

	return auction, nil
}

// SettleAuction closes the auction by persisting the settlement decision.
// The winner is the highest bid, earliest bid winning ties. The call is
// idempotent: settling an already settled auction returns the existing
// settlement. Notification and payment are driven off the returned row by
// the settlement worker.
func (s *AuctionService) SettleAuction(ctx context.Context, auctionID string) (models.Settlement, error) {
	if auctionID == "" {
		return models.Settlement{}, fmt.Errorf("service: %w - empty auction ID", apperrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return models.Settlement{}, fmt.Errorf("service: failed to load auction: %w", err)
	}

	if s.now().Before(auction.EndDate) {
		return models.Settlement{}, fmt.Errorf("service: %w - auction %s ends at %s", apperrors.ErrAuctionNotEnded,
			auctionID, auction.EndDate.Format(time.RFC3339))
	}

	if existing, err := s.settlements.GetSettlementByAuction(ctx, auctionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrSettlementNotFound) {
		return models.Settlement{}, fmt.Errorf("service: failed to check settlement: %w", err)
	}

	now := s.now()
	winningBid, err := s.auctions.GetWinningBid(ctx, auctionID)
	if errors.Is(err, apperrors.ErrNoBids) {
		// Record the unsold outcome so the auction is not revisited,
		// then surface ErrNoBids to the caller.
		unsold := models.Settlement{
			SettlementID: utils.GenerateID(),
			AuctionID:    auctionID,
			Status:       models.SettlementNoBids,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, createErr := s.settlements.CreateSettlement(ctx, unsold); createErr != nil {
			return models.Settlement{}, fmt.Errorf("service: failed to record unsold auction %s: %w", auctionID, createErr)
		}
		return models.Settlement{}, fmt.Errorf("service: settle auction %s: %w", auctionID, apperrors.ErrNoBids)
	}
	if err != nil {
		return models.Settlement{}, fmt.Errorf("service: failed to determine winner for auction %s: %w", auctionID, err)
	}

	settlement := models.Settlement{
		SettlementID: utils.GenerateID(),
		AuctionID:    auctionID,
		WinningBidID: winningBid.BidID,
		WinnerID:     winningBid.UserID,
		AmountCents:  winningBid.AmountCents,
		Status:       models.SettlementPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.settlements.CreateSettlement(ctx, settlement)
	if err != nil {
		return models.Settlement{}, fmt.Errorf("service: failed to persist settlement for auction %s: %w", auctionID, err)
	}

	return created, nil
}

// GetAuction returns a single auction
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", apperrors.ErrInvalidInput)
	}
	auction, err := s.auctions.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns all auctions
func (s *AuctionService) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.auctions.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetBidsForAuction returns all bids for a specific auction
func (s *AuctionService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", apperrors.ErrInvalidInput)
	}

	bids, err := s.auctions.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific auction
func (s *AuctionService) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", apperrors.ErrInvalidInput)
	}

	winningBid, err := s.auctions.GetWinningBid(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	return winningBid, nil
}

// GetAuctionsByBidder returns all auctions a user has placed bids on
func (s *AuctionService) GetAuctionsByBidder(ctx context.Context, userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", apperrors.ErrInvalidInput)
	}

	auctions, err := s.auctions.GetAuctionsByBidder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for user %s: %w", userID, err)
	}

	return auctions, nil
}
