package nft

import (
	"context"
	"fmt"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/models"
	"nftfy-api/internal/repository"
	"nftfy-api/utils"
)

// NftService manages NFT listings and their bid history views
type NftService struct {
	nfts     repository.NftDB
	auctions repository.AuctionDB
}

// NewNftService creates a new NftService instance
func NewNftService(nfts repository.NftDB, auctions repository.AuctionDB) *NftService {
	return &NftService{nfts: nfts, auctions: auctions}
}

// CreateNft lists a new NFT owned by the calling seller
func (s *NftService) CreateNft(ctx context.Context, ownerID, title, description string, priceCents int64) (models.Nft, error) {
	if ownerID == "" || title == "" {
		return models.Nft{}, fmt.Errorf("service: %w - missing owner or title", apperrors.ErrInvalidInput)
	}
	if priceCents < 0 {
		return models.Nft{}, fmt.Errorf("service: %w - negative price", apperrors.ErrInvalidInput)
	}

	item := models.Nft{
		NftID:       utils.GenerateID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		PriceCents:  priceCents,
	}

	if err := s.nfts.CreateNft(ctx, item); err != nil {
		return models.Nft{}, fmt.Errorf("service: failed to create nft: %w", err)
	}
	return item, nil
}

// GetNft returns a single NFT by ID
func (s *NftService) GetNft(ctx context.Context, nftID string) (models.Nft, error) {
	if nftID == "" {
		return models.Nft{}, fmt.Errorf("service: %w - empty nft ID", apperrors.ErrInvalidInput)
	}
	item, err := s.nfts.GetNftByID(ctx, nftID)
	if err != nil {
		return models.Nft{}, fmt.Errorf("service: failed to get nft %s: %w", nftID, err)
	}
	return item, nil
}

// ListNfts returns all listed NFTs
func (s *NftService) ListNfts(ctx context.Context) ([]models.Nft, error) {
	items, err := s.nfts.ListNfts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list nfts: %w", err)
	}
	return items, nil
}

// ListNftsByOwner returns the NFTs owned by one user
func (s *NftService) ListNftsByOwner(ctx context.Context, ownerID string) ([]models.Nft, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", apperrors.ErrInvalidInput)
	}
	items, err := s.nfts.ListNftsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list nfts for owner %s: %w", ownerID, err)
	}
	return items, nil
}

// UpdateNft changes the title, description or price of an NFT. Only the
// owner may update, and title or description changes are refused once the
// NFT has been put up for auction.
func (s *NftService) UpdateNft(ctx context.Context, callerID, nftID, title, description string, priceCents int64) (models.Nft, error) {
	if callerID == "" || nftID == "" || title == "" {
		return models.Nft{}, fmt.Errorf("service: %w - missing caller, nft ID or title", apperrors.ErrInvalidInput)
	}
	if priceCents < 0 {
		return models.Nft{}, fmt.Errorf("service: %w - negative price", apperrors.ErrInvalidInput)
	}

	item, err := s.nfts.GetNftByID(ctx, nftID)
	if err != nil {
		return models.Nft{}, fmt.Errorf("service: failed to load nft %s: %w", nftID, err)
	}
	if item.OwnerID != callerID {
		return models.Nft{}, fmt.Errorf("service: %w - nft %s is not owned by caller", apperrors.ErrForbidden, nftID)
	}

	if title != item.Title || description != item.Description {
		auctions, err := s.auctions.ListAuctionsByNft(ctx, nftID)
		if err != nil {
			return models.Nft{}, fmt.Errorf("service: failed to check auctions for nft %s: %w", nftID, err)
		}
		if len(auctions) > 0 {
			return models.Nft{}, fmt.Errorf("service: %w - nft %s is already listed for auction", apperrors.ErrForbidden, nftID)
		}
	}

	item.Title = title
	item.Description = description
	item.PriceCents = priceCents

	if err := s.nfts.UpdateNft(ctx, item); err != nil {
		return models.Nft{}, fmt.Errorf("service: failed to update nft %s: %w", nftID, err)
	}
	return item, nil
}

// DeleteNft removes an NFT. Only the owner may delete, and deletion is
// refused once the NFT has been put up for auction.
func (s *NftService) DeleteNft(ctx context.Context, callerID, nftID string) error {
	if callerID == "" || nftID == "" {
		return fmt.Errorf("service: %w - missing caller or nft ID", apperrors.ErrInvalidInput)
	}

	item, err := s.nfts.GetNftByID(ctx, nftID)
	if err != nil {
		return fmt.Errorf("service: failed to load nft %s: %w", nftID, err)
	}
	if item.OwnerID != callerID {
		return fmt.Errorf("service: %w - nft %s is not owned by caller", apperrors.ErrForbidden, nftID)
	}

	auctions, err := s.auctions.ListAuctionsByNft(ctx, nftID)
	if err != nil {
		return fmt.Errorf("service: failed to check auctions for nft %s: %w", nftID, err)
	}
	if len(auctions) > 0 {
		return fmt.Errorf("service: %w - nft %s is already listed for auction", apperrors.ErrForbidden, nftID)
	}

	if err := s.nfts.DeleteNft(ctx, nftID); err != nil {
		return fmt.Errorf("service: failed to delete nft %s: %w", nftID, err)
	}
	return nil
}

// GetNftBids returns the bid history across all auctions of an NFT,
// including bidder display names
func (s *NftService) GetNftBids(ctx context.Context, nftID string) (models.NftBids, error) {
	if nftID == "" {
		return models.NftBids{}, fmt.Errorf("service: %w - empty nft ID", apperrors.ErrInvalidInput)
	}

	bids, err := s.nfts.GetNftBids(ctx, nftID)
	if err != nil {
		return models.NftBids{}, fmt.Errorf("service: failed to get bids for nft %s: %w", nftID, err)
	}
	return bids, nil
}
