package repository

import (
	"context"

	"nftfy-api/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// UserDB defines user account storage
type UserDB interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// NftDB defines NFT listing storage
type NftDB interface {
	CreateNft(ctx context.Context, nft models.Nft) error
	GetNftByID(ctx context.Context, nftID string) (models.Nft, error)
	ListNfts(ctx context.Context) ([]models.Nft, error)
	ListNftsByOwner(ctx context.Context, ownerID string) ([]models.Nft, error)
	UpdateNft(ctx context.Context, nft models.Nft) error
	DeleteNft(ctx context.Context, nftID string) error

	// GetNftBids returns the NFT together with every bid across its
	// auctions, joined with the bidders' first names for display.
	GetNftBids(ctx context.Context, nftID string) (models.NftBids, error)
}

// AuctionDB defines auction and bid storage for the auction workflow
type AuctionDB interface {
	CreateAuction(ctx context.Context, auction models.Auction) error
	GetAuctionByID(ctx context.Context, auctionID string) (models.Auction, error)
	ListAuctions(ctx context.Context) ([]models.Auction, error)
	ListAuctionsByNft(ctx context.Context, nftID string) ([]models.Auction, error)
	DeleteAuction(ctx context.Context, auctionID string) error

	// ListEndedUnsettled returns auctions whose window has closed and
	// that have no settlement row yet.
	ListEndedUnsettled(ctx context.Context) ([]models.Auction, error)

	// RecordBid appends a bid only if its amount still beats the current
	// highest bid (and the auction's start price) at commit time. A bid
	// that lost the race fails with ErrBidTooLow.
	RecordBid(ctx context.Context, bid models.Bid) error
	GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error)
	GetAuctionsByBidder(ctx context.Context, userID string) ([]models.Auction, error)
}

// SellerRequestDB defines seller application storage
type SellerRequestDB interface {
	CreateSellerRequest(ctx context.Context, req models.SellerRequest) error
	GetSellerRequestByID(ctx context.Context, requestID string) (models.SellerRequest, error)
	GetSellerRequestByUser(ctx context.Context, userID string) (models.SellerRequest, error)
	ListSellerRequests(ctx context.Context) ([]models.SellerRequest, error)
	UpdateSellerRequest(ctx context.Context, req models.SellerRequest) error
}

// SettlementDB defines settlement outcome storage. CreateSettlement is
// idempotent per auction: creating a second settlement for the same
// auction returns the existing row unchanged.
type SettlementDB interface {
	CreateSettlement(ctx context.Context, s models.Settlement) (models.Settlement, error)
	GetSettlementByAuction(ctx context.Context, auctionID string) (models.Settlement, error)
	GetSettlementBySession(ctx context.Context, sessionID string) (models.Settlement, error)
	ListSettlementsByStatus(ctx context.Context, status string) ([]models.Settlement, error)
	UpdateSettlement(ctx context.Context, s models.Settlement) error
}
