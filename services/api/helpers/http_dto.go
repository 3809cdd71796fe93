package helpers

import (
	"time"

	"nftfy-api/internal/models"
)

// Request DTOs

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateNamesRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type UpdateEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DeleteUserRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpdateStatusRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=Active Blocked"`
}

type CreateNftRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
}

type UpdateNftRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
}

type CreateAuctionRequest struct {
	NftID           string    `json:"nft_id" binding:"required"`
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	StartPriceCents int64     `json:"start_price_cents" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}

type SellerRequestRequest struct {
	Address     string    `json:"address" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	IDPhotoURL  string    `json:"id_photo_url" binding:"required"`
}

// Response DTOs

type UserResponse struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type BidResponse struct {
	BidID       string `json:"bid_id"`
	AuctionID   string `json:"auction_id"`
	UserID      string `json:"user_id"`
	AmountCents int64  `json:"amount_cents"`
	CreatedAt   string `json:"created_at"`
}

type SettlementResponse struct {
	SettlementID string `json:"settlement_id"`
	AuctionID    string `json:"auction_id"`
	WinningBidID string `json:"winning_bid_id,omitempty"`
	WinnerID     string `json:"winner_id,omitempty"`
	AmountCents  int64  `json:"amount_cents"`
	Status       string `json:"status"`
	CheckoutURL  string `json:"checkout_url,omitempty"`
}

// NewUserResponse strips the credential fields off a user record
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Status:    u.Status,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponse converts a stored bid for the wire
func NewBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		BidID:       b.BidID,
		AuctionID:   b.AuctionID,
		UserID:      b.UserID,
		AmountCents: b.AmountCents,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewSettlementResponse converts a stored settlement for the wire
func NewSettlementResponse(s models.Settlement) SettlementResponse {
	return SettlementResponse{
		SettlementID: s.SettlementID,
		AuctionID:    s.AuctionID,
		WinningBidID: s.WinningBidID,
		WinnerID:     s.WinnerID,
		AmountCents:  s.AmountCents,
		Status:       s.Status,
		CheckoutURL:  s.CheckoutURL,
	}
}
