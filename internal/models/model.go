package models

import "time"

// User statuses
const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

// User roles
const (
	RoleUser   = "User"
	RoleSeller = "Seller"
	RoleAdmin  = "Admin"
)

// Seller request statuses
const (
	RequestPending  = "Pending"
	RequestAccepted = "Accepted"
)

// Settlement statuses. A settlement row is created once per auction and
// advanced through these states by the settlement worker.
const (
	SettlementPending         = "pending"
	SettlementNotified        = "notified"
	SettlementAwaitingPayment = "awaiting_payment"
	SettlementPaid            = "paid"
	SettlementNoBids          = "no_bids"
)

// User represents an account in the marketplace
type User struct {
	UserID       string    `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Nft represents a listed token owned by exactly one seller
type Nft struct {
	NftID       string    `json:"nft_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// Auction is a time-boxed sale of one Nft accepting bids in [StartDate, EndDate)
type Auction struct {
	AuctionID       string    `json:"auction_id"`
	NftID           string    `json:"nft_id"`
	SellerID        string    `json:"seller_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	StartPriceCents int64     `json:"start_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

// Bid represents a user's offer against an open auction
type Bid struct {
	BidID       string    `json:"bid_id"`
	AuctionID   string    `json:"auction_id"`
	UserID      string    `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// SellerRequest tracks a user's application for seller privileges
type SellerRequest struct {
	RequestID   string    `json:"request_id"`
	UserID      string    `json:"user_id"`
	Address     string    `json:"address"`
	DateOfBirth time.Time `json:"date_of_birth"`
	IDPhotoURL  string    `json:"id_photo_url"`
	Status      string    `json:"status"`
	RequestDate time.Time `json:"request_date"`
	AcceptDate  time.Time `json:"accept_date"`
}

// Settlement is the persisted outcome of closing an auction. Notification
// and payment are driven off this row so they can be retried after a crash
// without double-notifying or double-charging.
type Settlement struct {
	SettlementID      string    `json:"settlement_id"`
	AuctionID         string    `json:"auction_id"`
	WinningBidID      string    `json:"winning_bid_id"`
	WinnerID          string    `json:"winner_id"`
	AmountCents       int64     `json:"amount_cents"`
	Status            string    `json:"status"`
	CheckoutSessionID string    `json:"checkout_session_id"`
	CheckoutURL       string    `json:"checkout_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NftBidDetail is one bid row in the composed NFT bids view
type NftBidDetail struct {
	BidID       string `json:"bid_id"`
	AuctionID   string `json:"auction_id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	AmountCents int64  `json:"amount_cents"`
}

// NftBids is the composed query result: an NFT with every bid placed
// across its auctions, including bidder names for display.
type NftBids struct {
	NftID       string         `json:"nft_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Bids        []NftBidDetail `json:"bids"`
}
