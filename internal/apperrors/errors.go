package apperrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNftNotFound        = errors.New("nft not found")
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrNoBids             = errors.New("no bids found for auction")
	ErrRequestNotFound    = errors.New("seller request not found")
	ErrSettlementNotFound = errors.New("settlement not found")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("user is blocked")
	ErrForbidden          = errors.New("operation not allowed")
	ErrAuctionClosed      = errors.New("auction is not open for bidding")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrDuplicateRequest   = errors.New("seller request already submitted")
	ErrAuctionNotEnded    = errors.New("auction has not ended yet")
)
