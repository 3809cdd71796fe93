package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of every
// storage interface. It backs the integration tests and benchmarks; the
// bid guard behaves exactly like the conditional insert in the postgres
// implementation.
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]models.User   // key: userID
	usersByEmail map[string]string        // key: email -> userID
	nfts         map[string]models.Nft    // key: nftID
	auctions     map[string]models.Auction
	bids         map[string][]models.Bid  // key: auctionID -> ordered bids
	userAuctions map[string][]string      // key: userID -> auctionIDs the user has bid on
	requests     map[string]models.SellerRequest
	settlements  map[string]models.Settlement // key: auctionID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:        make(map[string]models.User),
		usersByEmail: make(map[string]string),
		nfts:         make(map[string]models.Nft),
		auctions:     make(map[string]models.Auction),
		bids:         make(map[string][]models.Bid),
		userAuctions: make(map[string][]string),
		requests:     make(map[string]models.SellerRequest),
		settlements:  make(map[string]models.Settlement),
	}
}

// --- UserDB ---

func (r *MemoryRepo) CreateUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usersByEmail[user.Email]; taken {
		return fmt.Errorf("create user %s: %w", user.Email, apperrors.ErrEmailTaken)
	}
	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
	return nil
}

func (r *MemoryRepo) GetUserByID(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", userID, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (r *MemoryRepo) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.usersByEmail[email]
	if !ok {
		return models.User{}, fmt.Errorf("get user by email %s: %w", email, apperrors.ErrUserNotFound)
	}
	return r.users[id], nil
}

func (r *MemoryRepo) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (r *MemoryRepo) UpdateUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.users[user.UserID]
	if !ok {
		return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrUserNotFound)
	}
	if old.Email != user.Email {
		if _, taken := r.usersByEmail[user.Email]; taken {
			return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrEmailTaken)
		}
		delete(r.usersByEmail, old.Email)
		r.usersByEmail[user.Email] = user.UserID
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryRepo) DeleteUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("delete user %s: %w", userID, apperrors.ErrUserNotFound)
	}
	delete(r.usersByEmail, user.Email)
	delete(r.users, userID)
	return nil
}

// --- NftDB ---

func (r *MemoryRepo) CreateNft(_ context.Context, nft models.Nft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nfts[nft.NftID] = nft
	return nil
}

func (r *MemoryRepo) GetNftByID(_ context.Context, nftID string) (models.Nft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nft, ok := r.nfts[nftID]
	if !ok {
		return models.Nft{}, fmt.Errorf("get nft %s: %w", nftID, apperrors.ErrNftNotFound)
	}
	return nft, nil
}

func (r *MemoryRepo) ListNfts(_ context.Context) ([]models.Nft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nfts := make([]models.Nft, 0, len(r.nfts))
	for _, n := range r.nfts {
		nfts = append(nfts, n)
	}
	sort.Slice(nfts, func(i, j int) bool { return nfts[i].CreatedAt.Before(nfts[j].CreatedAt) })
	return nfts, nil
}

func (r *MemoryRepo) ListNftsByOwner(_ context.Context, ownerID string) ([]models.Nft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var nfts []models.Nft
	for _, n := range r.nfts {
		if n.OwnerID == ownerID {
			nfts = append(nfts, n)
		}
	}
	sort.Slice(nfts, func(i, j int) bool { return nfts[i].CreatedAt.Before(nfts[j].CreatedAt) })
	return nfts, nil
}

func (r *MemoryRepo) UpdateNft(_ context.Context, nft models.Nft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nfts[nft.NftID]; !ok {
		return fmt.Errorf("update nft %s: %w", nft.NftID, apperrors.ErrNftNotFound)
	}
	r.nfts[nft.NftID] = nft
	return nil
}

func (r *MemoryRepo) DeleteNft(_ context.Context, nftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nfts[nftID]; !ok {
		return fmt.Errorf("delete nft %s: %w", nftID, apperrors.ErrNftNotFound)
	}
	delete(r.nfts, nftID)
	return nil
}

func (r *MemoryRepo) GetNftBids(_ context.Context, nftID string) (models.NftBids, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nft, ok := r.nfts[nftID]
	if !ok {
		return models.NftBids{}, fmt.Errorf("get nft bids %s: %w", nftID, apperrors.ErrNftNotFound)
	}

	view := models.NftBids{
		NftID:       nft.NftID,
		Title:       nft.Title,
		Description: nft.Description,
		Bids:        []models.NftBidDetail{},
	}
	for _, auction := range r.auctions {
		if auction.NftID != nftID {
			continue
		}
		for _, b := range r.bids[auction.AuctionID] {
			detail := models.NftBidDetail{
				BidID:       b.BidID,
				AuctionID:   b.AuctionID,
				UserID:      b.UserID,
				AmountCents: b.AmountCents,
			}
			if bidder, exists := r.users[b.UserID]; exists {
				detail.UserName = bidder.FirstName
			}
			view.Bids = append(view.Bids, detail)
		}
	}
	return view, nil
}

// --- AuctionDB ---

func (r *MemoryRepo) CreateAuction(_ context.Context, auction models.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions[auction.AuctionID] = auction
	return nil
}

func (r *MemoryRepo) GetAuctionByID(_ context.Context, auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	return auction, nil
}

func (r *MemoryRepo) ListAuctions(_ context.Context) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]models.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

func (r *MemoryRepo) ListAuctionsByNft(_ context.Context, nftID string) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []models.Auction
	for _, a := range r.auctions {
		if a.NftID == nftID {
			auctions = append(auctions, a)
		}
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

func (r *MemoryRepo) DeleteAuction(_ context.Context, auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	delete(r.auctions, auctionID)
	delete(r.bids, auctionID)
	return nil
}

func (r *MemoryRepo) ListEndedUnsettled(_ context.Context) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now().UTC()
	var ended []models.Auction
	for _, a := range r.auctions {
		if !a.EndDate.After(now) {
			if _, settled := r.settlements[a.AuctionID]; !settled {
				ended = append(ended, a)
			}
		}
	}
	sort.Slice(ended, func(i, j int) bool { return ended[i].EndDate.Before(ended[j].EndDate) })
	return ended, nil
}

// RecordBid appends a bid. The highest-bid check runs under the write lock
// so two racing bids at the same amount can never both commit.
func (r *MemoryRepo) RecordBid(_ context.Context, bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, apperrors.ErrAuctionNotFound)
	}

	floor := auction.StartPriceCents - 1
	for _, b := range r.bids[bid.AuctionID] {
		if b.AmountCents > floor {
			floor = b.AmountCents
		}
	}
	if bid.AmountCents <= floor {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, apperrors.ErrBidTooLow)
	}

	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)

	for _, id := range r.userAuctions[bid.UserID] {
		if id == bid.AuctionID {
			return nil
		}
	}
	r.userAuctions[bid.UserID] = append(r.userAuctions[bid.UserID], bid.AuctionID)

	return nil
}

// GetBidsByAuction returns all bids for an auction. An unknown auction id
// is ErrAuctionNotFound, an existing auction without bids is ErrNoBids.
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}

	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, apperrors.ErrNoBids)
	}
	return append([]models.Bid(nil), bids...), nil
}

// GetWinningBid returns the highest bid for an auction, earliest bid
// winning equal-amount ties
func (r *MemoryRepo) GetWinningBid(_ context.Context, auctionID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, apperrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.AmountCents > winning.AmountCents || (b.AmountCents == winning.AmountCents && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// GetAuctionsByBidder returns all auctions a user has bid on
func (r *MemoryRepo) GetAuctionsByBidder(_ context.Context, userID string) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionIDs := r.userAuctions[userID]
	auctions := make([]models.Auction, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		if auction, exists := r.auctions[id]; exists {
			auctions = append(auctions, auction)
		}
	}
	return auctions, nil
}

// --- SellerRequestDB ---

func (r *MemoryRepo) CreateSellerRequest(_ context.Context, req models.SellerRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.requests {
		if existing.UserID == req.UserID {
			return fmt.Errorf("create seller request for user %s: %w", req.UserID, apperrors.ErrDuplicateRequest)
		}
	}
	r.requests[req.RequestID] = req
	return nil
}

func (r *MemoryRepo) GetSellerRequestByID(_ context.Context, requestID string) (models.SellerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[requestID]
	if !ok {
		return models.SellerRequest{}, fmt.Errorf("get seller request %s: %w", requestID, apperrors.ErrRequestNotFound)
	}
	return req, nil
}

func (r *MemoryRepo) GetSellerRequestByUser(_ context.Context, userID string) (models.SellerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.UserID == userID {
			return req, nil
		}
	}
	return models.SellerRequest{}, fmt.Errorf("get seller request for user %s: %w", userID, apperrors.ErrRequestNotFound)
}

func (r *MemoryRepo) ListSellerRequests(_ context.Context) ([]models.SellerRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]models.SellerRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].RequestDate.Before(requests[j].RequestDate) })
	return requests, nil
}

func (r *MemoryRepo) UpdateSellerRequest(_ context.Context, req models.SellerRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.RequestID]; !ok {
		return fmt.Errorf("update seller request %s: %w", req.RequestID, apperrors.ErrRequestNotFound)
	}
	r.requests[req.RequestID] = req
	return nil
}

// --- SettlementDB ---

// CreateSettlement inserts the settlement decision for an auction. If a
// settlement already exists for the auction the existing row is returned,
// making the settlement step safe to re-run.
func (r *MemoryRepo) CreateSettlement(_ context.Context, s models.Settlement) (models.Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.settlements[s.AuctionID]; ok {
		return existing, nil
	}
	r.settlements[s.AuctionID] = s
	return s, nil
}

func (r *MemoryRepo) GetSettlementByAuction(_ context.Context, auctionID string) (models.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settlements[auctionID]
	if !ok {
		return models.Settlement{}, fmt.Errorf("get settlement for auction %s: %w", auctionID, apperrors.ErrSettlementNotFound)
	}
	return s, nil
}

func (r *MemoryRepo) GetSettlementBySession(_ context.Context, sessionID string) (models.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.settlements {
		if s.CheckoutSessionID == sessionID && sessionID != "" {
			return s, nil
		}
	}
	return models.Settlement{}, fmt.Errorf("get settlement for session %s: %w", sessionID, apperrors.ErrSettlementNotFound)
}

func (r *MemoryRepo) ListSettlementsByStatus(_ context.Context, status string) ([]models.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Settlement
	for _, s := range r.settlements {
		if s.Status == status {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) UpdateSettlement(_ context.Context, s models.Settlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settlements[s.AuctionID]; !ok {
		return fmt.Errorf("update settlement %s: %w", s.SettlementID, apperrors.ErrSettlementNotFound)
	}
	s.UpdatedAt = time.Now().UTC()
	r.settlements[s.AuctionID] = s
	return nil
}
