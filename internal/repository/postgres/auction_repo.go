package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/models"
)

// AuctionRepo implements repository.AuctionDB on PostgreSQL
type AuctionRepo struct {
	pool *pgxpool.Pool
}

func NewAuctionRepo(pool *pgxpool.Pool) *AuctionRepo {
	return &AuctionRepo{pool: pool}
}

const auctionColumns = "id, nft_id, seller_id, title, description, start_date, end_date, start_price_cents, created_at"

func (r *AuctionRepo) CreateAuction(ctx context.Context, auction models.Auction) error {
	query := `
		INSERT INTO auctions (id, nft_id, seller_id, title, description, start_date, end_date, start_price_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		auction.AuctionID, auction.NftID, auction.SellerID, auction.Title, auction.Description,
		auction.StartDate, auction.EndDate, auction.StartPriceCents, auction.CreatedAt,
	)
	return err
}

func (r *AuctionRepo) GetAuctionByID(ctx context.Context, auctionID string) (models.Auction, error) {
	var a models.Auction
	err := r.pool.QueryRow(ctx, "SELECT "+auctionColumns+" FROM auctions WHERE id = $1", auctionID).Scan(
		&a.AuctionID, &a.NftID, &a.SellerID, &a.Title, &a.Description,
		&a.StartDate, &a.EndDate, &a.StartPriceCents, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	return a, err
}

func (r *AuctionRepo) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	return r.scanAuctions(ctx, "SELECT "+auctionColumns+" FROM auctions ORDER BY created_at")
}

func (r *AuctionRepo) ListAuctionsByNft(ctx context.Context, nftID string) ([]models.Auction, error) {
	return r.scanAuctions(ctx, "SELECT "+auctionColumns+" FROM auctions WHERE nft_id = $1 ORDER BY created_at", nftID)
}

func (r *AuctionRepo) DeleteAuction(ctx context.Context, auctionID string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM auctions WHERE id = $1", auctionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete auction %s: %w", auctionID, apperrors.ErrAuctionNotFound)
	}
	return nil
}

func (r *AuctionRepo) ListEndedUnsettled(ctx context.Context) ([]models.Auction, error) {
	query := `
		SELECT ` + auctionColumns + `
		FROM auctions a
		WHERE a.end_date <= now()
		  AND NOT EXISTS (SELECT 1 FROM settlements s WHERE s.auction_id = a.id)
		ORDER BY a.end_date`
	return r.scanAuctions(ctx, query)
}

// RecordBid appends a bid inside a transaction that locks the auction row
// first, so concurrent bids on the same auction serialize and the floor
// each of them reads is the one its insert commits against. The unique
// (auction_id, amount_cents) constraint backstops the guard.
func (r *AuctionRepo) RecordBid(ctx context.Context, bid models.Bid) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}
	defer tx.Rollback(ctx)

	var startPriceCents int64
	err = tx.QueryRow(ctx,
		"SELECT start_price_cents FROM auctions WHERE id = $1 FOR UPDATE",
		bid.AuctionID).Scan(&startPriceCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, apperrors.ErrAuctionNotFound)
	}
	if err != nil {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}

	var floor int64
	err = tx.QueryRow(ctx,
		"SELECT COALESCE(MAX(amount_cents), $2) FROM bids WHERE auction_id = $1",
		bid.AuctionID, startPriceCents-1).Scan(&floor)
	if err != nil {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}
	if bid.AmountCents <= floor {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, apperrors.ErrBidTooLow)
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO bids (id, auction_id, user_id, amount_cents, created_at) VALUES ($1, $2, $3, $4, $5)",
		bid.BidID, bid.AuctionID, bid.UserID, bid.AmountCents, bid.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, apperrors.ErrBidTooLow)
		}
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

func (r *AuctionRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	query := `
		SELECT id, auction_id, user_id, amount_cents, created_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.UserID, &b.AmountCents, &b.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		// distinguish an auction without bids from an unknown auction id
		if _, err := r.GetAuctionByID(ctx, auctionID); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, apperrors.ErrNoBids)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid, earliest bid winning equal-amount ties
func (r *AuctionRepo) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	query := `
		SELECT id, auction_id, user_id, amount_cents, created_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY amount_cents DESC, created_at ASC
		LIMIT 1`

	var b models.Bid
	err := r.pool.QueryRow(ctx, query, auctionID).Scan(
		&b.BidID, &b.AuctionID, &b.UserID, &b.AmountCents, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, apperrors.ErrNoBids)
	}
	return b, err
}

func (r *AuctionRepo) GetAuctionsByBidder(ctx context.Context, userID string) ([]models.Auction, error) {
	query := `
		SELECT DISTINCT a.id, a.nft_id, a.seller_id, a.title, a.description,
			a.start_date, a.end_date, a.start_price_cents, a.created_at
		FROM auctions a
		JOIN bids b ON b.auction_id = a.id
		WHERE b.user_id = $1
		ORDER BY a.created_at`
	return r.scanAuctions(ctx, query, userID)
}

func (r *AuctionRepo) scanAuctions(ctx context.Context, query string, args ...any) ([]models.Auction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var auctions []models.Auction
	for rows.Next() {
		var a models.Auction
		if err := rows.Scan(&a.AuctionID, &a.NftID, &a.SellerID, &a.Title, &a.Description,
			&a.StartDate, &a.EndDate, &a.StartPriceCents, &a.CreatedAt); err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	return auctions, rows.Err()
}
