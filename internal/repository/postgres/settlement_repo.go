package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/models"
)

// SettlementRepo implements repository.SettlementDB on PostgreSQL
type SettlementRepo struct {
	pool *pgxpool.Pool
}

func NewSettlementRepo(pool *pgxpool.Pool) *SettlementRepo {
	return &SettlementRepo{pool: pool}
}

const settlementColumns = "id, auction_id, winning_bid_id, winner_id, amount_cents, status, checkout_session_id, checkout_url, created_at, updated_at"

// CreateSettlement inserts the settlement decision. The unique constraint
// on auction_id plus ON CONFLICT DO NOTHING makes the call idempotent: a
// second invocation for the same auction returns the row written first.
func (r *SettlementRepo) CreateSettlement(ctx context.Context, s models.Settlement) (models.Settlement, error) {
	query := `
		INSERT INTO settlements (id, auction_id, winning_bid_id, winner_id, amount_cents, status, checkout_session_id, checkout_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (auction_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		s.SettlementID, s.AuctionID, s.WinningBidID, s.WinnerID, s.AmountCents,
		s.Status, s.CheckoutSessionID, s.CheckoutURL, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return models.Settlement{}, fmt.Errorf("create settlement for auction %s: %w", s.AuctionID, err)
	}
	return r.GetSettlementByAuction(ctx, s.AuctionID)
}

func (r *SettlementRepo) GetSettlementByAuction(ctx context.Context, auctionID string) (models.Settlement, error) {
	return r.scanSettlement(ctx, "SELECT "+settlementColumns+" FROM settlements WHERE auction_id = $1", auctionID)
}

func (r *SettlementRepo) GetSettlementBySession(ctx context.Context, sessionID string) (models.Settlement, error) {
	return r.scanSettlement(ctx, "SELECT "+settlementColumns+" FROM settlements WHERE checkout_session_id = $1 AND checkout_session_id <> ''", sessionID)
}

func (r *SettlementRepo) ListSettlementsByStatus(ctx context.Context, status string) ([]models.Settlement, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+settlementColumns+" FROM settlements WHERE status = $1 ORDER BY created_at", status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		var s models.Settlement
		if err := rows.Scan(&s.SettlementID, &s.AuctionID, &s.WinningBidID, &s.WinnerID, &s.AmountCents,
			&s.Status, &s.CheckoutSessionID, &s.CheckoutURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}

func (r *SettlementRepo) UpdateSettlement(ctx context.Context, s models.Settlement) error {
	query := `
		UPDATE settlements
		SET status = $2, checkout_session_id = $3, checkout_url = $4, updated_at = $5
		WHERE auction_id = $1`

	tag, err := r.pool.Exec(ctx, query,
		s.AuctionID, s.Status, s.CheckoutSessionID, s.CheckoutURL, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update settlement %s: %w", s.SettlementID, apperrors.ErrSettlementNotFound)
	}
	return nil
}

func (r *SettlementRepo) scanSettlement(ctx context.Context, query string, arg any) (models.Settlement, error) {
	var s models.Settlement
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&s.SettlementID, &s.AuctionID, &s.WinningBidID, &s.WinnerID, &s.AmountCents,
		&s.Status, &s.CheckoutSessionID, &s.CheckoutURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Settlement{}, fmt.Errorf("get settlement: %w", apperrors.ErrSettlementNotFound)
	}
	return s, err
}
