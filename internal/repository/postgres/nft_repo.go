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

// NftRepo implements repository.NftDB on PostgreSQL
type NftRepo struct {
	pool *pgxpool.Pool
}

func NewNftRepo(pool *pgxpool.Pool) *NftRepo {
	return &NftRepo{pool: pool}
}

const nftColumns = "id, owner_id, title, description, price_cents, created_at"

func (r *NftRepo) CreateNft(ctx context.Context, nft models.Nft) error {
	query := `
		INSERT INTO nfts (id, owner_id, title, description, price_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		nft.NftID, nft.OwnerID, nft.Title, nft.Description, nft.PriceCents, nft.CreatedAt,
	)
	return err
}

func (r *NftRepo) GetNftByID(ctx context.Context, nftID string) (models.Nft, error) {
	var n models.Nft
	err := r.pool.QueryRow(ctx, "SELECT "+nftColumns+" FROM nfts WHERE id = $1", nftID).Scan(
		&n.NftID, &n.OwnerID, &n.Title, &n.Description, &n.PriceCents, &n.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Nft{}, fmt.Errorf("get nft %s: %w", nftID, apperrors.ErrNftNotFound)
	}
	return n, err
}

func (r *NftRepo) ListNfts(ctx context.Context) ([]models.Nft, error) {
	return r.scanNfts(ctx, "SELECT "+nftColumns+" FROM nfts ORDER BY created_at")
}

func (r *NftRepo) ListNftsByOwner(ctx context.Context, ownerID string) ([]models.Nft, error) {
	return r.scanNfts(ctx, "SELECT "+nftColumns+" FROM nfts WHERE owner_id = $1 ORDER BY created_at", ownerID)
}

func (r *NftRepo) scanNfts(ctx context.Context, query string, args ...any) ([]models.Nft, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nfts []models.Nft
	for rows.Next() {
		var n models.Nft
		if err := rows.Scan(&n.NftID, &n.OwnerID, &n.Title, &n.Description, &n.PriceCents, &n.CreatedAt); err != nil {
			return nil, err
		}
		nfts = append(nfts, n)
	}
	return nfts, rows.Err()
}

func (r *NftRepo) UpdateNft(ctx context.Context, nft models.Nft) error {
	query := `
		UPDATE nfts
		SET title = $2, description = $3, price_cents = $4
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, nft.NftID, nft.Title, nft.Description, nft.PriceCents)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update nft %s: %w", nft.NftID, apperrors.ErrNftNotFound)
	}
	return nil
}

func (r *NftRepo) DeleteNft(ctx context.Context, nftID string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM nfts WHERE id = $1", nftID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete nft %s: %w", nftID, apperrors.ErrNftNotFound)
	}
	return nil
}

// GetNftBids runs the composed display query: the NFT with every bid
// across its auctions, joined with the bidders' first names.
func (r *NftRepo) GetNftBids(ctx context.Context, nftID string) (models.NftBids, error) {
	nft, err := r.GetNftByID(ctx, nftID)
	if err != nil {
		return models.NftBids{}, err
	}

	query := `
		SELECT b.id, b.auction_id, b.user_id, u.first_name, b.amount_cents
		FROM bids b
		JOIN auctions a ON b.auction_id = a.id
		JOIN users u ON b.user_id = u.id
		WHERE a.nft_id = $1
		ORDER BY b.created_at`

	rows, err := r.pool.Query(ctx, query, nftID)
	if err != nil {
		return models.NftBids{}, err
	}
	defer rows.Close()

	view := models.NftBids{
		NftID:       nft.NftID,
		Title:       nft.Title,
		Description: nft.Description,
		Bids:        []models.NftBidDetail{},
	}
	for rows.Next() {
		var d models.NftBidDetail
		if err := rows.Scan(&d.BidID, &d.AuctionID, &d.UserID, &d.UserName, &d.AmountCents); err != nil {
			return models.NftBids{}, err
		}
		view.Bids = append(view.Bids, d)
	}
	return view, rows.Err()
}
