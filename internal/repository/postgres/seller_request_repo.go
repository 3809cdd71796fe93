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

// SellerRequestRepo implements repository.SellerRequestDB on PostgreSQL
type SellerRequestRepo struct {
	pool *pgxpool.Pool
}

func NewSellerRequestRepo(pool *pgxpool.Pool) *SellerRequestRepo {
	return &SellerRequestRepo{pool: pool}
}

const requestColumns = "id, user_id, address, date_of_birth, id_photo_url, status, request_date, accept_date"

func (r *SellerRequestRepo) CreateSellerRequest(ctx context.Context, req models.SellerRequest) error {
	query := `
		INSERT INTO seller_requests (id, user_id, address, date_of_birth, id_photo_url, status, request_date, accept_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		req.RequestID, req.UserID, req.Address, req.DateOfBirth,
		req.IDPhotoURL, req.Status, req.RequestDate, req.AcceptDate,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create seller request for user %s: %w", req.UserID, apperrors.ErrDuplicateRequest)
	}
	return err
}

func (r *SellerRequestRepo) GetSellerRequestByID(ctx context.Context, requestID string) (models.SellerRequest, error) {
	return r.scanRequest(ctx, "SELECT "+requestColumns+" FROM seller_requests WHERE id = $1", requestID)
}

func (r *SellerRequestRepo) GetSellerRequestByUser(ctx context.Context, userID string) (models.SellerRequest, error) {
	return r.scanRequest(ctx, "SELECT "+requestColumns+" FROM seller_requests WHERE user_id = $1", userID)
}

func (r *SellerRequestRepo) ListSellerRequests(ctx context.Context) ([]models.SellerRequest, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+requestColumns+" FROM seller_requests ORDER BY request_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.SellerRequest
	for rows.Next() {
		var req models.SellerRequest
		if err := rows.Scan(&req.RequestID, &req.UserID, &req.Address, &req.DateOfBirth,
			&req.IDPhotoURL, &req.Status, &req.RequestDate, &req.AcceptDate); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *SellerRequestRepo) UpdateSellerRequest(ctx context.Context, req models.SellerRequest) error {
	query := `
		UPDATE seller_requests
		SET address = $2, date_of_birth = $3, id_photo_url = $4, status = $5, accept_date = $6
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		req.RequestID, req.Address, req.DateOfBirth, req.IDPhotoURL, req.Status, req.AcceptDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update seller request %s: %w", req.RequestID, apperrors.ErrRequestNotFound)
	}
	return nil
}

func (r *SellerRequestRepo) scanRequest(ctx context.Context, query string, arg any) (models.SellerRequest, error) {
	var req models.SellerRequest
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&req.RequestID, &req.UserID, &req.Address, &req.DateOfBirth,
		&req.IDPhotoURL, &req.Status, &req.RequestDate, &req.AcceptDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.SellerRequest{}, fmt.Errorf("get seller request: %w", apperrors.ErrRequestNotFound)
	}
	return req, err
}
