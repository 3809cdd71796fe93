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

// UserRepo implements repository.UserDB on PostgreSQL
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = "id, first_name, last_name, email, password_hash, status, role, created_at"

func (r *UserRepo) CreateUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, status, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		user.UserID, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.Status, user.Role, user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", user.Email, apperrors.ErrEmailTaken)
	}
	return err
}

func (r *UserRepo) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", userID)
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Email,
			&u.PasswordHash, &u.Status, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) UpdateUser(ctx context.Context, user models.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, password_hash = $5, status = $6, role = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		user.UserID, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.Status, user.Role,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrEmailTaken)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user %s: %w", user.UserID, apperrors.ErrUserNotFound)
	}
	return nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user %s: %w", userID, apperrors.ErrUserNotFound)
	}
	return nil
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.UserID, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.Status, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, fmt.Errorf("get user: %w", apperrors.ErrUserNotFound)
	}
	return u, err
}
