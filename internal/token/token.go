// Package token issues and validates the signed bearer tokens used by the API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nftfy-api/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const issuer = "nftfy-api"

// tokenTTL matches the original system's fixed 24 hour expiry
const tokenTTL = 24 * time.Hour

// Claims carries the identity embedded in every issued token
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and parses HS256 bearer tokens
type Service struct {
	secret []byte
}

// NewService creates a token service signing with the given secret
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token for the given user with a 24 hour expiry
func (s *Service) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}
	return signed, nil
}

// Parse validates a signed token and returns its claims
func (s *Service) Parse(signed string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
