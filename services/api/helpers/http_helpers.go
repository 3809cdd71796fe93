package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nftfy-api/internal/apperrors"
	"nftfy-api/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, apperrors.ErrNftNotFound):
		return http.StatusNotFound, "nft not found"
	case errors.Is(err, apperrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, apperrors.ErrRequestNotFound):
		return http.StatusNotFound, "seller request not found"
	case errors.Is(err, apperrors.ErrSettlementNotFound):
		return http.StatusNotFound, "settlement not found"
	case errors.Is(err, apperrors.ErrEmailTaken):
		return http.StatusConflict, "email is already registered"
	case errors.Is(err, apperrors.ErrDuplicateRequest):
		return http.StatusConflict, "seller request already filed"
	case errors.Is(err, apperrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, apperrors.ErrUserBlocked):
		return http.StatusForbidden, "account is blocked"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, apperrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is not open for bidding"
	case errors.Is(err, apperrors.ErrAuctionNotEnded):
		return http.StatusConflict, "auction has not ended yet"
	case errors.Is(err, apperrors.ErrNoBids):
		return http.StatusNotFound, "no bids found"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
	} else {
		utils.Warn(handlerName+": "+message, fields)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// Context keys set by the auth middleware and read by handlers
const (
	CtxUserID   = "auth_user_id"
	CtxUserRole = "auth_user_role"
)
