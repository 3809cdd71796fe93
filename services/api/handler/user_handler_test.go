package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"nftfy-api/internal/apperrors"
	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
)

// Test RegisterHandler
func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/users/register", handler.RegisterHandler)

	validBody := helpers.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse",
	}

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), "Ada", "Lovelace", "ada@example.com", "correct-horse").
			Return(model.User{
				UserID:       "user1",
				FirstName:    "Ada",
				LastName:     "Lovelace",
				Email:        "ada@example.com",
				PasswordHash: "$2a$10$secret",
				Status:       model.StatusActive,
				Role:         model.RoleUser,
			}, nil)

		w := performJSON(t, router, http.MethodPost, "/api/users/register", validBody)
		require.Equal(t, http.StatusCreated, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, "user1", data["user_id"])
		require.Equal(t, model.RoleUser, data["role"])
		// credential material never leaves the API
		require.NotContains(t, w.Body.String(), "secret")
		require.NotContains(t, data, "password_hash")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), "Ada", "Lovelace", "ada@example.com", "correct-horse").
			Return(model.User{}, fmt.Errorf("service: %w", apperrors.ErrEmailTaken))

		w := performJSON(t, router, http.MethodPost, "/api/users/register", validBody)
		require.Equal(t, http.StatusConflict, w.Code)

		envelope := decodeEnvelope(t, w)
		require.Equal(t, "email is already registered", envelope["message"])
	})

	t.Run("short_password_fails_binding", func(t *testing.T) {
		short := validBody
		short.Password = "abc"

		w := performJSON(t, router, http.MethodPost, "/api/users/register", short)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed_email_fails_binding", func(t *testing.T) {
		bad := validBody
		bad.Email = "not-an-email"

		w := performJSON(t, router, http.MethodPost, "/api/users/register", bad)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/users/login", handler.LoginHandler)

	body := helpers.LoginRequest{Email: "ada@example.com", Password: "correct-horse"}

	t.Run("success_returns_token", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "ada@example.com", "correct-horse").
			Return(model.User{UserID: "user1", Email: "ada@example.com"}, "signed.jwt.token", nil)

		w := performJSON(t, router, http.MethodPost, "/api/users/login", body)
		require.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, "signed.jwt.token", data["token"])
		user := data["user"].(map[string]any)
		require.Equal(t, "user1", user["user_id"])
	})

	t.Run("bad_credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "ada@example.com", "correct-horse").
			Return(model.User{}, "", fmt.Errorf("service: %w", apperrors.ErrInvalidCredentials))

		w := performJSON(t, router, http.MethodPost, "/api/users/login", body)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("blocked_account", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "ada@example.com", "correct-horse").
			Return(model.User{}, "", fmt.Errorf("service: %w", apperrors.ErrUserBlocked))

		w := performJSON(t, router, http.MethodPost, "/api/users/login", body)
		require.Equal(t, http.StatusForbidden, w.Code)

		envelope := decodeEnvelope(t, w)
		require.Equal(t, "account is blocked", envelope["message"])
	})
}

// Test UpdateStatusHandler
func TestUpdateStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockUserServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/users/status", asUser("admin1", model.RoleAdmin), handler.UpdateStatusHandler)

	t.Run("blocks_user", func(t *testing.T) {
		mockService.EXPECT().
			UpdateStatus(gomock.Any(), "user1", model.StatusBlocked).
			Return(model.User{UserID: "user1", Status: model.StatusBlocked}, nil)

		w := performJSON(t, router, http.MethodPut, "/api/users/status",
			helpers.UpdateStatusRequest{UserID: "user1", Status: model.StatusBlocked})
		require.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, model.StatusBlocked, data["status"])
	})

	t.Run("unknown_status_fails_binding", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/api/users/status",
			map[string]string{"user_id": "user1", "status": "Suspended"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown_user", func(t *testing.T) {
		mockService.EXPECT().
			UpdateStatus(gomock.Any(), "ghost", model.StatusBlocked).
			Return(model.User{}, fmt.Errorf("service: %w", apperrors.ErrUserNotFound))

		w := performJSON(t, router, http.MethodPut, "/api/users/status",
			helpers.UpdateStatusRequest{UserID: "ghost", Status: model.StatusBlocked})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
