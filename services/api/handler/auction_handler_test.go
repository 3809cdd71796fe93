package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"nftfy-api/internal/apperrors"
	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
)

// asUser injects the identity the auth middleware would set
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.CtxUserID, userID)
		c.Set(helpers.CtxUserRole, role)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auctions/:auction_id/bids", asUser("user1", model.RoleUser), handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{AmountCents: 15000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", int64(15000)).
					Return(model.Bid{
						BidID:       uuid.NewString(),
						AuctionID:   "auction1",
						UserID:      "user1",
						AmountCents: 15000,
						CreatedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "user1", data["user_id"])
				require.Equal(t, float64(15000), data["amount_cents"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "zero_amount_fails_binding",
			requestBody:    map[string]any{"amount_cents": 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "bid_too_low_maps_to_conflict",
			requestBody: helpers.PlaceBidRequest{AmountCents: 100},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", int64(100)).
					Return(model.Bid{}, fmt.Errorf("service: %w", apperrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "closed_auction_maps_to_conflict",
			requestBody: helpers.PlaceBidRequest{AmountCents: 15000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", int64(15000)).
					Return(model.Bid{}, fmt.Errorf("service: %w", apperrors.ErrAuctionClosed))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction is not open for bidding",
		},
		{
			name:        "unknown_auction_maps_to_not_found",
			requestBody: helpers.PlaceBidRequest{AmountCents: 15000},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", int64(15000)).
					Return(model.Bid{}, fmt.Errorf("service: %w", apperrors.ErrAuctionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := performJSON(t, router, http.MethodPost, "/api/auctions/auction1/bids", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)

			envelope := decodeEnvelope(t, w)
			require.Equal(t, tt.expectedMsg, envelope["message"])

			if tt.validateData != nil {
				data, ok := envelope["data"].(map[string]any)
				require.True(t, ok)
				tt.validateData(t, data)
			}
		})
	}
}

// Test GetWinningBidHandler
func TestGetWinningBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auctions/:auction_id/winning", handler.GetWinningBidHandler)

	t.Run("returns_highest_bid", func(t *testing.T) {
		mockService.EXPECT().GetWinningBid(gomock.Any(), "auction1").
			Return(model.Bid{BidID: "bid1", AuctionID: "auction1", AmountCents: 15000}, nil)

		w := performJSON(t, router, http.MethodGet, "/api/auctions/auction1/winning", nil)
		require.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, float64(15000), data["amount_cents"])
	})

	t.Run("no_bids_returns_not_found", func(t *testing.T) {
		mockService.EXPECT().GetWinningBid(gomock.Any(), "auction1").
			Return(model.Bid{}, fmt.Errorf("service: %w", apperrors.ErrNoBids))

		w := performJSON(t, router, http.MethodGet, "/api/auctions/auction1/winning", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		envelope := decodeEnvelope(t, w)
		require.Equal(t, "no winning bid found", envelope["message"])
	})
}

// Test SettleAuctionHandler
func TestSettleAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auctions/:auction_id/settle", asUser("admin1", model.RoleAdmin), handler.SettleAuctionHandler)

	t.Run("settles_ended_auction", func(t *testing.T) {
		mockService.EXPECT().SettleAuction(gomock.Any(), "auction1").
			Return(model.Settlement{
				SettlementID: "settlement1",
				AuctionID:    "auction1",
				WinnerID:     "winner1",
				AmountCents:  15000,
				Status:       model.SettlementPending,
			}, nil)

		w := performJSON(t, router, http.MethodPost, "/api/auctions/auction1/settle", nil)
		require.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		data := envelope["data"].(map[string]any)
		require.Equal(t, "winner1", data["winner_id"])
		require.Equal(t, model.SettlementPending, data["status"])
	})

	t.Run("no_bids_is_ok", func(t *testing.T) {
		mockService.EXPECT().SettleAuction(gomock.Any(), "auction1").
			Return(model.Settlement{}, fmt.Errorf("service: %w", apperrors.ErrNoBids))

		w := performJSON(t, router, http.MethodPost, "/api/auctions/auction1/settle", nil)
		require.Equal(t, http.StatusOK, w.Code)

		envelope := decodeEnvelope(t, w)
		require.Equal(t, "auction closed without bids", envelope["message"])
	})

	t.Run("still_open_is_conflict", func(t *testing.T) {
		mockService.EXPECT().SettleAuction(gomock.Any(), "auction1").
			Return(model.Settlement{}, fmt.Errorf("service: %w", apperrors.ErrAuctionNotEnded))

		w := performJSON(t, router, http.MethodPost, "/api/auctions/auction1/settle", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
