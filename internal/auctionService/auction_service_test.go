package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"nftfy-api/internal/apperrors"
	model "nftfy-api/internal/models"
	"nftfy-api/internal/repository"
)

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionDB(ctrl)
	mockNfts := repository.NewMockNftDB(ctrl)
	mockSettlements := repository.NewMockSettlementDB(ctrl)
	service := NewAuctionService(mockAuctions, mockNfts, mockSettlements)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	openAuction := model.Auction{
		AuctionID:       "auction1",
		NftID:           "nft1",
		SellerID:        "seller1",
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
		StartPriceCents: 10000,
	}

	tests := []struct {
		name          string
		auctionID     string
		userID        string
		amountCents   int64
		mockSetup     func()
		expectedError error
	}{
		{
			name:        "valid_first_bid",
			auctionID:   "auction1",
			userID:      "user1",
			amountCents: 10000,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(openAuction, nil)
				mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(model.Bid{}, apperrors.ErrNoBids)
				mockAuctions.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			userID:        "user1",
			amountCents:   10000,
			mockSetup:     func() {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "empty_userID",
			auctionID:     "auction1",
			userID:        "",
			amountCents:   10000,
			mockSetup:     func() {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			auctionID:     "auction1",
			userID:        "user1",
			amountCents:   0,
			mockSetup:     func() {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:        "below_start_price",
			auctionID:   "auction1",
			userID:      "user1",
			amountCents: 9999,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(openAuction, nil)
			},
			expectedError: apperrors.ErrBidTooLow,
		},
		{
			name:        "not_above_current_highest",
			auctionID:   "auction1",
			userID:      "user2",
			amountCents: 15000,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(openAuction, nil)
				mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(model.Bid{AmountCents: 15000}, nil)
			},
			expectedError: apperrors.ErrBidTooLow,
		},
		{
			name:        "auction_not_started",
			auctionID:   "auction1",
			userID:      "user1",
			amountCents: 10000,
			mockSetup: func() {
				future := openAuction
				future.StartDate = now.Add(time.Hour)
				future.EndDate = now.Add(2 * time.Hour)
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(future, nil)
			},
			expectedError: apperrors.ErrAuctionClosed,
		},
		{
			name:        "auction_ended",
			auctionID:   "auction1",
			userID:      "user1",
			amountCents: 10000,
			mockSetup: func() {
				ended := openAuction
				ended.StartDate = now.Add(-2 * time.Hour)
				ended.EndDate = now.Add(-time.Hour)
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(ended, nil)
			},
			expectedError: apperrors.ErrAuctionClosed,
		},
		{
			name:        "auction_not_found",
			auctionID:   "missing",
			userID:      "user1",
			amountCents: 10000,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "missing").Return(model.Auction{}, apperrors.ErrAuctionNotFound)
			},
			expectedError: apperrors.ErrAuctionNotFound,
		},
		{
			name:        "lost_race_at_commit",
			auctionID:   "auction1",
			userID:      "user3",
			amountCents: 20000,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(openAuction, nil)
				mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(model.Bid{AmountCents: 15000}, nil)
				mockAuctions.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(apperrors.ErrBidTooLow)
			},
			expectedError: apperrors.ErrBidTooLow,
		},
		{
			name:        "repo_fails",
			auctionID:   "auction1",
			userID:      "user4",
			amountCents: 20000,
			mockSetup: func() {
				mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(openAuction, nil)
				mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(model.Bid{AmountCents: 15000}, nil)
				mockAuctions.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(errors.New("repo write failed"))
			},
			expectedError: nil, // wrapped repo error, no sentinel to match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			bid, err := service.PlaceBid(context.Background(), tt.auctionID, tt.userID, tt.amountCents)

			if tt.name == "valid_first_bid" {
				require.NoError(t, err)
				require.NotEmpty(t, bid.BidID)
				require.Equal(t, tt.auctionID, bid.AuctionID)
				require.Equal(t, tt.userID, bid.UserID)
				require.Equal(t, tt.amountCents, bid.AmountCents)
				require.Equal(t, now, bid.CreatedAt)
				return
			}

			require.Error(t, err)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			}
		})
	}
}

// Tests SettleAuction
func TestAuctionService_SettleAuction(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	endedAuction := model.Auction{
		AuctionID:       "auction1",
		NftID:           "nft1",
		StartDate:       now.Add(-48 * time.Hour),
		EndDate:         now.Add(-time.Hour),
		StartPriceCents: 5000,
	}

	winning := model.Bid{
		BidID:       "bid-high",
		AuctionID:   "auction1",
		UserID:      "winner1",
		AmountCents: 15000,
		CreatedAt:   now.Add(-2 * time.Hour),
	}

	newService := func(t *testing.T) (*AuctionService, *repository.MockAuctionDB, *repository.MockSettlementDB) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockAuctions := repository.NewMockAuctionDB(ctrl)
		mockSettlements := repository.NewMockSettlementDB(ctrl)
		service := NewAuctionService(mockAuctions, repository.NewMockNftDB(ctrl), mockSettlements)
		service.now = func() time.Time { return now }
		return service, mockAuctions, mockSettlements
	}

	t.Run("settles_with_highest_bid", func(t *testing.T) {
		service, mockAuctions, mockSettlements := newService(t)

		mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(endedAuction, nil)
		mockSettlements.EXPECT().GetSettlementByAuction(gomock.Any(), "auction1").
			Return(model.Settlement{}, apperrors.ErrSettlementNotFound)
		mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(winning, nil)
		mockSettlements.EXPECT().CreateSettlement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s model.Settlement) (model.Settlement, error) {
				require.Equal(t, "auction1", s.AuctionID)
				require.Equal(t, "bid-high", s.WinningBidID)
				require.Equal(t, "winner1", s.WinnerID)
				require.Equal(t, int64(15000), s.AmountCents)
				require.Equal(t, model.SettlementPending, s.Status)
				return s, nil
			})

		settlement, err := service.SettleAuction(context.Background(), "auction1")
		require.NoError(t, err)
		require.Equal(t, "winner1", settlement.WinnerID)
	})

	t.Run("idempotent_returns_existing", func(t *testing.T) {
		service, mockAuctions, mockSettlements := newService(t)

		existing := model.Settlement{
			SettlementID: "settlement1",
			AuctionID:    "auction1",
			WinnerID:     "winner1",
			Status:       model.SettlementNotified,
		}
		mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(endedAuction, nil)
		mockSettlements.EXPECT().GetSettlementByAuction(gomock.Any(), "auction1").Return(existing, nil)

		settlement, err := service.SettleAuction(context.Background(), "auction1")
		require.NoError(t, err)
		require.Equal(t, existing, settlement)
	})

	t.Run("rejects_open_auction", func(t *testing.T) {
		service, mockAuctions, _ := newService(t)

		open := endedAuction
		open.EndDate = now.Add(time.Hour)
		mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(open, nil)

		_, err := service.SettleAuction(context.Background(), "auction1")
		require.ErrorIs(t, err, apperrors.ErrAuctionNotEnded)
	})

	t.Run("no_bids_records_unsold_outcome", func(t *testing.T) {
		service, mockAuctions, mockSettlements := newService(t)

		mockAuctions.EXPECT().GetAuctionByID(gomock.Any(), "auction1").Return(endedAuction, nil)
		mockSettlements.EXPECT().GetSettlementByAuction(gomock.Any(), "auction1").
			Return(model.Settlement{}, apperrors.ErrSettlementNotFound)
		mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").Return(model.Bid{}, apperrors.ErrNoBids)
		mockSettlements.EXPECT().CreateSettlement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s model.Settlement) (model.Settlement, error) {
				require.Equal(t, model.SettlementNoBids, s.Status)
				require.Empty(t, s.WinnerID)
				return s, nil
			})

		_, err := service.SettleAuction(context.Background(), "auction1")
		require.ErrorIs(t, err, apperrors.ErrNoBids)
	})
}

// Tests CreateAuction
func TestAuctionService_CreateAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionDB(ctrl)
	mockNfts := repository.NewMockNftDB(ctrl)
	service := NewAuctionService(mockAuctions, mockNfts, repository.NewMockSettlementDB(ctrl))

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	t.Run("success", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").
			Return(model.Nft{NftID: "nft1", OwnerID: "seller1"}, nil)
		mockAuctions.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(nil)

		auction, err := service.CreateAuction(context.Background(), "seller1", "nft1", "Genesis Drop", "first run", start, end, 5000)
		require.NoError(t, err)
		require.NotEmpty(t, auction.AuctionID)
		require.Equal(t, "nft1", auction.NftID)
		require.Equal(t, "seller1", auction.SellerID)
	})

	t.Run("rejects_non_owner", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").
			Return(model.Nft{NftID: "nft1", OwnerID: "someone_else"}, nil)

		_, err := service.CreateAuction(context.Background(), "seller1", "nft1", "Genesis Drop", "", start, end, 5000)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("rejects_inverted_window", func(t *testing.T) {
		_, err := service.CreateAuction(context.Background(), "seller1", "nft1", "Genesis Drop", "", end, start, 5000)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("rejects_zero_start_price", func(t *testing.T) {
		_, err := service.CreateAuction(context.Background(), "seller1", "nft1", "Genesis Drop", "", start, end, 0)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

// Tests GetWinningBid passthrough
func TestAuctionService_GetWinningBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuctions := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockAuctions, repository.NewMockNftDB(ctrl), repository.NewMockSettlementDB(ctrl))

	t.Run("returns_highest", func(t *testing.T) {
		mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").
			Return(model.Bid{BidID: "bid1", AmountCents: 15000}, nil)

		bid, err := service.GetWinningBid(context.Background(), "auction1")
		require.NoError(t, err)
		require.Equal(t, int64(15000), bid.AmountCents)
	})

	t.Run("no_bids", func(t *testing.T) {
		mockAuctions.EXPECT().GetWinningBid(gomock.Any(), "auction1").
			Return(model.Bid{}, apperrors.ErrNoBids)

		_, err := service.GetWinningBid(context.Background(), "auction1")
		require.ErrorIs(t, err, apperrors.ErrNoBids)
	})

	t.Run("empty_id", func(t *testing.T) {
		_, err := service.GetWinningBid(context.Background(), "")
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
