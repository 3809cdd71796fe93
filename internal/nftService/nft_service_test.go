package nft

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"nftfy-api/internal/apperrors"
	model "nftfy-api/internal/models"
	"nftfy-api/internal/repository"
)

// Tests CreateNft
func TestNftService_CreateNft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNfts := repository.NewMockNftDB(ctrl)
	service := NewNftService(mockNfts, repository.NewMockAuctionDB(ctrl))

	t.Run("success", func(t *testing.T) {
		mockNfts.EXPECT().CreateNft(gomock.Any(), gomock.Any()).Return(nil)

		item, err := service.CreateNft(context.Background(), "seller1", "Genesis", "first mint", 5000)
		require.NoError(t, err)
		require.NotEmpty(t, item.NftID)
		require.Equal(t, "seller1", item.OwnerID)
	})

	t.Run("missing_title", func(t *testing.T) {
		_, err := service.CreateNft(context.Background(), "seller1", "", "", 5000)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("negative_price", func(t *testing.T) {
		_, err := service.CreateNft(context.Background(), "seller1", "Genesis", "", -1)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

// Tests UpdateNft
func TestNftService_UpdateNft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNfts := repository.NewMockNftDB(ctrl)
	mockAuctions := repository.NewMockAuctionDB(ctrl)
	service := NewNftService(mockNfts, mockAuctions)

	stored := model.Nft{
		NftID:       "nft1",
		OwnerID:     "seller1",
		Title:       "Genesis",
		Description: "first mint",
		PriceCents:  5000,
	}

	t.Run("owner_updates_unlisted_nft", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").Return(stored, nil)
		mockAuctions.EXPECT().ListAuctionsByNft(gomock.Any(), "nft1").Return(nil, nil)
		mockNfts.EXPECT().UpdateNft(gomock.Any(), gomock.Any()).Return(nil)

		item, err := service.UpdateNft(context.Background(), "seller1", "nft1", "Genesis v2", "second mint", 6000)
		require.NoError(t, err)
		require.Equal(t, "Genesis v2", item.Title)
		require.Equal(t, int64(6000), item.PriceCents)
	})

	t.Run("price_only_change_skips_auction_check", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").Return(stored, nil)
		mockNfts.EXPECT().UpdateNft(gomock.Any(), gomock.Any()).Return(nil)

		item, err := service.UpdateNft(context.Background(), "seller1", "nft1", stored.Title, stored.Description, 9000)
		require.NoError(t, err)
		require.Equal(t, int64(9000), item.PriceCents)
	})

	t.Run("title_change_refused_once_auctioned", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").Return(stored, nil)
		mockAuctions.EXPECT().ListAuctionsByNft(gomock.Any(), "nft1").
			Return([]model.Auction{{AuctionID: "auction1", NftID: "nft1"}}, nil)

		_, err := service.UpdateNft(context.Background(), "seller1", "nft1", "New Title", stored.Description, 5000)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("non_owner_refused", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").Return(stored, nil)

		_, err := service.UpdateNft(context.Background(), "intruder", "nft1", "Genesis", "", 5000)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

// Tests ListNftsByOwner
func TestNftService_ListNftsByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNfts := repository.NewMockNftDB(ctrl)
	service := NewNftService(mockNfts, repository.NewMockAuctionDB(ctrl))

	t.Run("returns_only_the_owners_nfts", func(t *testing.T) {
		mockNfts.EXPECT().ListNftsByOwner(gomock.Any(), "seller1").
			Return([]model.Nft{
				{NftID: "nft1", OwnerID: "seller1", Title: "Genesis"},
				{NftID: "nft2", OwnerID: "seller1", Title: "Second Mint"},
			}, nil)

		items, err := service.ListNftsByOwner(context.Background(), "seller1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, "seller1", items[0].OwnerID)
	})

	t.Run("empty_owner_id", func(t *testing.T) {
		_, err := service.ListNftsByOwner(context.Background(), "")
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

// Tests DeleteNft
func TestNftService_DeleteNft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNfts := repository.NewMockNftDB(ctrl)
	mockAuctions := repository.NewMockAuctionDB(ctrl)
	service := NewNftService(mockNfts, mockAuctions)

	stored := model.Nft{NftID: "nft1", OwnerID: "seller1", Title: "Genesis"}

	t.Run("success", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").Return(stored, nil)
		mockAuctions.EXPECT().ListAuctionsByNft(gomock.Any(), "nft1").Return(nil, nil)
		mockNfts.EXPECT().DeleteNft(gomock.Any(), "nft1").Return(nil)

		require.NoError(t, service.DeleteNft(context.Background(), "seller1", "nft1"))
	})

	t.Run("refused_once_auctioned", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "nft1").Return(stored, nil)
		mockAuctions.EXPECT().ListAuctionsByNft(gomock.Any(), "nft1").
			Return([]model.Auction{{AuctionID: "auction1"}}, nil)

		err := service.DeleteNft(context.Background(), "seller1", "nft1")
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("not_found", func(t *testing.T) {
		mockNfts.EXPECT().GetNftByID(gomock.Any(), "missing").Return(model.Nft{}, apperrors.ErrNftNotFound)

		err := service.DeleteNft(context.Background(), "seller1", "missing")
		require.ErrorIs(t, err, apperrors.ErrNftNotFound)
	})
}

// Tests GetNftBids
func TestNftService_GetNftBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNfts := repository.NewMockNftDB(ctrl)
	service := NewNftService(mockNfts, repository.NewMockAuctionDB(ctrl))

	view := model.NftBids{
		NftID: "nft1",
		Title: "Genesis",
		Bids: []model.NftBidDetail{
			{BidID: "bid1", AmountCents: 10000, UserName: "Ada"},
			{BidID: "bid2", AmountCents: 12000, UserName: "Grace"},
		},
	}

	mockNfts.EXPECT().GetNftBids(gomock.Any(), "nft1").Return(view, nil)

	got, err := service.GetNftBids(context.Background(), "nft1")
	require.NoError(t, err)
	require.Len(t, got.Bids, 2)
	require.Equal(t, "Grace", got.Bids[1].UserName)
}
