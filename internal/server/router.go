package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nftfy-api/internal/models"
	"nftfy-api/internal/token"
	handler "nftfy-api/services/api/handler"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Users    *handler.UserHandler
	Nfts     *handler.NftHandler
	Auctions *handler.AuctionHandler
	Sellers  *handler.SellerHandler
	Payments *handler.PaymentHandler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(tokens *token.Service, h Handlers) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CORSMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	auth := AuthMiddleware(tokens)
	adminOnly := RequireRole(models.RoleAdmin)
	sellerOrAdmin := RequireRole(models.RoleSeller, models.RoleAdmin)

	users := api.Group("/users")
	{
		users.POST("/register", h.Users.RegisterHandler)
		users.POST("/login", h.Users.LoginHandler)

		users.GET("", auth, adminOnly, h.Users.ListUsersHandler)
		users.PUT("/status", auth, adminOnly, h.Users.UpdateStatusHandler)

		me := users.Group("/me", auth)
		{
			me.GET("", h.Users.GetMeHandler)
			me.PUT("/names", h.Users.UpdateNamesHandler)
			me.PUT("/email", h.Users.UpdateEmailHandler)
			me.DELETE("", h.Users.DeleteUserHandler)
			me.GET("/auctions", h.Auctions.GetMyBidAuctionsHandler)
		}
	}

	nfts := api.Group("/nfts")
	{
		nfts.GET("", h.Nfts.ListNftsHandler)
		nfts.GET("/:nft_id", h.Nfts.GetNftHandler)
		nfts.GET("/:nft_id/bids", h.Nfts.GetNftBidsHandler)

		nfts.POST("", auth, sellerOrAdmin, h.Nfts.CreateNftHandler)
		nfts.PUT("/:nft_id", auth, sellerOrAdmin, h.Nfts.UpdateNftHandler)
		nfts.DELETE("/:nft_id", auth, sellerOrAdmin, h.Nfts.DeleteNftHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", h.Auctions.ListAuctionsHandler)
		auctions.GET("/:auction_id", h.Auctions.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", h.Auctions.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", h.Auctions.GetWinningBidHandler)

		auctions.POST("", auth, sellerOrAdmin, h.Auctions.CreateAuctionHandler)
		auctions.POST("/:auction_id/bids", auth, BidRateLimitMiddleware(5, 10), h.Auctions.PlaceBidHandler)
		auctions.POST("/:auction_id/settle", auth, adminOnly, h.Auctions.SettleAuctionHandler)
	}

	sellers := api.Group("/sellers")
	{
		sellers.POST("/requests", auth, h.Sellers.SubmitRequestHandler)
		sellers.GET("/requests/me", auth, h.Sellers.GetMyRequestHandler)
		sellers.GET("/requests", auth, adminOnly, h.Sellers.ListRequestsHandler)
		sellers.PUT("/requests/:request_id/approve", auth, adminOnly, h.Sellers.ApproveRequestHandler)
	}

	payments := api.Group("/payments")
	{
		payments.GET("/success", h.Payments.PaymentSuccessHandler)
		payments.GET("/cancel", h.Payments.PaymentCancelHandler)
	}

	return router
}
