package main

import (
	"context"
	"os"
	"time"

	auction "nftfy-api/internal/auctionService"
	"nftfy-api/internal/config"
	"nftfy-api/internal/email"
	nft "nftfy-api/internal/nftService"
	"nftfy-api/internal/payment"
	"nftfy-api/internal/repository/postgres"
	seller "nftfy-api/internal/sellerService"
	"nftfy-api/internal/server"
	"nftfy-api/internal/settlement"
	"nftfy-api/internal/token"
	user "nftfy-api/internal/userService"
	handler "nftfy-api/services/api/handler"
	"nftfy-api/utils"
)

// settlementSchedule drives the settlement worker once a minute
const settlementSchedule = "* * * * *"

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		utils.Fatal("failed to apply schema", map[string]any{"error": err.Error()})
	}

	userRepo := postgres.NewUserRepo(pool)
	nftRepo := postgres.NewNftRepo(pool)
	auctionRepo := postgres.NewAuctionRepo(pool)
	sellerRepo := postgres.NewSellerRequestRepo(pool)
	settlementRepo := postgres.NewSettlementRepo(pool)

	tokens := token.NewService(cfg.JWTSecret)
	mail := email.NewClient(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom, cfg.MailFromTag)
	payments := payment.NewStripeInitiator(cfg.StripeSecretKey, cfg.PublicBaseURL)

	userSvc := user.NewUserService(userRepo, tokens, mail)
	nftSvc := nft.NewNftService(nftRepo, auctionRepo)
	auctionSvc := auction.NewAuctionService(auctionRepo, nftRepo, settlementRepo)
	sellerSvc := seller.NewSellerService(sellerRepo, userRepo)

	worker := settlement.NewWorker(auctionSvc, auctionRepo, nftRepo, userRepo, settlementRepo,
		mail, payments, cfg.PublicBaseURL)
	if err := worker.Start(settlementSchedule); err != nil {
		utils.Fatal("failed to start settlement worker", map[string]any{"error": err.Error()})
	}
	defer worker.Stop()

	router := server.SetupRouter(tokens, server.Handlers{
		Users:    handler.NewUserHandler(userSvc),
		Nfts:     handler.NewNftHandler(nftSvc),
		Auctions: handler.NewAuctionHandler(auctionSvc),
		Sellers:  handler.NewSellerHandler(sellerSvc),
		Payments: handler.NewPaymentHandler(worker),
	})

	addr := ":" + cfg.ServerPort
	utils.Info("starting nftfy api server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Error("server stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
