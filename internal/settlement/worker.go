// Package settlement drives ended auctions through notification and
// payment. Each stage is persisted before the next begins, so a crash
// between stages is retried on the next tick without repeating completed
// work.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/email"
	"nftfy-api/internal/models"
	"nftfy-api/internal/payment"
	"nftfy-api/internal/repository"
	"nftfy-api/utils"
)

//go:generate mockgen -source=worker.go -destination=mock_settler.go -package=settlement

// Settler decides the outcome of a single ended auction
type Settler interface {
	SettleAuction(ctx context.Context, auctionID string) (models.Settlement, error)
}

// Worker advances settlements through their stages on a schedule
type Worker struct {
	settler     Settler
	auctions    repository.AuctionDB
	nfts        repository.NftDB
	users       repository.UserDB
	settlements repository.SettlementDB
	mail        email.Dispatcher
	payments    payment.Initiator
	claimBase   string
	cron        *cron.Cron
	now         func() time.Time
}

// NewWorker creates a settlement worker. claimBase is the public address
// the winner's claim link points at.
func NewWorker(
	settler Settler,
	auctions repository.AuctionDB,
	nfts repository.NftDB,
	users repository.UserDB,
	settlements repository.SettlementDB,
	mail email.Dispatcher,
	payments payment.Initiator,
	claimBase string,
) *Worker {
	return &Worker{
		settler:     settler,
		auctions:    auctions,
		nfts:        nfts,
		users:       users,
		settlements: settlements,
		mail:        mail,
		payments:    payments,
		claimBase:   claimBase,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Start schedules RunOnce on the given cron expression and begins the
// scheduler. Stop the worker with Stop.
func (w *Worker) Start(schedule string) error {
	w.cron = cron.New()
	_, err := w.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		w.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("settlement: failed to schedule worker: %w", err)
	}
	w.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running pass to finish
func (w *Worker) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// RunOnce performs a full pass: settle newly ended auctions, send winner
// notifications, then open checkout sessions for notified winners. Errors
// on individual rows are logged and skipped so one bad row cannot wedge
// the rest of the queue.
func (w *Worker) RunOnce(ctx context.Context) {
	w.settleEnded(ctx)
	w.notifyWinners(ctx)
	w.initiatePayments(ctx)
}

// settleEnded creates settlement rows for auctions whose window closed
func (w *Worker) settleEnded(ctx context.Context) {
	ended, err := w.auctions.ListEndedUnsettled(ctx)
	if err != nil {
		utils.Error("failed to list ended auctions", map[string]any{"error": err.Error()})
		return
	}

	for _, auction := range ended {
		_, err := w.settler.SettleAuction(ctx, auction.AuctionID)
		if err != nil && !errors.Is(err, apperrors.ErrNoBids) {
			utils.Error("failed to settle auction", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
			continue
		}
		if errors.Is(err, apperrors.ErrNoBids) {
			utils.Info("auction closed without bids", map[string]any{"auction_id": auction.AuctionID})
		}
	}
}

// notifyWinners emails pending winners and advances their settlements
func (w *Worker) notifyWinners(ctx context.Context) {
	pending, err := w.settlements.ListSettlementsByStatus(ctx, models.SettlementPending)
	if err != nil {
		utils.Error("failed to list pending settlements", map[string]any{"error": err.Error()})
		return
	}

	for _, s := range pending {
		auction, err := w.auctions.GetAuctionByID(ctx, s.AuctionID)
		if err != nil {
			utils.Error("failed to load auction for settlement", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
			continue
		}

		winner, err := w.users.GetUserByID(ctx, s.WinnerID)
		if err != nil {
			utils.Error("failed to load winner for settlement", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
			continue
		}

		claimLink := fmt.Sprintf("%s/auctions/%s/claim", w.claimBase, s.AuctionID)
		msg := email.AuctionWinnerEmail(auction.Title, s.AmountCents, winner.FirstName, winner.Email, claimLink)
		if err := w.mail.Send(ctx, msg); err != nil {
			utils.Error("failed to send winner email", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
			continue
		}

		s.Status = models.SettlementNotified
		s.UpdatedAt = w.now()
		if err := w.settlements.UpdateSettlement(ctx, s); err != nil {
			utils.Error("failed to advance settlement to notified", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
		}
	}
}

// initiatePayments opens checkout sessions for notified winners
func (w *Worker) initiatePayments(ctx context.Context) {
	notified, err := w.settlements.ListSettlementsByStatus(ctx, models.SettlementNotified)
	if err != nil {
		utils.Error("failed to list notified settlements", map[string]any{"error": err.Error()})
		return
	}

	for _, s := range notified {
		auction, err := w.auctions.GetAuctionByID(ctx, s.AuctionID)
		if err != nil {
			utils.Error("failed to load auction for settlement", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
			continue
		}

		nft, err := w.nfts.GetNftByID(ctx, auction.NftID)
		if err != nil {
			utils.Error("failed to load nft for settlement", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
			continue
		}

		winningBid := models.Bid{
			BidID:       s.WinningBidID,
			AuctionID:   s.AuctionID,
			UserID:      s.WinnerID,
			AmountCents: s.AmountCents,
		}

		session, err := w.payments.CreateCheckoutSession(ctx, auction, nft, winningBid)
		if err != nil {
			utils.Error("failed to create checkout session", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
			continue
		}

		s.Status = models.SettlementAwaitingPayment
		s.CheckoutSessionID = session.SessionID
		s.CheckoutURL = session.URL
		s.UpdatedAt = w.now()
		if err := w.settlements.UpdateSettlement(ctx, s); err != nil {
			utils.Error("failed to advance settlement to awaiting payment", map[string]any{
				"settlement_id": s.SettlementID,
				"error":         err.Error(),
			})
		}
	}
}

// CompletePayment marks the settlement behind a checkout session as paid.
// Called from the payment success callback. Completing an already paid
// settlement is a no-op.
func (w *Worker) CompletePayment(ctx context.Context, sessionID string) (models.Settlement, error) {
	if sessionID == "" {
		return models.Settlement{}, fmt.Errorf("settlement: %w - empty session ID", apperrors.ErrInvalidInput)
	}

	s, err := w.settlements.GetSettlementBySession(ctx, sessionID)
	if err != nil {
		return models.Settlement{}, fmt.Errorf("settlement: failed to load settlement for session %s: %w", sessionID, err)
	}

	if s.Status == models.SettlementPaid {
		return s, nil
	}

	s.Status = models.SettlementPaid
	s.UpdatedAt = w.now()
	if err := w.settlements.UpdateSettlement(ctx, s); err != nil {
		return models.Settlement{}, fmt.Errorf("settlement: failed to mark settlement %s paid: %w", s.SettlementID, err)
	}

	utils.Info("settlement paid", map[string]any{
		"settlement_id": s.SettlementID,
		"auction_id":    s.AuctionID,
	})

	return s, nil
}
