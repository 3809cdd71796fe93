// Package payment creates hosted checkout sessions for winning bids.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"nftfy-api/internal/models"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

// CheckoutSession is a handle to a hosted payment page
type CheckoutSession struct {
	SessionID string
	URL       string
}

// Initiator starts the payment flow for an auction's winning bid.
// Success and cancel are communicated back via redirect callbacks, not
// polled.
type Initiator interface {
	CreateCheckoutSession(ctx context.Context, auction models.Auction, nft models.Nft, winningBid models.Bid) (CheckoutSession, error)
}

// StripeInitiator implements Initiator on Stripe Checkout
type StripeInitiator struct {
	successURL string
	cancelURL  string
}

// NewStripeInitiator configures the Stripe client. baseURL is the public
// address the redirect callbacks are served from.
func NewStripeInitiator(secretKey, baseURL string) *StripeInitiator {
	stripe.Key = secretKey
	return &StripeInitiator{
		successURL: baseURL + "/api/payments/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  baseURL + "/api/payments/cancel?session_id={CHECKOUT_SESSION_ID}",
	}
}

// CreateCheckoutSession creates a one-off card payment session priced at
// the winning bid amount
func (s *StripeInitiator) CreateCheckoutSession(ctx context.Context, auction models.Auction, nft models.Nft, winningBid models.Bid) (CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					UnitAmount: stripe.Int64(winningBid.AmountCents),
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(nft.Title),
						Description: stripe.String(nft.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("payment: failed to create checkout session for auction %s: %w", auction.AuctionID, err)
	}

	return CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}
