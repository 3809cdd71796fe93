package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	auction "nftfy-api/internal/auctionService"
	"nftfy-api/internal/email"
	model "nftfy-api/internal/models"
	nft "nftfy-api/internal/nftService"
	"nftfy-api/internal/payment"
	"nftfy-api/internal/repository"
	seller "nftfy-api/internal/sellerService"
	"nftfy-api/internal/server"
	"nftfy-api/internal/settlement"
	"nftfy-api/internal/token"
	user "nftfy-api/internal/userService"
	handler "nftfy-api/services/api/handler"
)

// noopMailer records sends without talking to a mail API
type noopMailer struct {
	sent []email.Email
}

func (m *noopMailer) Send(_ context.Context, msg email.Email) error {
	m.sent = append(m.sent, msg)
	return nil
}

// fakePayments hands out deterministic checkout sessions
type fakePayments struct{}

func (fakePayments) CreateCheckoutSession(_ context.Context, a model.Auction, _ model.Nft, _ model.Bid) (payment.CheckoutSession, error) {
	return payment.CheckoutSession{
		SessionID: "cs_test_" + a.AuctionID,
		URL:       "https://checkout.test/cs_test_" + a.AuctionID,
	}, nil
}

// TestEnv bundles everything an API-level test needs
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
	Tokens *token.Service
	Worker *settlement.Worker
	Mailer *noopMailer
}

// SetupTestEnv wires the full application against the in-memory repository
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	tokens := token.NewService("integration-test-secret")
	mailer := &noopMailer{}

	userSvc := user.NewUserService(repo, tokens, mailer)
	nftSvc := nft.NewNftService(repo, repo)
	auctionSvc := auction.NewAuctionService(repo, repo, repo)
	sellerSvc := seller.NewSellerService(repo, repo)

	worker := settlement.NewWorker(auctionSvc, repo, repo, repo, repo,
		mailer, fakePayments{}, "https://nftfy.test")

	router := server.SetupRouter(tokens, server.Handlers{
		Users:    handler.NewUserHandler(userSvc),
		Nfts:     handler.NewNftHandler(nftSvc),
		Auctions: handler.NewAuctionHandler(auctionSvc),
		Sellers:  handler.NewSellerHandler(sellerSvc),
		Payments: handler.NewPaymentHandler(worker),
	})

	return &TestEnv{Router: router, Repo: repo, Tokens: tokens, Worker: worker, Mailer: mailer}
}

// SeedUser inserts an account directly and returns a valid token for it
func (env *TestEnv) SeedUser(t *testing.T, userID, emailAddr, role string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("seeded-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash seed password: %v", err)
	}

	u := model.User{
		UserID:       userID,
		FirstName:    "Seed",
		LastName:     userID,
		Email:        emailAddr,
		PasswordHash: string(hash),
		Status:       model.StatusActive,
		Role:         role,
	}
	if err := env.Repo.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("failed to seed user %s: %v", userID, err)
	}

	signed, err := env.Tokens.Issue(u)
	if err != nil {
		t.Fatalf("failed to issue token for %s: %v", userID, err)
	}
	return signed
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, bearer string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, bearer, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// dataOf extracts the data object from a response envelope
func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
