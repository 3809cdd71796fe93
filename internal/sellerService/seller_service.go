package seller

import (
	"context"
	"fmt"
	"time"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/models"
	"nftfy-api/internal/repository"
	"nftfy-api/utils"
)

// SellerService handles applications to become a seller and their
// administrative review
type SellerService struct {
	requests repository.SellerRequestDB
	users    repository.UserDB
	now      func() time.Time
}

// NewSellerService creates a new SellerService instance
func NewSellerService(requests repository.SellerRequestDB, users repository.UserDB) *SellerService {
	return &SellerService{
		requests: requests,
		users:    users,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit files a seller application for the calling user. A user may
// have at most one application on record.
func (s *SellerService) Submit(ctx context.Context, userID, address, idPhotoURL string, dateOfBirth time.Time) (models.SellerRequest, error) {
	if userID == "" || address == "" || idPhotoURL == "" {
		return models.SellerRequest{}, fmt.Errorf("service: %w - missing request fields", apperrors.ErrInvalidInput)
	}
	if dateOfBirth.IsZero() {
		return models.SellerRequest{}, fmt.Errorf("service: %w - missing date of birth", apperrors.ErrInvalidInput)
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return models.SellerRequest{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	request := models.SellerRequest{
		RequestID:   utils.GenerateID(),
		UserID:      userID,
		Address:     address,
		DateOfBirth: dateOfBirth,
		IDPhotoURL:  idPhotoURL,
		Status:      models.RequestPending,
		RequestDate: s.now(),
	}

	if err := s.requests.CreateSellerRequest(ctx, request); err != nil {
		return models.SellerRequest{}, fmt.Errorf("service: failed to create seller request for user %s: %w", userID, err)
	}
	return request, nil
}

// List returns every seller application, for the admin console
func (s *SellerService) List(ctx context.Context) ([]models.SellerRequest, error) {
	requests, err := s.requests.ListSellerRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list seller requests: %w", err)
	}
	return requests, nil
}

// GetByUser returns the application filed by one user
func (s *SellerService) GetByUser(ctx context.Context, userID string) (models.SellerRequest, error) {
	if userID == "" {
		return models.SellerRequest{}, fmt.Errorf("service: %w - empty user ID", apperrors.ErrInvalidInput)
	}
	request, err := s.requests.GetSellerRequestByUser(ctx, userID)
	if err != nil {
		return models.SellerRequest{}, fmt.Errorf("service: failed to get seller request for user %s: %w", userID, err)
	}
	return request, nil
}

// Approve accepts a pending application and promotes the applicant to
// the Seller role. Approving an already accepted request is a no-op.
func (s *SellerService) Approve(ctx context.Context, requestID string) (models.SellerRequest, error) {
	if requestID == "" {
		return models.SellerRequest{}, fmt.Errorf("service: %w - empty request ID", apperrors.ErrInvalidInput)
	}

	request, err := s.requests.GetSellerRequestByID(ctx, requestID)
	if err != nil {
		return models.SellerRequest{}, fmt.Errorf("service: failed to load seller request %s: %w", requestID, err)
	}

	if request.Status == models.RequestAccepted {
		return request, nil
	}

	request.Status = models.RequestAccepted
	request.AcceptDate = s.now()
	if err := s.requests.UpdateSellerRequest(ctx, request); err != nil {
		return models.SellerRequest{}, fmt.Errorf("service: failed to update seller request %s: %w", requestID, err)
	}

	user, err := s.users.GetUserByID(ctx, request.UserID)
	if err != nil {
		return models.SellerRequest{}, fmt.Errorf("service: failed to load applicant %s: %w", request.UserID, err)
	}
	if user.Role != models.RoleAdmin {
		user.Role = models.RoleSeller
		if err := s.users.UpdateUser(ctx, user); err != nil {
			return models.SellerRequest{}, fmt.Errorf("service: failed to promote user %s: %w", request.UserID, err)
		}
	}

	return request, nil
}
