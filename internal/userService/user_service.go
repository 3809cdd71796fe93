package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/email"
	"nftfy-api/internal/models"
	"nftfy-api/internal/repository"
	"nftfy-api/internal/token"
	"nftfy-api/utils"
)

// UserService handles account lifecycle: registration, login, profile
// updates and administrative status changes
type UserService struct {
	users  repository.UserDB
	tokens *token.Service
	mail   email.Dispatcher
}

// NewUserService creates a new UserService instance
func NewUserService(users repository.UserDB, tokens *token.Service, mail email.Dispatcher) *UserService {
	return &UserService{users: users, tokens: tokens, mail: mail}
}

// Register creates a new account with the User role and sends a welcome
// email. A failed email send does not fail the registration.
func (s *UserService) Register(ctx context.Context, firstName, lastName, emailAddr, password string) (models.User, error) {
	if firstName == "" || lastName == "" || emailAddr == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing registration fields", apperrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        emailAddr,
		PasswordHash: string(hash),
		Status:       models.StatusActive,
		Role:         models.RoleUser,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}

	if err := s.mail.Send(ctx, email.RegistrationEmail(user.FirstName, user.Email)); err != nil {
		utils.Warn("failed to send registration email", map[string]any{
			"user_id": user.UserID,
			"error":   err.Error(),
		})
	}

	return user, nil
}

// Login verifies credentials and issues a signed token. Blocked accounts
// are rejected before the password is checked.
func (s *UserService) Login(ctx context.Context, emailAddr, password string) (models.User, string, error) {
	if emailAddr == "" || password == "" {
		return models.User{}, "", fmt.Errorf("service: %w - missing email or password", apperrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return models.User{}, "", fmt.Errorf("service: %w", apperrors.ErrInvalidCredentials)
		}
		return models.User{}, "", fmt.Errorf("service: failed to load user by email: %w", err)
	}

	if user.Status == models.StatusBlocked {
		return models.User{}, "", fmt.Errorf("service: %w", apperrors.ErrUserBlocked)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", fmt.Errorf("service: %w", apperrors.ErrInvalidCredentials)
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to issue token for user %s: %w", user.UserID, err)
	}

	return user, signed, nil
}

// GetUser returns a single user by ID
func (s *UserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", apperrors.ErrInvalidInput)
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers returns all non-admin accounts, for the admin console
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}

	visible := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			continue
		}
		visible = append(visible, u)
	}
	return visible, nil
}

// UpdateNames changes the caller's display name
func (s *UserService) UpdateNames(ctx context.Context, userID, firstName, lastName string) (models.User, error) {
	if userID == "" || firstName == "" || lastName == "" {
		return models.User{}, fmt.Errorf("service: %w - missing name fields", apperrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	user.FirstName = firstName
	user.LastName = lastName

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// UpdateEmail changes the caller's email after re-verifying the password
func (s *UserService) UpdateEmail(ctx context.Context, userID, newEmail, password string) (models.User, error) {
	if userID == "" || newEmail == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - missing email update fields", apperrors.ErrInvalidInput)
	}

	user, err := s.authenticate(ctx, userID, password)
	if err != nil {
		return models.User{}, err
	}

	user.Email = newEmail
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update email for user %s: %w", userID, err)
	}
	return user, nil
}

// DeleteUser removes the caller's account after re-verifying the password
func (s *UserService) DeleteUser(ctx context.Context, userID, password string) error {
	if userID == "" || password == "" {
		return fmt.Errorf("service: %w - missing user ID or password", apperrors.ErrInvalidInput)
	}

	if _, err := s.authenticate(ctx, userID, password); err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("service: failed to delete user %s: %w", userID, err)
	}
	return nil
}

// UpdateStatus blocks or unblocks an account and notifies the owner by
// email. A failed email send does not roll back the status change.
func (s *UserService) UpdateStatus(ctx context.Context, userID, status string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", apperrors.ErrInvalidInput)
	}
	if status != models.StatusActive && status != models.StatusBlocked {
		return models.User{}, fmt.Errorf("service: %w - unknown status %q", apperrors.ErrInvalidInput, status)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}

	if user.Status == status {
		return user, nil
	}

	user.Status = status
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to update status for user %s: %w", userID, err)
	}

	var msg email.Email
	if status == models.StatusBlocked {
		msg = email.AccountBlockedEmail(user.FirstName, user.Email)
	} else {
		msg = email.AccountUnblockedEmail(user.FirstName, user.Email)
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		utils.Warn("failed to send status email", map[string]any{
			"user_id": user.UserID,
			"status":  status,
			"error":   err.Error(),
		})
	}

	return user, nil
}

// authenticate reloads the user and verifies the supplied password
func (s *UserService) authenticate(ctx context.Context, userID, password string) (models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load user %s: %w", userID, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("service: %w", apperrors.ErrInvalidCredentials)
	}
	return user, nil
}
