package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "nftfy-api/internal/models"
	"nftfy-api/services/api/helpers"
	"nftfy-api/utils"
)

//go:generate mockgen -source=user_handler.go -destination=mock_user_service.go -package=handler

type UserServiceInterface interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateNames(ctx context.Context, userID, firstName, lastName string) (model.User, error)
	UpdateEmail(ctx context.Context, userID, newEmail, password string) (model.User, error)
	DeleteUser(ctx context.Context, userID, password string) error
	UpdateStatus(ctx context.Context, userID, status string) (model.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterHandler handles POST /api/users/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewUserResponse(user), "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// LoginHandler handles POST /api/users/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, signed, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	resp := helpers.LoginResponse{Token: signed, User: helpers.NewUserResponse(user)}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": user.UserID})
}

// GetMeHandler handles GET /api/users/me
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	callerID := c.GetString(helpers.CtxUserID)

	user, err := h.service.GetUser(c.Request.Context(), callerID)
	if err != nil {
		helpers.RespondError(c, "GetMeHandler", err, map[string]any{"user_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "user retrieved successfully")
}

// ListUsersHandler handles GET /api/users (admin)
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListUsersHandler", err, nil)
		return
	}

	resp := make([]helpers.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, helpers.NewUserResponse(u))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(resp)})
}

// UpdateNamesHandler handles PUT /api/users/me/names
func (h *UserHandler) UpdateNamesHandler(c *gin.Context) {
	var req helpers.UpdateNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateNamesHandler", err)
		return
	}

	callerID := c.GetString(helpers.CtxUserID)
	user, err := h.service.UpdateNames(c.Request.Context(), callerID, req.FirstName, req.LastName)
	if err != nil {
		helpers.RespondError(c, "UpdateNamesHandler", err, map[string]any{"user_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "user updated successfully")
	helpers.LogSuccess("UpdateNamesHandler", "user updated successfully", map[string]any{"user_id": user.UserID})
}

// UpdateEmailHandler handles PUT /api/users/me/email
func (h *UserHandler) UpdateEmailHandler(c *gin.Context) {
	var req helpers.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateEmailHandler", err)
		return
	}

	callerID := c.GetString(helpers.CtxUserID)
	user, err := h.service.UpdateEmail(c.Request.Context(), callerID, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "UpdateEmailHandler", err, map[string]any{"user_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "email updated successfully")
	helpers.LogSuccess("UpdateEmailHandler", "email updated successfully", map[string]any{"user_id": user.UserID})
}

// DeleteUserHandler handles DELETE /api/users/me
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	var req helpers.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteUserHandler", err)
		return
	}

	callerID := c.GetString(helpers.CtxUserID)
	if err := h.service.DeleteUser(c.Request.Context(), callerID, req.Password); err != nil {
		helpers.RespondError(c, "DeleteUserHandler", err, map[string]any{"user_id": callerID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "user deleted successfully")
	helpers.LogSuccess("DeleteUserHandler", "user deleted successfully", map[string]any{"user_id": callerID})
}

// UpdateStatusHandler handles PUT /api/users/status (admin)
func (h *UserHandler) UpdateStatusHandler(c *gin.Context) {
	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	user, err := h.service.UpdateStatus(c.Request.Context(), req.UserID, req.Status)
	if err != nil {
		helpers.RespondError(c, "UpdateStatusHandler", err, map[string]any{"user_id": req.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "user status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "user status updated successfully", map[string]any{
		"user_id": user.UserID,
		"status":  user.Status,
	})
}
