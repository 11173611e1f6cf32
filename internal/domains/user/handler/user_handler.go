package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"fashionstore-backend/internal/domains/user"
	"fashionstore-backend/internal/shared/middleware"
	"fashionstore-backend/internal/shared/response"
)

type UserHandler struct {
	service      user.Service
	isProduction bool
}

func NewUserHandler(service user.Service, isProduction bool) *UserHandler {
	return &UserHandler{
		service:      service,
		isProduction: isProduction,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful. Please check your email to verify your account.", result)
}

// Login handles POST /auth/login.
// Session token được trả trong body VÀ set làm httpOnly cookie.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	middleware.SetSessionCookie(c, result.Token, result.RememberMe, h.isProduction)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /auth/logout
func (h *UserHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.isProduction)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// CheckVerificationToken handles GET /auth/verify-email?token=...
// Peek-only: trả về email gắn với token, KHÔNG consume.
func (h *UserHandler) CheckVerificationToken(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		response.BadRequest(c, "Missing verification token")
		return
	}

	email, err := h.service.CheckVerificationToken(c.Request.Context(), tokenStr)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token is valid", gin.H{"email": email})
}

// VerifyEmail handles POST /auth/verify-email
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	var req user.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Email verified successfully", nil)
}

// ResendVerification handles POST /auth/resend-verification.
// Luôn trả generic success - không leak email có tồn tại hay không.
func (h *UserHandler) ResendVerification(c *gin.Context) {
	var req user.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ResendVerification(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "If an account exists for that email, a verification link has been sent.", nil)
}

// ForgotPassword handles POST /auth/forgot-password.
// Generic success bất kể email có tồn tại hay không.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req user.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "If an account exists for that email, a password reset link has been sent.", nil)
}

// ResetPassword handles POST /auth/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req user.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password reset successfully", nil)
}

// ========================================
// PROFILE (authenticated)
// ========================================

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", result)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", result)
}

// ChangePassword handles PUT /users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

// ========================================
// ADMIN
// ========================================

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.ListUsers(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved successfully", result)
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req user.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.UpdateUserRole(c.Request.Context(), userID, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User role updated successfully", nil)
}

// SetUserBlocked handles PUT /admin/users/:id/blocked
func (h *UserHandler) SetUserBlocked(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req user.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.SetUserBlocked(c.Request.Context(), userID, req.Blocked); err != nil {
		h.handleError(c, err)
		return
	}

	message := "User unblocked successfully"
	if req.Blocked {
		message = "User blocked successfully"
	}
	response.Success(c, http.StatusOK, message, nil)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	// Admin không tự xóa chính mình
	if selfID, ok := currentUserID(c); ok && selfID == userID {
		response.BadRequest(c, "You cannot delete your own account")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

// ========================================
// HELPERS
// ========================================

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// pathUserID parse :id param. Gửi error response và trả false nếu invalid.
func pathUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return uuid.Nil, false
	}
	return id, true
}

// handleError map domain errors sang HTTP status codes
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "An account with this email already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, user.ErrUserBlocked):
		response.Forbidden(c, "This account has been blocked")
	case errors.Is(err, user.ErrEmailNotVerified):
		response.Forbidden(c, "Please verify your email address before logging in")
	case errors.Is(err, user.ErrTokenNotFound):
		response.BadRequest(c, "Invalid link")
	case errors.Is(err, user.ErrTokenExpired):
		response.BadRequest(c, "This link has expired. Please request a new one.")
	case errors.Is(err, user.ErrTokenUsed):
		response.BadRequest(c, "This link has already been used")
	case errors.Is(err, user.ErrWrongPassword):
		response.BadRequest(c, "Current password is incorrect")
	case errors.Is(err, user.ErrInvalidRole):
		response.BadRequest(c, "Invalid role")
	default:
		// Validation errors từ ozzo trả message trực tiếp
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.ErrorObject
	return errors.As(err, &verr)
}
