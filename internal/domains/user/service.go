package user

import (
	"context"

	"github.com/google/uuid"
)

// Service định nghĩa business logic layer contract
type Service interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	VerifyEmail(ctx context.Context, token string) error
	CheckVerificationToken(ctx context.Context, token string) (string, error)
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	// Profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error

	// Admin
	ListUsers(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, req UpdateRoleRequest) error
	SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
