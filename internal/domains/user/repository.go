package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository định nghĩa contract cho user data access.
// Interface ở domain root, concrete implementation ở repository/ -
// cho phép mock trong unit tests và swap implementation.
type Repository interface {
	// Create tạo user mới
	// Returns: ErrEmailAlreadyExists nếu email đã tồn tại (case-insensitive)
	Create(ctx context.Context, u *User) error

	// FindByID tìm user theo ID
	// Returns: ErrUserNotFound nếu không tìm thấy
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail tìm user theo email, so sánh case-insensitive
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail kiểm tra email đã tồn tại chưa
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateProfile cập nhật profile fields (nil = giữ nguyên)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) error

	// UpdatePassword cập nhật password hash
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// ========================================
	// ADMIN
	// ========================================

	// List trả về danh sách users với pagination
	List(ctx context.Context, req ListUsersRequest) ([]User, int, error)

	// UpdateRole cập nhật role (admin only)
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) error

	// SetBlocked toggle blocked flag (admin only)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error

	// Delete xóa user (admin action)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenRepository quản lý one-time auth tokens.
// Redemption methods apply effect + mark used TRONG MỘT TRANSACTION -
// crash giữa chừng không thể để lại token reusable.
type TokenRepository interface {
	// Create lưu token mới
	Create(ctx context.Context, t *AuthToken) error

	// FindByToken lookup token (dùng cho GET peek, không consume)
	// Returns: ErrTokenNotFound nếu không tồn tại
	FindByToken(ctx context.Context, token string, purpose TokenPurpose) (*AuthToken, error)

	// RedeemVerification consume verification token và mark user verified.
	// Returns user đã verify, hoặc ErrTokenNotFound / ErrTokenExpired / ErrTokenUsed.
	RedeemVerification(ctx context.Context, token string, now time.Time) (*User, error)

	// RedeemPasswordReset consume reset token và set password hash mới.
	RedeemPasswordReset(ctx context.Context, token, newPasswordHash string, now time.Time) (*User, error)
}
