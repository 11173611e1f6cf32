package user

import (
	"time"

	"github.com/google/uuid"
)

// Role gates administrative capability
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User là domain entity - ánh xạ 1:1 với bảng users trong DB
type User struct {
	// Identity
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"` // unique, case-insensitive compare

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	// Profile
	Name       string  `db:"name" json:"name"`
	Phone      *string `db:"phone" json:"phone,omitempty"`
	Address    *string `db:"address" json:"address,omitempty"`
	City       *string `db:"city" json:"city,omitempty"`
	PostalCode *string `db:"postal_code" json:"postal_code,omitempty"`
	Country    *string `db:"country" json:"country,omitempty"`

	// Status
	Role            Role       `db:"role" json:"role"`
	IsBlocked       bool       `db:"is_blocked" json:"is_blocked"`
	EmailVerified   bool       `db:"email_verified" json:"email_verified"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UserDTO là public representation - không chứa password hash
type UserDTO struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone,omitempty"`
	Address       *string    `json:"address,omitempty"`
	City          *string    `json:"city,omitempty"`
	PostalCode    *string    `json:"postal_code,omitempty"`
	Country       *string    `json:"country,omitempty"`
	Role          Role       `json:"role"`
	IsBlocked     bool       `json:"is_blocked"`
	EmailVerified bool       `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Address:       u.Address,
		City:          u.City,
		PostalCode:    u.PostalCode,
		Country:       u.Country,
		Role:          u.Role,
		IsBlocked:     u.IsBlocked,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// ========================================
// ONE-TIME AUTH TOKENS
// ========================================

// TokenPurpose phân biệt verification và password reset tokens
type TokenPurpose string

const (
	PurposeVerifyEmail   TokenPurpose = "verify_email"
	PurposeResetPassword TokenPurpose = "reset_password"
)

// Token lifetimes
const (
	VerifyTokenTTL = 24 * time.Hour
	ResetTokenTTL  = time.Hour
)

// AuthToken là one-time bearer credential cho verification/reset flows
type AuthToken struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	UserID    uuid.UUID    `db:"user_id" json:"user_id"`
	Token     string       `db:"token" json:"-"` // opaque random hex, unique
	Purpose   TokenPurpose `db:"purpose" json:"purpose"`
	ExpiresAt time.Time    `db:"expires_at" json:"expires_at"`
	Used      bool         `db:"used" json:"used"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

// ValidateAt kiểm tra token còn redeemable không tại thời điểm now.
// Một token valid khi và chỉ khi !used && expires_at > now.
func (t *AuthToken) ValidateAt(now time.Time) error {
	if t.Used {
		return ErrTokenUsed
	}
	if now.After(t.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}
