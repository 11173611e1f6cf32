package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fashionstore-backend/internal/domains/user"
	"fashionstore-backend/internal/infrastructure/email"
	"fashionstore-backend/internal/shared/utils"
	"fashionstore-backend/pkg/logger"
	"fashionstore-backend/pkg/token"
)

// bcrypt cost 12: balance giữa security và performance
const bcryptCost = 12

// Mailer gửi một message đã render, trả về success/failure.
// *email.Dispatcher satisfy interface này; tests inject fake.
type Mailer interface {
	Send(ctx context.Context, msg email.Message) bool
}

// userService implement user.Service
type userService struct {
	repo    user.Repository
	tokens  user.TokenRepository
	codec   *token.Codec
	mailer  Mailer
	baseURL string
	now     func() time.Time
}

func NewUserService(repo user.Repository, tokens user.TokenRepository, codec *token.Codec, mailer Mailer, baseURL string) user.Service {
	return &userService{
		repo:    repo,
		tokens:  tokens,
		codec:   codec,
		mailer:  mailer,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register tạo user mới (unverified) và gửi verification email
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Name:         req.Name,
		Phone:        stringPtr(req.Phone),
		Role:         user.RoleCustomer, // Default role
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	if err := s.issueAndSendVerification(ctx, newUser); err != nil {
		// User đã tạo thành công - token/email failure không rollback registration
		logger.Error("send verification email", err)
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login xác thực credentials và issue session token
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Không expose "email not found" - attacker không biết email có tồn tại
		return nil, user.ErrInvalidCredentials
	}

	if u.IsBlocked {
		return nil, user.ErrUserBlocked
	}
	if !u.EmailVerified {
		return nil, user.ErrEmailNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.codec.Issue(u.ID.String(), u.Email, string(u.Role), req.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &user.LoginResult{
		Token:      signed,
		ExpiresAt:  expiresAt,
		RememberMe: req.RememberMe,
		User:       u.ToDTO(),
	}, nil
}

// VerifyEmail redeem one-time verification token.
// Redemption (mark verified + consume token) là atomic ở repository layer.
func (s *userService) VerifyEmail(ctx context.Context, tokenStr string) error {
	u, err := s.tokens.RedeemVerification(ctx, tokenStr, s.now())
	if err != nil {
		return err
	}

	go func() {
		subject, html := email.WelcomeEmail(u.Name)
		s.mailer.Send(context.Background(), email.Message{
			To: u.Email, ToName: u.Name, Subject: subject, HTML: html,
		})
	}()

	return nil
}

// CheckVerificationToken peek token validity (không consume) - dùng cho GET
func (s *userService) CheckVerificationToken(ctx context.Context, tokenStr string) (string, error) {
	t, err := s.tokens.FindByToken(ctx, tokenStr, user.PurposeVerifyEmail)
	if err != nil {
		return "", err
	}
	if err := t.ValidateAt(s.now()); err != nil {
		return "", err
	}

	u, err := s.repo.FindByID(ctx, t.UserID)
	if err != nil {
		return "", err
	}

	return u.Email, nil
}

// ResendVerification gửi lại verification email.
// Email không tồn tại hoặc đã verified → vẫn trả success
// (existence-hiding, caller không phân biệt được).
func (s *userService) ResendVerification(ctx context.Context, emailAddr string) error {
	u, err := s.repo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil
	}
	if u.EmailVerified {
		return nil
	}

	return s.issueAndSendVerification(ctx, u)
}

// ForgotPassword issue reset token. Email không tồn tại → vẫn success.
func (s *userService) ForgotPassword(ctx context.Context, emailAddr string) error {
	u, err := s.repo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil
	}

	t, err := s.createToken(ctx, u.ID, user.PurposeResetPassword, user.ResetTokenTTL)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, t.Token)
	subject, html := email.PasswordResetEmail(u.Name, resetLink)

	go s.mailer.Send(context.Background(), email.Message{
		To: u.Email, ToName: u.Name, Subject: subject, HTML: html,
	})

	return nil
}

// ResetPassword redeem reset token và set password mới (atomic ở repo layer)
func (s *userService) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u, err := s.tokens.RedeemPasswordReset(ctx, req.Token, string(passwordHash), s.now())
	if err != nil {
		return err
	}

	go func() {
		subject, html := email.PasswordChangedEmail(u.Name)
		s.mailer.Send(context.Background(), email.Message{
			To: u.Email, ToName: u.Name, Subject: subject, HTML: html,
		})
	}()

	return nil
}

// ========================================
// PROFILE
// ========================================

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.IsBlocked {
		return nil, user.ErrUserBlocked
	}

	if err := s.repo.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.IsBlocked {
		return user.ErrUserBlocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(passwordHash)); err != nil {
		return err
	}

	go func() {
		subject, html := email.PasswordChangedEmail(u.Name)
		s.mailer.Send(context.Background(), email.Message{
			To: u.Email, ToName: u.Name, Subject: subject, HTML: html,
		})
	}()

	return nil
}

// ========================================
// ADMIN
// ========================================

func (s *userService) ListUsers(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResponse, error) {
	req.Normalize()

	users, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}

	return &user.ListUsersResponse{
		Users: dtos,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, userID uuid.UUID, req user.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateRole(ctx, userID, req.Role)
}

func (s *userService) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	return s.repo.SetBlocked(ctx, userID, blocked)
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Delete(ctx, userID)
}

// ========================================
// HELPERS
// ========================================

// createToken sinh opaque random token và persist với expiry
func (s *userService) createToken(ctx context.Context, userID uuid.UUID, purpose user.TokenPurpose, ttl time.Duration) (*user.AuthToken, error) {
	// Random 32-byte hex string (64 chars) - negligible collision probability
	raw, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &user.AuthToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     raw,
		Purpose:   purpose,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	if err := s.tokens.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *userService) issueAndSendVerification(ctx context.Context, u *user.User) error {
	t, err := s.createToken(ctx, u.ID, user.PurposeVerifyEmail, user.VerifyTokenTTL)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, t.Token)
	subject, html := email.VerificationEmail(u.Name, verifyLink)

	go s.mailer.Send(context.Background(), email.Message{
		To: u.Email, ToName: u.Name, Subject: subject, HTML: html,
	})

	return nil
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
