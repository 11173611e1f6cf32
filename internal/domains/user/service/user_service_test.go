package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fashionstore-backend/internal/domains/user"
	"fashionstore-backend/internal/infrastructure/email"
	"fashionstore-backend/pkg/token"
)

// ========================================
// IN-MEMORY FAKES
// ========================================

type fakeStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*user.User
	tokens map[string]*user.AuthToken
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*user.User),
		tokens: make(map[string]*user.AuthToken),
	}
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.store.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, req user.UpdateProfileRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, req user.ListUsersRequest) ([]user.User, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []user.User
	for _, u := range r.store.users {
		if req.Role != "" && string(u.Role) != req.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsBlocked = blocked
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.store.users, id)
	return nil
}

// fakeTokenRepo mô phỏng transactional redemption của postgres repo:
// validate → apply effect → mark used, tất cả dưới cùng một lock
type fakeTokenRepo struct{ store *fakeStore }

func (r *fakeTokenRepo) Create(ctx context.Context, t *user.AuthToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *t
	r.store.tokens[t.Token] = &cp
	return nil
}

func (r *fakeTokenRepo) FindByToken(ctx context.Context, tokenStr string, purpose user.TokenPurpose) (*user.AuthToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.tokens[tokenStr]
	if !ok || t.Purpose != purpose {
		return nil, user.ErrTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) RedeemVerification(ctx context.Context, tokenStr string, now time.Time) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tokens[tokenStr]
	if !ok || t.Purpose != user.PurposeVerifyEmail {
		return nil, user.ErrTokenNotFound
	}
	if err := t.ValidateAt(now); err != nil {
		return nil, err
	}

	u, ok := r.store.users[t.UserID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u.EmailVerified = true
	u.EmailVerifiedAt = &now
	t.Used = true

	cp := *u
	return &cp, nil
}

func (r *fakeTokenRepo) RedeemPasswordReset(ctx context.Context, tokenStr, newHash string, now time.Time) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tokens[tokenStr]
	if !ok || t.Purpose != user.PurposeResetPassword {
		return nil, user.ErrTokenNotFound
	}
	if err := t.ValidateAt(now); err != nil {
		return nil, err
	}

	u, ok := r.store.users[t.UserID]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u.PasswordHash = newHash
	t.Used = true

	cp := *u
	return &cp, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []email.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg email.Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return true
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// ========================================
// TEST SETUP
// ========================================

type fixture struct {
	store  *fakeStore
	mailer *fakeMailer
	svc    user.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	mailer := &fakeMailer{}
	svc := NewUserService(
		&fakeUserRepo{store: store},
		&fakeTokenRepo{store: store},
		token.NewCodec("test-secret"),
		mailer,
		"https://shop.test",
	)
	return &fixture{store: store, mailer: mailer, svc: svc}
}

func (f *fixture) register(t *testing.T, emailAddr string) *user.UserDTO {
	t.Helper()
	dto, err := f.svc.Register(context.Background(), user.RegisterRequest{
		Email:    emailAddr,
		Password: "Str0ngPass",
		Name:     "Anna Wong",
	})
	require.NoError(t, err)
	return dto
}

// verificationTokenFor tìm token trong fake store (mô phỏng user đọc email)
func (f *fixture) tokenFor(userID uuid.UUID, purpose user.TokenPurpose) string {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for raw, tok := range f.store.tokens {
		if tok.UserID == userID && tok.Purpose == purpose && !tok.Used {
			return raw
		}
	}
	return ""
}

// ========================================
// TESTS
// ========================================

func TestRegister(t *testing.T) {
	f := newFixture(t)

	dto := f.register(t, "anna@example.com")
	require.Equal(t, user.RoleCustomer, dto.Role)
	require.False(t, dto.EmailVerified)

	// Verification token đã được tạo
	require.NotEmpty(t, f.tokenFor(dto.ID, user.PurposeVerifyEmail))

	// Verification email gửi async
	require.Eventually(t, func() bool { return f.mailer.count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "anna@example.com")

	_, err := f.svc.Register(context.Background(), user.RegisterRequest{
		Email:    "ANNA@example.com", // case-insensitive duplicate
		Password: "Str0ngPass",
		Name:     "Other Anna",
	})
	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Register(context.Background(), user.RegisterRequest{
		Email:    "anna@example.com",
		Password: "weak",
		Name:     "Anna",
	})
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")

	// Chưa verified → không login được
	_, err := f.svc.Login(context.Background(), user.LoginRequest{
		Email: "anna@example.com", Password: "Str0ngPass",
	})
	require.ErrorIs(t, err, user.ErrEmailNotVerified)

	// Verify email
	require.NoError(t, f.svc.VerifyEmail(context.Background(), f.tokenFor(dto.ID, user.PurposeVerifyEmail)))

	// Login thành công, token verify được bằng cùng codec
	res, err := f.svc.Login(context.Background(), user.LoginRequest{
		Email: "anna@example.com", Password: "Str0ngPass",
	})
	require.NoError(t, err)

	claims, ok := token.NewCodec("test-secret").Verify(res.Token)
	require.True(t, ok)
	require.Equal(t, dto.ID.String(), claims.UserID)
	require.Equal(t, "CUSTOMER", claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")
	require.NoError(t, f.svc.VerifyEmail(context.Background(), f.tokenFor(dto.ID, user.PurposeVerifyEmail)))

	// Sai password và email không tồn tại: cùng một error (không leak existence)
	_, err := f.svc.Login(context.Background(), user.LoginRequest{
		Email: "anna@example.com", Password: "WrongPass1",
	})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), user.LoginRequest{
		Email: "ghost@example.com", Password: "Str0ngPass",
	})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_BlockedUser(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")
	require.NoError(t, f.svc.VerifyEmail(context.Background(), f.tokenFor(dto.ID, user.PurposeVerifyEmail)))
	require.NoError(t, f.svc.SetUserBlocked(context.Background(), dto.ID, true))

	_, err := f.svc.Login(context.Background(), user.LoginRequest{
		Email: "anna@example.com", Password: "Str0ngPass",
	})
	require.ErrorIs(t, err, user.ErrUserBlocked)
}

func TestVerifyEmail_OneTimeOnly(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")
	raw := f.tokenFor(dto.ID, user.PurposeVerifyEmail)

	// Lần 1: thành công và mutate state
	require.NoError(t, f.svc.VerifyEmail(context.Background(), raw))

	profile, err := f.svc.GetProfile(context.Background(), dto.ID)
	require.NoError(t, err)
	require.True(t, profile.EmailVerified)

	// Lần 2 với CÙNG token string: phải fail "already used"
	err = f.svc.VerifyEmail(context.Background(), raw)
	require.ErrorIs(t, err, user.ErrTokenUsed)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")
	raw := f.tokenFor(dto.ID, user.PurposeVerifyEmail)

	// Ép token hết hạn (unused) trực tiếp trong store
	f.store.mu.Lock()
	f.store.tokens[raw].ExpiresAt = time.Now().Add(-time.Minute)
	f.store.mu.Unlock()

	err := f.svc.VerifyEmail(context.Background(), raw)
	require.ErrorIs(t, err, user.ErrTokenExpired)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	f := newFixture(t)

	err := f.svc.VerifyEmail(context.Background(), "deadbeef")
	require.ErrorIs(t, err, user.ErrTokenNotFound)
}

func TestResendVerification_ExistenceHiding(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")

	// Email không tồn tại → generic success
	require.NoError(t, f.svc.ResendVerification(context.Background(), "ghost@example.com"))

	// Đã verified → cũng generic success, không tạo token mới
	require.NoError(t, f.svc.VerifyEmail(context.Background(), f.tokenFor(dto.ID, user.PurposeVerifyEmail)))
	require.NoError(t, f.svc.ResendVerification(context.Background(), "anna@example.com"))
	require.Empty(t, f.tokenFor(dto.ID, user.PurposeVerifyEmail))
}

func TestPasswordResetFlow(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")
	require.NoError(t, f.svc.VerifyEmail(context.Background(), f.tokenFor(dto.ID, user.PurposeVerifyEmail)))

	// Forgot password cho email không tồn tại → generic success, không token
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "ghost@example.com"))

	// Forgot password thật → reset token được tạo
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "anna@example.com"))
	raw := f.tokenFor(dto.ID, user.PurposeResetPassword)
	require.NotEmpty(t, raw)

	// Redeem
	require.NoError(t, f.svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
		Token:       raw,
		NewPassword: "NewStr0ngPass",
	}))

	// Password mới hoạt động, password cũ không
	_, err := f.svc.Login(context.Background(), user.LoginRequest{
		Email: "anna@example.com", Password: "NewStr0ngPass",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), user.LoginRequest{
		Email: "anna@example.com", Password: "Str0ngPass",
	})
	require.ErrorIs(t, err, user.ErrInvalidCredentials)

	// Token đã consume → redeem lại fail
	err = f.svc.ResetPassword(context.Background(), user.ResetPasswordRequest{
		Token:       raw,
		NewPassword: "AnotherPass1",
	})
	require.ErrorIs(t, err, user.ErrTokenUsed)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")

	err := f.svc.ChangePassword(context.Background(), dto.ID, user.ChangePasswordRequest{
		CurrentPassword: "WrongCurrent1",
		NewPassword:     "NewStr0ngPass",
	})
	require.ErrorIs(t, err, user.ErrWrongPassword)

	require.NoError(t, f.svc.ChangePassword(context.Background(), dto.ID, user.ChangePasswordRequest{
		CurrentPassword: "Str0ngPass",
		NewPassword:     "NewStr0ngPass",
	}))

	// Hash trong store phải match password mới
	f.store.mu.Lock()
	hash := f.store.users[dto.ID].PasswordHash
	f.store.mu.Unlock()
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewStr0ngPass")))
}

func TestCheckVerificationToken(t *testing.T) {
	f := newFixture(t)
	dto := f.register(t, "anna@example.com")
	raw := f.tokenFor(dto.ID, user.PurposeVerifyEmail)

	emailAddr, err := f.svc.CheckVerificationToken(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "anna@example.com", emailAddr)

	// Peek không consume token
	emailAddr, err = f.svc.CheckVerificationToken(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "anna@example.com", emailAddr)
}
