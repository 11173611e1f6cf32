package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fashionstore-backend/internal/domains/user"
)

// stubService implement user.Service với function fields,
// method không set thì fail test nếu bị gọi
type stubService struct {
	t *testing.T

	verifyEmail      func(token string) error
	checkToken       func(token string) (string, error)
	resendVerif      func(email string) error
	forgotPassword   func(email string) error
	resetPassword    func(req user.ResetPasswordRequest) error
}

func (s *stubService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	s.t.Fatal("unexpected Register call")
	return nil, nil
}

func (s *stubService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResult, error) {
	s.t.Fatal("unexpected Login call")
	return nil, nil
}

func (s *stubService) VerifyEmail(ctx context.Context, token string) error {
	return s.verifyEmail(token)
}

func (s *stubService) CheckVerificationToken(ctx context.Context, token string) (string, error) {
	return s.checkToken(token)
}

func (s *stubService) ResendVerification(ctx context.Context, email string) error {
	return s.resendVerif(email)
}

func (s *stubService) ForgotPassword(ctx context.Context, email string) error {
	return s.forgotPassword(email)
}

func (s *stubService) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	return s.resetPassword(req)
}

func (s *stubService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	s.t.Fatal("unexpected GetProfile call")
	return nil, nil
}

func (s *stubService) UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	s.t.Fatal("unexpected UpdateProfile call")
	return nil, nil
}

func (s *stubService) ChangePassword(ctx context.Context, userID uuid.UUID, req user.ChangePasswordRequest) error {
	s.t.Fatal("unexpected ChangePassword call")
	return nil
}

func (s *stubService) ListUsers(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResponse, error) {
	s.t.Fatal("unexpected ListUsers call")
	return nil, nil
}

func (s *stubService) UpdateUserRole(ctx context.Context, userID uuid.UUID, req user.UpdateRoleRequest) error {
	s.t.Fatal("unexpected UpdateUserRole call")
	return nil
}

func (s *stubService) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	s.t.Fatal("unexpected SetUserBlocked call")
	return nil
}

func (s *stubService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	s.t.Fatal("unexpected DeleteUser call")
	return nil
}

func newTestRouter(h *UserHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth/verify-email", h.CheckVerificationToken)
	r.POST("/auth/verify-email", h.VerifyEmail)
	r.PUT("/auth/verify-email", h.ResendVerification)
	return r
}

func TestCheckVerificationTokenEndpoint(t *testing.T) {
	svc := &stubService{t: t,
		checkToken: func(token string) (string, error) {
			require.Equal(t, "abc123", token)
			return "anna@example.com", nil
		},
	}
	router := newTestRouter(NewUserHandler(svc, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify-email?token=abc123", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "anna@example.com")
}

func TestCheckVerificationTokenEndpoint_Invalid(t *testing.T) {
	svc := &stubService{t: t,
		checkToken: func(token string) (string, error) {
			return "", user.ErrTokenNotFound
		},
	}
	router := newTestRouter(NewUserHandler(svc, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify-email?token=bogus", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckVerificationTokenEndpoint_MissingToken(t *testing.T) {
	svc := &stubService{t: t}
	router := newTestRouter(NewUserHandler(svc, false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/verify-email", nil)
	router.ServeHTTP(w, req)

	// Service không được gọi khi thiếu token
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEmailEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"already used", user.ErrTokenUsed, http.StatusBadRequest},
		{"expired", user.ErrTokenExpired, http.StatusBadRequest},
		{"unknown", user.ErrTokenNotFound, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{t: t,
				verifyEmail: func(token string) error { return tt.serviceErr },
			}
			router := newTestRouter(NewUserHandler(svc, false))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/verify-email",
				strings.NewReader(`{"token":"abc123"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestResendVerificationEndpoint_ExistenceHiding(t *testing.T) {
	// Cùng một generic response cho email tồn tại và không tồn tại
	var bodies []string
	for _, email := range []string{"known@example.com", "ghost@example.com"} {
		svc := &stubService{t: t,
			resendVerif: func(e string) error { return nil },
		}
		router := newTestRouter(NewUserHandler(svc, false))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/auth/verify-email",
			strings.NewReader(`{"email":"`+email+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	require.Equal(t, bodies[0], bodies[1])
}
