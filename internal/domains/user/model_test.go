package user

import (
	"errors"
	"testing"
	"time"
)

func TestAuthToken_ValidateAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		token   AuthToken
		wantErr error
	}{
		{
			name:    "valid unused token",
			token:   AuthToken{ExpiresAt: now.Add(time.Hour), Used: false},
			wantErr: nil,
		},
		{
			name:    "already used",
			token:   AuthToken{ExpiresAt: now.Add(time.Hour), Used: true},
			wantErr: ErrTokenUsed,
		},
		{
			name:    "expired but unused",
			token:   AuthToken{ExpiresAt: now.Add(-time.Minute), Used: false},
			wantErr: ErrTokenExpired,
		},
		{
			name:    "used takes precedence over expired",
			token:   AuthToken{ExpiresAt: now.Add(-time.Minute), Used: true},
			wantErr: ErrTokenUsed,
		},
		{
			name:    "expires exactly now is still valid",
			token:   AuthToken{ExpiresAt: now, Used: false},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.token.ValidateAt(now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateAt() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleCustomer.Valid() || !RoleAdmin.Valid() {
		t.Fatal("builtin roles must be valid")
	}
	if Role("SUPERUSER").Valid() {
		t.Fatal("unknown role must be invalid")
	}
}
