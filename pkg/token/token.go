package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session lifetimes. RememberMe kéo dài session từ 1 ngày lên 30 ngày.
const (
	SessionTTL        = 24 * time.Hour
	RememberMeTTL     = 30 * 24 * time.Hour
	signingMethodName = "HS256"
)

// Claims represents the signed session payload
type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RememberMe bool   `json:"remember_me"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens (stateless, no server-side storage)
type Codec struct {
	secret []byte
	now    func() time.Time // injectable clock for tests
}

// NewCodec creates a codec signing with the given symmetric secret
func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// NewCodecWithClock creates a codec with a fixed clock (tests only)
func NewCodecWithClock(secret string, now func() time.Time) *Codec {
	return &Codec{secret: []byte(secret), now: now}
}

// TTL trả về session lifetime tương ứng với rememberMe flag
func TTL(rememberMe bool) time.Duration {
	if rememberMe {
		return RememberMeTTL
	}
	return SessionTTL
}

// Issue signs a session token for the given identity.
// Expiry: 1 day, or 30 days when rememberMe is set.
// Returns the opaque token string and its expiry time.
func (c *Codec) Issue(userID, email, role string, rememberMe bool) (string, time.Time, error) {
	if userID == "" || email == "" || role == "" {
		return "", time.Time{}, fmt.Errorf("token: user id, email and role are required")
	}

	issuedAt := c.now()
	expiresAt := issuedAt.Add(TTL(rememberMe))

	claims := Claims{
		UserID:     userID,
		Email:      email,
		Role:       role,
		RememberMe: rememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: sign: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature and expiry atomically.
// Mọi failure (bad signature, malformed, expired, empty) trả về (nil, false)
// đồng nhất — caller không phân biệt được lý do fail.
func (c *Codec) Verify(tokenString string) (*Claims, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethodName}),
		jwt.WithTimeFunc(c.now),
	)

	if err != nil || !parsed.Valid {
		return nil, false
	}

	return claims, true
}
