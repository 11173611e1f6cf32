package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fashionstore-backend/internal/shared/response"
	"fashionstore-backend/pkg/token"
)

// SessionCookieName là cookie chứa session token, cùng payload với bearer header
const SessionCookieName = "fs_session"

// Context keys set bởi RequireAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

const roleAdmin = "ADMIN"

// CredentialExtractor trả về raw token từ một carrier cụ thể.
// present = true nghĩa là carrier CÓ MẶT trên request (dù token có hợp lệ hay không).
type CredentialExtractor func(c *gin.Context) (raw string, present bool)

// BearerExtractor đọc "Authorization: Bearer <token>".
// Header có mặt = carrier có mặt, kể cả khi scheme sai hoặc token rỗng —
// như vậy một bearer header hỏng sẽ KHÔNG silently fall through sang cookie.
func BearerExtractor(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		// Carrier present nhưng malformed - verification sẽ fail
		return "", true
	}

	return strings.TrimSpace(parts[1]), true
}

// CookieExtractor đọc session cookie
func CookieExtractor(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	return raw, true
}

// defaultExtractors: thứ tự precedence cố định - header trước, cookie sau
var defaultExtractors = []CredentialExtractor{BearerExtractor, CookieExtractor}

// ResolveIdentity thử từng extractor theo thứ tự và short-circuit ở carrier
// ĐẦU TIÊN có mặt, sau đó verify token của carrier đó.
// Returns:
// - (claims, true)  khi carrier đầu tiên có token hợp lệ
// - (nil, true)     khi có carrier nhưng token invalid
// - (nil, false)    khi không có carrier nào (unauthenticated, không phải error)
func ResolveIdentity(c *gin.Context, codec *token.Codec, extractors ...CredentialExtractor) (*token.Claims, bool) {
	if len(extractors) == 0 {
		extractors = defaultExtractors
	}

	for _, extract := range extractors {
		raw, present := extract(c)
		if !present {
			continue
		}

		claims, ok := codec.Verify(raw)
		if !ok {
			return nil, true
		}
		return claims, true
	}

	return nil, false
}

// RequireAuth xác thực request qua bearer header hoặc session cookie.
// Mọi failure trả về 401 đồng nhất, không phân biệt lý do.
func RequireAuth(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := ResolveIdentity(c, codec)
		if claims == nil {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin gate cho admin-only routes. Chạy SAU RequireAuth.
// Wrong role hay missing role đều trả về cùng một 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != roleAdmin {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SetSessionCookie issue identity cookie theo policy:
// httpOnly luôn bật, secure chỉ ở production, SameSite=Lax, path=/,
// max-age mirror chính xác TTL của token (1 ngày hoặc 30 ngày).
func SetSessionCookie(c *gin.Context, tokenString string, rememberMe, isProduction bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		tokenString,
		int(token.TTL(rememberMe).Seconds()),
		"/",
		"",
		isProduction, // secure
		true,         // httpOnly
	)
}

// ClearSessionCookie xóa identity cookie (logout)
func ClearSessionCookie(c *gin.Context, isProduction bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", isProduction, true)
}
