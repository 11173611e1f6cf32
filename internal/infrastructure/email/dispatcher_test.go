package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fashionstore-backend/internal/config"
)

func TestSelectSender_PrefersHTTPAPI(t *testing.T) {
	d := NewDispatcher(&config.EmailConfig{
		APIKey:   "re_test_key",
		APIURL:   "https://api.resend.com/emails",
		SMTPHost: "smtp.example.com", // phải bị ignore khi có API key
		SMTPUser: "user",
		From:     "noreply@fashionstore.dev",
	}, "production")

	sender, err := d.selectSender()
	require.NoError(t, err)
	require.Equal(t, "http-api", sender.Name())
}

func TestSelectSender_SandboxOutsideProduction(t *testing.T) {
	d := NewDispatcher(&config.EmailConfig{}, "development")

	sender, err := d.selectSender()
	require.NoError(t, err)
	require.Equal(t, "sandbox", sender.Name())
}

func TestSelectSender_ProductionWithoutProviderFails(t *testing.T) {
	d := NewDispatcher(&config.EmailConfig{}, "production")

	_, err := d.selectSender()
	require.Error(t, err)
}

func TestDispatcher_SendIsBooleanNeverError(t *testing.T) {
	// Production + no provider: mọi send fail nhưng không panic/error
	d := NewDispatcher(&config.EmailConfig{}, "production")

	ok := d.Send(context.Background(), Message{To: "a@b.com", Subject: "x", HTML: "<p>x</p>"})
	require.False(t, ok)

	// Provider selection chỉ chạy một lần - gọi lại vẫn consistent
	ok = d.Send(context.Background(), Message{To: "a@b.com", Subject: "x", HTML: "<p>x</p>"})
	require.False(t, ok)
}

func TestAPISender_SendsExpectedPayload(t *testing.T) {
	var got map[string]interface{}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(&config.EmailConfig{
		APIKey: "re_test_key",
		APIURL: srv.URL,
		From:   "noreply@fashionstore.dev",
	}, "production")

	ok := d.Send(context.Background(), Message{
		To:      "anna@example.com",
		ToName:  "Anna",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	})

	require.True(t, ok)
	require.Equal(t, "Bearer re_test_key", auth)
	require.Equal(t, "noreply@fashionstore.dev", got["from"])
	require.Equal(t, "Hello", got["subject"])
}

func TestAPISender_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	d := NewDispatcher(&config.EmailConfig{APIKey: "k", APIURL: srv.URL, From: "x@y.z"}, "production")

	ok := d.Send(context.Background(), Message{To: "a@b.com", Subject: "x", HTML: "y"})
	require.False(t, ok)
}

func TestTemplates(t *testing.T) {
	subject, html := VerificationEmail("Anna", "https://shop.test/verify?token=abc")
	require.Contains(t, subject, "Verify")
	require.Contains(t, html, "Anna")
	require.Contains(t, html, "https://shop.test/verify?token=abc")

	subject, html = PasswordResetEmail("Anna", "https://shop.test/reset?token=abc")
	require.Contains(t, strings.ToLower(subject), "reset")
	require.Contains(t, html, "token=abc")

	subject, html = WelcomeEmail("Anna")
	require.Contains(t, subject, "Welcome")
	require.Contains(t, html, "Anna")

	subject, html = PasswordChangedEmail("Anna")
	require.Contains(t, strings.ToLower(subject), "password")
	require.Contains(t, html, "Anna")

	subject, html = OrderConfirmationEmail("Anna", "FS-1042", "$129.00")
	require.Contains(t, subject, "FS-1042")
	require.Contains(t, html, "$129.00")
}
