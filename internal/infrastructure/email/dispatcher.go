package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"fashionstore-backend/internal/config"
	"fashionstore-backend/pkg/logger"
)

// Message là một email đã render xong, sẵn sàng để gửi
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender là một email provider cụ thể
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// Dispatcher chọn provider một lần cho cả process lifetime và reuse.
// Explicitly constructed + injected (không phải module-level global)
// để lifecycle rõ ràng và testable.
type Dispatcher struct {
	cfg *config.EmailConfig
	env string

	initOnce sync.Once
	sender   Sender
	initErr  error
}

func NewDispatcher(cfg *config.EmailConfig, env string) *Dispatcher {
	return &Dispatcher{cfg: cfg, env: env}
}

// selectSender chọn provider theo thứ tự ưu tiên:
// 1. HTTP email API (nếu có API key) - dùng exclusively
// 2. SMTP (nếu có credentials) - verify connectivity eagerly, fail hard nếu không nối được
// 3. Ngoài production: sandbox sender log preview
// 4. Production không có gì usable: mọi send fail
func (d *Dispatcher) selectSender() (Sender, error) {
	if d.cfg.APIKey != "" {
		return &apiSender{
			apiURL: d.cfg.APIURL,
			apiKey: d.cfg.APIKey,
			from:   d.cfg.From,
			client: &http.Client{Timeout: 10 * time.Second},
		}, nil
	}

	if d.cfg.SMTPHost != "" && d.cfg.SMTPUser != "" {
		dialer := gomail.NewDialer(d.cfg.SMTPHost, d.cfg.SMTPPort, d.cfg.SMTPUser, d.cfg.SMTPPassword)

		// Eager connectivity check: thà fail lúc startup còn hơn fail từng send
		conn, err := dialer.Dial()
		if err != nil {
			return nil, fmt.Errorf("smtp verification failed: %w", err)
		}
		conn.Close()

		return &smtpSender{dialer: dialer, from: d.cfg.From}, nil
	}

	if d.env != "production" {
		return &sandboxSender{}, nil
	}

	return nil, fmt.Errorf("no email provider configured in production")
}

// Send render-agnostic delivery: trả về bool success/failure,
// không bao giờ propagate error lên route handler.
func (d *Dispatcher) Send(ctx context.Context, msg Message) bool {
	d.initOnce.Do(func() {
		d.sender, d.initErr = d.selectSender()
		if d.initErr != nil {
			logger.Error("email provider selection failed", d.initErr)
			return
		}
		logger.Info("email provider selected", map[string]interface{}{
			"provider": d.sender.Name(),
		})
	})

	if d.initErr != nil || d.sender == nil {
		return false
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		logger.Error(fmt.Sprintf("email send failed via %s", d.sender.Name()), err)
		return false
	}

	return true
}

// ========================================
// HTTP API PROVIDER
// ========================================

type apiSender struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

func (s *apiSender) Name() string { return "http-api" }

func (s *apiSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(map[string]interface{}{
		"from":    s.from,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("email api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email api returned status %d", resp.StatusCode)
	}

	return nil
}

// ========================================
// SMTP PROVIDER
// ========================================

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpSender) Name() string { return "smtp" }

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	return s.dialer.DialAndSend(m)
}

// ========================================
// SANDBOX PROVIDER (development only)
// ========================================

// sandboxSender không gửi thật - log message và một preview line,
// giống Ethereal-style disposable inbox cho local testing.
type sandboxSender struct{}

func (s *sandboxSender) Name() string { return "sandbox" }

func (s *sandboxSender) Send(ctx context.Context, msg Message) error {
	logger.Info("sandbox email (not delivered)", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
		"preview": fmt.Sprintf("sandbox://outbox/%s", msg.To),
	})
	return nil
}
