package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"fashionstore-backend/pkg/logger"
)

// InsecureDevSecret là placeholder secret mặc định.
// Production KHÔNG ĐƯỢC chạy với secret này — Validate() sẽ fail.
const InsecureDevSecret = "dev-secret-change-in-production"

// warnInsecureSecret chỉ log warning một lần cho cả process lifetime
var warnInsecureSecret sync.Once

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	BaseURL     string // dùng để build verification/reset links trong email
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	// HTTP email API (ưu tiên khi có API key)
	APIKey string
	APIURL string

	// SMTP fallback
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	From string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Fashionstore API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			BaseURL:     getEnv("APP_BASE_URL", "http://localhost:3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "fashionstore"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Email: EmailConfig{
			APIKey:       getEnv("EMAIL_API_KEY", ""),
			APIURL:       getEnv("EMAIL_API_URL", "https://api.resend.com/emails"),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvInt("SMTP_PORT", 587),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			From:         getEnv("EMAIL_FROM", "noreply@fashionstore.dev"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Secret resolution policy:
	// - production: phải có real secret (checked in Validate)
	// - ngoài production: fallback sang dev secret với one-time warning
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == InsecureDevSecret {
		cfg.JWT.Secret = InsecureDevSecret
		warnInsecureSecret.Do(func() {
			logger.Warn("JWT_SECRET not set - using insecure development secret", map[string]interface{}{
				"environment": cfg.App.Environment,
			})
		})
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		// Fail loudly thay vì silent fallback sang insecure secret
		if c.JWT.Secret == "" || c.JWT.Secret == InsecureDevSecret {
			return fmt.Errorf("JWT_SECRET must be set to a real secret in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// IsProduction báo app có đang chạy ở production runtime mode không
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
