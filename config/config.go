package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	minReleaseSecretLength = 32

	DefaultJWTTTL = 24 * time.Hour
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	CORSOrigins []string

	DBDriver    string
	DatabaseDSN string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	RateLimitRPS   float64
	RateLimitBurst int

	SuperAdmin SuperAdminConfig
}

// SuperAdminConfig describes the account seeded at startup when no
// super-admin exists yet. Seeding is skipped while Email is empty.
type SuperAdminConfig struct {
	Name     string
	Email    string
	Password string
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:root@tcp(127.0.0.1:3306)/hotel_brand?charset=utf8mb4&parseTime=True&loc=Local"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     getEnvDuration("JWT_TTL", DefaultJWTTTL),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),

		SuperAdmin: SuperAdminConfig{
			Name:     getEnv("SUPER_ADMIN_NAME", "Super Admin"),
			Email:    os.Getenv("SUPER_ADMIN_EMAIL"),
			Password: os.Getenv("SUPER_ADMIN_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.GinMode == "release" && len(c.JWTSecret) < minReleaseSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters in release mode", minReleaseSecretLength)
	}
	switch c.DBDriver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST %d out of range 4..31", c.BcryptCost)
	}
	if c.SuperAdmin.Email != "" && len(c.SuperAdmin.Password) < 6 {
		return errors.New("SUPER_ADMIN_PASSWORD must be at least 6 characters")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
