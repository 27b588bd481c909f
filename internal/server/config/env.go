package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env
// file in the working directory is loaded first if present; real
// environment variables win over .env entries.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address (e.g. ":8080")
//	DATABASE_DSN     PostgreSQL DSN
//	SECRET_KEY       JWT HMAC secret
//	TOKEN_TTL        token lifetime as a Go duration (e.g. "24h")
//	BCRYPT_COST      bcrypt work factor
//	ALLOWED_ORIGINS  comma-separated CORS origins
func parseEnv(config *Config) {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		config.AllowedOrigins = splitOrigins(v)
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
