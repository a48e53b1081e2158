package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Restaurant REST backend this storefront fronts.
	BackendURL     string
	BackendTimeout time.Duration

	RedisAddr     string
	RedisPassword string

	SessionTTL time.Duration

	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		BackendURL:     getenv("BACKEND_URL", "http://localhost:3000"),
		BackendTimeout: parseDuration(getenv("BACKEND_TIMEOUT", "10s"), 10*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		SessionTTL: parseDuration(getenv("SESSION_TTL", "24h"), 24*time.Hour),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
