package config

import (
	"os"
	"time"
)

type Config struct {
	Port       string
	Env        string
	JWTSecret  string
	SessionTTL time.Duration
	ToastTTL   time.Duration
}

func Load() Config {
	return Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		JWTSecret:  getEnv("JWT_SECRET", "luxelane-dev-secret"),
		SessionTTL: getDuration("SESSION_TTL", time.Hour*24),
		ToastTTL:   getDuration("TOAST_TTL", 4*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
