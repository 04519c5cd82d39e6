package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	GCPProject    string
	StorageBucket string
	Environment   string
	JWTSecret     string
	JWTExpiry     int64

	ChargilySecretKey string
	ChargilyBaseURL   string

	EmailAPIKey string
	EmailAPIURL string
	EmailSender string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "6001"),
		GCPProject:    getEnv("GCP_PROJECT_ID", ""),
		StorageBucket: getEnv("STORAGE_BUCKET", ""),
		Environment:   getEnv("ENVIRONMENT", "development"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		// 0 keeps the historical behavior: issued tokens carry no expiry claim.
		JWTExpiry: getEnvAsInt64("JWT_EXPIRY", 0),

		ChargilySecretKey: getEnv("CHARGILY_SECRET_KEY", ""),
		ChargilyBaseURL:   getEnv("CHARGILY_BASE_URL", "https://pay.chargily.net/test/api/v2"),

		EmailAPIKey: getEnv("EMAIL_API_KEY", ""),
		EmailAPIURL: getEnv("EMAIL_API_URL", "https://api.brevo.com/v3/smtp/email"),
		EmailSender: getEnv("EMAIL_SENDER", "contact@dzdeals.app"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
