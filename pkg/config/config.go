package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	JWT     JWTConfig
	Email   EmailConfig
	Storage StorageConfig
	Seed    SeedConfig
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	ResendAPIKey string
	AdminEmail   string
}

type StorageConfig struct {
	Bucket string
	Region string
}

type SeedConfig struct {
	ListingCount int
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "emlakpark-dev-secret"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			AdminEmail:   getEnv("ADMIN_EMAIL", ""),
		},
		Storage: StorageConfig{
			Bucket: getEnv("AWS_BUCKET_NAME", "emlakpark-images"),
			Region: getEnv("AWS_REGION", "eu-central-1"),
		},
		Seed: SeedConfig{
			ListingCount: getEnvInt("SEED_LISTING_COUNT", 48),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
