package config

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds all runtime settings, loaded from the environment.
// A .env file in the working directory is picked up automatically.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	MailAPIURL  string
	MailAPIKey  string
	MailFrom    string
	MailFromTag string

	StripeSecretKey string

	// Base URL the payment redirect and claim links are built against.
	PublicBaseURL string
}

// Load reads configuration from environment variables with development defaults
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "nftfy"),
		DBPassword: getEnv("DB_PASSWORD", "nftfy_dev_password"),
		DBName:     getEnv("DB_NAME", "nftfy"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),

		MailAPIURL:  getEnv("MAIL_API_URL", "https://send.api.mailtrap.io/api/send"),
		MailAPIKey:  getEnv("MAIL_API_KEY", ""),
		MailFrom:    getEnv("MAIL_FROM", "noreply@nftfy.com"),
		MailFromTag: getEnv("MAIL_FROM_NAME", "The NFTFY Team"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

// DatabaseURL builds the postgres connection string for pgxpool
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
