package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string

	PaymentAPIURL    string
	PaymentSecretKey string
	PaymentCurrency  string

	PublicBaseURL   string
	FrontendBaseURL string

	EmailEnabled       bool
	EmailSender        string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "food.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		PaymentAPIURL:    getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
		PaymentSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentCurrency:  getEnv("PAYMENT_CURRENCY", "vnd"),

		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),

		EmailEnabled:       os.Getenv("EMAIL_ENABLED") == "true",
		EmailSender:        getEnv("EMAIL_SENDER", "Food Delivery App <admin@foodapp.com>"),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
