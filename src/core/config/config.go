package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all process-level configuration. It is loaded once at startup
// and passed by reference to the module constructors; handlers never read the
// environment directly.
type Config struct {
	AppPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	OpenRouterAPIKey string
	AppURL           string

	RedisAddr     string
	RedisPassword string

	SupabaseURL string
	SupabaseKey string
	BucketName  string
}

// Load reads the .env file (if present) and builds the Config from the
// environment.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		AppURL:           getEnv("APP_URL", "http://localhost:3000"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		BucketName:  os.Getenv("BUCKET_NAME"),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
