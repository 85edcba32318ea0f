// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// loadDotenv loads the .env file once. A missing file is not an error;
// values then come from the process environment or defaults.
func loadDotenv() {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found")
		}
	})
}

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Identity provider (bearer JWT verification)
	JWTSecret string
	JWTIssuer string

	// Object storage (S3-compatible)
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	// Optional base URL for public object links; defaults to the endpoint.
	S3PublicURL string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	loadDotenv()

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTIssuer: getEnv("JWT_ISSUER", "expensify-identity"),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "expensify"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "expensify"),
		S3Bucket:    getEnv("S3_BUCKET", "documents"),
		S3UseSSL:    getEnvBool("S3_USE_SSL", false),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using default\n", key, value)
		return defaultValue
	}
	return parsed
}
