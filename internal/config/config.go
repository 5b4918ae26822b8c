package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Cache backends understood by CacheBackend.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// Backend API
	APIBaseURL     string        `json:"api_base_url" validate:"required,url"`
	SandboxBaseURL string        `json:"sandbox_base_url" validate:"required,url"`
	HTTPTimeout    time.Duration `json:"http_timeout" validate:"gt=0"`

	// Video cache
	CacheBackend  string        `json:"cache_backend" validate:"oneof=memory redis"`
	RedisURL      string        `json:"redis_url" validate:"required_if=CacheBackend redis"`
	RedisPrefix   string        `json:"redis_prefix"`
	VideoCacheTTL time.Duration `json:"video_cache_ttl" validate:"gt=0"`

	// Stub backend
	StubPort        string        `json:"stub_port" validate:"required,numeric"`
	StubFixtures    string        `json:"stub_fixtures"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Logging
	LogLevel  string `json:"log_level" validate:"omitempty,oneof=debug info warn error fatal panic disabled"`
	LogFile   string `json:"log_file"`
	LogPretty bool   `json:"log_pretty"`
}

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3000"), "/"),
		SandboxBaseURL: getEnv("SANDBOX_BASE_URL", "https://www.tapchikientruc.com.vn/wp-json/wp/v2/posts"),
		HTTPTimeout:    getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		CacheBackend:  strings.ToLower(getEnv("CACHE_BACKEND", CacheMemory)),
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPrefix:   getEnv("REDIS_PREFIX", "khoakt:"),
		VideoCacheTTL: getEnvAsDuration("VIDEO_CACHE_TTL", 10*time.Minute),

		StubPort:        getEnv("STUB_PORT", "3000"),
		StubFixtures:    getEnv("STUB_FIXTURES", "./fixtures"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:   getEnv("LOG_FILE", ""),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
