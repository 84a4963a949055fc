package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lightmeal/calorie-helper/internal/logger"
)

type Config struct {
	ListenAddr     string
	AIProvider     string // "gemini" or "openai"
	GeminiAPIKey   string
	OpenAIAPIKey   string
	AuthProvider   string // "mock" or "file"
	CredentialFile string
	Storage        StorageConfig
	Logger         LoggerConfig
}

type StorageConfig struct {
	Backend   string // "memory", "file" or "redis"
	FilePath  string
	RedisHost string
	RedisPort string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:     getEnvOrDefault("LISTEN_ADDR", ":8080"),
		AIProvider:     strings.ToLower(getEnvOrDefault("AI_PROVIDER", "gemini")),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		AuthProvider:   strings.ToLower(getEnvOrDefault("AUTH_PROVIDER", "mock")),
		CredentialFile: getEnvOrDefault("CREDENTIAL_FILE", "credentials.json"),
		Storage: StorageConfig{
			Backend:   strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", "file")),
			FilePath:  getEnvOrDefault("STORAGE_FILE", "data/app_state.json"),
			RedisHost: getEnvOrDefault("REDIS_HOST", "localhost"),
			RedisPort: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	switch cfg.AIProvider {
	case "gemini", "openai":
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q (expected gemini or openai)", cfg.AIProvider)
	}
	switch cfg.AuthProvider {
	case "mock", "file":
	default:
		return nil, fmt.Errorf("unknown AUTH_PROVIDER %q (expected mock or file)", cfg.AuthProvider)
	}
	switch cfg.Storage.Backend {
	case "memory", "file", "redis":
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (expected memory, file or redis)", cfg.Storage.Backend)
	}

	return cfg, nil
}
