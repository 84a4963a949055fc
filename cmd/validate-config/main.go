package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lightmeal/calorie-helper/internal/config"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf(".env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration is valid!")
	fmt.Printf("  - Listen Addr: %s\n", cfg.ListenAddr)
	fmt.Printf("  - AI Provider: %s\n", cfg.AIProvider)
	fmt.Printf("  - Gemini API Key: %s\n", maskToken(cfg.GeminiAPIKey))
	fmt.Printf("  - OpenAI API Key: %s\n", maskToken(cfg.OpenAIAPIKey))
	fmt.Printf("  - Auth Provider: %s\n", cfg.AuthProvider)
	fmt.Printf("  - Storage Backend: %s\n", cfg.Storage.Backend)
	if cfg.Storage.Backend == "file" {
		fmt.Printf("  - Storage File: %s\n", cfg.Storage.FilePath)
	}
	if cfg.Storage.Backend == "redis" {
		fmt.Printf("  - Redis: %s:%s\n", cfg.Storage.RedisHost, cfg.Storage.RedisPort)
	}
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
