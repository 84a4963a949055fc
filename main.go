package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/lightmeal/calorie-helper/internal/ai"
	"github.com/lightmeal/calorie-helper/internal/auth"
	"github.com/lightmeal/calorie-helper/internal/config"
	"github.com/lightmeal/calorie-helper/internal/domain"
	"github.com/lightmeal/calorie-helper/internal/logger"
	"github.com/lightmeal/calorie-helper/internal/server"
	"github.com/lightmeal/calorie-helper/internal/services"
	"github.com/lightmeal/calorie-helper/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Calorie Helper...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "backend", cfg.Storage.Backend)

	authProvider, err := newAuthProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize auth provider: %v", err)
	}

	aiProvider, err := newAIProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}

	// Initialize services
	profileService := services.NewProfileService(ctx, store)
	recordService := services.NewRecordService(ctx, store, profileService)
	sessionService := services.NewSessionService(ctx, store, authProvider)
	assistantService := services.NewAssistantService(aiProvider)
	logger.Info("Services initialized", "ai_provider", cfg.AIProvider, "auth_provider", cfg.AuthProvider)

	srv := server.New(sessionService, profileService, recordService, assistantService)
	logger.Info("Server listening", "addr", cfg.ListenAddr)
	if err := srv.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return storage.NewRedisStore(cfg.Storage.RedisHost, cfg.Storage.RedisPort)
	case "file":
		return storage.NewFileStore(cfg.Storage.FilePath)
	default:
		return storage.NewMemoryStore(), nil
	}
}

func newAuthProvider(cfg *config.Config) (domain.AuthProvider, error) {
	if cfg.AuthProvider == "file" {
		return auth.NewFileProvider(cfg.CredentialFile)
	}
	return auth.NewMockProvider(), nil
}

func newAIProvider(ctx context.Context, cfg *config.Config) (domain.AIProvider, error) {
	if cfg.AIProvider == "openai" {
		return ai.NewOpenAIProvider(cfg.OpenAIAPIKey), nil
	}
	return ai.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
}
