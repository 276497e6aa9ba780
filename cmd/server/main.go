package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storytrip-server/internal/config"
	"storytrip-server/internal/database"
	"storytrip-server/internal/handler"
	"storytrip-server/internal/logger"
	"storytrip-server/internal/repository"
	"storytrip-server/internal/service"
	"storytrip-server/pkg/ai"
	"storytrip-server/pkg/migration"
	"storytrip-server/pkg/tts"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Encoding:  cfg.LogEncoding,
		Env:       cfg.Env,
		Component: "server",
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger)

	appLogger.Info("Starting StoryTrip server",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("ai_provider", cfg.AIProvider),
		zap.Bool("ai_enabled", cfg.AIEnabled()),
		zap.Bool("voiceover_enabled", cfg.ElevenLabsAPIKey != "" && cfg.ElevenLabsVoiceID != ""),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

func run(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) error {
	pool, err := database.Connect(ctx, database.PoolConfig{
		DSN:         cfg.GetDSN(),
		MaxConns:    cfg.DBMaxConns,
		IdleTimeout: cfg.DBIdleTimeout,
		MaxRetries:  20,
		RetryDelay:  3 * time.Second,
	}, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.DBAutoMigrate {
		migrator := migration.NewMigrator(migration.Config{
			MigrationsFS:   database.MigrationsFS,
			MigrationsPath: database.MigrationsPath,
		}, pool, appLogger)
		if err := migrator.Up(); err != nil {
			return err
		}
	}

	var aiClient ai.Client
	if cfg.AIEnabled() {
		aiClient, err = ai.New(ai.Config{
			Provider: cfg.AIProvider,
			APIKey:   cfg.AIAPIKey,
			BaseURL:  cfg.AIBaseURL,
			Model:    cfg.AIModel,
			Timeout:  cfg.AITimeout,
		}, appLogger)
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
	} else {
		appLogger.Warn("GEMINI_API_KEY is not set, stories will be mocked")
	}

	ttsClient := tts.NewClient(tts.Config{
		BaseURL: cfg.ElevenLabsBaseURL,
		APIKey:  cfg.ElevenLabsAPIKey,
		VoiceID: cfg.ElevenLabsVoiceID,
		ModelID: cfg.ElevenLabsModelID,
		Timeout: cfg.TTSTimeout,
	})

	storyRepo := repository.NewPgStoryRepository(pool, appLogger)
	storyService := service.NewStoryService(
		service.NewNarrativeGenerator(aiClient, appLogger),
		service.NewVoiceoverGenerator(ttsClient, appLogger),
		storyRepo,
		appLogger,
	)
	storyHandler := handler.NewStoryHandler(storyService, appLogger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	p := ginprometheus.NewPrometheus("gin")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if route := c.FullPath(); route != "" {
			return route
		}
		return "unmatched"
	}

	router := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Middlewares:    []gin.HandlerFunc{p.HandlerFunc()},
	}, storyHandler, appLogger)
	p.SetMetricsPath(router)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No write timeout: a POST waits on the model and the TTS call.
		IdleTimeout: 60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
