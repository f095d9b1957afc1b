package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pionex-dashboard/internal/api"
	"pionex-dashboard/internal/config"
	"pionex-dashboard/internal/pionex"
	"pionex-dashboard/internal/repository"
	"pionex-dashboard/internal/service"
	"pionex-dashboard/internal/websocket"
	"pionex-dashboard/pkg/utils"
)

func main() {
	// .env опционален: в контейнере конфигурация приходит окружением
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	logger := utils.InitGlobalLogger(utils.LogConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	defer logger.Sync()

	if !cfg.Pionex.Configured() {
		logger.Warn("Pionex API credentials not set, proxy routes will return configuration errors")
	}

	// Клиент биржи
	client := pionex.NewClient(pionex.ClientConfig{
		BaseURL:   cfg.Pionex.BaseURL,
		APIKey:    cfg.Pionex.APIKey,
		APISecret: cfg.Pionex.APISecret,
		Timeout:   cfg.Pionex.Timeout,
		RateLimit: cfg.Pionex.RateLimit,
		RateBurst: cfg.Pionex.RateBurst,
	}, logger)

	// Хранилище ботов: in-memory по умолчанию, Postgres при DATABASE_URL
	var botRepo repository.BotRepository
	if cfg.Database.URL != "" {
		pgRepo, err := repository.OpenPostgres(cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to connect to database", utils.Err(err))
		}
		defer pgRepo.Close()
		botRepo = pgRepo
		logger.Info("Using PostgreSQL bot store")
	} else {
		botRepo = repository.NewMemoryBotRepository()
		logger.Info("Using in-memory bot store, records are lost on restart")
	}

	// WebSocket hub для real-time обновлений
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	botService := service.NewBotService(botRepo, hub, logger)

	// Настройка HTTP роутера
	router := api.SetupRoutes(&api.Dependencies{
		Pionex:                client,
		BotService:            botService,
		Hub:                   hub,
		APIKey:                cfg.Pionex.APIKey,
		APISecret:             cfg.Pionex.APISecret,
		DashboardUser:         cfg.Security.DashboardUser,
		DashboardPasswordHash: cfg.Security.DashboardPasswordHash,
		AllowedOrigins:        cfg.Server.AllowedOrigins,
	})

	// HTTP сервер
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Запуск сервера в отдельной горутине
	go func() {
		logger.Info("Starting server", utils.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", utils.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", utils.Err(err))
	}

	logger.Info("Server exited")
}
