package main

// @title Places Proxy API
// @version 1.0.0
// @description Прокси-сервис для стороннего Places API: автодополнение мест, поиск места по тексту и карточка места. Скрывает API-ключ от клиентов, объединяет два последовательных запроса к upstream в один и применяет клиентскую фильтрацию и ранжирование к результатам автодополнения.
// @description
// @description Основные возможности:
// @description - Автодополнение: структурированные подсказки (name, address, city, state, country) с пометкой точного совпадения
// @description - Поиск места по тексту с автоматическим получением полной карточки
// @description - Карточка места по идентификатору

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-proxy/docs"
	"github.com/places-proxy/internal/config"
	httpDelivery "github.com/places-proxy/internal/delivery/http"
	"github.com/places-proxy/internal/delivery/http/handler"
	"github.com/places-proxy/internal/infrastructure/googleplaces"
	"github.com/places-proxy/internal/pkg/logger"
	"github.com/places-proxy/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Proxy")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("places_base_url", cfg.Places.BaseURL),
	)

	// 3. Initialize upstream Places client
	placesRepo := googleplaces.NewPlacesClient(&cfg.Places, log)

	log.Info("Places client initialized")

	// 4. Initialize Use Cases
	autocompleteUC := usecase.NewAutocompleteUseCase(placesRepo, log)
	placesUC := usecase.NewPlacesUseCase(placesRepo, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	autocompleteHandler := handler.NewAutocompleteHandler(autocompleteUC, log)
	placesHandler := handler.NewPlacesHandler(placesUC, log)

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		autocompleteHandler,
		placesHandler,
	)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
