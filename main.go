package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/filipefdm/rocketseat-prompt-manager/config"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/api"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/database"
	"github.com/filipefdm/rocketseat-prompt-manager/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title prompt-manager API
// @version 1.0
// @description Store and search text prompts.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(cfg.LoggerConfig()); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	// Migrate the schema
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: api.NewRouter(cfg, db),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
