package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/contentloom/console/internal/handler"
	"github.com/contentloom/console/internal/service"
	"github.com/contentloom/console/internal/store"
	"github.com/contentloom/console/pkg/config"
	"github.com/contentloom/console/pkg/logger"
	"github.com/contentloom/console/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	files, err := storage.NewLocalStorage(cfg.Server.MediaDir)
	if err != nil {
		logr.Sugar().Fatalw("media storage init failed", "error", err)
	}

	metrics := service.NewMetricsService()
	r := handler.NewRouter(cfg, store.Seeded(), files, metrics, logr)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logr.Sugar().Infow("stub backend starting", "addr", addr, "env", cfg.Env, "media_dir", cfg.Server.MediaDir)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("stub backend failed", "error", err)
	}
}
