package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contentloom/console/internal/service"
	"github.com/contentloom/console/internal/store"
	"github.com/contentloom/console/pkg/config"
	"github.com/contentloom/console/pkg/logger"
	corsmiddleware "github.com/contentloom/console/pkg/middleware/cors"
	reqidmiddleware "github.com/contentloom/console/pkg/middleware/requestid"
	"github.com/contentloom/console/pkg/storage"
)

// NewRouter assembles the stub backend: the exact HTTP surface the console
// consumes, plus health and metrics endpoints.
func NewRouter(cfg *config.Config, st *store.Store, files *storage.LocalStorage, metrics *service.MetricsService, logr *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	if logr != nil {
		r.Use(logger.GinMiddleware(logr))
	}
	r.Use(corsmiddleware.New(cfg.Server.AllowedOrigins))

	content := NewContentHandler(st)
	media := NewMediaHandler(st, files, validator.New(), cfg.Server.MaxUploadBytes, logr)

	api := r.Group("/api")
	api.GET("/content-types/:apiId", content.GetContentType)
	api.GET("/content/:apiId", content.ListEntries)
	api.GET("/media", media.List)
	api.POST("/media", media.Upload)
	api.DELETE("/media/:id", media.Delete)

	r.StaticFS("/media", http.Dir(files.Dir()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return r
}
