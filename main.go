package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventfulhub/eventful-hub-api/internal/di"
	"github.com/eventfulhub/eventful-hub-api/pkg/config"
	"github.com/eventfulhub/eventful-hub-api/pkg/logger"
	"github.com/eventfulhub/eventful-hub-api/pkg/middleware"
	"github.com/eventfulhub/eventful-hub-api/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.Init(logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	ctx := context.Background()

	if cfg.OTel.Enabled {
		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName: cfg.App.Name,
			Endpoint:    cfg.OTel.Endpoint,
			Environment: cfg.App.Environment,
		})
		if err != nil {
			log.Warn("tracing disabled", zap.Error(err))
		} else {
			defer shutdown(ctx)
		}
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatal("failed to build container", zap.Error(err))
	}
	defer container.Close(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, container)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

func setupRouter(cfg *config.Config, container *di.Container) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware())
	}

	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	api := router.Group("/api")
	{
		events := api.Group("/events")
		{
			events.GET("", container.EventHandler.List)
			events.POST("", container.EventHandler.Create)
			events.GET("/:id", container.EventHandler.GetByID)
			events.DELETE("/:id", container.EventHandler.Delete)
		}
	}

	if cfg.IsProduction() {
		serveFrontend(router, cfg.Static.Dir)
	}

	return router
}

// serveFrontend serves the built SPA from its build root. Requests matching a
// real file (bundles, favicon) get that file; anything else falls through to
// index.html so client-side routing works.
func serveFrontend(router *gin.Engine, dir string) {
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"suc": "not ok", "msg": "Not found"})
			return
		}

		// Clean the rooted path so ".." cannot escape the build dir.
		file := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		c.File(filepath.Join(dir, "index.html"))
	})
}
