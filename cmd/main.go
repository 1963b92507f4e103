package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davimarquesgiareta/casa-nova/internal/config"
	"github.com/davimarquesgiareta/casa-nova/internal/handler"
	"github.com/davimarquesgiareta/casa-nova/internal/middleware"
	"github.com/davimarquesgiareta/casa-nova/internal/repository"
	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	logger := newLogger(cfg.Log)

	pool, err := repository.NewPool(context.Background(), cfg.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", "error", err)
	}
	defer pool.Close()

	if err := repository.Migrate(pool); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	logger.Info("database ready", "host", cfg.Postgres.Host, "database", cfg.Postgres.Database)

	router := newRouter(logger, pool)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	logger.Info("stopped")
}

func newLogger(cfg config.LogConfig) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func newRouter(logger *log.Logger, pool *pgxpool.Pool) *gin.Engine {
	songRepo := repository.NewSongRepository(pool)
	showRepo := repository.NewShowRepository(pool)
	setlistRepo := repository.NewSetlistRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	songService := service.NewSongService(songRepo)
	showService := service.NewShowService(showRepo)
	setlistService := service.NewSetlistService(showRepo, songRepo, setlistRepo)
	statsService := service.NewStatsService(statsRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("X-Request-ID")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(router,
		handler.NewSongHandler(songService),
		handler.NewShowHandler(showService),
		handler.NewSetlistHandler(setlistService),
		handler.NewStatsHandler(statsService),
	)

	return router
}
