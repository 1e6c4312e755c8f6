package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openhrv/etcore/internal/config"
	"github.com/openhrv/etcore/internal/database"
	"github.com/openhrv/etcore/internal/modules/analysis"
	"github.com/openhrv/etcore/internal/modules/sentinel"
	"github.com/openhrv/etcore/internal/scheduler"
	"github.com/openhrv/etcore/internal/server"
	"github.com/openhrv/etcore/pkg/logger"
)

const snapshotRetention = 14 * 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info"})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting etcore")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := analysis.InitSchema(db.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	// Wire modules
	repo := analysis.NewRepository(db.Conn(), log)
	analysisService := analysis.NewService(cfg, repo, log)
	analysisHandler := analysis.NewHandler(analysisService, log)
	sentinelHandler := sentinel.NewHandler(cfg, log)

	// Initialize scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	pruneJob := scheduler.NewSnapshotPruneJob(repo, snapshotRetention, log)
	if err := sched.AddJob("0 0 3 * * *", pruneJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot prune job")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:     cfg.Port,
		Log:      log,
		DB:       db,
		Config:   cfg,
		DevMode:  cfg.DevMode,
		Analysis: analysisHandler,
		Sentinel: sentinelHandler,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
