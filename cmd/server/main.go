package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/switchup/plan-engine/internal/config"
	"github.com/switchup/plan-engine/internal/database"
	"github.com/switchup/plan-engine/internal/modules/catalog"
	"github.com/switchup/plan-engine/internal/modules/extraction"
	"github.com/switchup/plan-engine/internal/modules/market"
	"github.com/switchup/plan-engine/internal/modules/recommendations"
	scoringapi "github.com/switchup/plan-engine/internal/modules/scoring/api"
	"github.com/switchup/plan-engine/internal/modules/scoring/scorers"
	"github.com/switchup/plan-engine/internal/modules/suitability"
	"github.com/switchup/plan-engine/internal/scheduler"
	"github.com/switchup/plan-engine/internal/server"
	"github.com/switchup/plan-engine/pkg/logger"
)

func main() {
	// Load configuration first so the log level is honored
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting plan comparison engine")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Catalog: storage, seed, initial snapshot
	repo := catalog.NewPlanRepository(db.Conn(), log)
	catalogSvc := catalog.NewService(repo, log)

	if cfg.SeedPath != "" {
		if _, err := os.Stat(cfg.SeedPath); err == nil {
			if err := catalogSvc.SeedIfEmpty(cfg.SeedPath); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed catalog")
			}
		}
	}
	if err := catalogSvc.Refresh(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog snapshot")
	}

	// Scoring engine
	baseline := market.NewBaselineCalculator(market.DefaultAverages())
	extractor := extraction.New()
	scorer := scorers.NewValueScorer(baseline)
	tagger := suitability.NewTagger()
	recSvc := recommendations.NewService(scorer, extractor, baseline, log)

	// Scheduler with periodic snapshot refresh
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	refreshJob := scheduler.NewCatalogRefreshJob(catalogSvc, log)
	if err := sched.AddJob(cfg.RefreshSchedule, refreshJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register catalog refresh job")
	}

	// HTTP server
	srv := server.New(server.Config{
		Port:                   cfg.Port,
		Log:                    log,
		DevMode:                cfg.DevMode,
		CatalogHandlers:        catalog.NewHandlers(catalogSvc, log),
		ScoringHandlers:        scoringapi.NewHandlers(scorer, extractor, tagger, catalogSvc, log),
		RecommendationHandlers: recommendations.NewHandlers(recSvc, catalogSvc, log),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}
