package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"yatra/backend/internal/config"
	"yatra/backend/internal/db"
	"yatra/backend/internal/handler"
	yatrahttp "yatra/backend/internal/http"
	"yatra/backend/internal/network"
	"yatra/backend/internal/repository"
	"yatra/backend/internal/scheduler"
	"yatra/backend/internal/service"
	"yatra/backend/pkg/logger"
	"yatra/backend/pkg/snowflake"
	"yatra/backend/pkg/ttlcache"
)

const (
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title Yatra Backend API
// @version 1.0
// @description Write endpoints and geo proxy for the Yatra travel site.
// @BasePath /api
func main() {
	// Optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(0); err != nil {
		logger.Error("snowflake init failed", "module", "main", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("database open failed", "module", "main", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	subscriberRepo := repository.NewSubscriberRepository(database)
	contactRepo := repository.NewContactMessageRepository(database)
	leadRepo := repository.NewTripLeadRepository(database)
	eventRepo := repository.NewRateLimitEventRepository(database)
	tokenRepo := repository.NewConsumedTokenRepository(database)

	clientFactory := network.NewClientFactory()
	limiter := service.NewRateLimiter(eventRepo)
	verifier := service.NewTurnstileVerifier(cfg.TurnstileSecret, cfg.TurnstileHostnames, tokenRepo, clientFactory)

	if cfg.TurnstileRequired && cfg.TurnstileSecret == "" {
		logger.Warn("turnstile required but no secret configured; write endpoints will refuse submissions",
			"module", "main")
	}

	geocodeCache := ttlcache.New[service.GeocodeResult]()
	placesCache := ttlcache.New[[]service.Place]()

	newsletterService := service.NewNewsletterService(subscriberRepo, limiter, verifier, cfg.TurnstileRequired)
	contactService := service.NewContactService(contactRepo, limiter, verifier, cfg.TurnstileRequired)
	leadService := service.NewLeadService(leadRepo, limiter, verifier, cfg.TurnstileRequired)
	geoService := service.NewGeoService(cfg.GeoapifyAPIKey, limiter, geocodeCache, placesCache, clientFactory)
	maintenanceService := service.NewMaintenanceService(eventRepo, tokenRepo, geocodeCache, placesCache)

	e := yatrahttp.NewRouter(
		handler.NewNewsletterHandler(newsletterService),
		handler.NewContactHandler(contactService),
		handler.NewLeadHandler(leadService),
		handler.NewGeoHandler(geoService),
		cfg.StaticDir,
		cfg.EnableSwagger,
	)

	sched := scheduler.New(maintenanceService, sweepInterval)
	sched.Start()
	defer sched.Stop()

	go func() {
		logger.Info("server listening", "module", "main", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil {
			logger.Info("server stopped", "module", "main", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", "module", "main")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "module", "main", "error", err)
	}
}
