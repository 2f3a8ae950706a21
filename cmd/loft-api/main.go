// PigeonPulse loft API entrypoint.
//
// @title           PigeonPulse Loft API
// @version         1.0
// @description     Multi-tenant pigeon pedigree and loft management backend.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pigeonpulse/loft-api/internal/api"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/config"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/db/mongo"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/db/redis"
	"github.com/pigeonpulse/loft-api/internal/infrastructure/identity"
	"github.com/pigeonpulse/loft-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	verifier, err := identity.NewOIDCVerifier(ctx, identity.Config{
		IssuerURL:       cfg.OIDC.IssuerURL,
		ClientID:        cfg.OIDC.ClientID,
		SkipIssuerCheck: cfg.OIDC.SkipIssuerCheck,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("oidc provider discovery failed")
	}

	e := api.NewRouter(db, rdb, verifier, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
}
