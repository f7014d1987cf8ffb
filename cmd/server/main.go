package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AET-DevOps25/team-opsontherocks/internal/api"
	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/service"
	mongodb "github.com/AET-DevOps25/team-opsontherocks/internal/infrastructure/db/mongo"
	redisdb "github.com/AET-DevOps25/team-opsontherocks/internal/infrastructure/db/redis"
	"github.com/AET-DevOps25/team-opsontherocks/internal/pkg/config"
	"github.com/AET-DevOps25/team-opsontherocks/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == string(auth.EnvLocal),
	})

	env, err := auth.ParseEnvironment(cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid deployment environment")
	}

	// A weak signing key silently breaks every token's integrity guarantee;
	// refusing to start is the only safe response.
	codec, err := auth.NewTokenCodec(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unavailable")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	users := mongodb.NewUserRepository(db)
	categories := service.NewCategoryService(mongodb.NewCategoryRepository(db))
	if err := service.SeedUsers(ctx, users, categories, log); err != nil {
		log.Fatal().Err(err).Msg("seeding demo users")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		Codec:        codec,
		CookiePolicy: auth.NewCookiePolicy(env, cfg.CookieDomain),
		ClientOrigin: cfg.ClientOrigin,
		Log:          log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
