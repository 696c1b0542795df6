package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/authgate/auth-api/internal/api"
	"github.com/authgate/auth-api/internal/core/ports"
	"github.com/authgate/auth-api/internal/core/service"
	"github.com/authgate/auth-api/internal/core/token"
	redisinfra "github.com/authgate/auth-api/internal/infrastructure/db/redis"
	"github.com/authgate/auth-api/internal/infrastructure/memory"
	"github.com/authgate/auth-api/internal/pkg/config"
	"github.com/authgate/auth-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	registry, err := memory.NewUserRegistry(memory.DefaultSeeds())
	if err != nil {
		log.Fatal().Err(err).Msg("user registry construction failed")
	}

	ctx := context.Background()

	var rdb *goredis.Client
	var limiter ports.LoginLimiter
	if cfg.Redis.Addr != "" {
		rdb, err = redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		limiter = redisinfra.NewAttemptLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttle enabled")
	}

	codec := token.NewCodec(cfg.JWTSecret)
	authService := service.NewAuthService(registry, codec, limiter, cfg.TokenTTL, log)

	e := api.NewRouter(api.RouterConfig{
		AuthService: authService,
		Verifier:    codec,
		Redis:       rdb,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("auth api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("auth api stopped")
}
