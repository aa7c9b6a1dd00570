package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/config"
	"sneakr-backend/internal/common/logger"
	apphttp "sneakr-backend/internal/http"
	"sneakr-backend/internal/platform/db"
	"sneakr-backend/internal/platform/mail"
	redisplatform "sneakr-backend/internal/platform/redis"
)

// @title Sneakr API
// @version 1.0
// @description Sneaker catalog backend with accounts, wishlists and collections.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config load: %v", err))
	}
	logger.Init("sneakr-api", cfg.Debug)

	database, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql open failed")
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	var rdb *redisplatform.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisplatform.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis open failed")
		}
		defer rdb.Close()
	}

	sender := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: apphttp.NewRouter(database, rdb, sender, cfg),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
