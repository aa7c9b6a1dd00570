package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/logger"
	"sneakr-backend/internal/scraper"
)

func main() {
	apiURL := flag.String("api", envOr("SCRAPER_API_URL", "https://api.thesneakerdatabase.dev/sneakers"), "sneaker API base URL")
	out := flag.String("out", envOr("SCRAPER_OUT", "sneakers.csv"), "output CSV path")
	pageSize := flag.Int("page-size", scraper.DefaultPageSize, "items per API page")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	logger.Init("scraper", *debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := scraper.NewClient(*apiURL, *pageSize)
	sneakers := client.FetchAll(ctx)

	if err := scraper.WriteCSVFile(*out, sneakers); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("failed to write export")
	}
	log.Info().Int("count", len(sneakers)).Str("path", *out).Msg("export written")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
