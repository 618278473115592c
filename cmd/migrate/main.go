package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/migrations"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/postgres"
	"github.com/webappnoauth/catalog-portal/internal/pkg/config"
	"github.com/webappnoauth/catalog-portal/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for down command (optional)")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.Init(logger.Options{
		Service: "catalog-migrate",
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.URL})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	runner, err := migrations.New(db, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to configure migration runner")
		os.Exit(1)
	}

	switch *command {
	case "up":
		err = runner.Up(ctx)
	case "status":
		err = runner.Status(ctx)
	case "down":
		err = runner.Down(ctx, *target)
	default:
		log.Error().Str("command", *command).Msg("unsupported command")
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migration command failed")
		os.Exit(1)
	}

	log.Info().Str("command", *command).Msg("migration command completed")
}
