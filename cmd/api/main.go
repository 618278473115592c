// @title           Catalog Portal API
// @version         1.0
// @description     Product catalog read through raw SQL and an ORM, with a JWT-protected admin area.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webappnoauth/catalog-portal/internal/api"
	"github.com/webappnoauth/catalog-portal/internal/api/handler"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
	"github.com/webappnoauth/catalog-portal/internal/core/service"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/gormdb"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/memory"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/migrations"
	mongodb "github.com/webappnoauth/catalog-portal/internal/infrastructure/db/mongo"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/postgres"
	redisdb "github.com/webappnoauth/catalog-portal/internal/infrastructure/db/redis"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/queue"
	"github.com/webappnoauth/catalog-portal/internal/pkg/config"
	"github.com/webappnoauth/catalog-portal/pkg/logger"
	"github.com/webappnoauth/catalog-portal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	log := logger.Init(logger.Options{
		Service: "catalog-api",
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
	})

	// --- Postgres: shared by the raw SQL reader, gorm and goose ---
	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		runner, err := migrations.New(db, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure migrations")
		}
		if err := runner.Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}

	gdb, err := gormdb.Open(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open gorm")
	}

	health := map[string]handler.Pinger{
		"postgres": db.PingContext,
	}

	// --- Redis: optional login rate limiter ---
	var limiter ports.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		limiter = redisdb.NewRateLimiter(rdb, cfg.Redis.LoginLimit, cfg.Redis.LoginWindow)
		health["redis"] = redisdb.Ping(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, login rate limiting disabled")
	}

	// --- MongoDB: optional login audit trail ---
	var auditor ports.LoginAuditor = queue.NopAuditor{}
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			if err := mongodb.Disconnect(client); err != nil {
				log.Error().Err(err).Msg("mongodb disconnect")
			}
		}()

		events := mongodb.NewLoginEventRepository(mdb)
		if err := events.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure login event indexes")
		}

		dispatcher := queue.NewDispatcher(cfg.Mongo.Workers, events, log)
		dispatcher.Start(context.Background())
		defer dispatcher.Stop()

		auditor = dispatcher
		health["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	} else {
		log.Warn().Msg("MONGO_URI not set, login audit disabled")
	}

	// --- Services ---
	tokens := service.NewTokenService(service.TokenConfig{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.Expiry,
	})
	users := service.NewUserService(memory.NewUserRepository(memory.SeedUsers), log)
	login := service.NewLoginService(tokens, auditor, log)
	catalog := service.NewCatalogService(
		postgres.NewProductRepository(db),
		gormdb.NewProductRepository(gdb),
		log,
	)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	e := api.NewRouter(api.Deps{
		Logger:        log,
		Tokens:        tokens,
		Login:         login,
		Users:         users,
		Catalog:       catalog,
		Renderer:      renderer,
		Limiter:       limiter,
		Health:        health,
		SecureCookies: !cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		log.Info().Msg("server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}
}
