package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"karilike/internal/adapters/gemini"
	server "karilike/internal/adapters/http_server"
	"karilike/internal/adapters/observability"
	redisad "karilike/internal/adapters/redis"
	"karilike/internal/app"
	"karilike/internal/domain"
	"karilike/internal/i18n"
	"karilike/internal/shared"
	"karilike/internal/storage/memory"
	mysqlrepo "karilike/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	locale, err := i18n.ParseLocale(cfg.DefaultLocale)
	if err != nil {
		log.Warn().Str("locale", cfg.DefaultLocale).Msg("unknown DEFAULT_LOCALE, using ar")
		locale = i18n.LocaleAR
	}

	deps := app.Deps{
		CacheTTL:  cfg.CacheTTL,
		AuthDelay: cfg.AuthDelay,
		Locale:    locale,
	}

	// session storage
	switch cfg.StorageBackend {
	case "redis":
		rc := redisad.Dial(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		deps.KV = redisad.NewKV(rc, cfg.SessionNamespace)
		deps.Cache = redisad.NewCache(rc)
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis session storage")
	default:
		deps.KV = memory.NewKV()
		log.Info().Msg("in-memory session storage")
	}

	// ratings and submissions
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo := mysqlrepo.New(db)
		deps.Ratings, deps.Submissions = repo, repo
	} else {
		deps.Ratings, deps.Submissions = memory.NewRatings(), memory.NewSubmissions()
	}

	deps.Assistant = gemini.NewAssistant(gemini.New(cfg.GeminiBase, cfg.GeminiKey, cfg.GeminiModel, cfg.GeminiRPS))

	a, err := app.New(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("app init failed")
	}
	if err := a.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("session restore failed")
	}
	seedRatings(ctx, a, cfg.SeedWorkers, deps.Ratings)

	// http
	srv := server.New(log.Logger, 30*time.Second)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(server.NewHandlers(a))

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("locale", string(locale)).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}

// seedRatings gives in-memory ratings the catalog's starting aggregates.
// A MySQL store is seeded by cmd/seeder.
func seedRatings(ctx context.Context, a *app.App, workers int, repo domain.RatingsRepository) {
	if _, ok := repo.(*memory.Ratings); !ok {
		return
	}
	n, err := a.Ratings.SeedOwners(ctx, a.Catalog.All(), workers)
	if err != nil {
		log.Warn().Err(err).Msg("rating seed incomplete")
	}
	log.Info().Int("owners", n).Msg("ratings seeded")
}
