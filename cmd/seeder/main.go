package main

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"karilike/internal/adapters/observability"
	redisad "karilike/internal/adapters/redis"
	"karilike/internal/app"
	"karilike/internal/catalog"
	"karilike/internal/domain"
	"karilike/internal/shared"
	mysqlrepo "karilike/internal/storage/mysql"
)

// seeder writes each catalog owner's starting aggregate to MySQL, leaving
// owners that already have ratings untouched.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	// cached aggregates are invalidated as owners are seeded
	var cache domain.Cache
	if cfg.StorageBackend == "redis" {
		cache = redisad.NewCache(redisad.Dial(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))
	}

	ratings := app.NewRatingService(mysqlrepo.New(db), cache, cfg.CacheTTL)
	n, err := ratings.SeedOwners(ctx, catalog.Default().All(), cfg.SeedWorkers)
	if err != nil {
		log.Fatal().Err(err).Int("seeded", n).Msg("seeding failed")
	}
	log.Info().Int("owners", n).Msg("seeding completed")
}
