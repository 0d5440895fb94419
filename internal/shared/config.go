package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	StorageBackend   string // memory|redis
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	SessionNamespace string
	CacheTTL         time.Duration

	MySQLDSN string // empty keeps ratings and submissions in memory

	GeminiBase  string
	GeminiKey   string
	GeminiModel string
	GeminiRPS   int

	AuthDelay     time.Duration
	DefaultLocale string
	SeedWorkers   int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:           env("APP_ENV", "prod"),
		LogLevel:         env("LOG_LEVEL", "info"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
		StorageBackend:   env("STORAGE_BACKEND", "memory"),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		SessionNamespace: env("SESSION_NAMESPACE", ""),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		MySQLDSN:         os.Getenv("MYSQL_DSN"),
		GeminiBase:       env("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiKey:        env("GEMINI_API_KEY", ""),
		GeminiModel:      env("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiRPS:        atoi("GEMINI_RPS", 5),
		AuthDelay:        time.Duration(atoi("AUTH_DELAY_MS", 800)) * time.Millisecond,
		DefaultLocale:    env("DEFAULT_LOCALE", "ar"),
		SeedWorkers:      atoi("SEED_WORKERS", 4),
	}
	if c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty; AI features will return fallbacks")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
