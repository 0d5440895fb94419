package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_DELAY_MS", "")
	t.Setenv("STORAGE_BACKEND", "")
	c := Load()
	if c.AuthDelay != 800*time.Millisecond {
		t.Fatalf("auth delay: %v", c.AuthDelay)
	}
	if c.StorageBackend != "memory" || c.DefaultLocale != "ar" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_DELAY_MS", "0")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("GEMINI_RPS", "oops")
	c := Load()
	if c.AuthDelay != 0 || c.RedisDB != 3 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.GeminiRPS != 5 {
		t.Fatalf("bad int should fall back to default, got %d", c.GeminiRPS)
	}
}
