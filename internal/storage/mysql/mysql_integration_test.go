//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"karilike/internal/domain"
	mysqlrepo "karilike/internal/storage/mysql"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest unavailable: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=karilike"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Skipf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/karilike?parseTime=true&multiStatements=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		if db, e = sql.Open("mysql", dsn); e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_RatingsAndSubmissions(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	a, err := repo.GetAggregate(ctx, "nobody")
	if err != nil || a.Count != 0 {
		t.Fatalf("absent owner: %+v %v", a, err)
	}

	if err := repo.SeedAggregate(ctx, "sarah.j@email.com", domain.Aggregate{Avg: 4.8, Count: 24}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// second seed is ignored
	_ = repo.SeedAggregate(ctx, "sarah.j@email.com", domain.Aggregate{Avg: 1, Count: 1})

	a, err = repo.SubmitRating(ctx, "sarah.j@email.com", 3, "ok")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Count != 25 || math.Abs(a.Avg-(4.8*24+3)/25) > 1e-9 {
		t.Fatalf("unexpected aggregate: %+v", a)
	}

	// only the aggregate row is kept for a rating
	var tables int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE()`).Scan(&tables); err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if tables != 2 {
		t.Fatalf("expected only owner_ratings and listing_submissions, got %d tables", tables)
	}
	var rows int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM owner_ratings WHERE owner_key = ?`, "sarah.j@email.com").Scan(&rows); err != nil || rows != 1 {
		t.Fatalf("expected one aggregate row, got %d (%v)", rows, err)
	}

	// concurrent ratings on a fresh owner are all counted
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.SubmitRating(ctx, "fresh", 4, ""); err != nil {
				t.Errorf("concurrent submit: %v", err)
			}
		}()
	}
	wg.Wait()
	a, _ = repo.GetAggregate(ctx, "fresh")
	if a.Count != 8 || a.Avg != 4 {
		t.Fatalf("lost ratings: %+v", a)
	}

	sub := domain.Submission{
		Property: domain.Property{
			ID: "sub-1", Title: "Riad", Price: 900, Type: "Villa", Location: "Medina, Fez",
			Amenities: []string{"Patio"}, Images: []string{"img://1"},
			OwnerName: "Omar", OwnerContact: "0611", OwnerID: "u1",
		},
		Intent:   domain.IntentLease,
		Category: "Villa",
	}
	if err := repo.SubmitListing(ctx, sub); err != nil {
		t.Fatalf("submit listing: %v", err)
	}
	got, err := repo.GetSubmission(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if got.Intent != domain.IntentLease || got.OwnerID != "u1" || len(got.Images) != 1 || got.Amenities[0] != "Patio" {
		t.Fatalf("unexpected submission: %+v", got)
	}
	if _, err := repo.GetSubmission(ctx, "missing"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
