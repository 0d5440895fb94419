package memory_test

import (
	"context"
	"math"
	"testing"

	"karilike/internal/domain"
	"karilike/internal/storage/memory"
)

func TestKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("expected absent key")
	}
	_ = kv.Set(ctx, "k", "v")
	if v, ok, _ := kv.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("got %q %v", v, ok)
	}
	_ = kv.Remove(ctx, "k")
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestRatings_SeedThenSubmit(t *testing.T) {
	ctx := context.Background()
	r := memory.NewRatings()
	_ = r.SeedAggregate(ctx, "o", domain.Aggregate{Avg: 4, Count: 1})
	// second seed must not overwrite
	_ = r.SeedAggregate(ctx, "o", domain.Aggregate{Avg: 1, Count: 100})

	got, err := r.SubmitRating(ctx, "o", 5, "great")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Count != 2 || math.Abs(got.Avg-4.5) > 1e-9 {
		t.Fatalf("unexpected aggregate: %+v", got)
	}
	if _, err := r.SubmitRating(ctx, "o", 9, ""); err == nil {
		t.Fatalf("expected invalid rating error")
	}
	if a, _ := r.GetAggregate(ctx, "o"); a != got {
		t.Fatalf("failed submit changed state: %+v", a)
	}
}
