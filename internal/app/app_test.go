package app_test

import (
	"context"
	"testing"
	"time"

	"karilike/internal/app"
	"karilike/internal/domain"
	"karilike/internal/i18n"
	"karilike/internal/storage/memory"
)

func newApp(t *testing.T, kv domain.KVStore) *app.App {
	t.Helper()
	a, err := app.New(app.Deps{
		KV:          kv,
		Assistant:   &fakeAssistant{reply: "hi"},
		Ratings:     memory.NewRatings(),
		Submissions: memory.NewSubmissions(),
		Cache:       &fakeCache{},
		CacheTTL:    time.Minute,
		Locale:      i18n.LocaleAR,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	kv := memory.NewKV()
	ctx := context.Background()
	a := newApp(t, kv)
	if err := a.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	pu, err := a.Sessions.Signup(ctx, domain.SignupRequest{Name: "Ana", Email: "a@x.ma", Password: "pw", Role: domain.RoleOwner})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	b := newApp(t, kv)
	if err := b.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if cur := b.Sessions.Current(); cur == nil || cur.ID != pu.ID {
		t.Fatalf("session not restored: %+v", cur)
	}
	if err := b.Logout(ctx); err != nil || b.Sessions.Current() != nil {
		t.Fatalf("logout failed: %v", err)
	}
}

func TestApp_RateOwnerStartsFromCatalog(t *testing.T) {
	a := newApp(t, memory.NewKV())
	ctx := context.Background()
	// owner of "5" has 5.0 over 5 reviews
	p, err := a.RateOwner(ctx, "5", 2, "late reply")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if p.OwnerReviewCount != 6 || *p.OwnerRating != 27.0/6 {
		t.Fatalf("unexpected aggregate: %v over %d", *p.OwnerRating, p.OwnerReviewCount)
	}
	got, _ := a.Property(ctx, "5")
	if got.OwnerReviewCount != 6 {
		t.Fatalf("detail view should reflect the new aggregate: %+v", got)
	}
}

func TestApp_PropertyUnrated(t *testing.T) {
	a := newApp(t, memory.NewKV())
	p, err := a.Property(context.Background(), "3")
	if err != nil || p.OwnerReviewCount != 56 {
		t.Fatalf("expected catalog rating, got %+v %v", p, err)
	}
	if _, err := a.Property(context.Background(), "99"); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestApp_OpenChat(t *testing.T) {
	a := newApp(t, memory.NewKV())
	c, err := a.OpenChat("1")
	if err != nil {
		t.Fatalf("open chat: %v", err)
	}
	if h := c.History(); len(h) != 1 || h[0].Text != a.I18n.T(i18n.KeyChatIntro, nil) {
		t.Fatalf("unexpected intro: %+v", h)
	}
	if _, err := a.OpenChat("missing"); err == nil {
		t.Fatalf("expected error for unknown property")
	}
}
