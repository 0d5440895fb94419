package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"karilike/internal/app"
	"karilike/internal/domain"
	"karilike/internal/storage/memory"
)

func TestSubmit_NoImagesRejected(t *testing.T) {
	sink := memory.NewSubmissions()
	s := app.NewListingService(sink, &fakeAssistant{})
	d := app.NewDraft(nil)
	d.Title, d.Location, d.Price = "Flat", "Agdal, Rabat", "4000"

	_, err := s.Submit(context.Background(), d, nil)
	if !errors.Is(err, domain.ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}
	if len(sink.List()) != 0 {
		t.Fatalf("rejected draft must not be submitted")
	}
}

func TestSubmit_BuildsRecord(t *testing.T) {
	sink := memory.NewSubmissions()
	s := app.NewListingService(sink, &fakeAssistant{})
	u := &domain.PublicUser{ID: "u1", Name: "Omar", Email: "o@x.ma", Phone: "0611"}
	d := app.NewDraft(u)
	d.Intent = domain.IntentLease
	d.Category = "Villa"
	d.Location = "Anfa, Casablanca"
	d.Price = " 7500 "
	d.Features = " Pool, ,Garden ,, WiFi"
	d.Images = []string{"img://1"}

	sub, err := s.Submit(context.Background(), d, u)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.ID == "" || sub.OwnerID != "u1" || sub.OwnerName != "Omar" || sub.OwnerContact != "0611" {
		t.Fatalf("unexpected owner fields: %+v", sub)
	}
	if sub.Price != 7500 || sub.Intent != domain.IntentLease || sub.Category != "Villa" {
		t.Fatalf("unexpected fields: %+v", sub)
	}
	if !reflect.DeepEqual(sub.Amenities, []string{"Pool", "Garden", "WiFi"}) {
		t.Fatalf("unexpected amenities: %v", sub.Amenities)
	}
	if got := sink.List(); len(got) != 1 || got[0].ID != sub.ID {
		t.Fatalf("expected one submission in sink, got %+v", got)
	}
}

func TestSubmit_AnonymousHasNoOwnerID(t *testing.T) {
	sink := memory.NewSubmissions()
	s := app.NewListingService(sink, &fakeAssistant{})
	d := app.NewDraft(nil)
	d.Images = []string{"a"}
	sub, err := s.Submit(context.Background(), d, nil)
	if err != nil || sub.OwnerID != "" || sub.Intent != domain.IntentRent {
		t.Fatalf("unexpected: %+v %v", sub, err)
	}
}

func TestNewDraft_ContactFallsBackToEmail(t *testing.T) {
	d := app.NewDraft(&domain.PublicUser{Name: "Ana", Email: "a@x.ma"})
	if d.OwnerContact != "a@x.ma" || d.Category != "Apartment" {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestCoercePrice(t *testing.T) {
	cases := map[string]float64{"": 0, "1200": 1200, "-5": -5, "12.5": 12.5, "abc": 0, "NaN": 0}
	for in, want := range cases {
		if got := app.CoercePrice(in); got != want {
			t.Fatalf("CoercePrice(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateDescription(t *testing.T) {
	ai := &fakeAssistant{describe: "Lovely."}
	s := app.NewListingService(memory.NewSubmissions(), ai)
	d := app.NewDraft(nil)
	if _, err := s.GenerateDescription(context.Background(), d); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	d.Location, d.Features = "Fez", "Garden"
	got, err := s.GenerateDescription(context.Background(), d)
	if err != nil || got != "Lovely." {
		t.Fatalf("unexpected: %q %v", got, err)
	}
	if ai.gotQuery != "Rent Apartment|Fez|Garden" {
		t.Fatalf("unexpected assistant input: %q", ai.gotQuery)
	}
}
