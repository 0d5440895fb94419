package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"karilike/internal/app"
	"karilike/internal/catalog"
	"karilike/internal/domain"
)

func TestSearch_LocalStudio(t *testing.T) {
	s := app.NewSearchService(nil)
	got, err := s.Search(context.Background(), app.Query{Text: "studio"}, catalog.Default().All())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("unexpected ids: %v", ids(got))
	}
}

func TestSearch_LocalMatchesTitleLocationOrCategory(t *testing.T) {
	s := app.NewSearchService(nil)
	corpus := catalog.Default().All()
	cases := map[string][]string{
		"ROOM":      {"3", "6"}, // category "Shared Room" and titles
		"rabat":     {"1", "4"}, // location
		"loft":      {"5"},      // title
		"apartment": {"2", "5"},
		"penthouse": {},
	}
	for q, want := range cases {
		got, err := s.Search(context.Background(), app.Query{Text: q}, corpus)
		if err != nil {
			t.Fatalf("%s: %v", q, err)
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("%s: got %v want %v", q, ids(got), want)
		}
	}
}

func TestSearch_LocalMatchKeepsSurroundingSpaces(t *testing.T) {
	s := app.NewSearchService(nil)
	corpus := catalog.Default().All()
	cases := map[string][]string{
		" rabat": {"1", "4"}, // ", Rabat" contains the leading space
		"rabat ": {},
	}
	for q, want := range cases {
		got, err := s.Search(context.Background(), app.Query{Text: q}, corpus)
		if err != nil {
			t.Fatalf("%q: %v", q, err)
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("%q: got %v want %v", q, ids(got), want)
		}
	}
}

func TestSearch_CityOnly(t *testing.T) {
	s := app.NewSearchService(nil)
	got, _ := s.Search(context.Background(), app.Query{City: "rabat"}, catalog.Default().All())
	if !reflect.DeepEqual(ids(got), []string{"1", "4"}) {
		t.Fatalf("unexpected ids: %v", ids(got))
	}
	got, _ = s.Search(context.Background(), app.Query{City: "Rab"}, catalog.Default().All())
	if len(got) != 0 {
		t.Fatalf("city match must be exact, got %v", ids(got))
	}
}

func TestSearch_CityThenText(t *testing.T) {
	s := app.NewSearchService(nil)
	got, _ := s.Search(context.Background(), app.Query{City: "Rabat", Text: "house"}, catalog.Default().All())
	if !reflect.DeepEqual(ids(got), []string{"4"}) {
		t.Fatalf("unexpected ids: %v", ids(got))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := app.NewSearchService(nil)
	if _, err := s.Search(context.Background(), app.Query{Text: "   "}, catalog.Default().All()); !errors.Is(err, domain.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearch_AIGetsCityFilteredSubsetAndKeepsCatalogOrder(t *testing.T) {
	// assistant returns an id outside the subset and a reversed order
	ai := &fakeAssistant{ids: []string{"4", "2", "1"}}
	s := app.NewSearchService(ai)
	got, err := s.Search(context.Background(), app.Query{Text: "family", City: "Rabat", AIMode: true}, catalog.Default().All())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !reflect.DeepEqual(ids(ai.gotProps), []string{"1", "4"}) {
		t.Fatalf("assistant should see only the city subset, got %v", ids(ai.gotProps))
	}
	if ai.gotQuery != "family" {
		t.Fatalf("unexpected query: %q", ai.gotQuery)
	}
	if !reflect.DeepEqual(ids(got), []string{"1", "4"}) {
		t.Fatalf("unexpected ids: %v", ids(got))
	}
}

func TestSearch_AIEmptyReply(t *testing.T) {
	s := app.NewSearchService(&fakeAssistant{ids: []string{}})
	got, err := s.Search(context.Background(), app.Query{Text: "castle", AIMode: true}, catalog.Default().All())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v %v", ids(got), err)
	}
}
