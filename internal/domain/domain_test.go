package domain_test

import (
	"errors"
	"math"
	"testing"

	"karilike/internal/domain"
)

func TestCityOf(t *testing.T) {
	cases := map[string]string{
		"Sidi Maarouf, Casablanca": "Casablanca",
		"Martil":                   "Martil",
		"  Martil  ":               "Martil",
		"A, B, Rabat":              "Rabat",
	}
	for in, want := range cases {
		if got := domain.CityOf(in); got != want {
			t.Fatalf("CityOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAggregate_ApplySequence(t *testing.T) {
	var a domain.Aggregate
	for _, s := range []int{5, 3, 4} {
		var err error
		if a, err = a.Apply(s); err != nil {
			t.Fatalf("apply %d: %v", s, err)
		}
	}
	if a.Count != 3 || math.Abs(a.Avg-4.0) > 1e-9 {
		t.Fatalf("unexpected aggregate: %+v", a)
	}
}

func TestAggregate_ApplyExisting(t *testing.T) {
	a := domain.Aggregate{Avg: 4.5, Count: 12}
	got, err := a.Apply(1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := (4.5*12 + 1) / 13
	if got.Count != 13 || math.Abs(got.Avg-want) > 1e-9 {
		t.Fatalf("got %+v want avg %f", got, want)
	}
}

func TestAggregate_RejectsOutOfRange(t *testing.T) {
	a := domain.Aggregate{Avg: 4, Count: 1}
	for _, s := range []int{0, 6, -1} {
		got, err := a.Apply(s)
		if !errors.Is(err, domain.ErrInvalidRating) || got != a {
			t.Fatalf("stars %d: got %+v err %v", s, got, err)
		}
	}
}

func TestUserPublic_DropsPassword(t *testing.T) {
	u := domain.User{ID: "u1", Name: "Ana", Email: "a@x", Password: "secret", Role: domain.RoleOwner}
	p := u.Public()
	if p.ID != "u1" || p.Email != "a@x" || p.Role != domain.RoleOwner {
		t.Fatalf("unexpected projection: %+v", p)
	}
}

func TestOwnerKey(t *testing.T) {
	p := domain.Property{OwnerContact: "c@x"}
	if p.OwnerKey() != "c@x" {
		t.Fatalf("expected contact fallback")
	}
	p.OwnerID = "owner-1"
	if p.OwnerKey() != "owner-1" {
		t.Fatalf("expected owner id")
	}
}
