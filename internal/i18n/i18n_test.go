package i18n_test

import (
	"errors"
	"testing"

	"karilike/internal/i18n"
)

func TestTranslate_Placeholders(t *testing.T) {
	got := i18n.Translate(i18n.LocaleEN, i18n.KeyFoundProperties, i18n.Params{"count": 3})
	if got != "Found 3 properties matching your criteria" {
		t.Fatalf("unexpected text: %q", got)
	}
	got = i18n.Translate(i18n.LocaleAR, i18n.KeyAuthWelcome, i18n.Params{"name": "Sara"})
	if got != "مرحباً، Sara" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTranslate_MissingKeyFallsBackToKey(t *testing.T) {
	if got := i18n.Translate(i18n.LocaleEN, i18n.Key("no_such_key"), nil); got != "no_such_key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestStore_LocaleAndDir(t *testing.T) {
	s, err := i18n.New(i18n.LocaleAR)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.Dir() != "rtl" {
		t.Fatalf("expected rtl for ar, got %s", s.Dir())
	}
	if err := s.SetLocale(i18n.LocaleEN); err != nil {
		t.Fatalf("err: %v", err)
	}
	if s.Dir() != "ltr" || s.T(i18n.KeySearchBtn, nil) != "Search" {
		t.Fatalf("unexpected state: dir=%s text=%s", s.Dir(), s.T(i18n.KeySearchBtn, nil))
	}
	if err := s.SetLocale("fr"); !errors.Is(err, i18n.ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
	if s.Locale() != i18n.LocaleEN {
		t.Fatalf("locale changed on failed set: %s", s.Locale())
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for _, k := range []i18n.Key{i18n.KeyChatIntro, i18n.KeyAuthErrorCreds, i18n.KeyAuthErrorExists, i18n.KeyHandpicked} {
		if i18n.Translate(i18n.LocaleAR, k, nil) == string(k) {
			t.Fatalf("ar missing %s", k)
		}
		if i18n.Translate(i18n.LocaleEN, k, nil) == string(k) {
			t.Fatalf("en missing %s", k)
		}
	}
}
