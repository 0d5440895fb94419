// Package i18n holds the two-locale message catalog and the current locale.
package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

type Key string

var ErrUnknownLocale = errors.New("i18n: unknown locale")

var catalogs = map[Locale]map[Key]string{
	LocaleEN: enMessages,
	LocaleAR: arMessages,
}

// Params are substituted into `{name}` placeholders.
type Params map[string]any

// Store is the locale state. The zero value is not usable; use New.
type Store struct {
	mu     sync.RWMutex
	locale Locale
}

func New(l Locale) (*Store, error) {
	if _, ok := catalogs[l]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, l)
	}
	return &Store{locale: l}, nil
}

func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := catalogs[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	return l, nil
}

func (s *Store) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

func (s *Store) SetLocale(l Locale) error {
	if _, ok := catalogs[l]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, l)
	}
	s.mu.Lock()
	s.locale = l
	s.mu.Unlock()
	return nil
}

// Dir is the text direction of the current locale.
func (s *Store) Dir() string { return DirOf(s.Locale()) }

func DirOf(l Locale) string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// T renders key in the current locale.
func (s *Store) T(key Key, params Params) string {
	return Translate(s.Locale(), key, params)
}

// Translate renders key for locale l. A key missing from the locale renders
// as the key itself. Only the first occurrence of each placeholder is
// replaced.
func Translate(l Locale, key Key, params Params) string {
	text, ok := catalogs[l][key]
	if !ok || text == "" {
		text = string(key)
	}
	for k, v := range params {
		text = strings.Replace(text, "{"+k+"}", fmt.Sprint(v), 1)
	}
	return text
}
