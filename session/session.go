// Package session persists the client-side key-value state the web app kept
// in cookies: the bearer token and user profile (7 days), the language
// preference (30 days), and the cookie-consent flag (10 years). Values are
// stored in a single JSON file; expired keys read as absent.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Fulozz/daily-journal/client"
)

// Well-known keys.
const (
	TokenKey         = "token"
	UserKey          = "user"
	LanguageKey      = "language"
	CookiesAcceptKey = "cookies-accept"
)

// Expiries per key, matching the app's cookie lifetimes.
const (
	SessionTTL       = 7 * 24 * time.Hour
	LanguageTTL      = 30 * 24 * time.Hour
	CookiesAcceptTTL = 10 * 365 * 24 * time.Hour
)

type record struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is a file-backed key-value store with per-key expiry. It is written
// only at login/logout and preference changes; list operations never touch
// it, so a plain mutex is enough.
type Store struct {
	mu      sync.Mutex
	path    string
	records map[string]record
}

// Open loads the store at path, creating parent directories as needed.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, records: map[string]record{}}
	bs, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	if err := json.Unmarshal(bs, &s.records); err != nil {
		return nil, fmt.Errorf("session: parse %s: %w", path, err)
	}
	return s, nil
}

// Set stores value under key with the given lifetime and persists.
func (s *Store) Set(key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = record{Value: value, ExpiresAt: time.Now().Add(ttl)}
	return s.save()
}

// Get returns the value for key, or false when absent or expired.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	if !ok || time.Now().After(rec.ExpiresAt) {
		return "", false
	}
	return rec.Value, true
}

// Delete removes key and persists.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return s.save()
}

// SetSession stores the bearer token and user profile after login.
func (s *Store) SetSession(token string, user client.User) error {
	bs, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Now().Add(SessionTTL)
	s.records[TokenKey] = record{Value: token, ExpiresAt: exp}
	s.records[UserKey] = record{Value: string(bs), ExpiresAt: exp}
	return s.save()
}

// Session returns the persisted credential and user, or false when either
// is absent or expired.
func (s *Store) Session() (client.Session, bool) {
	token, ok := s.Get(TokenKey)
	if !ok {
		return client.Session{}, false
	}
	raw, ok := s.Get(UserKey)
	if !ok {
		return client.Session{}, false
	}
	var user client.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return client.Session{}, false
	}
	return client.Session{Token: token, User: user}, true
}

// ClearSession removes the credential and user at logout; the language and
// consent preferences survive.
func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, TokenKey)
	delete(s.records, UserKey)
	return s.save()
}

// Language returns the persisted language preference, defaulting to "en".
func (s *Store) Language() string {
	if lang, ok := s.Get(LanguageKey); ok {
		return lang
	}
	return "en"
}

// SetLanguage persists the language preference for 30 days.
func (s *Store) SetLanguage(lang string) error {
	return s.Set(LanguageKey, lang, LanguageTTL)
}

// save writes atomically: temp file in the same directory, then rename.
// Callers hold s.mu.
func (s *Store) save() error {
	bs, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("session: temp file: %w", err)
	}
	if _, err := tmp.Write(bs); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("session: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("session: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}
