package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Fulozz/daily-journal/client"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "session.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := tempStore(t)
	user := client.User{ID: "u-1", Name: "Thiago", Email: "thiago@example.com"}
	if err := s.SetSession("tok-abc", user); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := s.SetLanguage("pt"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}

	// Reopen from disk to prove persistence.
	reopened, err := Open(s.path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	sess, ok := reopened.Session()
	if !ok {
		t.Fatal("expected a persisted session")
	}
	if sess.Token != "tok-abc" || sess.User.Email != "thiago@example.com" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if got := reopened.Language(); got != "pt" {
		t.Fatalf("language = %q, want pt", got)
	}
}

func TestExpiredKeysReadAsAbsent(t *testing.T) {
	s := tempStore(t)
	if err := s.Set(TokenKey, "stale", -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := s.Get(TokenKey); ok {
		t.Fatal("expired token should not be returned")
	}
	if _, ok := s.Session(); ok {
		t.Fatal("expired session should read as absent")
	}
}

func TestClearSessionKeepsPreferences(t *testing.T) {
	s := tempStore(t)
	if err := s.SetSession("tok", client.User{ID: "u-1"}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := s.SetLanguage("es"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if err := s.Set(CookiesAcceptKey, "true", CookiesAcceptTTL); err != nil {
		t.Fatalf("Set consent: %v", err)
	}
	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if _, ok := s.Session(); ok {
		t.Fatal("session should be gone after logout")
	}
	if got := s.Language(); got != "es" {
		t.Fatalf("language should survive logout, got %q", got)
	}
	if _, ok := s.Get(CookiesAcceptKey); !ok {
		t.Fatal("consent flag should survive logout")
	}
}

func TestLanguageDefault(t *testing.T) {
	s := tempStore(t)
	if got := s.Language(); got != "en" {
		t.Fatalf("default language = %q, want en", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Open on missing file: %v", err)
	}
	if _, ok := s.Session(); ok {
		t.Fatal("empty store should have no session")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
