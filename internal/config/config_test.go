package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.APIURL == "" {
		t.Fatal("expected a default API URL")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.Shards != 2 || cfg.QueueSize != 64 {
		t.Fatalf("executor sizing = %d/%d, want 2/64", cfg.Shards, cfg.QueueSize)
	}
	if !strings.HasSuffix(cfg.SessionFile, "session.json") {
		t.Fatalf("SessionFile = %q, want derived session.json path", cfg.SessionFile)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JOURNAL_API_URL", "http://localhost:3001")
	t.Setenv("JOURNAL_HTTP_TIMEOUT", "2s")
	t.Setenv("JOURNAL_SESSION_FILE", "/tmp/j/session.json")
	t.Setenv("JOURNAL_SHARDS", "4")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.APIURL != "http://localhost:3001" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.SessionFile != "/tmp/j/session.json" {
		t.Fatalf("SessionFile = %q", cfg.SessionFile)
	}
	if cfg.Shards != 4 {
		t.Fatalf("Shards = %d", cfg.Shards)
	}
}

func TestInvalidShards(t *testing.T) {
	t.Setenv("JOURNAL_SHARDS", "0")
	if _, err := New(); err == nil {
		t.Fatal("expected error for zero shards")
	}
}
