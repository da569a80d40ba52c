package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	if New("http://example.com", "test-token") == nil {
		t.Fatal("expected client")
	}
}

func TestNew_EmptyBaseURLPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty baseURL")
		}
	}()
	New("", "token")
}

// Every authenticated request carries the bearer credential.
func TestBearerTransport_AttachesAuthorization(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	if _, err := c.ListEntries(context.Background()); err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if got != "Bearer jwt-token" {
		t.Fatalf("Authorization header = %q", got)
	}
}

// With no credential configured, no Authorization header is sent — the
// unauthenticated surface (login/register) must not leak an empty bearer.
func TestBearerTransport_NoTokenNoHeader(t *testing.T) {
	var header string
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"token":"t","user":{"id":"u1","name":"n","email":"e@x.com"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	if _, err := c.Login(context.Background(), LoginRequest{Email: "e@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if present || header != "" {
		t.Fatalf("unexpected Authorization header %q", header)
	}
}

func TestPlaceholderDatasets(t *testing.T) {
	for _, e := range PlaceholderEntries() {
		if !e.Local || e.ID == "" || e.Title == "" {
			t.Fatalf("malformed placeholder entry: %+v", e)
		}
	}
	for _, task := range PlaceholderTasks() {
		if !task.Local || task.ID == "" {
			t.Fatalf("malformed placeholder task: %+v", task)
		}
		if task.Completed != (task.CompletionDate != nil) {
			t.Fatalf("placeholder violates completion invariant: %+v", task)
		}
	}
}
