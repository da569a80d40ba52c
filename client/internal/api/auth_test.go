package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fulozz/daily-journal/client/internal/types"
	"github.com/Fulozz/daily-journal/internal/apierr"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req types.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(types.LoginResponse{
			Token: "jwt-token",
			User:  types.User{ID: "u1", Name: "John Doe", Email: req.Email},
		})
	}))
	defer srv.Close()
	got, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "john@example.com", Password: "secret"})
	if err != nil || got.Token != "jwt-token" || got.User.ID != "u1" {
		t.Fatalf("Login unexpected: got=%+v err=%v", got, err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "a@b.com", Password: "wrong"})
	if !apierr.IsUnauthorized(err) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/validate-token" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()
	if err := ValidateToken(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	srv401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv401.Close()
	if err := ValidateToken(context.Background(), srv401.Client(), srv401.URL); !apierr.IsUnauthorized(err) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

// A password/confirm mismatch is rejected client-side; the request is never
// sent.
func TestUpdatePassword_MismatchNeverSent(t *testing.T) {
	t.Parallel()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	err := UpdatePassword(context.Background(), srv.Client(), srv.URL, types.UpdatePasswordRequest{
		CurrentPassword: "old", NewPassword: "new-secret", ConfirmPassword: "other",
	})
	if !apierr.IsValidation(err) {
		t.Fatalf("expected Validation error, got %v", err)
	}
	if hits != 0 {
		t.Fatal("mismatched password request reached the network")
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/user/password" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.Ack{Success: true})
	}))
	defer srv.Close()
	err := UpdatePassword(context.Background(), srv.Client(), srv.URL, types.UpdatePasswordRequest{
		CurrentPassword: "old", NewPassword: "new-secret", ConfirmPassword: "new-secret",
	})
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
}

func TestSearchUsers_QueryEncoded(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "john doe" {
			t.Errorf("query not encoded, got %q", got)
		}
		_, _ = w.Write([]byte(`[{"_id":"1","name":"John Doe","email":"john@example.com"}]`))
	}))
	defer srv.Close()
	got, err := SearchUsers(context.Background(), srv.Client(), srv.URL, "john doe")
	if err != nil || len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("SearchUsers unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/user" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.User{ID: "u1", Name: "John Smith"})
	}))
	defer srv.Close()
	got, err := UpdateUser(context.Background(), srv.Client(), srv.URL, types.UpdateUserRequest{Name: "John Smith"})
	if err != nil || got.Name != "John Smith" {
		t.Fatalf("UpdateUser unexpected: got=%+v err=%v", got, err)
	}
}
