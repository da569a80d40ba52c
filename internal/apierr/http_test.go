package apierr

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassify_Unauthorized(t *testing.T) {
	t.Parallel()
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		e := Classify("list tasks", code, "")
		if e.Kind != Unauthorized {
			t.Fatalf("status %d: got kind %s, want Unauthorized", code, e.Kind)
		}
		if e.Recoverable() {
			t.Fatalf("status %d must not be recoverable", code)
		}
	}
}

func TestClassify_EndpointMissing404(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		body    string
		missing bool
	}{
		{"plain html page", "<html>404 Not Found</html>", true},
		{"empty body", "", true},
		{"json error marker", `{"error":"task not found"}`, false},
		{"json message marker", `{"message":"no such entry"}`, false},
		{"json without marker", `{"detail":"gone"}`, true},
		{"malformed json", `{"error":`, true},
	}
	for _, tc := range cases {
		e := Classify("get task", http.StatusNotFound, tc.body)
		if e.Kind != NotFound {
			t.Fatalf("%s: got kind %s, want NotFound", tc.name, e.Kind)
		}
		if e.EndpointMissing != tc.missing {
			t.Fatalf("%s: EndpointMissing=%v, want %v", tc.name, e.EndpointMissing, tc.missing)
		}
	}
}

func TestRecoverable(t *testing.T) {
	t.Parallel()
	recoverable := []int{500, 502, 503, 408, 429}
	for _, code := range recoverable {
		if e := Classify("op", code, ""); !e.Recoverable() {
			t.Fatalf("status %d should be recoverable", code)
		}
	}
	irrecoverable := []int{400, 401, 403, 404, 409, 422}
	for _, code := range irrecoverable {
		if e := Classify("op", code, ""); e.Recoverable() {
			t.Fatalf("status %d should not be recoverable", code)
		}
	}
	if !NewNetworkError("op", errors.New("connection refused")).Recoverable() {
		t.Fatal("network errors should be recoverable")
	}
}

func TestHelpers(t *testing.T) {
	t.Parallel()
	if !IsUnauthorized(Classify("op", 401, "")) {
		t.Fatal("IsUnauthorized")
	}
	if !IsNotFound(Classify("op", 404, "")) {
		t.Fatal("IsNotFound")
	}
	if IsEndpointMissing(Classify("op", 404, `{"error":"x"}`)) {
		t.Fatal("record-level 404 must not report endpoint missing")
	}
	if !IsEndpointMissing(Classify("op", 404, "")) {
		t.Fatal("bare 404 should report endpoint missing")
	}
	if !IsValidation(Validationf("update password", "passwords do not match")) {
		t.Fatal("IsValidation")
	}
	if KindOf(errors.New("plain")) != Unknown {
		t.Fatal("plain errors default to Unknown")
	}
}
