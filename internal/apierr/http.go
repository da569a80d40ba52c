package apierr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyCapture bounds how much of an error body we keep for debugging.
const maxBodyCapture = 2048

// FromResponse classifies a non-2xx response. It consumes (part of) the body,
// so callers should not read it afterwards.
func FromResponse(op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyCapture))
	return Classify(op, resp.StatusCode, string(body))
}

// Classify maps an HTTP status and captured body to the taxonomy.
//
// For 404 the body decides the flavour: backends that know about the record
// answer with a JSON object carrying an "error" or "message" field, while a
// route that is simply not deployed falls through to the framework's plain
// 404 page. Status code alone cannot tell the two apart.
func Classify(op string, statusCode int, body string) *Error {
	e := &Error{
		StatusCode: statusCode,
		Op:         op,
		Body:       body,
		Underlying: fmt.Errorf("%s: HTTP %d", op, statusCode),
	}
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.Kind = Unauthorized
	case http.StatusNotFound:
		e.Kind = NotFound
		e.EndpointMissing = !hasErrorMarker(body)
	default:
		e.Kind = Unknown
	}
	return e
}

// NewNetworkError wraps a transport-level failure (no HTTP status).
func NewNetworkError(op string, err error) *Error {
	return &Error{
		Kind:       Unknown,
		Op:         op,
		Underlying: fmt.Errorf("%s: %w", op, err),
	}
}

// hasErrorMarker reports whether body is a JSON object with an "error" or
// "message" field — the shape the backend uses for record-level failures.
func hasErrorMarker(body string) bool {
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "{") {
		return false
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return false
	}
	if _, ok := payload["error"]; ok {
		return true
	}
	_, ok := payload["message"]
	return ok
}
