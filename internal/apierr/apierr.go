// Package apierr classifies backend failures for the Daily Journal client.
// Every network operation surfaces a *Error so callers can branch on Kind
// instead of inspecting status codes, and retry logic can ask whether a
// failure is worth another attempt.
package apierr

import (
	"errors"
	"fmt"
)

// Kind is the caller-facing failure category.
type Kind int

const (
	// Unknown covers transport failures and any status the other kinds do
	// not claim. Callers must surface it and revert optimistic state.
	Unknown Kind = iota

	// Unauthorized means the session credential is missing or expired.
	// Callers redirect to login.
	Unauthorized

	// NotFound is a 404. Whether it is fatal depends on EndpointMissing.
	NotFound

	// Validation is a client-side constraint failure; the request was
	// never sent.
	Validation
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "Unauthorized"
	case NotFound:
		return "NotFound"
	case Validation:
		return "Validation"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error carries the classified failure plus enough context to debug it.
type Error struct {
	Kind       Kind
	StatusCode int    // 0 for non-HTTP failures
	Op         string // operation name, e.g. "list tasks"
	Body       string // response body, truncated

	// EndpointMissing marks an endpoint-level 404: the route itself is not
	// deployed, as opposed to a specific record being absent. Endpoint-level
	// 404s are the degrade-gracefully case where callers substitute
	// placeholder data.
	EndpointMissing bool

	Underlying error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d", e.Op, e.Kind, e.StatusCode)
	}
	if e.Underlying != nil {
		return fmt.Sprintf("%s: [%s] %v", e.Op, e.Kind, e.Underlying)
	}
	return fmt.Sprintf("%s: [%s]", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Underlying }

// Recoverable reports whether retrying the operation may succeed.
// Network failures, 5xx, 408 and 429 are recoverable; everything the
// taxonomy names is not.
func (e *Error) Recoverable() bool {
	if e.StatusCode == 0 {
		return true // transport-level failure, may be transient
	}
	switch {
	case e.StatusCode == 408, e.StatusCode == 429:
		return true
	case e.StatusCode >= 500:
		return true
	default:
		return false
	}
}

// KindOf extracts the Kind from err, defaulting to Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsUnauthorized reports whether err carries an expired or missing credential.
func IsUnauthorized(err error) bool { return KindOf(err) == Unauthorized }

// IsNotFound reports whether err is a 404 of either flavour.
func IsNotFound(err error) bool { return KindOf(err) == NotFound }

// IsValidation reports whether err is a client-side constraint failure.
func IsValidation(err error) bool { return KindOf(err) == Validation }

// IsEndpointMissing reports whether err is an endpoint-level 404, the case
// where callers may stand up placeholder data instead of failing.
func IsEndpointMissing(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == NotFound && e.EndpointMissing
	}
	return false
}

// IsRecoverable reports whether err should be retried with backoff.
// Non-*Error values are treated as recoverable transport failures.
func IsRecoverable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Recoverable()
	}
	return true
}

// Validationf builds a Validation error that never touched the network.
func Validationf(op, format string, args ...any) *Error {
	return &Error{
		Kind:       Validation,
		Op:         op,
		Underlying: fmt.Errorf(format, args...),
	}
}
