package client

import "github.com/Fulozz/daily-journal/internal/apierr"

// Re-export error predicates so SDK consumers compare against a single
// package.

// IsUnauthorized reports an expired or missing credential; callers should
// redirect to login.
func IsUnauthorized(err error) bool { return apierr.IsUnauthorized(err) }

// IsNotFound reports a 404 of either flavour.
func IsNotFound(err error) bool { return apierr.IsNotFound(err) }

// IsEndpointMissing reports an endpoint-level 404 — the degrade-gracefully
// case where callers may substitute placeholder data.
func IsEndpointMissing(err error) bool { return apierr.IsEndpointMissing(err) }

// IsValidation reports a client-side constraint failure that never reached
// the network.
func IsValidation(err error) bool { return apierr.IsValidation(err) }
