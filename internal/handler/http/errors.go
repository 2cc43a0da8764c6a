// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// auth cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoAuthCookie is returned by the auth middleware when the incoming
	// request does not carry the "token" cookie at all.
	ErrNoAuthCookie = errors.New("authentication required")

	// ErrInvalidToken is returned when the cookie is present but its value
	// fails JWT validation (expired, wrong issuer, bad signature, malformed).
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")

	// ErrInvalidResourceID is returned when a path parameter is not a
	// positive integer.
	ErrInvalidResourceID = errors.New("invalid resource id")
)
