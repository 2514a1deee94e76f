// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"net/http"
)

// ConfigError signals that a mandatory credential option is absent.
//
// Deterministic for a given configuration: do not retry the request.
type ConfigError string

// Error implements the error interface.
func (e ConfigError) Error() string { return string(e) }

// Happen before any signature is computed.
const (
	ErrAccountNameNotSet = ConfigError("account_name not set")
	ErrAccountKeyNotSet  = ConfigError("account_key not set")
)

// KeyFormatError signals that the account key is set, but is no valid base64.
//
// Like a ConfigError this is fatal to the request, and not transient.
type KeyFormatError struct {
	cause error
}

// Error implements the error interface.
func (e *KeyFormatError) Error() string {
	return "account_key is not a valid base64 string: " + e.cause.Error()
}

// Cause returns the underlying decoding error.
func (e *KeyFormatError) Cause() error { return e.cause }

// AuthError adds a behavioural hint to an Error.
//
// Returned by Verifier for inbound requests.
type AuthError interface {
	error

	// SuggestedResponseCode gives a HTTP status code.
	SuggestedResponseCode() int
}

// badRequestError is returned on formal errors.
type badRequestError string

// Error implements the error interface.
func (e badRequestError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e badRequestError) SuggestedResponseCode() int { return http.StatusBadRequest }

// unauthorizedError is given when no usable SharedKey authorization accompanied the request.
//
// The client should try again, with credentials.
type unauthorizedError string

// Error implements the error interface.
func (e unauthorizedError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e unauthorizedError) SuggestedResponseCode() int { return http.StatusUnauthorized }

// forbiddenError is returned when the signature does not match,
// or the account is not known.
//
// The client should not try again.
type forbiddenError string

// Error implements the error interface.
func (e forbiddenError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e forbiddenError) SuggestedResponseCode() int { return http.StatusForbidden }
