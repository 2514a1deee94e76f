package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"net/http"
	"time"
)

// Verifier is the receiving end of the scheme: it checks inbound requests
// against the shared keys of known accounts.
type Verifier struct {
	Keys *Keyring

	// How big a difference between 'now' and header 'x-ms-date' do we tolerate?
	// In seconds. A reasonable value is 1<<9 (about 8 minutes).
	// 0 skips the staleness check.
	TimestampTolerance uint64

	// Swap this for a fixed one in tests. nil means time.Now.
	Now func() time.Time
}

// Authenticate validates and verifies the request's authorization header.
//
// A nil return means the request checked out. Any non-nil error is an
// AuthError, whose SuggestedResponseCode tells 'formally broken' (400)
// from 'no credentials' (401) and 'wrong credentials' (403) apart.
func (v *Verifier) Authenticate(r *http.Request) error {
	if v.Keys == nil || v.Keys.Empty() {
		return nil
	}

	var a Authorization
	switch err := a.Parse(r.Header.Get(headerAuthorization)); err {
	case nil:
		break
	case ErrAuthorizationNotSupported: // or the header is empty/not set
		return unauthorizedError(err.Error())
	default:
		return badRequestError(err.Error())
	}

	if v.TimestampTolerance > 0 && !v.checkTimestamp(r.Header) {
		return badRequestError("header x-ms-date is unset, unreadable, or out of tolerance")
	}

	key, found := v.Keys.lookup(a.AccountName)
	// Do this even for unknown accounts, to not reveal which ones exist.
	isSatisfied := a.SatisfiedBy(r, key)

	if !found || !isSatisfied {
		return forbiddenError("signature mismatch")
	}
	return nil
}

// checkTimestamp is true if header 'x-ms-date' parses
// and lies within the tolerance around 'now'.
func (v *Verifier) checkTimestamp(headers http.Header) bool {
	t, err := time.Parse(http.TimeFormat, headers.Get(headerDate))
	if err != nil {
		return false
	}

	now := time.Now()
	if v.Now != nil {
		now = v.Now()
	}
	return abs64(now.Unix()-t.Unix()) <= v.TimestampTolerance
}

// Returns the absolute value of n.
//
// Branchless, constant time.
func abs64(n int64) uint64 {
	m := n >> (64 - 1)
	return uint64((n ^ m) - m)
}
