// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"crypto/hmac"
	"crypto/sha256"
	"net/http"
)

// Signer authorizes outgoing requests on behalf of one storage account.
//
// Stateless between calls; a single instance can sign
// any number of requests concurrently.
type Signer struct {
	Config *Configuration
}

// NewSigner wraps the given configuration.
// Validation of its mandatory fields is deferred to the first SignRequest.
func NewSigner(config *Configuration) *Signer {
	return &Signer{Config: config}
}

// SignRequest applies the scheme's steps to the request, in order:
// protocol header defaults, canonicalization, and the signature itself.
//
// The first failing step aborts; a request that provokes an error
// must not be submitted.
func (s *Signer) SignRequest(r *http.Request) error {
	for _, step := range []func(*http.Request) error{
		s.applyProtocolDefaults,
		s.authorize,
	} {
		if err := step(r); err != nil {
			return err
		}
	}
	return nil
}

// applyProtocolDefaults sets the two headers the service insists on.
// Cannot fail.
//
// The timestamp is read once, here, so that header and signature agree.
func (s *Signer) applyProtocolDefaults(r *http.Request) error {
	version := s.Config.Version
	if version == "" {
		version = DefaultAPIVersion
	}
	r.Header.Set(headerVersion, version)

	date := s.Config.Date
	if date == "" {
		date = s.Config.now().UTC().Format(http.TimeFormat)
	}
	r.Header.Set(headerDate, date)

	return nil
}

// authorize validates the credentials, and on success sets
// header "Authorization" as its only side effect.
func (s *Signer) authorize(r *http.Request) error {
	key, err := s.Config.decodedKey()
	if err != nil {
		return err
	}

	stringToSign := BuildSignatureString(r, s.Config.AccountName)
	if s.Config.Trace != nil {
		s.Config.Trace(stringToSign)
	}

	a := Authorization{
		AccountName: s.Config.AccountName,
		Signature:   computeHmac(key, stringToSign),
	}
	r.Header.Set(headerAuthorization, a.String())

	return nil
}

func computeHmac(key []byte, stringToSign string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(stringToSign))
	return mac.Sum(nil)
}
