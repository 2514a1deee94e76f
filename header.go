package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"crypto/hmac"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// Scheme identifier, first token of the header value.
const authorizationScheme = "SharedKey"

const (
	ErrStrAuthorizationNotSupported = "authorization challenge not supported"
	ErrStrMalformedCredentials      = "malformed credentials part: "
)

var (
	ErrAuthorizationNotSupported = errors.New(ErrStrAuthorizationNotSupported)
)

// Authorization is the deserialized value of header "Authorization".
type Authorization struct {
	AccountName string
	Signature   []byte
}

// String serializes for use as header value.
func (a *Authorization) String() string {
	return authorizationScheme + " " + a.AccountName + ":" +
		base64.StdEncoding.EncodeToString(a.Signature)
}

// Parse deserializes a header value like:
//  SharedKey myaccount:yql3kIDweM8KYm+9pHzX0PKNskYAU46Jb5D6nLftTvo=
func (a *Authorization) Parse(str string) error {
	scheme, credentials, found := cutToken(str)
	if !found || scheme != authorizationScheme {
		return ErrAuthorizationNotSupported
	}

	idx := strings.IndexByte(credentials, ':')
	if idx <= 0 {
		return errors.New(ErrStrMalformedCredentials + "no account name")
	}
	sig, err := base64.StdEncoding.DecodeString(credentials[idx+1:])
	if err != nil || len(sig) == 0 {
		return errors.New(ErrStrMalformedCredentials + "signature not in base64")
	}

	a.AccountName = credentials[:idx]
	a.Signature = sig
	return nil
}

// cutToken splits off the first space-delimited token.
func cutToken(str string) (token, remainder string, found bool) {
	idx := strings.IndexByte(str, ' ')
	if idx < 0 {
		return str, "", false
	}
	return str[:idx], strings.TrimLeft(str[idx+1:], " "), true
}

// SatisfiedBy reports whether the request's contents match the signature,
// given the account's raw key.
//
// Runs in constant time with respect to the signature bytes.
func (a *Authorization) SatisfiedBy(r *http.Request, key []byte) bool {
	expected := computeHmac(key, BuildSignatureString(r, a.AccountName))
	return hmac.Equal(a.Signature, expected)
}
