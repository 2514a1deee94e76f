// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"net/http"
	"sort"
	"strings"
)

// Headers this scheme reads or writes.
const (
	headerAuthorization = "Authorization"
	headerDate          = "x-ms-date"
	headerVersion       = "x-ms-version"

	// Every header with this prefix participates in the signature.
	serviceHeaderPrefix = "x-ms-"
)

// DefaultAPIVersion is sent as 'x-ms-version' unless the configuration says otherwise.
const DefaultAPIVersion = "2023-11-03"

// standardHeaders participate in the signature in exactly this order,
// one line each, blank if unset.
var standardHeaders = [...]string{
	"content-encoding",
	"content-language",
	"content-length",
	"content-md5",
	"content-type",
	"date",
	"if-modified-since",
	"if-match",
	"if-none-match",
	"if-unmodified-since",
	"range",
}

// BuildSignatureString serializes the request into the one string the HMAC
// covers. Free of side effects; call it only after any default headers have
// been applied, else the timestamp won't be covered.
//
// Verifier and signer must arrive at the very same string,
// hence the fixed header order and sorting below.
func BuildSignatureString(r *http.Request, accountName string) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(r.Method))
	b.WriteByte('\n')

	for _, name := range standardHeaders {
		v := r.Header.Get(name)
		// A Content-Length of 0 is signed as if the header were unset.
		if v == "0" && name == "content-length" {
			v = ""
		}
		b.WriteString(v)
		b.WriteByte('\n')
	}

	writeServiceHeaders(&b, r.Header)
	writeCanonicalizedResource(&b, r, accountName)

	return b.String()
}

// writeServiceHeaders renders all "x-ms-…" headers as "name:value" lines,
// ascending by lowercase name, with runs of whitespace in values
// collapsed to a single space.
func writeServiceHeaders(b *strings.Builder, headers http.Header) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		if lower := strings.ToLower(name); strings.HasPrefix(lower, serviceHeaderPrefix) {
			names = append(names, lower)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strings.Join(strings.Fields(headers.Get(name)), " "))
		b.WriteByte('\n')
	}
}

// writeCanonicalizedResource renders "/account_name/path", followed by one
// "\nname:value" per query parameter, ascending by name.
//
// Names sort as strings even when they look numeric. Values of repeated
// parameters are joined with ",".
func writeCanonicalizedResource(b *strings.Builder, r *http.Request, accountName string) {
	b.WriteByte('/')
	b.WriteString(accountName)
	if r.URL.Path == "" {
		b.WriteByte('/')
	} else {
		b.WriteString(r.URL.Path)
	}

	params := r.URL.Query()
	if len(params) == 0 {
		return
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteByte('\n')
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strings.Join(params[name], ","))
	}
}
