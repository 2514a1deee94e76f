// Package sharedkey computes authorization scheme SharedKey,
// which object storage services accept for their REST requests.
//
// A request is authenticated by one additional header,
// formatted like this:
//
//  Authorization: SharedKey (account_name):(see below)
//
// The 'signature' part is the base64 of an HMAC-SHA256 over one canonical
// rendition of the request: the uppercase verb, a fixed list of standard
// headers (one per line, blank if unset), all "x-ms-…" headers sorted by
// name, and finally the resource path with any query parameters.
// The key for the HMAC is the storage account's shared key,
// which the service hands out base64-encoded.
//
// This is how you'd generate aforementioned 'signature' on the Linux shell,
// here for a GET of container metadata:
//
//  account="myaccount"
//  key="(base64 of the account key)"
//
//  printf 'GET\n\n\n\n\n\n\n\n\n\n\n\nx-ms-date:%s\nx-ms-version:2023-11-03\n/%s/mycontainer\ncomp:metadata' \
//      "$(date -u +'%a, %d %b %Y %H:%M:%S GMT')" "${account}" \
//  | openssl dgst -sha256 -mac hmac -macopt "hexkey:$(printf '%s' "${key}" | base64 -d | xxd -p -c 256)" -binary \
//  | openssl enc -base64
//
// After that it's using, for example, 'curl' like this:
//  curl \
//    --header 'Authorization: …' \
//    --header 'x-ms-date: …' --header 'x-ms-version: 2023-11-03' \
//    <url>
package sharedkey // import "blitznote.com/src/sharedkey"
