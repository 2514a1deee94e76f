// This file is released into the public domain.

// +build ignore

// Package main signs one request and prints what would go over the wire.
//
// For example:
//  go run "this file"
package main

import (
	"fmt"
	"net/http"
	"os"

	sharedkey "blitznote.com/src/sharedkey"
)

func main() {
	cfg := sharedkey.NewConfiguration(map[string]string{
		"account_name": "myaccount",
		"account_key":  "yql3kIDweM8KYm+9pHzX0PKNskYAU46Jb5D6nLftTvo=",
	})
	cfg.Trace = func(stringToSign string) {
		fmt.Fprintf(os.Stderr, "-- string to sign --\n%s\n--\n", stringToSign)
	}

	req, _ := http.NewRequest("GET",
		"https://myaccount.blob.example.net/mycontainer?restype=container&comp=metadata", nil)

	if err := sharedkey.NewSigner(cfg).SignRequest(req); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Authorization:", req.Header.Get("Authorization"))
	fmt.Println("x-ms-date:", req.Header.Get("x-ms-date"))
	fmt.Println("x-ms-version:", req.Header.Get("x-ms-version"))
}
