package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"encoding/base64"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAuthHeaderSerialization(t *testing.T) {
	valid := []struct {
		serialized   string // meant for http.Header
		deserialized Authorization
	}{
		{`SharedKey myaccount:TWFyaw==`,
			Authorization{AccountName: "myaccount", Signature: []byte("Mark")},
		},
		{`SharedKey  account-with-dash:dXBsb2Fk`,
			Authorization{AccountName: "account-with-dash", Signature: []byte("upload")},
		},
	}
	invalid := []struct {
		serialized  string
		unsupported bool // as opposed to merely malformed
	}{
		{``, true},
		{`Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==`, true},
		{`Signature keyId="k",signature="TWFyaw=="`, true},
		{`SharedKey `, false},
		{`SharedKey nocolon`, false},
		{`SharedKey :TWFyaw==`, false},
		{`SharedKey myaccount:`, false},
		{`SharedKey myaccount:***`, false},
	}

	Convey("Authorization header conversion", t, func() {
		Convey("works from string to struct with valid inputs", func() {
			for _, row := range valid {
				var fresh Authorization
				err := fresh.Parse(row.serialized)
				So(err, ShouldBeNil)
				So(fresh, ShouldResemble, row.deserialized)
			}
		})

		Convey("round-trips through String()", func() {
			for _, row := range valid {
				var fresh Authorization
				So(fresh.Parse(row.deserialized.String()), ShouldBeNil)
				So(fresh, ShouldResemble, row.deserialized)
			}
		})

		Convey("rejects other schemes and malformed values", func() {
			for _, row := range invalid {
				var fresh Authorization
				err := fresh.Parse(row.serialized)
				So(err, ShouldNotBeNil)
				if row.unsupported {
					So(err, ShouldEqual, ErrAuthorizationNotSupported)
				} else {
					So(err, ShouldNotEqual, ErrAuthorizationNotSupported)
				}
			}
		})
	})
}

func TestAuthHeaderChecks(t *testing.T) {
	rawKey, _ := base64.StdEncoding.DecodeString(wellKnownAccountKey)

	signedRequest := func() *http.Request {
		r := newContainerRequest(t, "comp=metadata&restype=container&timeout=20")
		r.Header.Set("Authorization",
			"SharedKey myaccount:"+computeSignature(rawKey, wellKnownStringToSign))
		return r
	}

	Convey("A sufficiently specified Authorization header", t, func() {
		Convey("is satisfied by the request it was computed for", func() {
			r := signedRequest()
			var a Authorization
			So(a.Parse(r.Header.Get("Authorization")), ShouldBeNil)

			So(a.SatisfiedBy(r, rawKey), ShouldBeTrue)
		})

		Convey("rejects a wrong key", func() {
			r := signedRequest()
			var a Authorization
			So(a.Parse(r.Header.Get("Authorization")), ShouldBeNil)

			So(a.SatisfiedBy(r, append([]byte{'!'}, rawKey...)), ShouldBeFalse)
		})

		Convey("rejects a request altered after signing", func() {
			r := signedRequest()
			var a Authorization
			So(a.Parse(r.Header.Get("Authorization")), ShouldBeNil)

			r.URL.RawQuery = "comp=acl&restype=container&timeout=20"
			So(a.SatisfiedBy(r, rawKey), ShouldBeFalse)
		})

		Convey("rejects a transplanted signature", func() {
			r := signedRequest()
			var a Authorization
			So(a.Parse("SharedKey myaccount:MBfCB6Txi1rTKf6gDdMxE/SPUdePCFQFLdGkP7mXsI0="), ShouldBeNil)

			So(a.SatisfiedBy(r, rawKey), ShouldBeFalse)
		})
	})
}
