// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sharedkey // import "blitznote.com/src/sharedkey"

import (
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Option names recognized by NewConfiguration.
const (
	OptionAccountName = "account_name"
	OptionAccountKey  = "account_key"
	OptionDate        = "ms_date"
	OptionVersion     = "ms_version"
)

// Configuration collects the credentials and protocol settings for one storage account.
//
// Can be shared between goroutines once populated.
type Configuration struct {
	// Name of the storage account. Mandatory.
	AccountName string

	// The account's shared key, base64-encoded as handed out by the service. Mandatory.
	AccountKey string

	// Overrides header 'x-ms-date'. In RFC 1123 format, with timezone "GMT".
	// Leave empty to get the wall-clock time of the moment of signing.
	Date string

	// Overrides header 'x-ms-version'. Leave empty for DefaultAPIVersion.
	Version string

	// The time source for default timestamps.
	// Swap this for a fixed one in tests. nil means time.Now.
	Now func() time.Time

	// Trace, if set, receives every signature string right before it is signed.
	Trace func(stringToSign string)
}

// NewConfiguration picks the recognized options from an option bag.
//
// Unrecognized keys are skipped; absent mandatory ones surface
// as ConfigError not here, but on the first attempt to sign.
func NewConfiguration(options map[string]string) *Configuration {
	return &Configuration{
		AccountName: options[OptionAccountName],
		AccountKey:  options[OptionAccountKey],
		Date:        options[OptionDate],
		Version:     options[OptionVersion],
	}
}

// decodedKey validates the mandatory options and returns the raw key bytes.
func (c *Configuration) decodedKey() ([]byte, error) {
	if c.AccountName == "" {
		return nil, ErrAccountNameNotSet
	}
	if c.AccountKey == "" {
		return nil, ErrAccountKeyNotSet
	}
	binary, err := base64.StdEncoding.DecodeString(c.AccountKey)
	if err != nil {
		return nil, &KeyFormatError{cause: err}
	}
	return binary, nil
}

func (c *Configuration) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Keyring maps account names to their already-decoded shared keys.
//
// Verification is disabled as long as it is empty.
type Keyring struct {
	lock sync.RWMutex
	keys map[string][]byte
}

// AddSharedKeys decodes the arguments and adds/updates them to the existing shared keys.
//
// The format of each element is:
//  account_name=(base64(key))
//
// For example:
//  myaccount=yql3kIDweM8KYm+9pHzX0PKNskYAU46Jb5D6nLftTvo=
//
// The first tuple that cannot be decoded is returned within the error.
func (k *Keyring) AddSharedKeys(tuples []string) error {
	k.lock.Lock()
	defer k.lock.Unlock()

	if k.keys == nil {
		k.keys = make(map[string][]byte)
	}
	for idx := range tuples {
		p := strings.SplitN(tuples[idx], "=", 2)
		if len(p) != 2 {
			return errors.New("not in format account_name=(base64(key)): " + tuples[idx])
		}
		binary, err := base64.StdEncoding.DecodeString(p[1])
		if err != nil {
			return errors.Wrap(err, tuples[idx])
		}
		k.keys[p[0]] = binary
	}

	return nil
}

// Empty is true if no account has been registered yet.
func (k *Keyring) Empty() bool {
	k.lock.RLock()
	defer k.lock.RUnlock()
	return len(k.keys) == 0
}

func (k *Keyring) lookup(accountName string) ([]byte, bool) {
	k.lock.RLock()
	defer k.lock.RUnlock()
	key, found := k.keys[accountName]
	return key, found
}
