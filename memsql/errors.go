package memsql

import (
	"github.com/cockroachdb/errors"

	"github.com/ardbc/ardbc"
)

// wrapNative reports a pebble or memsql-internal error as a
// DriverNativeError. pebble's own errors have no stable code the way
// SQLite's do, so Code is always 0 here — the message still carries the
// useful detail.
func wrapNative(err error) error {
	if err == nil {
		return nil
	}
	return &ardbc.DriverNativeError{Code: 0, Message: errors.Wrap(err, "memsql").Error()}
}
