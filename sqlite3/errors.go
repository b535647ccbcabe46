package sqlite3

import (
	sqlite3lib "github.com/mattn/go-sqlite3"

	"github.com/ardbc/ardbc"
)

// wrapNative turns a raw error surfaced by database/sql/driver or
// mattn/go-sqlite3 into the ardbc error taxonomy. sqlite3lib.Error carries
// the native result and extended result codes; everything else (I/O
// errors opening a file, context cancellation) passes through unwrapped,
// since it already satisfies context.Canceled/context.DeadlineExceeded
// checks callers may run.
func wrapNative(err error) error {
	if err == nil {
		return nil
	}
	if sqliteErr, ok := err.(sqlite3lib.Error); ok {
		return &ardbc.DriverNativeError{
			Code:    int(sqliteErr.Code),
			Message: sqliteErr.Error(),
		}
	}
	return err
}
