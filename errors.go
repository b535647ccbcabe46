package ardbc

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// UnknownDriverError is returned by Open when name has no registered
// Driver.
type UnknownDriverError struct {
	Name string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("ardbc: unknown driver %q", e.Name)
}

func (e *UnknownDriverError) Is(target error) bool {
	_, ok := target.(*UnknownDriverError)
	return ok
}

// DuplicateDriverError is returned by RegisterDriver when name is already
// registered.
type DuplicateDriverError struct {
	Name string
}

func (e *DuplicateDriverError) Error() string {
	return fmt.Sprintf("ardbc: driver %q already registered", e.Name)
}

func (e *DuplicateDriverError) Is(target error) bool {
	_, ok := target.(*DuplicateDriverError)
	return ok
}

// DriverNativeError wraps a non-OK code and message reported by the
// underlying native library.
type DriverNativeError struct {
	Code    int
	Message string
}

func (e *DriverNativeError) Error() string {
	return fmt.Sprintf("ardbc: driver native error (code %d): %s", e.Code, e.Message)
}

func (e *DriverNativeError) Is(target error) bool {
	_, ok := target.(*DriverNativeError)
	return ok
}

// UnexpectedRowsError is returned when a DML statement that was expected
// to merely update rows instead produced a result set.
type UnexpectedRowsError struct{}

func (e *UnexpectedRowsError) Error() string {
	return "ardbc: statement produced rows, expected an update count"
}

func (e *UnexpectedRowsError) Is(target error) bool {
	_, ok := target.(*UnexpectedRowsError)
	return ok
}

// CursorNotPositionedError is returned by Rows.Get when called before
// Next, or after Next has returned false.
type CursorNotPositionedError struct{}

func (e *CursorNotPositionedError) Error() string {
	return "ardbc: rows cursor is not positioned on a row"
}

func (e *CursorNotPositionedError) Is(target error) bool {
	_, ok := target.(*CursorNotPositionedError)
	return ok
}

// OutOfRangeError is returned by Rows.Get when the requested column index
// exceeds the column count.
type OutOfRangeError struct {
	Index uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("ardbc: column index %d out of range", e.Index)
}

func (e *OutOfRangeError) Is(target error) bool {
	_, ok := target.(*OutOfRangeError)
	return ok
}

// ResourceNotFoundError is returned by a driver worker when the id carried
// by a task no longer exists in its map — the adapter outlived its
// resource.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("ardbc: %s resource not found: %s", e.Kind, e.ID)
}

func (e *ResourceNotFoundError) Is(target error) bool {
	_, ok := target.(*ResourceNotFoundError)
	return ok
}

// BindFailureError is returned when a supplied Value could not be bound to
// a placeholder (e.g. a string containing a NUL byte where the native
// library requires C-string semantics).
type BindFailureError struct {
	Placeholder string
	Reason      string
}

func (e *BindFailureError) Error() string {
	return fmt.Sprintf("ardbc: failed to bind %s: %s", e.Placeholder, e.Reason)
}

func (e *BindFailureError) Is(target error) bool {
	_, ok := target.(*BindFailureError)
	return ok
}

// ChannelClosedError is returned when a driver's worker goroutine has died
// and can no longer accept tasks.
type ChannelClosedError struct{}

func (e *ChannelClosedError) Error() string {
	return "ardbc: driver worker channel closed"
}

func (e *ChannelClosedError) Is(target error) bool {
	_, ok := target.(*ChannelClosedError)
	return ok
}

// IsUnknownDriver reports whether err is (or wraps) an UnknownDriverError.
func IsUnknownDriver(err error) bool { return errors.Is(err, &UnknownDriverError{}) }

// IsDuplicateDriver reports whether err is (or wraps) a DuplicateDriverError.
func IsDuplicateDriver(err error) bool { return errors.Is(err, &DuplicateDriverError{}) }

// IsDriverNative reports whether err is (or wraps) a DriverNativeError.
func IsDriverNative(err error) bool { return errors.Is(err, &DriverNativeError{}) }

// IsUnexpectedRows reports whether err is (or wraps) an UnexpectedRowsError.
func IsUnexpectedRows(err error) bool { return errors.Is(err, &UnexpectedRowsError{}) }

// IsCursorNotPositioned reports whether err is (or wraps) a
// CursorNotPositionedError.
func IsCursorNotPositioned(err error) bool { return errors.Is(err, &CursorNotPositionedError{}) }

// IsOutOfRange reports whether err is (or wraps) an OutOfRangeError.
func IsOutOfRange(err error) bool { return errors.Is(err, &OutOfRangeError{}) }

// IsResourceNotFound reports whether err is (or wraps) a
// ResourceNotFoundError.
func IsResourceNotFound(err error) bool { return errors.Is(err, &ResourceNotFoundError{}) }

// IsBindFailure reports whether err is (or wraps) a BindFailureError.
func IsBindFailure(err error) bool { return errors.Is(err, &BindFailureError{}) }

// IsChannelClosed reports whether err is (or wraps) a ChannelClosedError.
func IsChannelClosed(err error) bool { return errors.Is(err, &ChannelClosedError{}) }
