package ardbc

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
)

// Rows is a forward-only cursor over a query's result set. Next must be
// called before each Get and returns false once the cursor is exhausted;
// Close must always be called, even after exhausting the cursor, to let
// the underlying driver reset its native statement handle for reuse.
type Rows struct {
	inner driver.Rows

	cols   []ColumnMetaData
	closed bool
}

// Columns returns the result set's column metadata. The first call fetches
// it from the driver; subsequent calls return the cached value.
func (r *Rows) Columns(ctx context.Context) ([]ColumnMetaData, error) {
	if r.cols != nil {
		return r.cols, nil
	}
	cols, err := r.inner.Columns(ctx)
	if err != nil {
		return nil, err
	}
	r.cols = cols
	return cols, nil
}

// Next advances the cursor to the next row, returning false when there are
// no more rows or an error occurred. Callers must check the error
// separately from the boolean, same as bufio.Scanner.
func (r *Rows) Next(ctx context.Context) (bool, error) {
	return r.inner.Next(ctx)
}

// Get fetches the value at the zero-based column position pos, coerced
// toward columnType. It returns a *CursorNotPositionedError if called
// before a successful Next, and an *OutOfRangeError if pos exceeds the
// column count.
func (r *Rows) Get(ctx context.Context, pos Placeholder, columnType ColumnType) (Value, error) {
	return r.inner.Get(ctx, pos, columnType)
}

// Close releases the driver's result set and resets its native cursor so
// the parent Statement can be reused. Close is idempotent.
func (r *Rows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.inner.Close()
}
