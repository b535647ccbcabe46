package sqlite3

import (
	"context"
	sqldriver "database/sql/driver"
	"io"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/internal/driver"
	"github.com/ardbc/ardbc/internal/future"
)

// Rows adapts one worker's open native result set to internal/driver.Rows.
type Rows struct {
	w  *worker
	id string
}

// Columns returns the result set's column metadata, computed once when
// the query executed.
func (r *Rows) Columns(ctx context.Context) ([]driver.ColumnMetaData, error) {
	type listed struct {
		cols []driver.ColumnMetaData
		err  error
	}
	comp, prod := future.New[listed]()
	if err := r.w.send(ctx, func(w *worker) {
		st, ok := w.rows[r.id]
		if !ok {
			prod.Ready(listed{err: &ardbc.ResourceNotFoundError{Kind: "rows", ID: r.id}})
			return
		}
		prod.Ready(listed{cols: st.cols})
	}); err != nil {
		return nil, err
	}
	r2, err := comp.Wait(ctx)
	if err != nil {
		return nil, err
	}
	return r2.cols, r2.err
}

// Next advances the cursor, returning false at end-of-set.
func (r *Rows) Next(ctx context.Context) (bool, error) {
	type advanced struct {
		ok  bool
		err error
	}
	comp, prod := future.New[advanced]()
	if err := r.w.send(ctx, func(w *worker) {
		st, ok := w.rows[r.id]
		if !ok {
			prod.Ready(advanced{err: &ardbc.ResourceNotFoundError{Kind: "rows", ID: r.id}})
			return
		}
		if st.done {
			prod.Ready(advanced{})
			return
		}

		dest := make([]sqldriver.Value, len(st.cols))
		err := st.native.Next(dest)
		if err == io.EOF {
			st.done = true
			st.positioned = false
			prod.Ready(advanced{})
			return
		}
		if err != nil {
			st.done = true
			st.positioned = false
			prod.Ready(advanced{err: wrapNative(err)})
			return
		}
		st.current = dest
		st.positioned = true
		prod.Ready(advanced{ok: true})
	}); err != nil {
		return false, err
	}

	r2, err := comp.Wait(ctx)
	if err != nil {
		return false, err
	}
	return r2.ok, r2.err
}

// Get extracts the value at the zero-based column position pos, coerced
// toward columnType.
func (r *Rows) Get(ctx context.Context, pos driver.Placeholder, columnType driver.ColumnType) (driver.Value, error) {
	type fetched struct {
		value driver.Value
		err   error
	}
	comp, prod := future.New[fetched]()
	if err := r.w.send(ctx, func(w *worker) {
		st, ok := w.rows[r.id]
		if !ok {
			prod.Ready(fetched{err: &ardbc.ResourceNotFoundError{Kind: "rows", ID: r.id}})
			return
		}
		if !st.positioned {
			prod.Ready(fetched{err: &ardbc.CursorNotPositionedError{}})
			return
		}
		idx := pos.Index()
		if idx >= uint64(len(st.current)) {
			prod.Ready(fetched{err: &ardbc.OutOfRangeError{Index: idx}})
			return
		}
		v, err := coerce(st.current[idx], columnType)
		prod.Ready(fetched{value: v, err: err})
	}); err != nil {
		return driver.Value{}, err
	}

	r2, err := comp.Wait(ctx)
	if err != nil {
		return driver.Value{}, err
	}
	return r2.value, r2.err
}

// Close resets the native cursor so the owning Statement can be reused,
// mirroring the original driver's sqlite3_reset-on-Drop behavior.
func (r *Rows) Close() error {
	ctx := context.Background()
	comp, prod := future.New[error]()
	if err := r.w.send(ctx, func(w *worker) {
		st, ok := w.rows[r.id]
		if !ok {
			prod.Ready(nil)
			return
		}
		delete(w.rows, r.id)
		prod.Ready(wrapNative(st.native.Close()))
	}); err != nil {
		return err
	}
	err, waitErr := comp.Wait(ctx)
	if waitErr != nil {
		return waitErr
	}
	return err
}
