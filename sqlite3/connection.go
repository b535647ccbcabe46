package sqlite3

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
	"github.com/ardbc/ardbc/internal/future"
)

// Connection adapts one worker's native SQLite handle to
// internal/driver.Connection. Every method round-trips through the
// worker's task channel — none of them touch the native handle directly.
type Connection struct {
	w *worker
}

// ID returns the connection's ardbc-assigned identifier, used by the pool
// as its map key.
func (c *Connection) ID() string { return c.w.id }

// IsValid reports whether the worker's native connection is still open.
func (c *Connection) IsValid(ctx context.Context) bool {
	comp, prod := future.New[bool]()
	if err := c.w.send(ctx, func(w *worker) {
		prod.Ready(!w.closed)
	}); err != nil {
		return false
	}
	ok, err := comp.Wait(ctx)
	return err == nil && ok
}

// Prepare compiles query on the worker goroutine and returns a Statement
// bound to it.
func (c *Connection) Prepare(ctx context.Context, query string) (driver.Statement, error) {
	type prepared struct {
		id          string
		numInput    int
		hasNumInput bool
		err         error
	}
	comp, prod := future.New[prepared]()
	if err := c.w.send(ctx, func(w *worker) {
		id, n, ok, err := w.prepare(query)
		prod.Ready(prepared{id: id, numInput: n, hasNumInput: ok, err: err})
	}); err != nil {
		return nil, err
	}

	r, err := comp.Wait(ctx)
	if err != nil {
		return nil, err
	}
	if r.err != nil {
		return nil, r.err
	}
	return &Statement{w: c.w, id: r.id, numInput: r.numInput, hasNumInput: r.hasNumInput}, nil
}

// Begin issues BEGIN on the worker goroutine and returns a Transaction
// handle over the same connection.
func (c *Connection) Begin(ctx context.Context) (driver.Transaction, error) {
	comp, prod := future.New[error]()
	if err := c.w.send(ctx, func(w *worker) {
		prod.Ready(w.execRaw(ctx, "BEGIN"))
	}); err != nil {
		return nil, err
	}

	err, waitErr := comp.Wait(ctx)
	if waitErr != nil {
		return nil, waitErr
	}
	if err != nil {
		return nil, err
	}
	return &Transaction{w: c.w, id: nextTxID()}, nil
}

// Close stops the worker's goroutine after closing the native connection.
// Close is safe to call only once the caller has given up every
// outstanding Statement/Transaction/Rows derived from this Connection.
func (c *Connection) Close() error {
	ctx := context.Background()
	comp, prod := future.New[error]()
	if err := c.w.send(ctx, func(w *worker) {
		err := w.conn.Close()
		w.closed = true
		prod.Ready(err)
	}); err != nil {
		return err
	}

	err, waitErr := comp.Wait(ctx)
	c.w.stop()
	if waitErr != nil {
		return waitErr
	}
	return wrapNative(err)
}
