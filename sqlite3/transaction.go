package sqlite3

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
	"github.com/ardbc/ardbc/internal/future"
)

// Transaction adapts the worker's BEGIN/COMMIT/ROLLBACK issuance to
// internal/driver.Transaction. Like the original async_driver, SQLite
// transaction control is just three plain statements run against the
// connection, not a distinct native API.
type Transaction struct {
	w  *worker
	id string
}

// Prepare compiles query on the same connection the transaction is
// running on.
func (t *Transaction) Prepare(ctx context.Context, query string) (driver.Statement, error) {
	type prepared struct {
		id          string
		numInput    int
		hasNumInput bool
		err         error
	}
	comp, prod := future.New[prepared]()
	if err := t.w.send(ctx, func(w *worker) {
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
	return &Statement{w: t.w, id: r.id, numInput: r.numInput, hasNumInput: r.hasNumInput}, nil
}

// Commit issues COMMIT.
func (t *Transaction) Commit(ctx context.Context) error {
	return t.execRaw(ctx, "COMMIT")
}

// Rollback issues ROLLBACK.
func (t *Transaction) Rollback(ctx context.Context) error {
	return t.execRaw(ctx, "ROLLBACK")
}

func (t *Transaction) execRaw(ctx context.Context, sql string) error {
	comp, prod := future.New[error]()
	if err := t.w.send(ctx, func(w *worker) {
		prod.Ready(w.execRaw(ctx, sql))
	}); err != nil {
		return err
	}
	err, waitErr := comp.Wait(ctx)
	if waitErr != nil {
		return waitErr
	}
	return err
}
