package ardbc

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
)

// Transaction groups statements into a single atomic unit of work. It owns
// the connection it was started on for its entire lifetime; that
// connection returns to the pool only when the Transaction itself closes,
// never when a Statement prepared from it closes.
type Transaction struct {
	db    *Database
	conn  driver.Connection
	inner driver.Transaction

	done bool
}

// Prepare parses query against this transaction's connection. Statements
// returned here do not own a pooled connection and their Close is a
// no-op beyond finalizing the native handle.
func (tx *Transaction) Prepare(ctx context.Context, query string) (*Statement, error) {
	stmt, err := tx.inner.Prepare(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Statement{db: tx.db, conn: tx.conn, owns: false, inner: stmt}, nil
}

// Commit finalizes the transaction's writes and returns the connection to
// the pool. After Commit, Close is a no-op.
func (tx *Transaction) Commit(ctx context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true

	err := tx.inner.Commit(ctx)
	tx.db.pool.Return(tx.conn)
	return err
}

// Rollback discards the transaction's writes and returns the connection to
// the pool. After Rollback, Close is a no-op.
func (tx *Transaction) Rollback(ctx context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true

	err := tx.inner.Rollback(ctx)
	tx.db.pool.Return(tx.conn)
	return err
}

// Close rolls back the transaction if neither Commit nor Rollback has run
// yet, logging any error instead of returning it — Close has no return
// channel of its own once the caller has walked away without deciding the
// transaction's fate. Close is idempotent.
func (tx *Transaction) Close() error {
	if tx.done {
		return nil
	}
	if err := tx.Rollback(context.Background()); err != nil {
		ardbcLog.Printf("implicit rollback on Close failed: %v", err)
	}
	return nil
}
