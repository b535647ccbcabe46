package memsql

import (
	"context"

	"github.com/cockroachdb/pebble"

	"github.com/ardbc/ardbc/internal/driver"
)

// Transaction buffers writes in a pebble.Batch, applying them atomically
// on Commit or discarding them on Rollback. Unlike the sqlite3 reference
// driver, there is no BEGIN/COMMIT/ROLLBACK SQL to issue — pebble's own
// batch primitive already is the transaction.
type Transaction struct {
	conn  *Connection
	batch *pebble.Batch
	done  bool
}

// Prepare parses query and binds the returned Statement to this
// transaction's batch, so its writes land in the batch instead of the
// connection's committed state until Commit.
func (tx *Transaction) Prepare(_ context.Context, query string) (driver.Statement, error) {
	parsed, err := parseStatement(query)
	if err != nil {
		return nil, err
	}
	return &Statement{conn: tx.conn, writer: tx.batch, parsed: parsed}, nil
}

// Commit applies the batch to the database.
func (tx *Transaction) Commit(_ context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true
	return wrapNative(tx.batch.Commit(pebble.Sync))
}

// Rollback discards the batch without applying it.
func (tx *Transaction) Rollback(_ context.Context) error {
	if tx.done {
		return nil
	}
	tx.done = true
	return wrapNative(tx.batch.Close())
}
