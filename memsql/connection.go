package memsql

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/pebble"

	"github.com/ardbc/ardbc/internal/driver"
)

// writer is the subset of *pebble.DB and *pebble.Batch this package
// needs to buffer or apply a single Set — enough to let a Statement
// write either straight to the database or into a Transaction's batch
// without caring which.
type writer interface {
	Set(key, value []byte, o *pebble.WriteOptions) error
}

// Connection adapts one pebble.DB handle to internal/driver.Connection.
// Every method here completes inline: pebble is safe for concurrent use,
// so unlike the sqlite3 reference driver, memsql needs no worker
// goroutine to serialize access.
type Connection struct {
	id string
	db *pebble.DB

	mu      sync.Mutex
	schemas map[string][]string
	rowSeq  map[string]*uint64
	closed  bool
}

// ID returns the connection's ardbc-assigned identifier.
func (c *Connection) ID() string { return c.id }

// IsValid reports whether the underlying pebble handle is still open.
func (c *Connection) IsValid(_ context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// Prepare parses query into one of memsql's three supported statement
// shapes and returns a Statement bound directly to the connection (no
// transaction).
func (c *Connection) Prepare(_ context.Context, query string) (driver.Statement, error) {
	parsed, err := parseStatement(query)
	if err != nil {
		return nil, err
	}
	return &Statement{conn: c, writer: c.db, parsed: parsed}, nil
}

// Begin starts a pebble.Batch as the transaction's write buffer. Reads
// issued by statements prepared from the transaction still go straight
// to the connection's committed view — memsql does not implement
// read-your-writes isolation, a simplification appropriate for a
// reference driver, not a production engine.
func (c *Connection) Begin(_ context.Context) (driver.Transaction, error) {
	return &Transaction{conn: c, batch: c.db.NewBatch()}, nil
}

// Close closes the underlying pebble handle.
func (c *Connection) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return wrapNative(c.db.Close())
}

func (c *Connection) columnsFor(table string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cols, ok := c.schemas[table]
	return cols, ok
}

func (c *Connection) setColumnsFor(table string, cols []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schemas[table] = cols
}

func (c *Connection) nextRowID(table string) uint64 {
	c.mu.Lock()
	seq, ok := c.rowSeq[table]
	if !ok {
		seq = new(uint64)
		c.rowSeq[table] = seq
	}
	c.mu.Unlock()
	return atomic.AddUint64(seq, 1)
}
