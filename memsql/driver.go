// Package memsql is a second reference ardbc driver, demonstrating the
// "synchronous variant" design: unlike sqlite3, which funnels every call
// through a worker goroutine because its native library is not
// reentrant, github.com/cockroachdb/pebble is fully safe for concurrent
// use, so every Connection method here completes inline with no
// goroutine of its own. It backs a minimal CREATE TABLE / INSERT /
// SELECT * subset — a key-value store wearing just enough SQL to
// exercise the ardbc core, not a general-purpose engine.
package memsql

import (
	"bytes"
	"context"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/ardbc/ardbc/internal/driver"
)

// Driver opens memsql connections. Register it once per process:
//
//	ardbc.RegisterDriver("memsql", memsql.NewDriver())
type Driver struct{}

// NewDriver returns a ready-to-register Driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Open dials dsn. The literal string ":memory:" opens an in-memory
// store via pebble's MemFS; any other value is treated as a directory
// path on the real filesystem.
func (d *Driver) Open(_ context.Context, dsn string) (driver.Connection, error) {
	opts := &pebble.Options{}
	if dsn == ":memory:" {
		opts.FS = vfs.NewMem()
		dsn = ""
	}

	db, err := pebble.Open(dsn, opts)
	if err != nil {
		return nil, wrapNative(err)
	}

	schemas, err := loadSchemas(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	rowSeq := make(map[string]*uint64, len(schemas))
	for table := range schemas {
		max, err := maxRowID(db, table)
		if err != nil {
			db.Close()
			return nil, err
		}
		seq := max
		rowSeq[table] = &seq
	}

	return &Connection{
		id:      nextConnID(),
		db:      db,
		schemas: schemas,
		rowSeq:  rowSeq,
	}, nil
}

// loadSchemas rebuilds the in-memory table-name -> column-list map from
// the schema:<table> keys already persisted in db, so a connection
// reopened against an existing on-disk store (anything but ":memory:")
// sees the tables created by a previous one.
func loadSchemas(db *pebble.DB) (map[string][]string, error) {
	schemas := make(map[string][]string)

	iter, err := db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("schema:"),
		UpperBound: []byte("schema;"),
	})
	if err != nil {
		return nil, wrapNative(err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		table := bytes.TrimPrefix(iter.Key(), []byte("schema:"))
		schemas[string(table)] = decodeColumns(iter.Value())
	}
	if err := iter.Error(); err != nil {
		return nil, wrapNative(err)
	}
	return schemas, nil
}

// maxRowID returns the highest row id already stored for table, so a
// reopened connection's nextRowID sequence resumes after it instead of
// colliding with rows a previous connection already wrote. Row keys sort
// lexicographically in row-id order because the id is zero-padded, so the
// last key under the table's prefix carries the maximum id.
func maxRowID(db *pebble.DB, table string) (uint64, error) {
	prefix := rowKeyPrefix(table)
	iter, err := db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return 0, wrapNative(err)
	}
	defer iter.Close()

	if !iter.Last() {
		return 0, wrapNative(iter.Error())
	}
	key := iter.Key()
	idStr := key[len(prefix):]
	var id uint64
	for _, c := range idStr {
		id = id*10 + uint64(c-'0')
	}
	return id, wrapNative(iter.Error())
}
