package memsql

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/internal/driver"
)

// Statement adapts one parsed memsql statement to internal/driver.Statement.
// writer is either the connection's *pebble.DB (no transaction) or a
// Transaction's *pebble.Batch.
type Statement struct {
	conn   *Connection
	writer writer
	parsed parsedStmt

	closed bool
}

// NumInput reports the placeholder count memsql determined while parsing
// — always known, since memsql parses the full statement up front.
func (s *Statement) NumInput() (int, bool) {
	return s.parsed.placeholderCount(), true
}

// Execute runs a CREATE TABLE or INSERT. Calling it on a SELECT returns a
// *ardbc.UnexpectedRowsError, since that statement produces rows.
func (s *Statement) Execute(_ context.Context, args []driver.Arg) (driver.ExecuteResult, error) {
	switch stmt := s.parsed.(type) {
	case *createTableStmt:
		s.conn.setColumnsFor(stmt.table, stmt.columns)
		if err := s.writer.Set(schemaKey(stmt.table), encodeColumns(stmt.columns), pebble.Sync); err != nil {
			return driver.ExecuteResult{}, wrapNative(err)
		}
		return driver.ExecuteResult{}, nil

	case *insertStmt:
		if len(args) != len(stmt.columns) {
			return driver.ExecuteResult{}, &ardbc.BindFailureError{
				Placeholder: "<values>",
				Reason:      fmt.Sprintf("expected %d values, got %d", len(stmt.columns), len(args)),
			}
		}
		values := make([]driver.Value, len(args))
		for i, a := range args {
			values[i] = a.Value
		}
		rowID := s.conn.nextRowID(stmt.table)
		if err := s.writer.Set(rowKey(stmt.table, rowID), encodeRow(values), pebble.Sync); err != nil {
			return driver.ExecuteResult{}, wrapNative(err)
		}
		return driver.ExecuteResult{LastInsertID: rowID, RowsAffected: 1}, nil

	case *selectStmt:
		return driver.ExecuteResult{}, &ardbc.UnexpectedRowsError{}

	default:
		return driver.ExecuteResult{}, errors.Newf("memsql: unsupported statement kind %T", s.parsed)
	}
}

// Query runs a SELECT * FROM <table>, scanning every row stored for that
// table. Calling it on CREATE TABLE or INSERT returns an error — neither
// produces rows.
func (s *Statement) Query(_ context.Context, _ []driver.Arg) (driver.Rows, error) {
	stmt, ok := s.parsed.(*selectStmt)
	if !ok {
		return nil, errors.Newf("memsql: statement does not produce rows")
	}

	cols, ok := s.conn.columnsFor(stmt.table)
	if !ok {
		return nil, errors.Newf("memsql: unknown table %q", stmt.table)
	}

	iter, err := s.conn.db.NewIter(&pebble.IterOptions{
		LowerBound: rowKeyPrefix(stmt.table),
		UpperBound: prefixUpperBound(rowKeyPrefix(stmt.table)),
	})
	if err != nil {
		return nil, wrapNative(err)
	}
	defer iter.Close()

	colMeta := make([]driver.ColumnMetaData, len(cols))
	for i, name := range cols {
		colMeta[i] = driver.ColumnMetaData{ColumnIndex: uint64(i), ColumnName: name}
	}

	var results [][]driver.Value
	for iter.First(); iter.Valid(); iter.Next() {
		row, err := decodeRow(iter.Value(), len(cols))
		if err != nil {
			return nil, wrapNative(err)
		}
		results = append(results, row)
	}
	if err := iter.Error(); err != nil {
		return nil, wrapNative(err)
	}

	return &Rows{cols: colMeta, results: results, idx: -1}, nil
}

// Close is a no-op beyond marking the Statement closed — memsql holds no
// native handle per prepared statement, only the parsed form.
func (s *Statement) Close() error {
	s.closed = true
	return nil
}

func prefixUpperBound(prefix []byte) []byte {
	upper := make([]byte, len(prefix))
	copy(upper, prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return upper[:i+1]
		}
	}
	return nil
}
