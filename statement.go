package ardbc

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
)

// Statement is a prepared, parameterized query. A Statement obtained from
// Database.Prepare owns its underlying connection and returns it to the
// pool on Close; a Statement obtained from Transaction.Prepare rides on
// the transaction's own connection and does not.
type Statement struct {
	db    *Database
	conn  driver.Connection
	owns  bool
	inner driver.Statement

	closed bool
}

// NumInput reports the number of placeholders the statement expects, and
// whether that count is known. Some engines cannot determine it ahead of
// bind time.
func (s *Statement) NumInput() (int, bool) {
	return s.inner.NumInput()
}

// Execute runs a DML statement (INSERT/UPDATE/DELETE/DDL) with the given
// bound arguments and reports rows affected and last insert id. Use Query
// for statements that produce a result set. Rejecting a row-producing
// statement here is up to the driver: memsql returns a
// *UnexpectedRowsError for a SELECT, while the sqlite3 driver runs such a
// statement to completion and reports no error.
func (s *Statement) Execute(ctx context.Context, args []Arg) (ExecuteResult, error) {
	return s.inner.Execute(ctx, args)
}

// Query runs a statement expected to produce a result set and returns a
// Rows cursor over it. The returned Rows does not own a pooled connection
// of its own — it borrows the Statement's.
func (s *Statement) Query(ctx context.Context, args []Arg) (*Rows, error) {
	rows, err := s.inner.Query(ctx, args)
	if err != nil {
		return nil, err
	}
	return &Rows{inner: rows}, nil
}

// Close finalizes the statement and, if it owns its connection, returns
// that connection to the pool. Close is idempotent.
func (s *Statement) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.inner.Close()
	if s.owns {
		s.db.pool.Return(s.conn)
	}
	return err
}
