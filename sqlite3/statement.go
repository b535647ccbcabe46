package sqlite3

import (
	"context"
	sqldriver "database/sql/driver"

	"github.com/cockroachdb/errors"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/internal/driver"
	"github.com/ardbc/ardbc/internal/future"
)

// Statement adapts one worker's native prepared statement to
// internal/driver.Statement.
type Statement struct {
	w           *worker
	id          string
	numInput    int
	hasNumInput bool
}

// NumInput reports the bind-parameter count SQLite determined when the
// statement was compiled.
func (s *Statement) NumInput() (int, bool) {
	return s.numInput, s.hasNumInput
}

// Execute runs the statement for its side effects and reports the rows
// affected and last insert id.
func (s *Statement) Execute(ctx context.Context, args []driver.Arg) (driver.ExecuteResult, error) {
	type executed struct {
		result driver.ExecuteResult
		err    error
	}
	comp, prod := future.New[executed]()
	if err := s.w.send(ctx, func(w *worker) {
		stmt, ok := w.stmts[s.id]
		if !ok {
			prod.Ready(executed{err: &ardbc.ResourceNotFoundError{Kind: "statement", ID: s.id}})
			return
		}
		execer, ok := stmt.(sqldriver.StmtExecContext)
		if !ok {
			prod.Ready(executed{err: errors.Newf("sqlite3: statement does not support ExecContext")})
			return
		}
		res, err := execer.ExecContext(ctx, toNamedValues(args))
		if err != nil {
			prod.Ready(executed{err: wrapNative(err)})
			return
		}
		lastID, _ := res.LastInsertId()
		affected, _ := res.RowsAffected()
		prod.Ready(executed{result: driver.ExecuteResult{
			LastInsertID: uint64(lastID),
			RowsAffected: uint64(affected),
		}})
	}); err != nil {
		return driver.ExecuteResult{}, err
	}

	r, err := comp.Wait(ctx)
	if err != nil {
		return driver.ExecuteResult{}, err
	}
	return r.result, r.err
}

// Query runs the statement and returns a cursor over its result set.
func (s *Statement) Query(ctx context.Context, args []driver.Arg) (driver.Rows, error) {
	type queried struct {
		rowsID string
		err    error
	}
	comp, prod := future.New[queried]()
	if err := s.w.send(ctx, func(w *worker) {
		stmt, ok := w.stmts[s.id]
		if !ok {
			prod.Ready(queried{err: &ardbc.ResourceNotFoundError{Kind: "statement", ID: s.id}})
			return
		}
		queryer, ok := stmt.(sqldriver.StmtQueryContext)
		if !ok {
			prod.Ready(queried{err: errors.Newf("sqlite3: statement does not support QueryContext")})
			return
		}
		native, err := queryer.QueryContext(ctx, toNamedValues(args))
		if err != nil {
			prod.Ready(queried{err: wrapNative(err)})
			return
		}

		cols := buildColumnMetaData(native)
		id := nextRowsID()
		w.rows[id] = &rowsState{native: native, cols: cols}
		prod.Ready(queried{rowsID: id})
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
	return &Rows{w: s.w, id: r.rowsID}, nil
}

// Close finalizes the native statement. Idempotent: closing an id the
// worker no longer has is treated as already-closed, not an error.
func (s *Statement) Close() error {
	ctx := context.Background()
	comp, prod := future.New[error]()
	if err := s.w.send(ctx, func(w *worker) {
		stmt, ok := w.stmts[s.id]
		if !ok {
			prod.Ready(nil)
			return
		}
		delete(w.stmts, s.id)
		prod.Ready(wrapNative(stmt.Close()))
	}); err != nil {
		return err
	}
	err, waitErr := comp.Wait(ctx)
	if waitErr != nil {
		return waitErr
	}
	return err
}

func buildColumnMetaData(rows sqldriver.Rows) []driver.ColumnMetaData {
	names := rows.Columns()
	typer, hasTypes := rows.(sqldriver.RowsColumnTypeDatabaseTypeName)

	cols := make([]driver.ColumnMetaData, len(names))
	for i, name := range names {
		var decltype string
		if hasTypes {
			decltype = typer.ColumnTypeDatabaseTypeName(i)
		}
		kind := declaredColumnType(decltype)
		cols[i] = driver.ColumnMetaData{
			ColumnIndex:       uint64(i),
			ColumnName:        name,
			ColumnDecltype:    decltype,
			ColumnDecltypeLen: declaredByteLen(kind),
		}
	}
	return cols
}
