// Package sqlite3 is a reference ardbc driver over
// github.com/mattn/go-sqlite3. SQLite connection handles are not safe to
// touch from more than one goroutine at a time, so every Connection
// funnels its work through a single worker goroutine reading tasks off a
// channel — the same "one OS thread, one mpsc receiver" shape the
// original async_driver used for a non-reentrant native library, rendered
// here as one goroutine and one Go channel.
package sqlite3

import (
	"context"
	sqldriver "database/sql/driver"

	"github.com/cockroachdb/errors"
	sqlite3lib "github.com/mattn/go-sqlite3"

	"github.com/ardbc/ardbc/internal/driver"
)

// task is a unit of work queued onto a worker. It is always a closure
// rather than a hand-rolled sum type — Go's natural idiom for "one of
// several operations dispatched to a single consumer" is a function
// value, not a tagged enum walked by a type switch.
type task func(w *worker)

// rowsState tracks one open result set on a worker. SQLite only allows a
// single cursor position per prepared statement at a time, so this lives
// keyed by its own id rather than nested under the owning statement.
type rowsState struct {
	native   sqldriver.Rows
	cols     []driver.ColumnMetaData
	current  []sqldriver.Value
	positioned bool
	done     bool
}

// worker owns one native SQLite connection and every prepared statement
// and open result set derived from it. Every field below is touched only
// from inside run — callers communicate exclusively through tasks sent on
// the channel.
type worker struct {
	id     string
	tasks  chan task
	conn   sqldriver.Conn
	stmts  map[string]sqldriver.Stmt
	rows   map[string]*rowsState
	closed bool
}

func newWorker(_ context.Context, dsn string) (*worker, error) {
	conn, err := (&sqlite3lib.SQLiteDriver{}).Open(dsn)
	if err != nil {
		return nil, wrapNative(err)
	}

	w := &worker{
		id:    nextConnID(),
		tasks: make(chan task, 32),
		conn:  conn,
		stmts: make(map[string]sqldriver.Stmt),
		rows:  make(map[string]*rowsState),
	}
	go w.run()
	return w, nil
}

func (w *worker) run() {
	for t := range w.tasks {
		t(w)
	}
}

// send enqueues t, or returns ctx.Err() if ctx is done first. It never
// blocks on the task itself completing — callers wait on their own
// future.Completion for that.
func (w *worker) send(ctx context.Context, t task) error {
	select {
	case w.tasks <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stop closes the task channel, ending run. Must only be called after a
// task that performs the final conn.Close has already completed — no
// task may be sent afterward.
func (w *worker) stop() {
	close(w.tasks)
}

// prepare compiles query against the worker's connection and stores the
// resulting native statement under a freshly minted id. Must run on the
// worker goroutine.
func (w *worker) prepare(query string) (id string, numInput int, hasNumInput bool, err error) {
	stmt, err := w.conn.Prepare(query)
	if err != nil {
		return "", 0, false, wrapNative(err)
	}
	id = nextStmtID()
	w.stmts[id] = stmt
	n := stmt.NumInput()
	return id, n, n >= 0, nil
}

// execRaw issues sql directly against the connection, bypassing the
// prepared-statement cache — used for BEGIN/COMMIT/ROLLBACK, matching the
// original driver's choice to issue transaction control as plain
// sqlite3_exec calls rather than modeling it as a dedicated native API.
func (w *worker) execRaw(ctx context.Context, sql string) error {
	execer, ok := w.conn.(sqldriver.ExecerContext)
	if !ok {
		return errors.Newf("sqlite3: connection does not support ExecContext")
	}
	_, err := execer.ExecContext(ctx, sql, nil)
	return wrapNative(err)
}
