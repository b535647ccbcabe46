/*
Package ardbc implements an asynchronous, driver-agnostic relational
database connectivity core: open connections, prepare parameterized
statements, execute DML, stream result sets and group work into
transactions, all independent of the concrete database engine.

A Driver registered under a name supplies the engine-specific behavior.
Two reference drivers ship with this module:

  - sqlite3, wrapping github.com/mattn/go-sqlite3 behind a single worker
    goroutine, for a non-reentrant, cgo-backed native library.
  - memsql, an in-process SQL-ish table store backed by
    github.com/cockroachdb/pebble that completes every call inline, for a
    thread-safe native library that needs no worker goroutine at all.

Opening a database and running a query

	db, err := ardbc.Open("sqlite3", ":memory:")
	if err != nil {
		return err
	}

	stmt, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY, y TEXT)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	if _, err := stmt.Execute(ctx, nil); err != nil {
		return err
	}

Statement, Rows and Transaction all borrow a connection from the
Database's pool for the duration of their lifetime. Forgetting to call
Close leaks that connection the same way forgetting to close an
*sql.Rows leaks one in database/sql — always defer Close immediately
after a successful Prepare/Begin/Query.

Transactions

A Transaction obtained from Database.Begin must be terminated with
Commit or Rollback; Close on an still-active Transaction rolls back
best-effort and logs any error, since Close has no return channel of its
own:

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Close()

	stmt, err := tx.Prepare(ctx, "INSERT INTO t(y) VALUES(?)")
	...
	if err := tx.Commit(ctx); err != nil {
		return err
	}

Statements prepared from a Transaction piggyback on the transaction's own
connection and do not return it to the pool on Close — only the
Transaction itself does, and only once, after any rollback.

Values and placeholders

Arguments and fetched columns travel as Value, a closed five-case union
(I64, F64, String, Bytes, Null). Placeholder addresses a bind slot either
by one-based ordinal index or by name; the sqlite3 reference driver
treats named placeholders as by-position, as SQLite's own C API does.

Registering a driver

	ardbc.RegisterDriver("sqlite3", sqlite3.NewDriver())
	db, err := ardbc.Open("sqlite3", "file:test.db")

A package-level Registry (DefaultRegistry) backs RegisterDriver,
UnregisterDriver and Open as a thin façade; instantiating your own
*ardbc.Registry is equally supported and is the primary way to keep
multiple independent driver sets (e.g. in tests) from colliding.
*/
package ardbc
