package driver

import "context"

// Driver is implemented by a concrete database engine binding. It must be
// safe to share between goroutines: the registry holds it behind a
// mutex-guarded map, every Database opened from it keeps a reference, and
// Open may be called concurrently by checkouts racing on an empty pool.
type Driver interface {
	// Open dials a new connection against url. It does not need to be
	// called for every Database.Prepare/Begin — the pool reuses
	// connections whose IsValid reports true.
	Open(ctx context.Context, url string) (Connection, error)
}

// Connection is one open session against a database URL.
type Connection interface {
	// Prepare compiles query into a reusable Statement bound to this
	// connection.
	Prepare(ctx context.Context, query string) (Statement, error)

	// Begin starts a new Transaction scoped to this connection.
	Begin(ctx context.Context) (Transaction, error)

	// IsValid reports whether the connection is still usable. The pool
	// removes and drops any connection found invalid during a checkout
	// scan.
	IsValid(ctx context.Context) bool

	// ID is the driver-assigned identifier, unique within one Driver
	// instance and stable for the lifetime of the underlying session.
	// The pool uses it as the map key.
	ID() string

	// Close releases the connection's native resources. Called by the
	// pool when a connection fails validation, never while the
	// connection is checked out.
	Close() error
}

// Transaction is a connection-scoped grouping of statements.
type Transaction interface {
	Prepare(ctx context.Context, query string) (Statement, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Statement is a compiled query, reusable with different argument lists.
type Statement interface {
	// NumInput reports how many bind-parameter slots the driver
	// believes this statement has. A nil/absent count is reported as
	// (0, false); callers must not read anything into Some(0) beyond
	// "the driver thinks there are no slots, or does not track them".
	NumInput() (int, bool)

	Execute(ctx context.Context, args []Arg) (ExecuteResult, error)
	Query(ctx context.Context, args []Arg) (Rows, error)

	// Close finalizes the driver-side prepared object. One-shot: the
	// ardbc Statement wrapper calls this exactly once, from its own
	// Close.
	Close() error
}

// Rows is the cursor produced by executing a Statement that returns rows.
type Rows interface {
	// Columns is memoized at the ardbc wrapper level but drivers may
	// also cache it; it must return the same slice contents on every
	// call for a given query invocation.
	Columns(ctx context.Context) ([]ColumnMetaData, error)

	// Next advances the cursor. Returns false at end-of-set. After an
	// error, the cursor must behave as if it were past end-of-set.
	Next(ctx context.Context) (bool, error)

	// Get extracts the column at pos, coerced per columnType.
	Get(ctx context.Context, pos Placeholder, columnType ColumnType) (Value, error)

	// Close resets the underlying cursor so the parent Statement can be
	// safely reused.
	Close() error
}
