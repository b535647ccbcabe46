package sqlite3

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
)

// Driver opens SQLite connections backed by mattn/go-sqlite3, each running
// behind its own worker goroutine. Register it once per process:
//
//	ardbc.RegisterDriver("sqlite3", sqlite3.NewDriver())
type Driver struct{}

// NewDriver returns a ready-to-register Driver. It carries no state of its
// own — every connection gets its own worker and native handle.
func NewDriver() *Driver {
	return &Driver{}
}

// Open dials dsn (any URL or filename github.com/mattn/go-sqlite3
// accepts, including ":memory:") and starts its worker goroutine.
func (d *Driver) Open(ctx context.Context, dsn string) (driver.Connection, error) {
	w, err := newWorker(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Connection{w: w}, nil
}
