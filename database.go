package ardbc

import (
	"context"

	"github.com/ardbc/ardbc/internal/driver"
	"github.com/ardbc/ardbc/internal/pool"
)

// Database is a named binding between a Driver and a connection string. It
// holds no connection of its own — each Prepare or Begin checks a
// connection out of an internal pool, opening a fresh one when the pool is
// empty or every pooled entry has gone invalid.
type Database struct {
	name string
	url  string
	drv  driver.Driver
	pool *pool.Pool
}

func newDatabase(name, url string, drv driver.Driver) *Database {
	return &Database{
		name: name,
		url:  url,
		drv:  drv,
		pool: pool.New(),
	}
}

// Name is the driver name this Database was opened with.
func (db *Database) Name() string { return db.name }

// URL is the connection string this Database was opened with.
func (db *Database) URL() string { return db.url }

func (db *Database) checkout(ctx context.Context) (driver.Connection, error) {
	return db.pool.Checkout(ctx,
		func(ctx context.Context) (driver.Connection, error) {
			return db.drv.Open(ctx, db.url)
		},
		func(conn driver.Connection, err error) {
			ardbcLog.Printf("dropping invalid pooled connection %s: %v", conn.ID(), err)
		},
	)
}

// Prepare checks out a connection and parses query against it, returning a
// Statement that owns the connection and returns it to the pool on Close.
func (db *Database) Prepare(ctx context.Context, query string) (*Statement, error) {
	conn, err := db.checkout(ctx)
	if err != nil {
		return nil, err
	}

	stmt, err := conn.Prepare(ctx, query)
	if err != nil {
		db.pool.Return(conn)
		return nil, err
	}

	return &Statement{db: db, conn: conn, owns: true, inner: stmt}, nil
}

// Begin checks out a connection and starts a transaction on it, returning a
// Transaction that owns the connection for its whole lifetime.
func (db *Database) Begin(ctx context.Context) (*Transaction, error) {
	conn, err := db.checkout(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		db.pool.Return(conn)
		return nil, err
	}

	return &Transaction{db: db, conn: conn, inner: tx}, nil
}
