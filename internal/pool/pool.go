// Package pool implements the per-Database connection pool: a
// mutex-guarded map from driver-assigned connection id to owned
// connection, exclusively owning connections at rest.
package pool

import (
	"context"
	"sync"

	"github.com/ardbc/ardbc/internal/driver"
)

// Pool caches connections for one (driver name, url) pair. It is safe for
// concurrent use; the lock is held only across map operations, never
// across a suspension point such as a driver Open call.
type Pool struct {
	mu    sync.Mutex
	conns map[string]driver.Connection
}

// New returns an empty, unbounded pool.
func New() *Pool {
	return &Pool{conns: make(map[string]driver.Connection)}
}

// Checkout removes and returns the first connection found valid in the
// pool. If none is valid (or the pool is empty), it calls open to dial a
// fresh one; open may suspend (perform network/file I/O) and is called
// with the pool lock released, so concurrent checkouts may race and open
// more connections than were pooled a moment earlier — excess connections
// simply flow back into the pool on Return.
//
// Connections encountered during the scan that fail validation are
// removed from the pool and closed. The connection is dropped whether or
// not Close succeeds; a Close error is handed to the onInvalid callback
// (when non-nil) so the caller can log it, since the pool itself has no
// logger dependency. A clean Close does not call onInvalid.
func (p *Pool) Checkout(ctx context.Context, open func(context.Context) (driver.Connection, error), onInvalid func(driver.Connection, error)) (driver.Connection, error) {
	conn := p.takeValid(ctx, onInvalid)
	if conn != nil {
		return conn, nil
	}
	return open(ctx)
}

func (p *Pool) takeValid(ctx context.Context, onInvalid func(driver.Connection, error)) driver.Connection {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, c := range p.conns {
		if c.IsValid(ctx) {
			delete(p.conns, id)
			return c
		}
		delete(p.conns, id)
		if err := c.Close(); err != nil && onInvalid != nil {
			onInvalid(c, err)
		}
	}
	return nil
}

// Return inserts conn under its driver-assigned id, making it available to
// the next Checkout. A connection already present under the same id is
// overwritten — per the core's ownership invariant this should not occur,
// since a checked-out connection is owned by exactly one borrower at a
// time.
func (p *Pool) Return(conn driver.Connection) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conns[conn.ID()] = conn
}

// Len reports the number of connections currently at rest in the pool.
// Exposed for tests.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.conns)
}
