// Package future implements the completion primitive the ardbc core passes
// between the handle layer and a driver worker: a single-producer,
// single-consumer one-shot result carrying a typed payload, safe to hand
// off between goroutines.
//
// Go has no poll/waker future of its own, so this is rendered the way Go
// code actually expresses "deliver exactly one value across goroutines,
// wait on it with a context": a channel of capacity one. Exactly-once
// delivery still holds, and cancellation is the consumer simply not
// waiting (Ready's send into the buffered channel never blocks, so a
// producer that runs after the consumer gave up does not leak or panic).
package future

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrCancelled is returned by Wait when the Completion was closed without
// ever receiving a value (the producer side was dropped).
var ErrCancelled = errors.New("ardbc: future cancelled without a value")

// Completion is the consumer half of a one-shot result of type T.
type Completion[T any] struct {
	ch chan T
}

// Producer is the producer half, reference-countable in the sense that any
// number of goroutines may hold a copy of it — only the first call to
// Ready has an effect.
type Producer[T any] struct {
	ch   chan T
	done chan struct{}
}

// New creates a paired (Completion, Producer) for a value of type T.
func New[T any]() (*Completion[T], *Producer[T]) {
	ch := make(chan T, 1)
	done := make(chan struct{})
	return &Completion[T]{ch: ch}, &Producer[T]{ch: ch, done: done}
}

// Ready deposits value, exactly once. A second call is a no-op, matching
// the original primitive's "call ready function twice" invariant — except
// here it is silently ignored rather than asserted, since an asynchronous
// worker must never panic on behalf of a caller it cannot talk back to.
func (p *Producer[T]) Ready(value T) {
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case p.ch <- value:
		close(p.done)
	default:
		// A value is already buffered; ardbc never calls Ready twice in
		// practice, but this keeps Ready itself non-blocking and
		// idempotent under misuse.
	}
}

// Wait blocks until a value is ready or ctx is done. The single value goes
// to the first Wait that receives it; a later Wait finds nothing to
// receive and blocks until its ctx is done, then returns ctx.Err().
func (c *Completion[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	select {
	case v, ok := <-c.ch:
		if !ok {
			return zero, ErrCancelled
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
